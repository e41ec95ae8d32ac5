package trie

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/Rob-bie/retrieval/common"
)

// hasher computes node hashes. Hashers are pooled since Keccak state
// allocation dominates small hashing workloads.
type hasher struct {
	sha hash.Hash
	tmp [common.HashLength]byte
}

var hasherPool = sync.Pool{
	New: func() interface{} {
		return &hasher{sha: sha3.NewLegacyKeccak256()}
	},
}

func newHasher() *hasher {
	return hasherPool.Get().(*hasher)
}

func returnHasherToPool(h *hasher) {
	hasherPool.Put(h)
}

// hashBlob returns the Keccak-256 hash of an encoded node blob.
func (h *hasher) hashBlob(blob []byte) common.Hash {
	h.sha.Reset()
	h.sha.Write(blob)
	return common.BytesToHash(h.sha.Sum(h.tmp[:0]))
}
