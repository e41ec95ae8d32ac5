package trie

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/Rob-bie/retrieval/common"
)

// storedNode is the canonical wire form of a trie node: the terminal mark
// plus one hash-addressed edge per populated child, in ascending label order.
// Ascending order makes the encoding, and therefore the node hash, a function
// of the stored key set alone.
type storedNode struct {
	Term  bool
	Edges []storedEdge
}

// storedEdge references one child blob by its hash.
type storedEdge struct {
	Label byte
	Hash  common.Hash
}

// mustEncodeNode is a wrapper of encodeNode and panics if any error is
// encountered.
func mustEncodeNode(n *node, edges []storedEdge) []byte {
	blob, err := encodeNode(n, edges)
	if err != nil {
		panic(fmt.Sprintf("encode node: %v", err))
	}
	return blob
}

// encodeNode serializes the node's terminal mark together with the already
// hashed edges of its children.
func encodeNode(n *node, edges []storedEdge) ([]byte, error) {
	return rlp.EncodeToBytes(&storedNode{Term: n.term, Edges: edges})
}

// decodeNode parses the RLP encoding of a trie node blob. The blob must have
// strictly ascending edge labels; anything else marks a corrupted store.
func decodeNode(hash, buf []byte) (*storedNode, error) {
	if len(buf) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	var n storedNode
	if err := rlp.DecodeBytes(buf, &n); err != nil {
		return nil, fmt.Errorf("decode error: %v", err)
	}
	for i := 1; i < len(n.Edges); i++ {
		if n.Edges[i-1].Label >= n.Edges[i].Label {
			return nil, fmt.Errorf("edge labels out of order at %d", i)
		}
	}
	return &n, nil
}
