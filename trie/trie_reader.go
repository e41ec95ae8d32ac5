package trie

import (
	"github.com/Rob-bie/retrieval/common"
)

// resolveNode rebuilds the in-memory node under the given hash, resolving the
// whole subtree. A MissingNodeError is returned in case any referenced blob
// is not found or fails to decode.
func resolveNode(db *TrieDB, hash common.Hash, path []byte) (*node, error) {
	blob, err := db.nodeBlob(hash)
	if err != nil {
		return nil, &MissingNodeError{NodeHash: hash, Path: common.CopyBytes(path), err: err}
	}
	stored, err := decodeNode(hash.Bytes(), blob)
	if err != nil {
		return nil, &MissingNodeError{NodeHash: hash, Path: common.CopyBytes(path), err: err}
	}
	n := &node{term: stored.Term}
	for _, edge := range stored.Edges {
		child, err := resolveNode(db, edge.Hash, append(path, edge.Label))
		if err != nil {
			return nil, err
		}
		n.children[edge.Label] = child
	}
	return n, nil
}
