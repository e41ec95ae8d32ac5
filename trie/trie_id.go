package trie

import "github.com/Rob-bie/retrieval/common"

// ID is the identifier for uniquely identifying a committed trie snapshot.
type ID struct {
	Root common.Hash // The root hash of the trie
}

// TrieID constructs an identifier for the snapshot with the provided root.
func TrieID(root common.Hash) *ID {
	return &ID{
		Root: root,
	}
}
