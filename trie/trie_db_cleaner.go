package trie

import (
	"github.com/Rob-bie/retrieval/common"
)

// cleaner is a database batch replayer that takes a batch of write operations
// and cleans up the trie database from anything written to disk.
type cleaner struct {
	db *TrieDB
}

// Put reacts to database writes and implements blob uncaching. This is the
// post-processing step of a commit operation where the already persisted
// blobs are dropped from the dirty cache. The two-phase commit keeps every
// blob reachable while it moves from memory to disk.
func (c *cleaner) Put(key []byte, blob []byte) error {
	delete(c.db.dirties, common.BytesToHash(key))
	return nil
}

func (c *cleaner) Delete(key []byte) error {
	panic("not implemented")
}
