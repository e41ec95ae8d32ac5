package trie

import (
	"fmt"
	"sync"

	"github.com/Rob-bie/retrieval/accdb"
	"github.com/Rob-bie/retrieval/common"
)

// TrieDB holds committed trie snapshots before they are written out to the
// backing store. Blobs handed over via Update stay in the dirty cache until
// Commit flushes the subtree below a chosen root to disk.
type TrieDB struct {
	diskdb accdb.KeyValueStore // Persistent storage for matured trie nodes

	dirties map[common.Hash][]byte // Blobs of committed but not yet flushed nodes

	lock sync.RWMutex
}

// NewTrieDB creates a new trie database to hold committed trie content before
// it is written out to disk. No read cache is created, so all data retrievals
// beyond the dirty set will hit the underlying store.
func NewTrieDB(diskdb accdb.KeyValueStore) *TrieDB {
	return &TrieDB{
		diskdb:  diskdb,
		dirties: make(map[common.Hash][]byte),
	}
}

// Update absorbs the node set of a commit operation into the dirty cache.
func (db *TrieDB) Update(nodes *NodeSet) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	for _, path := range nodes.updates.order {
		n, ok := nodes.updates.nodes[path]
		if !ok {
			return fmt.Errorf("missing node %v", path)
		}
		if _, ok := db.dirties[n.hash]; ok {
			continue
		}
		db.dirties[n.hash] = n.blob
	}
	return nil
}

// nodeBlob retrieves the encoded trie node with the given hash, preferring
// the dirty cache over the backing store.
func (db *TrieDB) nodeBlob(hash common.Hash) ([]byte, error) {
	if hash == (common.Hash{}) {
		return nil, fmt.Errorf("not found")
	}
	db.lock.RLock()
	dirty := db.dirties[hash]
	db.lock.RUnlock()

	if dirty != nil {
		return dirty, nil
	}
	enc, err := db.diskdb.Get(hash.Bytes())
	if err != nil || len(enc) == 0 {
		return nil, fmt.Errorf("not found")
	}
	return enc, nil
}

// Commit iterates over the subtree below the given node, writes every blob
// out to disk and drops the written blobs from the dirty cache. Outside code
// never sees an inconsistent state: blobs are only uncached once the batch
// write finalized, by replaying the batch against the cleaner.
//
// Note, this method is a non-synchronized mutator. It is unsafe to call this
// concurrently with other mutators.
func (db *TrieDB) Commit(root common.Hash) error {
	batch := db.diskdb.NewBatch()

	uncacher := &cleaner{db}
	if err := db.commit(root, batch, uncacher); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}
	db.lock.Lock()
	defer db.lock.Unlock()
	if err := batch.Replay(uncacher); err != nil {
		return err
	}
	batch.Reset()
	return nil
}

// commit is the recursive worker of Commit. It is called without the lock
// held and takes it only while replaying a flushed batch against the cleaner.
func (db *TrieDB) commit(hash common.Hash, batch accdb.Batch, uncacher *cleaner) error {
	// If the blob is absent, it's a previously flushed node.
	blob, ok := db.dirties[hash]
	if !ok {
		return nil
	}
	n, err := decodeNode(hash.Bytes(), blob)
	if err != nil {
		return err
	}
	for _, edge := range n.Edges {
		if err := db.commit(edge.Hash, batch, uncacher); err != nil {
			return err
		}
	}
	if err := batch.Put(hash.Bytes(), blob); err != nil {
		return err
	}
	// If we've reached an optimal batch size, commit and start over.
	if batch.ValueSize() >= accdb.IdealBatchSize {
		if err := batch.Write(); err != nil {
			return err
		}
		db.lock.Lock()
		err := batch.Replay(uncacher)
		batch.Reset()
		db.lock.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}
