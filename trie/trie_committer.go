package trie

import (
	"github.com/Rob-bie/retrieval/common"
)

// committer is the tool used for the trie Commit operation. The committer
// collapses nodes into hash-addressed blobs and keeps them cached in commit
// order, children before parents.
type committer struct {
	nodes  *NodeSet
	hasher *hasher
}

// newCommitter creates a committer collecting into the given set.
func newCommitter(nodes *NodeSet) *committer {
	return &committer{
		nodes:  nodes,
		hasher: newHasher(),
	}
}

// Commit collapses a node down into its hash and returns it. The node set
// accumulated during the walk is left on the committer.
func (c *committer) Commit(n *node) (common.Hash, error) {
	defer returnHasherToPool(c.hasher)
	return c.commit(nil, n)
}

// commit collapses a node down into its hash, committing children first so
// that a replay of the set in order always writes a child before any parent
// referencing it.
func (c *committer) commit(path []byte, n *node) (common.Hash, error) {
	var edges []storedEdge
	for b, child := range &n.children {
		if child == nil {
			continue
		}
		hashed, err := c.commit(append(path, byte(b)), child)
		if err != nil {
			return common.Hash{}, err
		}
		edges = append(edges, storedEdge{Label: byte(b), Hash: hashed})
	}
	blob, err := encodeNode(n, edges)
	if err != nil {
		return common.Hash{}, err
	}
	hash := c.hasher.hashBlob(blob)
	c.nodes.markUpdated(path, &memoryNode{hash: hash, blob: blob})
	return hash, nil
}
