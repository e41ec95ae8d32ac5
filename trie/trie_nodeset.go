package trie

import (
	"github.com/Rob-bie/retrieval/common"
)

// memoryNode is all the information we know about a single committed trie
// node in memory.
type memoryNode struct {
	hash common.Hash // hash of the encoded blob
	blob []byte      // canonical encoding of the node
}

// nodesWithOrder represents a collection of committed nodes keyed by path,
// with the commit order preserved in the order list.
type nodesWithOrder struct {
	order []string               // the path list of committed nodes, children before parents
	nodes map[string]*memoryNode // the map of committed nodes, keyed by node path
}

// NodeSet contains all nodes collected during a commit operation. Each node
// is keyed by the byte path from the root. It's not thread-safe to use.
type NodeSet struct {
	updates *nodesWithOrder
}

// NewNodeSet initializes an empty node set to be used for tracking nodes from
// a commit operation.
func NewNodeSet() *NodeSet {
	return &NodeSet{
		updates: &nodesWithOrder{
			nodes: make(map[string]*memoryNode),
		},
	}
}

// markUpdated records the committed node under the provided path.
func (set *NodeSet) markUpdated(path []byte, node *memoryNode) {
	set.updates.order = append(set.updates.order, string(path))
	set.updates.nodes[string(path)] = node
}

// Len returns the number of nodes in the set.
func (set *NodeSet) Len() int {
	return len(set.updates.order)
}
