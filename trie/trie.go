// Package trie implements a byte-keyed retrieval trie with exact, prefix and
// pattern lookup, plus content-addressed snapshots over a key-value store.
//
// A Trie is a value: Insert returns a new trie sharing structure with the old
// one and never mutates a trie observable to another caller. Multiple readers
// may therefore share one trie concurrently without synchronization.
package trie

import (
	"github.com/Rob-bie/retrieval/common"
)

var (
	// emptyRoot is the known root hash of an empty trie.
	emptyRoot = func() common.Hash {
		blob := mustEncodeNode(&node{}, nil)
		h := newHasher()
		defer returnHasherToPool(h)
		return h.hashBlob(blob)
	}()
)

// Trie is an in-memory retrieval trie over byte strings. The zero-value
// meaning is provided by New; all exported query methods are pure and the
// mutating ones never modify the receiver.
type Trie struct {
	root *node
}

// New creates a trie holding the given keys. With no arguments it returns the
// empty trie.
func New(keys ...string) *Trie {
	t := &Trie{root: &node{}}
	if len(keys) == 0 {
		return t
	}
	return t.Insert(keys...)
}

// Load rebuilds a trie from a committed snapshot identified by id. The root
// named by the id must be resolvable through db, otherwise a MissingNodeError
// is returned. The whole subtree is resolved up front so that queries on the
// returned trie never touch the database.
func Load(id *ID, db *TrieDB) (*Trie, error) {
	if id.Root == (common.Hash{}) || id.Root == emptyRoot {
		return New(), nil
	}
	root, err := resolveNode(db, id.Root, nil)
	if err != nil {
		return nil, err
	}
	return &Trie{root: root}, nil
}

// Insert returns a trie containing every key of t plus the given keys.
// Inserting a key already present is a no-op: the receiver itself is returned
// when nothing changed.
func (t *Trie) Insert(keys ...string) *Trie {
	root := t.root
	for _, key := range keys {
		if dirty, nn := insert(root, key); dirty {
			root = nn
		}
	}
	if root == t.root {
		return t
	}
	return &Trie{root: root}
}

// insert descends key byte-by-byte, path-copying every node it touches.
// The dirty return is false when the key was already present, in which case
// the original node is handed back untouched.
func insert(n *node, key string) (bool, *node) {
	if n == nil {
		nn := &node{}
		if len(key) == 0 {
			nn.term = true
			return true, nn
		}
		_, nn.children[key[0]] = insert(nil, key[1:])
		return true, nn
	}
	if len(key) == 0 {
		if n.term {
			return false, n
		}
		nn := n.copy()
		nn.term = true
		return true, nn
	}
	dirty, child := insert(n.children[key[0]], key[1:])
	if !dirty {
		return false, n
	}
	nn := n.copy()
	nn.children[key[0]] = child
	return true, nn
}

// Contains reports whether key was inserted into the trie.
func (t *Trie) Contains(key string) bool {
	n := t.root
	for i := 0; i < len(key); i++ {
		if n = n.children[key[i]]; n == nil {
			return false
		}
	}
	return n.term
}

// Prefix returns every stored key beginning with p, in lexicographic byte
// order, each materialized in full. The result is nil when no stored key
// starts with p. If p itself is stored it is included.
func (t *Trie) Prefix(p string) []string {
	n := t.root
	for i := 0; i < len(p); i++ {
		if n = n.children[p[i]]; n == nil {
			return nil
		}
	}
	var keys []string
	collect(n, append([]byte(nil), p...), &keys)
	return keys
}

// collect performs the depth-first walk below n. The accumulated path is
// emitted before descending, which together with ascending-byte iteration
// yields lexicographic output order.
func collect(n *node, acc []byte, keys *[]string) {
	if n.term {
		*keys = append(*keys, string(acc))
	}
	for b, child := range &n.children {
		if child != nil {
			collect(child, append(acc, byte(b)), keys)
		}
	}
}

// Hash returns the Keccak-256 root fingerprint of the stored key set. Equal
// sets hash equally regardless of insertion order.
func (t *Trie) Hash() common.Hash {
	h := newHasher()
	defer returnHasherToPool(h)
	return hashNode(t.root, h)
}

func hashNode(n *node, h *hasher) common.Hash {
	var edges []storedEdge
	for b, child := range &n.children {
		if child != nil {
			edges = append(edges, storedEdge{Label: byte(b), Hash: hashNode(child, h)})
		}
	}
	return h.hashBlob(mustEncodeNode(n, edges))
}

// Commit collapses the trie into a set of hash-addressed node blobs and
// returns the root hash along with the collected set. The trie itself stays
// usable; committing is a read-only walk.
func (t *Trie) Commit() (common.Hash, *NodeSet, error) {
	c := newCommitter(NewNodeSet())
	root, err := c.Commit(t.root)
	if err != nil {
		return common.Hash{}, nil, err
	}
	return root, c.nodes, nil
}
