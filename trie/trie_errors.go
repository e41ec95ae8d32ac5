package trie

import (
	"fmt"

	"github.com/Rob-bie/retrieval/common"
)

// MissingNodeError is returned by snapshot loading when a trie node referenced
// from a committed root is not present in the database.
type MissingNodeError struct {
	NodeHash common.Hash // hash of the missing node
	Path     []byte      // byte path from the root to the missing node
	err      error       // concrete error the lookup failed with
}

// Unwrap returns the concrete error for the missing trie node.
func (err *MissingNodeError) Unwrap() error {
	return err.err
}

func (err *MissingNodeError) Error() string {
	return fmt.Sprintf("missing trie node %x (path %x) %v", err.NodeHash, err.Path, err.err)
}

// SyntaxError describes a malformed pattern. Msg names the offending
// construct and the 1-based column at which it began or occurred.
type SyntaxError struct {
	Msg    string
	Column int
}

func (err *SyntaxError) Error() string {
	return err.Msg
}
