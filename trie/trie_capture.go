package trie

// patternCapture is the capture environment of one pattern execution. It maps
// a capture name to the byte bound at the name's first matched occurrence.
// Bindings are scoped to the current search path: the matcher binds before
// descending into a branch and releases on the way back out.
type patternCapture struct {
	bound map[string]byte
}

// newCapture initializes an empty capture environment.
func newCapture() *patternCapture {
	return &patternCapture{
		bound: make(map[string]byte),
	}
}

// lookup returns the byte bound under name, if any.
func (c *patternCapture) lookup(name string) (byte, bool) {
	b, ok := c.bound[name]
	return b, ok
}

// bind records b as the byte matched by name. The caller must release the
// name again when the branch is abandoned.
func (c *patternCapture) bind(name string, b byte) {
	c.bound[name] = b
}

// release drops the binding under name when backtracking out of a branch.
func (c *patternCapture) release(name string) {
	delete(c.bound, name)
}

// reset clears every binding tracked by the environment.
func (c *patternCapture) reset() {
	c.bound = make(map[string]byte)
}

// copy returns a deep copied capture environment.
func (c *patternCapture) copy() *patternCapture {
	bound := make(map[string]byte, len(c.bound))
	for name, b := range c.bound {
		bound[name] = b
	}
	return &patternCapture{bound: bound}
}
