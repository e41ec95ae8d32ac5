package trie

// Pattern compiles pat and returns every stored key matching it, in
// lexicographic byte order. A malformed pattern returns a *SyntaxError and no
// results.
func (t *Trie) Pattern(pat string) ([]string, error) {
	toks, err := parsePattern(pat)
	if err != nil {
		return nil, err
	}
	m := &matcher{env: newCapture()}
	m.match(t.root, toks, nil)
	return m.out, nil
}

// matcher executes a token sequence against the trie. Matching interleaves
// tree descent with capture propagation: each branch of the search carries
// the environment down, and bindings made on a branch are released when the
// branch is exhausted.
type matcher struct {
	env *patternCapture
	out []string
}

// match consumes the leading token against node n, descending into every
// admissible child in ascending byte order. acc holds the bytes consumed so
// far; when the tokens run out at a terminal node it is emitted as a match.
func (m *matcher) match(n *node, toks []token, acc []byte) {
	if len(toks) == 0 {
		if n.term {
			m.out = append(m.out, string(acc))
		}
		return
	}
	switch tok := toks[0].(type) {
	case charToken:
		m.descend(n, byte(tok), toks, acc)

	case wildcardToken:
		for b, child := range &n.children {
			if child != nil {
				m.match(child, toks[1:], append(acc, byte(b)))
			}
		}

	case classToken:
		for b, child := range &n.children {
			if child == nil || tok.set.has(byte(b)) == tok.negate {
				continue
			}
			m.match(child, toks[1:], append(acc, byte(b)))
		}

	case captureToken:
		if b, ok := m.env.lookup(tok.name); ok {
			m.descend(n, b, toks, acc)
			return
		}
		for b, child := range &n.children {
			if child == nil {
				continue
			}
			m.env.bind(tok.name, byte(b))
			m.match(child, toks[1:], append(acc, byte(b)))
			m.env.release(tok.name)
		}

	case captureClassToken:
		// Once bound, only the captured byte decides; the class constrains
		// the first occurrence alone.
		if b, ok := m.env.lookup(tok.name); ok {
			m.descend(n, b, toks, acc)
			return
		}
		for b, child := range &n.children {
			if child == nil || tok.set.has(byte(b)) == tok.negate {
				continue
			}
			m.env.bind(tok.name, byte(b))
			m.match(child, toks[1:], append(acc, byte(b)))
			m.env.release(tok.name)
		}
	}
}

// descend follows the single edge labeled b, if present.
func (m *matcher) descend(n *node, b byte, toks []token, acc []byte) {
	if child := n.children[b]; child != nil {
		m.match(child, toks[1:], append(acc, b))
	}
}
