package trie

import (
	"reflect"
	"testing"
)

func set(bytes ...byte) byteSet {
	var s byteSet
	for _, b := range bytes {
		s.add(b)
	}
	return s
}

func TestParseLiterals(t *testing.T) {
	toks, err := parsePattern("cat")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []token{charToken('c'), charToken('a'), charToken('t')}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("tokens = %v, want %v", toks, want)
	}
}

func TestParseTokens(t *testing.T) {
	tests := []struct {
		pattern string
		want    []token
	}{
		{"*", []token{wildcardToken{}}},
		{"[abc]", []token{classToken{set: set('a', 'b', 'c')}}},
		{"[^abc]", []token{classToken{set: set('a', 'b', 'c'), negate: true}}},
		{"{x}", []token{captureToken{name: "x"}}},
		{"{key}", []token{captureToken{name: "key"}}},
		{"{x[ab]}", []token{captureClassToken{name: "x", set: set('a', 'b')}}},
		{"{x[^ab]}", []token{captureClassToken{name: "x", set: set('a', 'b'), negate: true}}},
		{`\*`, []token{charToken('*')}},
		{`\{\}`, []token{charToken('{'), charToken('}')}},
		{`[\]]`, []token{classToken{set: set(']')}}},
		{`{\{}`, []token{captureToken{name: "{"}}},
		{"a*{1}", []token{charToken('a'), wildcardToken{}, captureToken{name: "1"}}},
		{"", nil},
	}
	for _, tt := range tests {
		toks, err := parsePattern(tt.pattern)
		if err != nil {
			t.Errorf("parse %q: %v", tt.pattern, err)
			continue
		}
		if !reflect.DeepEqual(toks, tt.want) {
			t.Errorf("parse %q = %v, want %v", tt.pattern, toks, tt.want)
		}
	}
}

func TestParseStrayBackslash(t *testing.T) {
	// A backslash not followed by a metacharacter is a literal backslash.
	toks, err := parsePattern(`a\b`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []token{charToken('a'), charToken('\\'), charToken('b')}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("tokens = %v, want %v", toks, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"ab*[^zsd", "Dangling group (exclusion) starting at column 5, expecting ]"},
		{"ab*[^zsd]{}", "Unnamed capture starting at column 10, capture cannot be empty"},
		{"ab*[^zsd]{1[^abc]a}", "Group (exclusion) must in the tail position of capture starting at column 10"},
		{"[zsd", "Dangling group (inclusion) starting at column 1, expecting ]"},
		{"a{1[bc]x}", "Group (inclusion) must in the tail position of capture starting at column 2"},
		{"{name", "Dangling group (capture) starting at column 1, expecting }"},
		{"ab{1[xy]", "Dangling group (capture) starting at column 3, expecting }"},
		{"ab{[x]}", "Unnamed capture starting at column 3, capture must be named before group"},
		{"{[^x]}", "Unnamed capture starting at column 1, capture must be named before group"},
		{"a{1[^x", "Dangling group (exclusion) starting at column 5, expecting ]"},
		{"a{1[x", "Dangling group (inclusion) starting at column 4, expecting ]"},
		{"a]b", "Unescaped symbol ] at column 2"},
		{"ab}", "Unescaped symbol } at column 3"},
		{"a^b", "Unescaped symbol ^ at column 2"},
		{"[a*b]", "Unescaped symbol * at column 3"},
		{"[a{]", "Unescaped symbol { at column 3"},
		{"[ab^c]", "Unescaped symbol ^ at column 4"},
		{"{a*}", "Unescaped symbol * at column 3"},
		{"{a]b}", "Unescaped symbol ] at column 3"},
		{"{na{me}", "Unescaped symbol { at column 4"},
		{"{1[a}b]}", "Unescaped symbol } at column 5"},
	}
	for _, tt := range tests {
		_, err := parsePattern(tt.pattern)
		if err == nil {
			t.Errorf("parse %q succeeded, want %q", tt.pattern, tt.want)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("parse %q: error %q, want %q", tt.pattern, err.Error(), tt.want)
		}
	}
}

func TestParseErrorColumnsWithEscapes(t *testing.T) {
	// Escapes advance the column by two, one per source byte.
	tests := []struct {
		pattern string
		want    string
	}{
		{`\*[x`, "Dangling group (inclusion) starting at column 3, expecting ]"},
		{`\[\]{`, "Dangling group (capture) starting at column 5, expecting }"},
		{`[\^^]`, "Unescaped symbol ^ at column 4"},
	}
	for _, tt := range tests {
		_, err := parsePattern(tt.pattern)
		if err == nil {
			t.Errorf("parse %q succeeded, want %q", tt.pattern, tt.want)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("parse %q: error %q, want %q", tt.pattern, err.Error(), tt.want)
		}
	}
}

func TestParseErrorType(t *testing.T) {
	_, err := parsePattern("[oops")
	serr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("error is %T, want *SyntaxError", err)
	}
	if serr.Column != 1 {
		t.Errorf("column = %d, want 1", serr.Column)
	}
}

func TestParseEmptyClassBodies(t *testing.T) {
	// The error table reserves no message for empty bodies: they parse into
	// empty sets.
	toks, err := parsePattern("[][^]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []token{classToken{}, classToken{negate: true}}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("tokens = %v, want %v", toks, want)
	}
}

func TestByteSet(t *testing.T) {
	var s byteSet
	for _, b := range []byte{0, 'a', 127, 128, 255} {
		s.add(b)
	}
	for _, b := range []byte{0, 'a', 127, 128, 255} {
		if !s.has(b) {
			t.Errorf("set misses %d", b)
		}
	}
	for _, b := range []byte{1, 'b', 126, 129, 254} {
		if s.has(b) {
			t.Errorf("set wrongly has %d", b)
		}
	}
}
