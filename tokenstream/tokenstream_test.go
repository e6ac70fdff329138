package tokenstream

import (
	"testing"

	"github.com/cowwoc/styler-sub000/token"
)

// fakeSource replays a fixed token slice, then END_OF_FILE forever.
type fakeSource struct {
	toks []token.Token
	pos  int
}

func (f *fakeSource) Next() token.Token {
	if f.pos >= len(f.toks) {
		return token.Token{Kind: token.END_OF_FILE}
	}
	tok := f.toks[f.pos]
	f.pos++
	return tok
}

func newTestStream(kinds ...token.Kind) *Stream {
	toks := make([]token.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = token.Token{Kind: k}
	}
	return New(&fakeSource{toks: toks})
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := newTestStream(token.IDENTIFIER, token.SEMICOLON)
	if s.Peek(0).Kind != token.IDENTIFIER {
		t.Fatalf("Peek(0) = %v, want IDENTIFIER", s.Peek(0).Kind)
	}
	if s.Peek(0).Kind != token.IDENTIFIER {
		t.Fatalf("second Peek(0) = %v, want IDENTIFIER (no consumption)", s.Peek(0).Kind)
	}
}

func TestPeekAheadAndAdvance(t *testing.T) {
	s := newTestStream(token.IDENTIFIER, token.SEMICOLON, token.END_OF_FILE)
	if s.Peek(1).Kind != token.SEMICOLON {
		t.Fatalf("Peek(1) = %v, want SEMICOLON", s.Peek(1).Kind)
	}
	if got := s.Advance().Kind; got != token.IDENTIFIER {
		t.Fatalf("Advance() = %v, want IDENTIFIER", got)
	}
	if got := s.Current().Kind; got != token.SEMICOLON {
		t.Fatalf("Current() = %v, want SEMICOLON", got)
	}
}

func TestMarkAndReset(t *testing.T) {
	s := newTestStream(token.IDENTIFIER, token.DOT, token.IDENTIFIER)
	m := s.Mark()
	s.Advance()
	s.Advance()
	if s.Current().Kind != token.IDENTIFIER {
		t.Fatalf("after two advances, Current() = %v", s.Current().Kind)
	}
	s.Reset(m)
	if s.Current().Kind != token.IDENTIFIER {
		t.Fatalf("after Reset, Current() = %v, want first IDENTIFIER", s.Current().Kind)
	}
	if got := s.Advance().Kind; got != token.IDENTIFIER {
		t.Fatalf("Advance() after Reset = %v, want IDENTIFIER", got)
	}
	if got := s.Advance().Kind; got != token.DOT {
		t.Fatalf("second Advance() after Reset = %v, want DOT", got)
	}
}

func TestAdvancePastEndOfFileStaysAtEndOfFile(t *testing.T) {
	s := newTestStream(token.IDENTIFIER)
	s.Advance() // consumes IDENTIFIER
	if s.Current().Kind != token.END_OF_FILE {
		t.Fatalf("Current() = %v, want END_OF_FILE", s.Current().Kind)
	}
	s.Advance()
	s.Advance()
	if s.Current().Kind != token.END_OF_FILE {
		t.Fatalf("Current() after repeated Advance = %v, want END_OF_FILE", s.Current().Kind)
	}
}
