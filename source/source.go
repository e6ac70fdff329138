// Package source holds the immutable character buffer a parse runs over.
//
// A Source is the leaf dependency of the pipeline described in the top-level
// design: escape preprocessing, lexing, and parsing all read through it but
// never mutate it. Offsets handed out by every downstream component (tokens,
// AST nodes, diagnostics) are indices into this buffer.
package source

import (
	"fmt"
	"unicode/utf16"
)

// MaxChars is the largest character count accepted at construction time.
const MaxChars = 10 * 1024 * 1024

// MaxBytes is the largest byte count accepted, assuming up to 3 bytes per
// UTF-8 encoded character (the worst case for the BMP).
const MaxBytes = 50 * 1024 * 1024

// Source is an immutable, UTF-16-indexable view over Java source text.
//
// Internally the text is kept as a []uint16 so that offsets match the JLS's
// notion of a "character" (a UTF-16 code unit), which is what surrogate pairs
// and Unicode escapes both operate on.
type Source struct {
	text []uint16
}

// New validates and wraps src. It fails fast on a nil-equivalent (empty)
// argument-validation error is not raised for empty text itself -- an empty
// compilation unit is syntactically valid, just unusual -- but is raised for
// oversized input.
func New(text string) (*Source, error) {
	if len(text) > MaxBytes {
		return nil, fmt.Errorf("source exceeds maximum byte size %d (got %d)", MaxBytes, len(text))
	}
	units := utf16.Encode([]rune(text))
	if len(units) > MaxChars {
		return nil, fmt.Errorf("source exceeds maximum character count %d (got %d)", MaxChars, len(units))
	}
	return &Source{text: units}, nil
}

// Len returns the number of UTF-16 code units in the source.
func (s *Source) Len() int {
	return len(s.text)
}

// At returns the code unit at offset i. It panics on an out-of-range offset;
// callers (the lexer) only ever probe offsets they derived from Len.
func (s *Source) At(i int) uint16 {
	return s.text[i]
}

// Slice returns the decoded text of the half-open range [start, end) as a
// Go string. start and end are character offsets, not byte offsets.
func (s *Source) Slice(start, end int) string {
	return string(utf16.Decode(s.text[start:end]))
}
