package parser

import (
	"fmt"
	"strings"
)

// Diagnostic is one parse error, carrying enough to format a
// teacher-style "line L, column C" message with a source excerpt and a
// caret, the same presentation as the teacher's Tokenizer.Error /
// parser_test.go's expectedErr fixtures.
type Diagnostic struct {
	Message string
	Offset  int // UTF-16 code-unit offset into the Source
}

// Format renders d against the original source text. For the diagnostic at
// offset 24 (the `;`) of "class Foo {\n    int x = ;\n}\n" it produces:
//
//	syntax error: unexpected ";" in expression at line 2, column 13
//	      int x = ;
//	              ^
func (d Diagnostic) Format(text string) string {
	line, col, lineText := locate(text, d.Offset)
	var b strings.Builder
	fmt.Fprintf(&b, "%s at line %d, column %d\n", d.Message, line, col)
	fmt.Fprintf(&b, "  %s\n", lineText)
	fmt.Fprintf(&b, "  %s^", strings.Repeat(" ", col-1))
	return b.String()
}

// locate returns the 1-based line and column of a UTF-16 code-unit offset
// within text, plus the text of that line.
func locate(text string, offset int) (line, col int, lineText string) {
	units := []rune(text) // approximation: callers pass ASCII-heavy Java source for diagnostics
	if offset > len(units) {
		offset = len(units)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if units[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1
	lineEnd := lineStart
	for lineEnd < len(units) && units[lineEnd] != '\n' {
		lineEnd++
	}
	return line, col, string(units[lineStart:lineEnd])
}
