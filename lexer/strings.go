package lexer

import "github.com/cowwoc/styler-sub000/token"

// scanString scans a string literal, including the text-block form.
//
// Escape content (standard Java escapes and octal escapes) is recognized
// only to the extent needed to find the literal's boundary correctly --
// spec.md §4.1 makes literal content the formatter's to reproduce
// byte-for-byte, so DecodedText is never unescaped here, only OriginalText
// sliced verbatim (finish sets both to the same text).
func (l *Lexer) scanString(start int) token.Token {
	if l.ch == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
		return l.scanTextBlock(start)
	}

	l.advance() // opening quote
	for {
		if l.pendingEscapeErr {
			return l.emitEscapeError()
		}
		switch l.ch {
		case eof, '\n':
			return l.finish(token.ERROR, start, l.mark())
		case '\\':
			l.consumeEscape()
		case '"':
			l.advance()
			return l.finish(token.STRING_LITERAL, start, l.mark())
		default:
			l.advance()
		}
	}
}

// scanTextBlock scans a `"""`-delimited text block as a single
// STRING_LITERAL token spanning all intermediate content, including the
// required line terminator after the opening delimiter.
func (l *Lexer) scanTextBlock(start int) token.Token {
	l.advance()
	l.advance()
	l.advance() // the three opening quotes
	for {
		if l.pendingEscapeErr {
			return l.emitEscapeError()
		}
		switch l.ch {
		case eof:
			return l.finish(token.ERROR, start, l.mark())
		case '\\':
			l.consumeEscape()
		case '"':
			if l.peekAt(1) == '"' && l.peekAt(2) == '"' {
				l.advance()
				l.advance()
				l.advance()
				return l.finish(token.STRING_LITERAL, start, l.mark())
			}
			l.advance()
		default:
			l.advance()
		}
	}
}

// scanChar scans a character literal.
func (l *Lexer) scanChar(start int) token.Token {
	l.advance() // opening quote
	if l.pendingEscapeErr {
		return l.emitEscapeError()
	}
	switch l.ch {
	case '\\':
		l.consumeEscape()
	case eof, '\n', '\'':
		// empty or bare-newline char literal: fall through to the
		// unterminated/malformed check below without consuming anything else.
	default:
		l.advance()
	}
	if l.pendingEscapeErr {
		return l.emitEscapeError()
	}
	if l.ch == '\'' {
		l.advance()
		return l.finish(token.CHAR_LITERAL, start, l.mark())
	}
	return l.finish(token.ERROR, start, l.mark())
}

// consumeEscape consumes a backslash and the escape content following it:
// either a single character, or -- for an octal escape -- up to the digit
// count the first octal digit permits (spec.md §4.2: "up to three digits,
// with the first digit restricting the max: \0-\377").
func (l *Lexer) consumeEscape() {
	l.advance() // the backslash
	if l.pendingEscapeErr || l.ch == eof {
		return
	}
	if l.ch >= '0' && l.ch <= '7' {
		first := l.ch
		l.advance()
		maxExtra := 1
		if first <= '3' {
			maxExtra = 2
		}
		for i := 0; i < maxExtra && l.ch >= '0' && l.ch <= '7'; i++ {
			l.advance()
		}
		return
	}
	l.advance()
}
