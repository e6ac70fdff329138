package lexer

import "github.com/cowwoc/styler-sub000/token"

// scanLineComment scans a `//` comment through end of line or EOF, modeled
// on the teacher's scanCommentType1.
func (l *Lexer) scanLineComment(start int) token.Token {
	for l.ch != eof && l.ch != '\n' {
		if l.pendingEscapeErr {
			return l.emitEscapeError()
		}
		l.advance()
	}
	return l.finish(token.LINE_COMMENT, start, l.mark())
}

// scanBlockComment scans a `/*...*/` or `/**...*/` comment, modeled on the
// teacher's scanCommentType2. An unterminated block comment yields an ERROR
// token covering the whole remaining input, per spec.md §4.2.
func (l *Lexer) scanBlockComment(start int) token.Token {
	isJavadoc := l.ch == '*' && l.peek() != '/'
	for {
		if l.pendingEscapeErr {
			return l.emitEscapeError()
		}
		switch l.ch {
		case eof:
			return l.finish(token.ERROR, start, l.mark())
		case '*':
			l.advance()
			if l.ch == '/' {
				l.advance()
				kind := token.BLOCK_COMMENT
				if isJavadoc {
					kind = token.JAVADOC_COMMENT
				}
				return l.finish(kind, start, l.mark())
			}
		default:
			l.advance()
		}
	}
}
