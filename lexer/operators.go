package lexer

import "github.com/cowwoc/styler-sub000/token"

// scanOperator scans punctuation and operators.
//
// Per spec.md §4.2, `>` is deliberately NEVER glued into `>>`/`>>>` here --
// that would break closing nested generics like List<Map<K,V>>. The parser
// glues adjacent GT tokens back into shift operators once it knows it is in
// an expression, not a type-argument list. `<<` has no such ambiguity (it
// never closes anything) and is therefore glued directly, the same way the
// teacher's Tokenizer glues SHIFT_LEFT for `<<` in parser/token.go.
func (l *Lexer) scanOperator(start int) token.Token {
	ch := l.ch
	l.advance()

	one := func(k token.Kind) token.Token { return l.finish(k, start, l.mark()) }
	twoIf := func(next rune, yes, no token.Kind) token.Token {
		if l.ch == next {
			l.advance()
			return l.finish(yes, start, l.mark())
		}
		return l.finish(no, start, l.mark())
	}

	switch ch {
	case '(':
		return one(token.LPAREN)
	case ')':
		return one(token.RPAREN)
	case '{':
		return one(token.LBRACE)
	case '}':
		return one(token.RBRACE)
	case '[':
		return one(token.LBRACKET)
	case ']':
		return one(token.RBRACKET)
	case ';':
		return one(token.SEMICOLON)
	case ',':
		return one(token.COMMA)
	case '@':
		return one(token.AT)
	case '~':
		return one(token.TILDE)
	case '?':
		return one(token.QUESTION)

	case '.':
		if l.ch == '.' && l.peek() == '.' {
			l.advance()
			l.advance()
			return l.finish(token.ELLIPSIS, start, l.mark())
		}
		return one(token.DOT)

	case ':':
		return twoIf(':', token.DOUBLE_COLON, token.COLON)

	case '=':
		return twoIf('=', token.EQ, token.ASSIGN)
	case '!':
		return twoIf('=', token.NE, token.BANG)
	case '*':
		return twoIf('=', token.STAR_ASSIGN, token.STAR)
	case '/':
		switch l.ch {
		case '/':
			l.advance()
			return l.scanLineComment(start)
		case '*':
			l.advance()
			return l.scanBlockComment(start)
		case '=':
			l.advance()
			return l.finish(token.SLASH_ASSIGN, start, l.mark())
		default:
			return one(token.SLASH)
		}
	case '%':
		return twoIf('=', token.PERCENT_ASSIGN, token.PERCENT)
	case '^':
		return twoIf('=', token.CARET_ASSIGN, token.CARET)

	case '+':
		if l.ch == '+' {
			l.advance()
			return l.finish(token.INC, start, l.mark())
		}
		return twoIf('=', token.PLUS_ASSIGN, token.PLUS)
	case '-':
		switch l.ch {
		case '-':
			l.advance()
			return l.finish(token.DEC, start, l.mark())
		case '>':
			l.advance()
			return l.finish(token.ARROW, start, l.mark())
		case '=':
			l.advance()
			return l.finish(token.MINUS_ASSIGN, start, l.mark())
		default:
			return one(token.MINUS)
		}

	case '&':
		switch l.ch {
		case '&':
			l.advance()
			return l.finish(token.AND_AND, start, l.mark())
		case '=':
			l.advance()
			return l.finish(token.AMP_ASSIGN, start, l.mark())
		default:
			return one(token.AMP)
		}
	case '|':
		switch l.ch {
		case '|':
			l.advance()
			return l.finish(token.OR_OR, start, l.mark())
		case '=':
			l.advance()
			return l.finish(token.PIPE_ASSIGN, start, l.mark())
		default:
			return one(token.PIPE)
		}

	case '<':
		switch l.ch {
		case '=':
			l.advance()
			return l.finish(token.LE, start, l.mark())
		case '<':
			l.advance()
			if l.ch == '=' {
				l.advance()
				return l.finish(token.SHIFT_LEFT_ASSIGN, start, l.mark())
			}
			return l.finish(token.SHIFT_LEFT, start, l.mark())
		default:
			return one(token.LT)
		}
	case '>':
		// Never glued: see doc comment above.
		return twoIf('=', token.GE, token.GT)

	default:
		return one(token.ERROR)
	}
}
