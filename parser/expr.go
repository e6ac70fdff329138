package parser

import (
	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/token"
)

// assignmentOps are the kinds that start an assignment expression's operator
// at the lowest precedence level.
var assignmentOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AMP_ASSIGN: true, token.PIPE_ASSIGN: true, token.CARET_ASSIGN: true,
	token.SHIFT_LEFT_ASSIGN: true, token.SHIFT_RIGHT_ASSIGN: true,
	token.UNSIGNED_SHIFT_RIGHT_ASSIGN: true,
}

// binaryPrecedence ranks left-associative binary operators; higher binds
// tighter. instanceof and glued shift operators are handled alongside this
// table in parseBinaryExpression/peekBinaryOperator.
var binaryPrecedence = map[token.Kind]int{
	token.OR_OR:  1,
	token.AND_AND: 2,
	token.PIPE:   3,
	token.CARET:  4,
	token.AMP:    5,
	token.EQ: 6, token.NE: 6,
	token.LT: 7, token.GT: 7, token.LE: 7, token.GE: 7,
	token.SHIFT_LEFT: 8, token.SHIFT_RIGHT: 8, token.UNSIGNED_SHIFT_RIGHT: 8,
	token.PLUS: 9, token.MINUS: 9,
	token.STAR: 10, token.SLASH: 10, token.PERCENT: 10,
}

// parseExpression parses a full expression, starting at assignment
// precedence (the lowest level spec.md's grammar names).
func (p *Parser) parseExpression() ast.NodeID {
	if !p.enter() {
		return p.arena.Allocate(ast.LITERAL, p.cur().Start, p.cur().Start)
	}
	defer p.leave()
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.NodeID {
	start := p.cur().Start
	lhs := p.parseConditional()
	if assignmentOps[p.cur().Kind] {
		op := p.advance()
		p.parseAssignment() // right-associative
		return p.arena.AllocateWithAttribute(ast.ASSIGNMENT_EXPRESSION, start, p.endOfPrevious(), int(op.Kind))
	}
	return lhs
}

// parseConditional parses the ternary `cond ? then : else`, right-associative
// in its else-branch. A lambda is a valid branch on either side (spec.md
// §8's "ternary-with-lambda-alternative" scenario: `cond ? x : () -> y`),
// which falls out naturally here since both branches (parseExpression and
// parseConditional) reach parsePrimaryOrLambda, where lambdas are recognized.
func (p *Parser) parseConditional() ast.NodeID {
	start := p.cur().Start
	cond := p.parseBinaryExpression(1)
	if _, ok := p.accept(token.QUESTION); ok {
		p.parseExpression()
		p.expect(token.COLON)
		p.parseConditional()
		return p.arena.Allocate(ast.CONDITIONAL_EXPRESSION, start, p.endOfPrevious())
	}
	return cond
}

// parseBinaryExpression implements precedence climbing starting at minPrec,
// folding in instanceof (relational precedence) and shift-operator gluing.
func (p *Parser) parseBinaryExpression(minPrec int) ast.NodeID {
	start := p.cur().Start
	lhs := p.parseUnary()
	for {
		if p.at(token.INSTANCEOF) {
			lhs = p.parseInstanceOf(start)
			continue
		}
		opKind, width, ok := p.peekBinaryOperator()
		if !ok {
			return lhs
		}
		prec := binaryPrecedence[opKind]
		if prec < minPrec {
			return lhs
		}
		p.consumeGluedOperator(width)
		p.parseBinaryExpression(prec + 1)
		lhs = p.arena.AllocateWithAttribute(ast.BINARY_EXPRESSION, start, p.endOfPrevious(), int(opKind))
	}
}

// peekBinaryOperator looks at the current token(s) and reports the
// effective binary operator kind and how many raw tokens it spans: ordinary
// operators span 1 token, but SHIFT_RIGHT/UNSIGNED_SHIFT_RIGHT are glued
// from 2/3 byte-adjacent GT tokens the lexer deliberately left unmerged
// (spec.md §4.2), so the parser -- not the lexer -- decides here whether a
// `>` run means "close a generic" or "shift".
func (p *Parser) peekBinaryOperator() (token.Kind, int, bool) {
	t := p.cur()
	if t.Kind == token.GT {
		second := p.peek(0)
		if second.Kind == token.GT && second.Start == t.End {
			third := p.peek(1)
			if third.Kind == token.GT && third.Start == second.End {
				return token.UNSIGNED_SHIFT_RIGHT, 3, true
			}
			return token.SHIFT_RIGHT, 2, true
		}
		return token.GT, 1, true
	}
	if _, ok := binaryPrecedence[t.Kind]; ok {
		return t.Kind, 1, true
	}
	return token.ILLEGAL, 0, false
}

func (p *Parser) consumeGluedOperator(width int) {
	for i := 0; i < width; i++ {
		p.advance()
	}
}

func (p *Parser) parseInstanceOf(start int) ast.NodeID {
	p.advance() // 'instanceof'
	p.parsePatternOrType()
	return p.arena.Allocate(ast.INSTANCEOF_EXPRESSION, start, p.endOfPrevious())
}

var unaryPrefixOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.BANG: true, token.TILDE: true,
	token.INC: true, token.DEC: true,
}

// parseUnary parses prefix operators, a parenthesized-cast-or-expression,
// and postfix ++/--, bottoming out at parsePostfix/parsePrimary.
func (p *Parser) parseUnary() ast.NodeID {
	start := p.cur().Start
	if unaryPrefixOps[p.cur().Kind] {
		op := p.advance()
		p.parseUnary()
		return p.arena.AllocateWithAttribute(ast.UNARY_EXPRESSION, start, p.endOfPrevious(), int(op.Kind))
	}
	if p.at(token.LPAREN) {
		if id, ok := p.tryParseCast(start); ok {
			return id
		}
	}
	return p.parsePostfix()
}

// tryParseCast speculatively parses `( Type ) UnaryExpression`. JLS 15.16
// permits this form for a primitive type unconditionally, and for a
// reference type only when the parenthesized type cannot also be read as a
// parenthesized expression's start -- rather than hand-encode that lookahead
// table, this speculates the whole production and rolls back if it doesn't
// fit (mirroring how the teacher's yacc grammar would instead need two
// explicit conflicting productions resolved by precedence declarations).
func (p *Parser) tryParseCast(start int) (ast.NodeID, bool) {
	return speculate(p, func() (ast.NodeID, bool) {
		p.advance() // '('
		isPrimitive := primitiveKinds[p.cur().Kind]
		p.parseType()
		for p.at(token.AMP) { // intersection cast: (Foo & Bar) expr
			p.advance()
			p.parseType()
		}
		if _, ok := p.accept(token.RPAREN); !ok {
			return 0, false
		}
		if !isPrimitive && !castCanFollow(p.cur().Kind) {
			return 0, false
		}
		p.parseUnary()
		return p.arena.Allocate(ast.CAST_EXPRESSION, start, p.endOfPrevious()), true
	})
}

// castCanFollow reports whether kind can plausibly open the operand of a
// reference-type cast. A `(` is accepted (`(Foo) (Bar) x` is a cast of a
// cast), but `+` and `-` are not: `(Foo)` followed by `+` is ambiguous with
// addition and JLS resolves it as NOT a cast. This conservative set matches
// the common, unambiguous continuations.
func castCanFollow(kind token.Kind) bool {
	switch kind {
	case token.IDENTIFIER, token.LPAREN, token.THIS, token.SUPER, token.NEW,
		token.INTEGER_LITERAL, token.LONG_LITERAL, token.FLOAT_LITERAL, token.DOUBLE_LITERAL,
		token.CHAR_LITERAL, token.STRING_LITERAL, token.BOOLEAN_LITERAL, token.NULL_LITERAL,
		token.BANG, token.TILDE:
		return true
	}
	return false
}

// parsePostfix parses a primary expression followed by any chain of
// `.name`, `.method(...)`, `[index]`, `++`/`--`. A bare name, `this` or
// `super` directly followed by `(` is an unqualified call, `method(...)`.
func (p *Parser) parsePostfix() ast.NodeID {
	start := p.cur().Start
	id := p.parsePrimaryOrLambda(start)
	for {
		switch {
		case p.at(token.DOT):
			p.advance()
			if p.at(token.LT) {
				p.parseTypeArgumentList() // explicit type witness, e.g. x.<T>method()
			}
			p.expect(token.IDENTIFIER)
			if p.at(token.LPAREN) {
				p.parseArgumentList()
				id = p.arena.Allocate(ast.METHOD_INVOCATION, start, p.endOfPrevious())
			} else {
				id = p.arena.Allocate(ast.FIELD_ACCESS, start, p.endOfPrevious())
			}
		case p.at(token.DOUBLE_COLON):
			p.advance()
			if p.at(token.NEW) {
				p.advance()
			} else {
				p.expect(token.IDENTIFIER)
			}
			id = p.arena.Allocate(ast.METHOD_REFERENCE, start, p.endOfPrevious())
		case p.at(token.LBRACKET) && p.peek(0).Kind != token.RBRACKET:
			p.advance()
			p.parseExpression()
			p.expect(token.RBRACKET)
			id = p.arena.Allocate(ast.ARRAY_ACCESS, start, p.endOfPrevious())
		case p.at(token.LPAREN) && (p.arena.Get(id).Kind == ast.NAME ||
			p.arena.Get(id).Kind == ast.THIS_EXPRESSION || p.arena.Get(id).Kind == ast.SUPER_EXPRESSION):
			p.parseArgumentList()
			id = p.arena.Allocate(ast.METHOD_INVOCATION, start, p.endOfPrevious())
		case p.at(token.INC) || p.at(token.DEC):
			op := p.advance()
			id = p.arena.AllocateWithAttribute(ast.UNARY_EXPRESSION, start, p.endOfPrevious(), int(op.Kind))
		default:
			return id
		}
	}
}

func (p *Parser) parseArgumentList() ast.NodeID {
	start := p.cur().Start
	p.advance() // '('
	if _, ok := p.accept(token.RPAREN); ok {
		return p.arena.Allocate(ast.ARGUMENT_LIST, start, p.endOfPrevious())
	}
	for {
		p.parseExpression()
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.RPAREN)
	return p.arena.Allocate(ast.ARGUMENT_LIST, start, p.endOfPrevious())
}

// parsePrimaryOrLambda resolves the lambda-vs-parenthesized-expression
// ambiguity at a `(` primary: `() -> ...`, `(x) -> ...`, `(x, y) -> ...`,
// `(Type x, Type y) -> ...` are all lambdas; anything else starting with `(`
// that isn't consumed by tryParseCast above is a parenthesized expression.
// A bare identifier immediately followed by `->` is also a lambda (implicit
// single untyped parameter, no parens).
func (p *Parser) parsePrimaryOrLambda(start int) ast.NodeID {
	if p.at(token.IDENTIFIER) && p.peek(0).Kind == token.ARROW {
		p.parseLambdaImplicitParam()
		return p.parseLambdaBody(start)
	}
	if p.at(token.LPAREN) {
		if id, ok := p.tryParseLambda(start); ok {
			return id
		}
	}
	return p.parsePrimary()
}

func (p *Parser) parseLambdaImplicitParam() ast.NodeID {
	start := p.cur().Start
	p.expect(token.IDENTIFIER)
	return p.arena.Allocate(ast.PARAMETER, start, p.endOfPrevious())
}

// tryParseLambda speculatively parses a parenthesized lambda parameter list.
func (p *Parser) tryParseLambda(start int) (ast.NodeID, bool) {
	return speculate(p, func() (ast.NodeID, bool) {
		p.advance() // '('
		if _, ok := p.accept(token.RPAREN); ok {
			if !p.at(token.ARROW) {
				return 0, false
			}
			return p.parseLambdaBody(start), true
		}
		for {
			p.parseLambdaParameter()
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
		if _, ok := p.accept(token.RPAREN); !ok {
			return 0, false
		}
		if !p.at(token.ARROW) {
			return 0, false
		}
		return p.parseLambdaBody(start), true
	})
}

func (p *Parser) parseLambdaParameter() ast.NodeID {
	start := p.cur().Start
	if p.atContextual("var") {
		p.advance()
	} else if p.peek(0).Kind == token.IDENTIFIER || p.peek(0).Kind == token.LBRACKET {
		p.parseType()
	}
	p.expect(token.IDENTIFIER)
	return p.arena.Allocate(ast.PARAMETER, start, p.endOfPrevious())
}

func (p *Parser) parseLambdaBody(start int) ast.NodeID {
	p.expect(token.ARROW)
	if p.at(token.LBRACE) {
		p.parseBlock()
	} else {
		p.parseExpression()
	}
	return p.arena.Allocate(ast.LAMBDA_EXPRESSION, start, p.endOfPrevious())
}

// parsePrimary parses the primary-expression forms that aren't lambdas and
// aren't resolved as a cast: literals, names, this/super, `new`,
// parenthesized expressions, and switch expressions (recorded with the same
// SWITCH_STATEMENT node kind as a switch statement).
func (p *Parser) parsePrimary() ast.NodeID {
	start := p.cur().Start
	t := p.cur()
	switch t.Kind {
	case token.INTEGER_LITERAL, token.LONG_LITERAL, token.FLOAT_LITERAL, token.DOUBLE_LITERAL,
		token.CHAR_LITERAL, token.STRING_LITERAL, token.BOOLEAN_LITERAL, token.NULL_LITERAL:
		p.advance()
		return p.arena.AllocateWithAttribute(ast.LITERAL, start, p.endOfPrevious(), int(t.Kind))
	case token.THIS:
		p.advance()
		return p.arena.Allocate(ast.THIS_EXPRESSION, start, p.endOfPrevious())
	case token.SUPER:
		p.advance()
		return p.arena.Allocate(ast.SUPER_EXPRESSION, start, p.endOfPrevious())
	case token.NEW:
		return p.parseClassInstanceCreation(start)
	case token.SWITCH:
		return p.parseSwitchStatement(start)
	case token.LPAREN:
		p.advance()
		p.parseExpression()
		p.expect(token.RPAREN)
		return p.arena.Allocate(ast.PARENTHESIZED_EXPRESSION, start, p.endOfPrevious())
	case token.IDENTIFIER:
		p.advance()
		return p.arena.Allocate(ast.NAME, start, p.endOfPrevious())
	default:
		p.errorf(t.Start, "syntax error: unexpected %q in expression", displayText(t))
		p.advance()
		return p.arena.Allocate(ast.LITERAL, start, p.endOfPrevious())
	}
}

func (p *Parser) parseClassInstanceCreation(start int) ast.NodeID {
	p.advance() // 'new'
	if p.at(token.LT) {
		p.parseTypeArgumentList()
	}
	p.parseType()
	if p.at(token.LBRACKET) {
		for p.at(token.LBRACKET) {
			p.advance()
			if !p.at(token.RBRACKET) {
				p.parseExpression()
			}
			p.expect(token.RBRACKET)
		}
		return p.arena.Allocate(ast.ARRAY_CREATION, start, p.endOfPrevious())
	}
	p.parseArgumentList()
	if p.at(token.LBRACE) {
		p.parseClassBody()
	}
	return p.arena.Allocate(ast.CLASS_INSTANCE_CREATION, start, p.endOfPrevious())
}
