package parser

import (
	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/token"
)

// parsePatternOrType parses either a plain type (instanceof's original
// form, `x instanceof String`) or a pattern (`x instanceof String s`,
// `x instanceof Point(var x, var y)`). The two share a type prefix, so this
// always parses the type first and only decides afterward, based on what
// follows, whether a pattern was actually present -- never via backtracking,
// since nothing here needs it: a type can be followed by an identifier
// (binding name) or `(` (record pattern) in a pattern, and by neither in a
// plain type use, so one token of lookahead after the type settles it.
func (p *Parser) parsePatternOrType() ast.NodeID {
	start := p.cur().Start
	typ := p.parseType()
	if p.at(token.LPAREN) {
		return p.parseRecordPatternTail(start)
	}
	if p.at(token.IDENTIFIER) {
		nameTok := p.advance()
		p.checkUnnamedVariable(nameTok.Start, nameTok.DecodedText)
		return p.arena.Allocate(ast.TYPE_PATTERN, start, p.endOfPrevious())
	}
	return typ
}

// parseRecordPatternTail parses the `( Pattern, ... )` component list of a
// record pattern whose deconstructed type was already consumed by the
// caller, plus an optional trailing binding name (`Point(var x, var y) p`).
func (p *Parser) parseRecordPatternTail(start int) ast.NodeID {
	p.advance() // '('
	if _, ok := p.accept(token.RPAREN); !ok {
		for {
			p.parseNestedPattern()
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	if p.at(token.IDENTIFIER) {
		p.advance()
	}
	return p.arena.Allocate(ast.RECORD_PATTERN, start, p.endOfPrevious())
}

// parseNestedPattern parses one record-pattern component: a var pattern, a
// type pattern, or a nested record pattern.
func (p *Parser) parseNestedPattern() ast.NodeID {
	start := p.cur().Start
	if p.atContextual("var") {
		p.advance()
		nameTok := p.expect(token.IDENTIFIER)
		p.checkUnnamedVariable(nameTok.Start, nameTok.DecodedText)
		return p.arena.Allocate(ast.TYPE_PATTERN, start, p.endOfPrevious())
	}
	return p.parsePatternOrType()
}

// caseConstantStartKinds are the token kinds that can only begin a case
// label's constant-expression form (spec.md §4.4 item 5), never a type or
// record pattern: `null`, the other literal forms, and a leading unary minus
// for a negative numeric constant (`case -1:`). Anything else -- an
// identifier or a primitive-type keyword -- is handed to parsePatternOrType,
// which already falls back to treating a bare qualified name (`case
// MyEnum.A:`) as a value reference when no binding/record-pattern follows.
var caseConstantStartKinds = map[token.Kind]bool{
	token.NULL_LITERAL: true, token.INTEGER_LITERAL: true, token.LONG_LITERAL: true,
	token.FLOAT_LITERAL: true, token.DOUBLE_LITERAL: true, token.CHAR_LITERAL: true,
	token.STRING_LITERAL: true, token.BOOLEAN_LITERAL: true, token.MINUS: true,
}

// parseCasePattern parses a switch case label: a pattern, a `null` literal,
// or a constant expression, including an optional `when` guard (spec.md
// §3.1/§8's "when-guard-promotion" and "when-as-identifier" scenarios:
// `when` is a contextual keyword, promoted only here, right after a
// complete case label, never anywhere else).
func (p *Parser) parseCasePattern() ast.NodeID {
	start := p.cur().Start
	var pat ast.NodeID
	if caseConstantStartKinds[p.cur().Kind] {
		pat = p.parseExpression()
	} else {
		pat = p.parsePatternOrType()
	}
	if p.atContextual("when") {
		p.advance()
		p.parseExpression()
		return p.arena.Allocate(ast.GUARDED_PATTERN, start, p.endOfPrevious())
	}
	return pat
}
