package parser

import (
	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/token"
)

var primitiveKinds = map[token.Kind]bool{
	token.BOOLEAN: true, token.BYTE: true, token.SHORT: true, token.INT: true,
	token.LONG: true, token.CHAR: true, token.FLOAT: true, token.DOUBLE: true,
	token.VOID: true,
}

// parseType parses a type in an unambiguous (declarative) context: a
// parameter type, a field/local type, an extends/implements/throws element,
// a cast target already known to be a cast, and so on. There is no
// generics-vs-less-than ambiguity here -- the grammar position already
// guarantees a type, never an expression -- unlike expression context in
// expr.go, where a `<` after a name is parsed as the less-than operator.
func (p *Parser) parseType() ast.NodeID {
	if !p.enter() {
		return p.arena.Allocate(ast.PRIMITIVE_TYPE, p.cur().Start, p.cur().Start)
	}
	defer p.leave()

	start := p.cur().Start
	var id ast.NodeID
	if primitiveKinds[p.cur().Kind] {
		p.advance()
		id = p.arena.Allocate(ast.PRIMITIVE_TYPE, start, p.endOfPrevious())
	} else {
		id = p.parseClassOrInterfaceType(start)
	}
	return p.parseArrayDimensions(id, start)
}

// parseClassOrInterfaceType parses Name(.Name)* with an optional type
// argument list after each segment, e.g. `java.util.Map<String, List<Foo>>`.
func (p *Parser) parseClassOrInterfaceType(start int) ast.NodeID {
	p.expect(token.IDENTIFIER)
	if p.at(token.LT) {
		p.parseTypeArgumentList()
	}
	for p.at(token.DOT) && p.peek(0).Kind == token.IDENTIFIER {
		p.advance() // '.'
		p.advance() // identifier
		if p.at(token.LT) {
			p.parseTypeArgumentList()
		}
	}
	return p.arena.Allocate(ast.CLASS_TYPE, start, p.endOfPrevious())
}

// parseTypeArgumentList parses `< TypeArgument (, TypeArgument)* >`. Each
// closing '>' consumes exactly one GT token regardless of how many
// consecutive '>' characters follow in the source (List<List<T>> ends in
// two separate GT tokens, one per nesting level, never a glued
// SHIFT_RIGHT -- that gluing is only for expression context, see
// peekBinaryOperator in expr.go).
func (p *Parser) parseTypeArgumentList() ast.NodeID {
	start := p.cur().Start
	p.advance() // '<'
	if p.at(token.GT) {
		p.advance()
		return p.arena.Allocate(ast.TYPE_ARGUMENT_LIST, start, p.endOfPrevious())
	}
	for {
		p.parseTypeArgument()
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.GT)
	return p.arena.Allocate(ast.TYPE_ARGUMENT_LIST, start, p.endOfPrevious())
}

func (p *Parser) parseTypeArgument() ast.NodeID {
	start := p.cur().Start
	if p.at(token.QUESTION) {
		p.advance()
		if p.at(token.EXTENDS) || p.at(token.SUPER) {
			p.advance()
			p.parseType()
		}
		return p.arena.Allocate(ast.WILDCARD_TYPE, start, p.endOfPrevious())
	}
	return p.parseType()
}

// parseArrayDimensions consumes zero-or-more `[]` suffixes.
func (p *Parser) parseArrayDimensions(elem ast.NodeID, start int) ast.NodeID {
	id := elem
	for p.at(token.LBRACKET) && p.peek(0).Kind == token.RBRACKET {
		p.advance()
		p.advance()
		id = p.arena.Allocate(ast.ARRAY_TYPE, start, p.endOfPrevious())
	}
	return id
}
