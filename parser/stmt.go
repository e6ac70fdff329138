package parser

import (
	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/token"
)

// parseStatement parses one statement. Dispatch is a straightforward switch
// on the leading keyword wherever one exists; the two genuinely ambiguous
// cases -- local variable/type declaration vs. expression statement, and a
// labeled statement vs. a bare expression -- are resolved by one token of
// extra lookahead or, for the declaration-vs-expression case, a speculative
// sub-parse (tryParseLocalVarDecl).
func (p *Parser) parseStatement() ast.NodeID {
	if !p.enter() {
		start := p.cur().Start
		return p.arena.Allocate(ast.EMPTY_STATEMENT, start, start)
	}
	defer p.leave()

	start := p.cur().Start
	switch {
	case p.at(token.LBRACE):
		return p.parseBlock()
	case p.at(token.SEMICOLON):
		p.advance()
		return p.arena.Allocate(ast.EMPTY_STATEMENT, start, p.endOfPrevious())
	case p.at(token.IF):
		return p.parseIf(start)
	case p.at(token.WHILE):
		return p.parseWhile(start)
	case p.at(token.DO):
		return p.parseDoWhile(start)
	case p.at(token.FOR):
		return p.parseFor(start)
	case p.at(token.SWITCH):
		return p.parseSwitchStatement(start)
	case p.at(token.BREAK):
		p.advance()
		if p.at(token.IDENTIFIER) {
			p.advance()
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.BREAK_STATEMENT, start, p.endOfPrevious())
	case p.at(token.CONTINUE):
		p.advance()
		if p.at(token.IDENTIFIER) {
			p.advance()
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.CONTINUE_STATEMENT, start, p.endOfPrevious())
	case p.at(token.RETURN):
		p.advance()
		if !p.at(token.SEMICOLON) {
			p.parseExpression()
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.RETURN_STATEMENT, start, p.endOfPrevious())
	case p.at(token.THROW):
		p.advance()
		p.parseExpression()
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.THROW_STATEMENT, start, p.endOfPrevious())
	case p.at(token.TRY):
		return p.parseTry(start)
	case p.at(token.SYNCHRONIZED):
		p.advance()
		p.expect(token.LPAREN)
		p.parseExpression()
		p.expect(token.RPAREN)
		p.parseBlock()
		return p.arena.Allocate(ast.SYNCHRONIZED_STATEMENT, start, p.endOfPrevious())
	case p.at(token.ASSERT):
		p.advance()
		p.parseExpression()
		if _, ok := p.accept(token.COLON); ok {
			p.parseExpression()
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.ASSERT_STATEMENT, start, p.endOfPrevious())
	case p.atContextual("yield"):
		p.advance()
		p.parseExpression()
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.YIELD_STATEMENT, start, p.endOfPrevious())
	case p.at(token.CLASS), p.at(token.INTERFACE), p.at(token.ENUM),
		p.atContextual("record") && p.peek(0).Kind == token.IDENTIFIER:
		decl := p.parseTypeDeclaration()
		return p.arena.Allocate(ast.LOCAL_TYPE_DECLARATION, start, p.arenaEndOf(decl))
	case p.at(token.IDENTIFIER) && p.peek(0).Kind == token.COLON:
		p.advance() // label
		p.advance() // ':'
		p.parseStatement()
		return p.arena.Allocate(ast.LABELED_STATEMENT, start, p.endOfPrevious())
	default:
		return p.parseExpressionOrLocalDeclStatement(start)
	}
}

// arenaEndOf returns the End offset recorded for an already-allocated node.
func (p *Parser) arenaEndOf(id ast.NodeID) int {
	return p.arena.Get(id).End
}

func (p *Parser) parseBlock() ast.NodeID {
	if !p.enter() {
		start := p.cur().Start
		return p.arena.Allocate(ast.BLOCK, start, start)
	}
	defer p.leave()

	start := p.cur().Start
	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		before := p.cur()
		p.parseStatement()
		if p.cur() == before {
			// Made no progress (e.g. a malformed token stream); force one to
			// avoid looping forever.
			p.synchronize()
		}
	}
	p.expect(token.RBRACE)
	return p.arena.Allocate(ast.BLOCK, start, p.endOfPrevious())
}

func (p *Parser) parseIf(start int) ast.NodeID {
	p.advance() // 'if'
	p.expect(token.LPAREN)
	p.parseExpression()
	p.expect(token.RPAREN)
	p.parseStatement()
	if _, ok := p.accept(token.ELSE); ok {
		p.parseStatement()
	}
	return p.arena.Allocate(ast.IF_STATEMENT, start, p.endOfPrevious())
}

func (p *Parser) parseWhile(start int) ast.NodeID {
	p.advance() // 'while'
	p.expect(token.LPAREN)
	p.parseExpression()
	p.expect(token.RPAREN)
	p.parseStatement()
	return p.arena.Allocate(ast.WHILE_STATEMENT, start, p.endOfPrevious())
}

func (p *Parser) parseDoWhile(start int) ast.NodeID {
	p.advance() // 'do'
	p.parseStatement()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return p.arena.Allocate(ast.DO_STATEMENT, start, p.endOfPrevious())
}

// parseFor resolves basic-for vs. for-each by speculatively trying for-each
// first (Type/var Identifier ':' Expression), the only form with a ':' where
// basic-for always has a ';'.
func (p *Parser) parseFor(start int) ast.NodeID {
	p.advance() // 'for'
	p.expect(token.LPAREN)
	if id, ok := p.tryParseForEachHeader(); ok {
		_ = id
		p.expect(token.RPAREN)
		p.parseStatement()
		return p.arena.Allocate(ast.FOR_EACH_STATEMENT, start, p.endOfPrevious())
	}
	if !p.at(token.SEMICOLON) {
		if _, ok := p.tryParseLocalVarDecl(p.cur().Start); !ok {
			p.parseExpressionStatementList()
			p.expect(token.SEMICOLON)
		}
	} else {
		p.advance()
	}
	if !p.at(token.SEMICOLON) {
		p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	if !p.at(token.RPAREN) {
		p.parseExpressionStatementList()
	}
	p.expect(token.RPAREN)
	p.parseStatement()
	return p.arena.Allocate(ast.FOR_STATEMENT, start, p.endOfPrevious())
}

func (p *Parser) tryParseForEachHeader() (ast.NodeID, bool) {
	return speculate(p, func() (ast.NodeID, bool) {
		start := p.cur().Start
		if p.atContextual("var") {
			p.advance()
		} else {
			p.parseType()
		}
		if !p.at(token.IDENTIFIER) {
			return 0, false
		}
		p.advance()
		if _, ok := p.accept(token.COLON); !ok {
			return 0, false
		}
		p.parseExpression()
		return p.arena.Allocate(ast.PARAMETER, start, p.endOfPrevious()), true
	})
}

// parseExpressionStatementList parses a comma-separated list of expressions,
// used for a basic for-loop's init/update clauses when they're not a
// declaration.
func (p *Parser) parseExpressionStatementList() {
	for {
		p.parseExpression()
		if _, ok := p.accept(token.COMMA); !ok {
			return
		}
	}
}

func (p *Parser) parseSwitchStatement(start int) ast.NodeID {
	p.advance() // 'switch'
	p.expect(token.LPAREN)
	p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		p.parseSwitchLabelGroup()
	}
	p.expect(token.RBRACE)
	return p.arena.Allocate(ast.SWITCH_STATEMENT, start, p.endOfPrevious())
}

// parseSwitchLabelGroup parses one `case ... ->` rule, one `default ->`
// rule, or a classic colon-form label (falling through to statements until
// the next label). Both forms share the same case-pattern grammar; only the
// separator (`->` vs `:`) and what follows differ.
func (p *Parser) parseSwitchLabelGroup() ast.NodeID {
	start := p.cur().Start
	if _, ok := p.accept(token.DEFAULT); ok {
		return p.finishSwitchLabel(start)
	}
	p.expect(token.CASE)
	p.parseCasePattern()
	for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
		p.parseCasePattern()
	}
	return p.finishSwitchLabel(start)
}

func (p *Parser) finishSwitchLabel(start int) ast.NodeID {
	if _, ok := p.accept(token.ARROW); ok {
		if p.at(token.LBRACE) {
			p.parseBlock()
		} else if p.at(token.THROW) {
			p.parseStatement()
		} else {
			p.parseExpression()
			p.expect(token.SEMICOLON)
		}
		return p.arena.Allocate(ast.SWITCH_RULE, start, p.endOfPrevious())
	}
	p.expect(token.COLON)
	for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		p.parseStatement()
	}
	return p.arena.Allocate(ast.SWITCH_LABEL, start, p.endOfPrevious())
}

// parseTry handles both try-with-resources forms spec.md names: a
// declared resource (`Type r = expr`) and the Java 9+ variable-reference
// form (a bare expression naming an already-effectively-final variable, e.g.
// `try (this.lock) { ... }`), plus plain try/catch/finally.
func (p *Parser) parseTry(start int) ast.NodeID {
	p.advance() // 'try'
	if _, ok := p.accept(token.LPAREN); ok {
		p.parseResource()
		for _, ok := p.accept(token.SEMICOLON); ok && !p.at(token.RPAREN); _, ok = p.accept(token.SEMICOLON) {
			p.parseResource()
		}
		p.expect(token.RPAREN)
	}
	p.parseBlock()
	for p.at(token.CATCH) {
		p.parseCatchClause()
	}
	if _, ok := p.accept(token.FINALLY); ok {
		p.parseBlock()
	}
	return p.arena.Allocate(ast.TRY_STATEMENT, start, p.endOfPrevious())
}

// parseResource resolves the declared-vs-reference resource forms by
// speculating a declaration first (Type/var Identifier '=' Expression); on
// failure it's the variable-reference form, a bare expression.
func (p *Parser) parseResource() ast.NodeID {
	start := p.cur().Start
	if id, ok := p.tryParseDeclaredResource(start); ok {
		return id
	}
	p.parseExpression()
	return p.arena.Allocate(ast.RESOURCE, start, p.endOfPrevious())
}

func (p *Parser) tryParseDeclaredResource(start int) (ast.NodeID, bool) {
	return speculate(p, func() (ast.NodeID, bool) {
		p.parseModifiers()
		if p.atContextual("var") {
			p.advance()
		} else {
			p.parseType()
		}
		if !p.at(token.IDENTIFIER) {
			return 0, false
		}
		p.advance()
		if _, ok := p.accept(token.ASSIGN); !ok {
			return 0, false
		}
		p.parseExpression()
		return p.arena.Allocate(ast.RESOURCE, start, p.endOfPrevious()), true
	})
}

func (p *Parser) parseCatchClause() ast.NodeID {
	start := p.cur().Start
	p.advance() // 'catch'
	p.expect(token.LPAREN)
	p.parseModifiers()
	p.parseType()
	for _, ok := p.accept(token.PIPE); ok; _, ok = p.accept(token.PIPE) {
		p.parseType() // multi-catch: catch (IOException | SQLException e)
	}
	p.expect(token.IDENTIFIER)
	p.expect(token.RPAREN)
	p.parseBlock()
	return p.arena.Allocate(ast.CATCH_CLAUSE, start, p.endOfPrevious())
}

// parseExpressionOrLocalDeclStatement resolves the classic
// local-variable-declaration vs. expression-statement ambiguity
// (`Foo<Bar> x = ...;` vs. `Foo < Bar > x`): attempt the declaration first,
// since a valid declaration is never also a valid standalone expression
// statement (an assignment's left side can't be a bare type+identifier
// pair), and only fall back to an expression on failure.
func (p *Parser) parseExpressionOrLocalDeclStatement(start int) ast.NodeID {
	if id, ok := p.tryParseLocalVarDecl(start); ok {
		return id
	}
	p.parseExpression()
	p.expect(token.SEMICOLON)
	return p.arena.Allocate(ast.EXPRESSION_STATEMENT, start, p.endOfPrevious())
}

func (p *Parser) tryParseLocalVarDecl(start int) (ast.NodeID, bool) {
	return speculate(p, func() (ast.NodeID, bool) {
		p.parseModifiers()
		if p.atContextual("var") {
			p.advance()
		} else {
			p.parseType()
		}
		if !p.at(token.IDENTIFIER) {
			return 0, false
		}
		for {
			p.parseVariableDeclarator()
			if _, ok := p.accept(token.COMMA); !ok {
				break
			}
		}
		if _, ok := p.accept(token.SEMICOLON); !ok {
			return 0, false
		}
		return p.arena.Allocate(ast.LOCAL_VARIABLE_DECLARATION, start, p.endOfPrevious()), true
	})
}

func (p *Parser) parseVariableDeclarator() ast.NodeID {
	start := p.cur().Start
	p.expect(token.IDENTIFIER)
	for p.at(token.LBRACKET) && p.peek(0).Kind == token.RBRACKET {
		p.advance()
		p.advance()
	}
	if _, ok := p.accept(token.ASSIGN); ok {
		p.parseVariableInitializer()
	}
	return p.arena.Allocate(ast.VARIABLE_DECLARATOR, start, p.endOfPrevious())
}

// parseVariableInitializer parses either an ordinary expression or an array
// initializer (`{ expr, expr, ... }`).
func (p *Parser) parseVariableInitializer() {
	if p.at(token.LBRACE) {
		p.parseArrayInitializer()
		return
	}
	p.parseExpression()
}

func (p *Parser) parseArrayInitializer() {
	p.advance() // '{'
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		p.parseVariableInitializer()
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	p.expect(token.RBRACE)
}
