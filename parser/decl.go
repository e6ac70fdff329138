package parser

import (
	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/token"
)

var modifierKinds = map[token.Kind]bool{
	token.PUBLIC: true, token.PROTECTED: true, token.PRIVATE: true,
	token.STATIC: true, token.FINAL: true, token.ABSTRACT: true,
	token.NATIVE: true, token.TRANSIENT: true, token.VOLATILE: true,
	token.SYNCHRONIZED: true, token.STRICTFP: true,
}

// parseCompilationUnit is the parser's entry point: an optional package
// declaration, any number of import declarations (including a module-info
// file's lack of either), then either a module declaration or zero-or-more
// top-level type declarations.
func (p *Parser) parseCompilationUnit() ast.NodeID {
	start := p.cur().Start
	p.parseAnnotationsOnly()
	if p.at(token.PACKAGE) {
		p.parsePackageDeclaration()
	}
	for p.at(token.IMPORT) {
		p.parseImportDeclaration()
	}
	if p.atContextual("module") || (p.atContextual("open") && p.peek(0).Kind == token.IDENTIFIER) {
		p.parseModuleDeclaration()
	} else {
		for !p.at(token.END_OF_FILE) {
			if _, ok := p.accept(token.SEMICOLON); ok {
				continue
			}
			p.parseTypeDeclaration()
		}
	}
	p.expect(token.END_OF_FILE)
	return p.arena.Allocate(ast.COMPILATION_UNIT, start, p.endOfPrevious())
}

// parseAnnotationsOnly consumes leading annotations that precede a package
// declaration (package-info.java's package-level annotations). An
// `@interface` is left for the type-declaration parser.
func (p *Parser) parseAnnotationsOnly() {
	for p.at(token.AT) && p.peek(0).Kind != token.INTERFACE {
		p.parseAnnotation()
	}
}

func (p *Parser) parsePackageDeclaration() ast.NodeID {
	start := p.cur().Start
	p.advance() // 'package'
	p.parseQualifiedName()
	p.expect(token.SEMICOLON)
	return p.arena.Allocate(ast.PACKAGE_DECLARATION, start, p.endOfPrevious())
}

func (p *Parser) parseImportDeclaration() ast.NodeID {
	start := p.cur().Start
	p.advance() // 'import'
	p.accept(token.STATIC)
	p.parseQualifiedName()
	if p.at(token.DOT) && p.peek(0).Kind == token.STAR {
		p.advance()
		p.advance()
	}
	p.expect(token.SEMICOLON)
	return p.arena.Allocate(ast.IMPORT_DECLARATION, start, p.endOfPrevious())
}

func (p *Parser) parseQualifiedName() {
	p.expect(token.IDENTIFIER)
	for p.at(token.DOT) && p.peek(0).Kind == token.IDENTIFIER {
		p.advance()
		p.advance()
	}
}

// parseModuleDeclaration parses `[open] module a.b.c { directive* }`. Module
// declarations are gated at Java25Preview (javaversion.FeatureModuleImports):
// javac still accepts module-info.java under every supported release, but
// this parser accepts a module declaration only under Java25Preview. There is
// no production for module import declarations (`import module m;`).
func (p *Parser) parseModuleDeclaration() ast.NodeID {
	start := p.cur().Start
	if !p.version.Supports(javaversion.FeatureModuleImports) {
		p.errorf(start, "syntax error: module declarations require Java 25 preview")
	}
	if p.atContextual("open") {
		p.advance()
	}
	p.advance() // 'module' (contextual identifier)
	p.parseQualifiedName()
	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		p.parseModuleDirective()
	}
	p.expect(token.RBRACE)
	return p.arena.Allocate(ast.MODULE_DECLARATION, start, p.endOfPrevious())
}

func (p *Parser) parseModuleDirective() ast.NodeID {
	start := p.cur().Start
	switch {
	case p.atContextual("requires"):
		p.advance()
		if p.atContextual("transitive") {
			p.advance()
		}
		if p.at(token.STATIC) {
			p.advance()
		}
		p.parseQualifiedName()
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.REQUIRES_DIRECTIVE, start, p.endOfPrevious())
	case p.atContextual("exports"):
		p.advance()
		p.parseQualifiedName()
		if p.atContextual("to") {
			p.advance()
			p.parseQualifiedName()
			for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
				p.parseQualifiedName()
			}
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.EXPORTS_DIRECTIVE, start, p.endOfPrevious())
	case p.atContextual("opens"):
		p.advance()
		p.parseQualifiedName()
		if p.atContextual("to") {
			p.advance()
			p.parseQualifiedName()
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.OPENS_DIRECTIVE, start, p.endOfPrevious())
	case p.atContextual("uses"):
		p.advance()
		p.parseQualifiedName()
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.USES_DIRECTIVE, start, p.endOfPrevious())
	case p.atContextual("provides"):
		p.advance()
		p.parseQualifiedName()
		if p.atContextual("with") {
			p.advance()
			p.parseQualifiedName()
			for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
				p.parseQualifiedName()
			}
		}
		p.expect(token.SEMICOLON)
		return p.arena.Allocate(ast.PROVIDES_DIRECTIVE, start, p.endOfPrevious())
	default:
		p.errorf(p.cur().Start, "syntax error: expected a module directive, found %q", displayText(p.cur()))
		p.synchronize()
		return p.arena.Allocate(ast.REQUIRES_DIRECTIVE, start, p.endOfPrevious())
	}
}

// parseModifiers consumes a mix of reserved-keyword modifiers, annotations,
// and the contextual modifiers `sealed`/`non-sealed`. `non-sealed` is three
// tokens (IDENTIFIER "non", MINUS, IDENTIFIER "sealed") that the lexer never
// glues (spec.md §4.4): recognizing it here requires checking byte
// adjacency across all three so `non - sealed` (with real whitespace/an
// actual subtraction) is never misread as the modifier.
func (p *Parser) parseModifiers() {
	for {
		switch {
		case p.at(token.AT) && p.peek(0).Kind != token.INTERFACE:
			p.parseAnnotation()
		case modifierKinds[p.cur().Kind]:
			start := p.cur().Start
			p.advance()
			p.arena.Allocate(ast.MODIFIER, start, p.endOfPrevious())
		case p.atContextual("sealed"):
			start := p.cur().Start
			p.advance()
			p.arena.Allocate(ast.MODIFIER, start, p.endOfPrevious())
		case p.isNonSealed():
			start := p.cur().Start
			p.advance() // "non"
			p.advance() // '-'
			p.advance() // "sealed"
			p.arena.Allocate(ast.MODIFIER, start, p.endOfPrevious())
		default:
			return
		}
	}
}

// isNonSealed reports whether the upcoming three tokens spell out
// `non-sealed` with no intervening whitespace or comments, i.e. are
// byte-adjacent in the source: tok1.End == tok2.Start and tok2.End ==
// tok3.Start.
func (p *Parser) isNonSealed() bool {
	t1 := p.cur()
	if t1.Kind != token.IDENTIFIER || t1.DecodedText != "non" {
		return false
	}
	t2 := p.peek(0)
	if t2.Kind != token.MINUS || t2.Start != t1.End {
		return false
	}
	t3 := p.peek(1)
	return t3.Kind == token.IDENTIFIER && t3.DecodedText == "sealed" && t3.Start == t2.End
}

func (p *Parser) parseAnnotation() ast.NodeID {
	start := p.cur().Start
	p.advance() // '@'
	p.parseQualifiedName()
	if _, ok := p.accept(token.LPAREN); ok {
		if !p.at(token.RPAREN) {
			p.parseAnnotationArgument()
			for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
				p.parseAnnotationArgument()
			}
		}
		p.expect(token.RPAREN)
	}
	return p.arena.Allocate(ast.ANNOTATION, start, p.endOfPrevious())
}

// parseAnnotationArgument handles both `name = value` element-value pairs
// and a bare value (the single-element shorthand, `@SuppressWarnings("x")`).
func (p *Parser) parseAnnotationArgument() ast.NodeID {
	start := p.cur().Start
	if p.at(token.IDENTIFIER) && p.peek(0).Kind == token.ASSIGN {
		p.advance()
		p.advance()
	}
	p.parseElementValue()
	return p.arena.Allocate(ast.ANNOTATION_ARGUMENT, start, p.endOfPrevious())
}

func (p *Parser) parseElementValue() {
	switch {
	case p.at(token.AT):
		p.parseAnnotation()
	case p.at(token.LBRACE):
		p.parseArrayInitializer()
	default:
		p.parseExpression()
	}
}

// parseTypeDeclaration parses one top-level-shaped type declaration: class,
// interface, enum, record, or annotation type, with any leading modifiers.
func (p *Parser) parseTypeDeclaration() ast.NodeID {
	start := p.cur().Start
	p.parseModifiers()
	switch {
	case p.at(token.CLASS):
		return p.parseClassDeclaration(start)
	case p.at(token.INTERFACE):
		return p.parseInterfaceDeclaration(start)
	case p.at(token.ENUM):
		return p.parseEnumDeclaration(start)
	case p.atContextual("record") && p.peek(0).Kind == token.IDENTIFIER:
		return p.parseRecordDeclaration(start)
	case p.at(token.AT) && p.peek(0).Kind == token.INTERFACE:
		return p.parseAnnotationTypeDeclaration(start)
	default:
		p.errorf(p.cur().Start, "syntax error: expected a type declaration, found %q", displayText(p.cur()))
		p.synchronize()
		return p.arena.Allocate(ast.CLASS_DECLARATION, start, p.endOfPrevious())
	}
}

func (p *Parser) parseClassDeclaration(start int) ast.NodeID {
	p.advance() // 'class'
	name := p.expect(token.IDENTIFIER).DecodedText
	p.parseTypeParametersOpt()
	if _, ok := p.accept(token.EXTENDS); ok {
		extStart := p.endOfPreviousStart()
		p.parseType()
		p.arena.Allocate(ast.EXTENDS_CLAUSE, extStart, p.endOfPrevious())
	}
	p.parseImplementsClauseOpt()
	p.parsePermitsClauseOpt()
	p.parseClassBody()
	return p.arena.AllocateWithName(ast.CLASS_DECLARATION, start, p.endOfPrevious(), name)
}

func (p *Parser) parseInterfaceDeclaration(start int) ast.NodeID {
	p.advance() // 'interface'
	name := p.expect(token.IDENTIFIER).DecodedText
	p.parseTypeParametersOpt()
	if _, ok := p.accept(token.EXTENDS); ok {
		extStart := p.endOfPreviousStart()
		p.parseType()
		for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
			p.parseType()
		}
		p.arena.Allocate(ast.EXTENDS_CLAUSE, extStart, p.endOfPrevious())
	}
	p.parsePermitsClauseOpt()
	p.parseClassBody()
	return p.arena.AllocateWithName(ast.INTERFACE_DECLARATION, start, p.endOfPrevious(), name)
}

func (p *Parser) parseEnumDeclaration(start int) ast.NodeID {
	p.advance() // 'enum'
	name := p.expect(token.IDENTIFIER).DecodedText
	p.parseImplementsClauseOpt()
	p.expect(token.LBRACE)
	if !p.at(token.SEMICOLON) && !p.at(token.RBRACE) {
		p.parseEnumConstant()
		for _, ok := p.accept(token.COMMA); ok && !p.at(token.SEMICOLON) && !p.at(token.RBRACE); _, ok = p.accept(token.COMMA) {
			p.parseEnumConstant()
		}
	}
	if _, ok := p.accept(token.SEMICOLON); ok {
		for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
			p.parseMember()
		}
	}
	p.expect(token.RBRACE)
	return p.arena.AllocateWithName(ast.ENUM_DECLARATION, start, p.endOfPrevious(), name)
}

func (p *Parser) parseEnumConstant() ast.NodeID {
	start := p.cur().Start
	p.parseAnnotationsOnly()
	p.expect(token.IDENTIFIER)
	if p.at(token.LPAREN) {
		p.parseArgumentList()
	}
	if p.at(token.LBRACE) {
		p.parseClassBody()
	}
	return p.arena.Allocate(ast.ENUM_CONSTANT, start, p.endOfPrevious())
}

func (p *Parser) parseRecordDeclaration(start int) ast.NodeID {
	p.advance() // 'record'
	name := p.expect(token.IDENTIFIER).DecodedText
	p.parseTypeParametersOpt()
	p.expect(token.LPAREN)
	if !p.at(token.RPAREN) {
		p.parseRecordComponent()
		for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
			p.parseRecordComponent()
		}
	}
	p.expect(token.RPAREN)
	p.parseImplementsClauseOpt()
	p.parseClassBody()
	return p.arena.AllocateWithName(ast.RECORD_DECLARATION, start, p.endOfPrevious(), name)
}

func (p *Parser) parseRecordComponent() ast.NodeID {
	start := p.cur().Start
	p.parseAnnotationsOnly()
	p.parseType()
	p.expect(token.IDENTIFIER)
	return p.arena.Allocate(ast.RECORD_COMPONENT, start, p.endOfPrevious())
}

func (p *Parser) parseAnnotationTypeDeclaration(start int) ast.NodeID {
	p.advance() // '@'
	p.advance() // 'interface'
	name := p.expect(token.IDENTIFIER).DecodedText
	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		p.parseAnnotationTypeMember()
	}
	p.expect(token.RBRACE)
	return p.arena.AllocateWithName(ast.ANNOTATION_TYPE_DECLARATION, start, p.endOfPrevious(), name)
}

// parseAnnotationTypeMember handles an annotation element (`Type name()
// [default value];`), which looks like a zero-parameter method declaration
// but is parsed on its own path to handle the default clause.
func (p *Parser) parseAnnotationTypeMember() ast.NodeID {
	start := p.cur().Start
	p.parseModifiers()
	if p.at(token.CLASS) || p.at(token.INTERFACE) || p.at(token.ENUM) ||
		(p.at(token.AT) && p.peek(0).Kind == token.INTERFACE) {
		return p.parseTypeDeclarationBody(start)
	}
	p.parseType()
	p.expect(token.IDENTIFIER)
	if _, ok := p.accept(token.LPAREN); ok {
		p.expect(token.RPAREN)
	}
	if _, ok := p.accept(token.DEFAULT); ok {
		p.parseElementValue()
	}
	p.expect(token.SEMICOLON)
	return p.arena.Allocate(ast.METHOD_DECLARATION, start, p.endOfPrevious())
}

// parseTypeDeclarationBody continues a type declaration whose modifiers
// were already consumed by the caller.
func (p *Parser) parseTypeDeclarationBody(start int) ast.NodeID {
	switch {
	case p.at(token.CLASS):
		return p.parseClassDeclaration(start)
	case p.at(token.INTERFACE):
		return p.parseInterfaceDeclaration(start)
	case p.at(token.ENUM):
		return p.parseEnumDeclaration(start)
	default:
		return p.parseAnnotationTypeDeclaration(start)
	}
}

func (p *Parser) parseImplementsClauseOpt() {
	if _, ok := p.accept(token.IMPLEMENTS); !ok {
		return
	}
	start := p.endOfPreviousStart()
	p.parseType()
	for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
		p.parseType()
	}
	p.arena.Allocate(ast.IMPLEMENTS_CLAUSE, start, p.endOfPrevious())
}

func (p *Parser) parsePermitsClauseOpt() {
	if !p.atContextual("permits") {
		return
	}
	p.advance()
	start := p.endOfPreviousStart()
	p.parseType()
	for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
		p.parseType()
	}
	p.arena.Allocate(ast.PERMITS_CLAUSE, start, p.endOfPrevious())
}

// endOfPreviousStart approximates a clause's Start as the start of the token
// right after the keyword that opened it; callers that need the keyword
// itself included instead capture start before consuming it.
func (p *Parser) endOfPreviousStart() int {
	return p.cur().Start
}

func (p *Parser) parseTypeParametersOpt() {
	if !p.at(token.LT) {
		return
	}
	p.advance() // '<'
	p.parseTypeParameter()
	for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
		p.parseTypeParameter()
	}
	p.expect(token.GT)
}

func (p *Parser) parseTypeParameter() ast.NodeID {
	start := p.cur().Start
	p.parseAnnotationsOnly()
	p.expect(token.IDENTIFIER)
	if _, ok := p.accept(token.EXTENDS); ok {
		p.parseType()
		for _, ok := p.accept(token.AMP); ok; _, ok = p.accept(token.AMP) {
			p.parseType()
		}
	}
	return p.arena.Allocate(ast.TYPE_PARAMETER, start, p.endOfPrevious())
}

func (p *Parser) parseClassBody() {
	p.expect(token.LBRACE)
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		if _, ok := p.accept(token.SEMICOLON); ok {
			continue
		}
		p.parseMember()
	}
	p.expect(token.RBRACE)
}

// parseMember dispatches a class/interface/record body member: a nested
// type declaration, a static/instance initializer block, or a
// field/method/constructor, disambiguated after modifiers and any type
// parameters by what follows the declared type (a `(` means a method or
// constructor; anything else, a field).
func (p *Parser) parseMember() ast.NodeID {
	start := p.cur().Start
	if p.at(token.LBRACE) {
		p.parseBlock()
		return p.arena.Allocate(ast.INSTANCE_INITIALIZER, start, p.endOfPrevious())
	}
	p.parseModifiers()
	if p.at(token.LBRACE) {
		p.parseBlock()
		return p.arena.Allocate(ast.STATIC_INITIALIZER, start, p.endOfPrevious())
	}
	switch {
	case p.at(token.CLASS), p.at(token.INTERFACE), p.at(token.ENUM),
		p.atContextual("record") && p.peek(0).Kind == token.IDENTIFIER,
		p.at(token.AT) && p.peek(0).Kind == token.INTERFACE:
		return p.parseTypeDeclarationBody(start)
	}
	p.parseTypeParametersOpt()
	if p.at(token.IDENTIFIER) && p.peek(0).Kind == token.LPAREN {
		return p.parseConstructorDeclaration(start)
	}
	// A record's compact canonical constructor omits the parameter list
	// entirely: `Point { if (x < 0) throw ...; }`. It's recognized by an
	// identifier directly followed by a block, a shape no field or method
	// declaration can otherwise take.
	if p.at(token.IDENTIFIER) && p.peek(0).Kind == token.LBRACE {
		p.advance() // the constructor's name
		p.parseBlock()
		return p.arena.Allocate(ast.CONSTRUCTOR_DECLARATION, start, p.endOfPrevious())
	}
	p.parseType()
	p.expect(token.IDENTIFIER)
	if p.at(token.LPAREN) {
		return p.parseMethodDeclarationTail(start)
	}
	return p.parseFieldDeclarationTail(start)
}

func (p *Parser) parseConstructorDeclaration(start int) ast.NodeID {
	p.advance() // identifier (constructor name)
	p.parseParameterList()
	p.parseThrowsClauseOpt()
	p.parseConstructorBody()
	return p.arena.Allocate(ast.CONSTRUCTOR_DECLARATION, start, p.endOfPrevious())
}

// parseConstructorBody parses a constructor's block body. Below
// Java25Preview's flexible constructor bodies (javaversion.
// FeatureFlexibleConstructorBodies), an explicit this(...)/super(...)
// invocation is only legal as the very first statement; this reports a
// diagnostic if one turns up later instead of silently accepting it.
func (p *Parser) parseConstructorBody() ast.NodeID {
	if !p.enter() {
		start := p.cur().Start
		return p.arena.Allocate(ast.BLOCK, start, start)
	}
	defer p.leave()

	start := p.cur().Start
	p.expect(token.LBRACE)
	statementIndex := 0
	for !p.at(token.RBRACE) && !p.at(token.END_OF_FILE) {
		before := p.cur()
		if statementIndex > 0 && p.isExplicitConstructorInvocation() &&
			!p.version.Supports(javaversion.FeatureFlexibleConstructorBodies) {
			p.errorf(p.cur().Start, "syntax error: explicit constructor invocation must be the first statement in the constructor body")
		}
		p.parseStatement()
		if p.cur() == before {
			p.synchronize()
		}
		statementIndex++
	}
	p.expect(token.RBRACE)
	return p.arena.Allocate(ast.BLOCK, start, p.endOfPrevious())
}

// isExplicitConstructorInvocation reports whether the parser is positioned
// at a `this(` or `super(` constructor-invocation statement.
func (p *Parser) isExplicitConstructorInvocation() bool {
	return (p.at(token.THIS) || p.at(token.SUPER)) && p.peek(0).Kind == token.LPAREN
}

func (p *Parser) parseMethodDeclarationTail(start int) ast.NodeID {
	p.parseParameterList()
	for p.at(token.LBRACKET) && p.peek(0).Kind == token.RBRACKET {
		p.advance()
		p.advance()
	}
	p.parseThrowsClauseOpt()
	if p.at(token.LBRACE) {
		p.parseBlock()
	} else if _, ok := p.accept(token.DEFAULT); ok {
		p.parseElementValue()
		p.expect(token.SEMICOLON)
	} else {
		p.expect(token.SEMICOLON)
	}
	return p.arena.Allocate(ast.METHOD_DECLARATION, start, p.endOfPrevious())
}

// parseFieldDeclarationTail parses the rest of a field declaration after
// parseMember has already consumed the type and the first declarator's
// identifier (needed to disambiguate a field from a method).
func (p *Parser) parseFieldDeclarationTail(start int) ast.NodeID {
	for {
		p.parseVariableDeclaratorContinuation()
		if _, ok := p.accept(token.COMMA); !ok {
			break
		}
		p.expect(token.IDENTIFIER)
	}
	p.expect(token.SEMICOLON)
	return p.arena.Allocate(ast.FIELD_DECLARATION, start, p.endOfPrevious())
}

func (p *Parser) parseVariableDeclaratorContinuation() {
	for p.at(token.LBRACKET) && p.peek(0).Kind == token.RBRACKET {
		p.advance()
		p.advance()
	}
	if _, ok := p.accept(token.ASSIGN); ok {
		p.parseVariableInitializer()
	}
}

func (p *Parser) parseThrowsClauseOpt() {
	if _, ok := p.accept(token.THROWS); !ok {
		return
	}
	start := p.endOfPreviousStart()
	p.parseType()
	for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
		p.parseType()
	}
	p.arena.Allocate(ast.THROWS_CLAUSE, start, p.endOfPrevious())
}

func (p *Parser) parseParameterList() ast.NodeID {
	start := p.cur().Start
	p.expect(token.LPAREN)
	if !p.at(token.RPAREN) {
		p.parseParameter()
		for _, ok := p.accept(token.COMMA); ok; _, ok = p.accept(token.COMMA) {
			p.parseParameter()
		}
	}
	p.expect(token.RPAREN)
	return p.arena.Allocate(ast.PARAMETER, start, p.endOfPrevious())
}

func (p *Parser) parseParameter() ast.NodeID {
	start := p.cur().Start
	p.parseModifiers()
	if p.atContextual("var") {
		p.advance()
	} else {
		p.parseType()
	}
	p.accept(token.ELLIPSIS) // varargs parameter
	nameTok := p.expect(token.IDENTIFIER)
	name := nameTok.DecodedText
	p.checkUnnamedVariable(nameTok.Start, name)
	for p.at(token.LBRACKET) && p.peek(0).Kind == token.RBRACKET {
		p.advance()
		p.advance()
	}
	return p.arena.AllocateWithName(ast.PARAMETER, start, p.endOfPrevious(), name)
}
