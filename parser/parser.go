// Package parser implements a hand-written recursive-descent parser for
// Java source, producing an index-overlay ast.Arena instead of a pointer
// tree. The scanning/dispatch shape -- a single significant lookahead token,
// speculative sub-parses that roll back cleanly on failure -- is the
// recursive-descent analogue of the teacher's Tokenizer-driven yacc grammar
// (parser/token.go, parser/sqldef.go): where the teacher hands one token at a
// time to a generated LALR table, this parser drives its own control flow
// and must explicitly implement the backtracking LALR gets for free.
package parser

import (
	"fmt"

	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/lexer"
	"github.com/cowwoc/styler-sub000/source"
	"github.com/cowwoc/styler-sub000/token"
	"github.com/cowwoc/styler-sub000/tokenstream"
)

// maxNestingDepth bounds recursive-descent call stack usage, guarding
// against pathological or adversarial input (spec.md §5: "a nesting-depth
// guard, suggested limit 200").
const maxNestingDepth = 200

// ParseResult is the outcome of parsing one Source: either a complete Arena
// with no Diagnostics, or a partial Arena (everything recovered before the
// parser gave up on a production) plus one-or-more Diagnostics.
type ParseResult struct {
	Arena       *ast.Arena
	Root        ast.NodeID
	Diagnostics []Diagnostic
}

// Success reports whether the parse completed with no diagnostics.
func (r ParseResult) Success() bool {
	return len(r.Diagnostics) == 0
}

// Parse tokenizes and parses src as a single Java compilation unit under the
// grammar gate version selects.
func Parse(src *source.Source, version javaversion.Version) ParseResult {
	p := &Parser{
		stream:  tokenstream.New(lexer.New(src)),
		arena:   ast.NewArena(src.Len() / 4),
		version: version,
	}
	root := p.parseCompilationUnit()
	return ParseResult{Arena: p.arena, Root: root, Diagnostics: p.diagnostics}
}

// Parser drives a single parse over one token Stream. A Parser is pure CPU
// and holds no shared state: distinct Parser instances over distinct Sources
// may run concurrently (spec.md §5), mirrored by concurrent.ParseFiles.
type Parser struct {
	stream      *tokenstream.Stream
	arena       *ast.Arena
	version     javaversion.Version
	diagnostics   []Diagnostic
	depth         int
	depthExceeded bool // set once the nesting-depth guard has already reported, so it reports only once
	prevEnd       int  // End offset of the last significant token consumed
}

// enter applies the nesting-depth guard; pair with a deferred leave(). It
// returns false once the guard trips, in which case the caller should
// unwind without recursing further. spec.md §4.4/§7 and §8's "nesting depth
// exceeded" scenario require this to be a Failure, not just a crash guard:
// the first trip records a diagnostic so ParseResult.Success() reports
// false, even though recovery unwinds cleanly and the arena stays usable.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth <= maxNestingDepth {
		return true
	}
	if !p.depthExceeded {
		p.depthExceeded = true
		p.errorf(p.cur().Start, "syntax error: maximum nesting depth (%d) exceeded", maxNestingDepth)
	}
	return false
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) errorf(offset int, format string, args ...any) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Message: fmt.Sprintf(format, args...), Offset: offset})
}

// cur returns the current significant (non-trivia) token, committing any
// leading comment tokens to the arena as COMMENT nodes as a side effect. It
// is idempotent: calling it repeatedly at the same position only commits
// comments once.
func (p *Parser) cur() token.Token {
	for p.stream.Current().IsTrivia() {
		t := p.stream.Advance()
		p.arena.Allocate(ast.COMMENT, t.Start, t.End)
	}
	return p.stream.Current()
}

// peek returns the nth significant token strictly after the current one (so
// peek(0) is the token after cur()), without committing or consuming it.
func (p *Parser) peek(n int) token.Token {
	p.cur() // normalize so stream.Peek(0) is cur itself; counting starts after it
	i, seen := 1, -1
	for {
		t := p.stream.Peek(i)
		if !t.IsTrivia() {
			seen++
			if seen == n {
				return t
			}
		}
		i++
	}
}

// at reports whether the current significant token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

// atContextual reports whether the current token is an IDENTIFIER spelled
// as the named contextual keyword (spec.md §3.1: contextual keywords lex as
// plain identifiers; only the parser promotes them, and only here).
func (p *Parser) atContextual(spelling string) bool {
	t := p.cur()
	return t.Kind == token.IDENTIFIER && t.DecodedText == spelling
}

// advance consumes and returns the current significant token.
func (p *Parser) advance() token.Token {
	t := p.cur()
	p.stream.Advance()
	p.prevEnd = t.End
	return t
}

// endOfPrevious returns the End offset of the token most recently consumed
// by advance/accept/expect; used as a node's End when its last child was
// that token.
func (p *Parser) endOfPrevious() int {
	return p.prevEnd
}

// accept consumes and returns the current token if it has kind k.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes the current token, recording a diagnostic if its kind
// isn't k. It always advances (even on mismatch) so callers make progress
// and error recovery can resynchronize at a statement/member boundary.
func (p *Parser) expect(k token.Kind) token.Token {
	t := p.cur()
	if t.Kind != k {
		p.errorf(t.Start, "syntax error: expected %s, found %q", k, displayText(t))
	}
	p.stream.Advance()
	p.prevEnd = t.End
	return t
}

// checkUnnamedVariable reports a diagnostic if name is the unnamed-variable
// marker `_` (javaversion.FeatureUnnamedVariables, finalized at Java25) used
// under a Version that doesn't support it, where it's just an ordinary,
// reusable identifier instead.
func (p *Parser) checkUnnamedVariable(offset int, name string) {
	if name == "_" && !p.version.Supports(javaversion.FeatureUnnamedVariables) {
		p.errorf(offset, "syntax error: unnamed variables (%q) require Java 25", name)
	}
}

func displayText(t token.Token) string {
	if t.Kind == token.END_OF_FILE {
		return "<end of file>"
	}
	return t.OriginalText
}

// mark is a (token position, arena length, diagnostic count, depth-guard
// flag) checkpoint for a speculative parse attempt.
type mark struct {
	stream        tokenstream.Mark
	arena         int
	diags         int
	depthExceeded bool
}

func (p *Parser) mark() mark {
	return mark{stream: p.stream.Mark(), arena: p.arena.Len(), diags: len(p.diagnostics), depthExceeded: p.depthExceeded}
}

// rollback restores the Parser to a previous mark, discarding every token
// consumption, arena allocation, and diagnostic made since. Used when a
// speculative sub-parse (lambda-vs-cast-vs-paren, type-vs-expression) turns
// out to have guessed wrong.
func (p *Parser) rollback(m mark) {
	p.stream.Reset(m.stream)
	p.arena.Truncate(m.arena)
	p.diagnostics = p.diagnostics[:m.diags]
	p.depthExceeded = m.depthExceeded
}

// speculate runs fn from the current position; if fn reports failure, every
// side effect fn made (token consumption, arena growth, diagnostics) is
// rolled back and speculate returns whatever value fn returned, with ok=false.
func speculate[T any](p *Parser, fn func() (T, bool)) (T, bool) {
	m := p.mark()
	v, ok := fn()
	if !ok {
		p.rollback(m)
	}
	return v, ok
}

// synchronize advances past tokens until a likely recovery point: a
// SEMICOLON (consumed), a RBRACE (not consumed, so the caller's enclosing
// block parser sees it), or END_OF_FILE. Modeled on the teacher's
// skipStatement, generalized from "next semicolon" to also stop at a
// closing brace so recovery doesn't swallow an entire enclosing block.
func (p *Parser) synchronize() {
	for {
		t := p.cur()
		switch t.Kind {
		case token.SEMICOLON:
			p.advance()
			return
		case token.RBRACE, token.END_OF_FILE:
			return
		default:
			p.advance()
		}
	}
}
