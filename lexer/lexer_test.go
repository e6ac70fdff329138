package lexer

import (
	"testing"

	"github.com/cowwoc/styler-sub000/source"
	"github.com/cowwoc/styler-sub000/token"
)

func scanAll(t *testing.T, text string) []token.Token {
	t.Helper()
	src, err := source.New(text)
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	l := New(src)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.END_OF_FILE {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func assertKinds(t *testing.T, text string, want ...token.Kind) {
	t.Helper()
	want = append(want, token.END_OF_FILE)
	got := kinds(scanAll(t, text))
	if len(got) != len(want) {
		t.Fatalf("scanAll(%q) kinds = %v, want %v", text, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("scanAll(%q) kinds = %v, want %v", text, got, want)
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	assertKinds(t, "class Foo", token.CLASS, token.IDENTIFIER)
	assertKinds(t, "var x", token.IDENTIFIER, token.IDENTIFIER) // contextual: lexer never promotes
	assertKinds(t, "true false null", token.BOOLEAN_LITERAL, token.BOOLEAN_LITERAL, token.NULL_LITERAL)
}

func TestUnicodeEscapedKeyword(t *testing.T) {
	// "\\u0063lass" decodes to "class" and must still be recognized as the
	// keyword, per JLS §3.3: translation happens before any other
	// processing step, including keyword recognition.
	toks := scanAll(t, "\\u0063lass Foo")
	if toks[0].Kind != token.CLASS {
		t.Fatalf("got kind %v, want CLASS", toks[0].Kind)
	}
	if toks[0].OriginalText != "\\u0063lass" {
		t.Fatalf("OriginalText = %q, want original escape text", toks[0].OriginalText)
	}
	if toks[0].DecodedText != "class" {
		t.Fatalf("DecodedText = %q, want decoded text", toks[0].DecodedText)
	}
}

func TestMalformedEscapeProducesError(t *testing.T) {
	toks := scanAll(t, `\uZZZZ`)
	if toks[0].Kind != token.ERROR {
		t.Fatalf("got kind %v, want ERROR", toks[0].Kind)
	}
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
	}{
		{"42", token.INTEGER_LITERAL},
		{"42L", token.LONG_LITERAL},
		{"3.14", token.DOUBLE_LITERAL},
		{".5", token.DOUBLE_LITERAL},
		{"3.14f", token.FLOAT_LITERAL},
		{"1e10", token.DOUBLE_LITERAL},
		{"0x1F", token.INTEGER_LITERAL},
		{"0x1.8p3", token.DOUBLE_LITERAL},
		{"0b1010", token.INTEGER_LITERAL},
		{"1_000_000", token.INTEGER_LITERAL},
	}
	for _, c := range cases {
		assertKinds(t, c.text, c.kind)
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	assertKinds(t, `"hello"`, token.STRING_LITERAL)
	assertKinds(t, `"with \"escape\""`, token.STRING_LITERAL)
	assertKinds(t, `'a'`, token.CHAR_LITERAL)
	assertKinds(t, `'\n'`, token.CHAR_LITERAL)
	assertKinds(t, `'\177'`, token.CHAR_LITERAL)
}

func TestTextBlock(t *testing.T) {
	toks := scanAll(t, "\"\"\"\n    hello\n    \"\"\"")
	if toks[0].Kind != token.STRING_LITERAL {
		t.Fatalf("got kind %v, want STRING_LITERAL", toks[0].Kind)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	assertKinds(t, `"abc`, token.ERROR)
}

func TestComments(t *testing.T) {
	assertKinds(t, "// line\nx", token.LINE_COMMENT, token.IDENTIFIER)
	assertKinds(t, "/* block */x", token.BLOCK_COMMENT, token.IDENTIFIER)
	assertKinds(t, "/** javadoc */x", token.JAVADOC_COMMENT, token.IDENTIFIER)
	assertKinds(t, "/**/x", token.BLOCK_COMMENT, token.IDENTIFIER)
}

func TestUnterminatedBlockCommentIsError(t *testing.T) {
	assertKinds(t, "/* unterminated", token.ERROR)
}

func TestOperatorsDoNotGlueShiftRight(t *testing.T) {
	// The lexer must emit two separate GT tokens for ">>", never SHIFT_RIGHT,
	// so the parser can close nested generics like List<List<T>>.
	assertKinds(t, ">>", token.GT, token.GT)
	assertKinds(t, ">>>", token.GT, token.GT, token.GT)
	assertKinds(t, ">=", token.GE)
}

func TestShiftLeftIsGluedDirectly(t *testing.T) {
	assertKinds(t, "<<", token.SHIFT_LEFT)
	assertKinds(t, "<<=", token.SHIFT_LEFT_ASSIGN)
	assertKinds(t, "<=", token.LE)
}

func TestMultiCharOperators(t *testing.T) {
	assertKinds(t, "->", token.ARROW)
	assertKinds(t, "::", token.DOUBLE_COLON)
	assertKinds(t, "...", token.ELLIPSIS)
	assertKinds(t, "...." /* ellipsis then dot */, token.ELLIPSIS, token.DOT)
	assertKinds(t, "&&", token.AND_AND)
	assertKinds(t, "||", token.OR_OR)
	assertKinds(t, "++", token.INC)
	assertKinds(t, "--", token.DEC)
	assertKinds(t, "+=", token.PLUS_ASSIGN)
}

func TestNestedGenericsTokenizeAsSeparateAngleBrackets(t *testing.T) {
	assertKinds(t, "List<List<String>>",
		token.IDENTIFIER, token.LT, token.IDENTIFIER, token.LT, token.IDENTIFIER, token.GT, token.GT)
}
