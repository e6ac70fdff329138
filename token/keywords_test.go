package token

import "testing"

func TestLookupKeywordReservedWords(t *testing.T) {
	k, ok := LookupKeyword("class")
	if !ok || k != CLASS {
		t.Fatalf("LookupKeyword(class) = (%v, %v), want (CLASS, true)", k, ok)
	}
}

func TestLookupKeywordLiterals(t *testing.T) {
	for _, spelling := range []string{"true", "false"} {
		k, ok := LookupKeyword(spelling)
		if !ok || k != BOOLEAN_LITERAL {
			t.Fatalf("LookupKeyword(%q) = (%v, %v), want (BOOLEAN_LITERAL, true)", spelling, k, ok)
		}
	}
	k, ok := LookupKeyword("null")
	if !ok || k != NULL_LITERAL {
		t.Fatalf("LookupKeyword(null) = (%v, %v), want (NULL_LITERAL, true)", k, ok)
	}
}

func TestLookupKeywordContextualWordsAreNotKeywords(t *testing.T) {
	for spelling := range ContextualKeywords {
		k, ok := LookupKeyword(spelling)
		if ok || k != IDENTIFIER {
			t.Fatalf("LookupKeyword(%q) = (%v, %v), want (IDENTIFIER, false) since contextual keywords are not lexer-level", spelling, k, ok)
		}
	}
}

func TestLookupKeywordOrdinaryIdentifier(t *testing.T) {
	k, ok := LookupKeyword("myVariable")
	if ok || k != IDENTIFIER {
		t.Fatalf("LookupKeyword(myVariable) = (%v, %v), want (IDENTIFIER, false)", k, ok)
	}
}

func TestIsKeywordExcludesContextual(t *testing.T) {
	if !CLASS.IsKeyword() {
		t.Fatalf("CLASS.IsKeyword() = false, want true")
	}
	if VAR.IsKeyword() {
		t.Fatalf("VAR.IsKeyword() = true, want false (contextual)")
	}
	if !VAR.IsContextual() {
		t.Fatalf("VAR.IsContextual() = false, want true")
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if CLASS.String() != "CLASS" {
		t.Fatalf("CLASS.String() = %q, want CLASS", CLASS.String())
	}
	if Kind(99999).String() != "UNKNOWN_KIND" {
		t.Fatalf("unknown Kind.String() = %q, want UNKNOWN_KIND", Kind(99999).String())
	}
}
