package token

// Keywords is a map of reserved Java keywords to their token kind.
//
// Modeled on the teacher's `keywords map[string]int` in parser/token.go:
// a flat lowercase-spelling-to-kind table the lexer consults after scanning
// an identifier. Unlike the teacher, Java keyword spellings are
// case-sensitive, so lookups here are NOT lowercased first (contrast
// scanIdentifier's bytes.ToLower in the teacher, required because SQL
// keywords are case-insensitive).
//
// Contextual keywords (var, yield, record, sealed, permits, module, open,
// requires, exports, opens, uses, provides, to, with, transitive, when) are
// deliberately absent: they lex as IDENTIFIER and are promoted by the parser
// only where grammatically unambiguous (spec.md §3.1, §4.4).
var Keywords = map[string]Kind{
	"abstract":     ABSTRACT,
	"assert":       ASSERT,
	"boolean":      BOOLEAN,
	"break":        BREAK,
	"byte":         BYTE,
	"case":         CASE,
	"catch":        CATCH,
	"char":         CHAR,
	"class":        CLASS,
	"const":        CONST,
	"continue":     CONTINUE,
	"default":      DEFAULT,
	"do":           DO,
	"double":       DOUBLE,
	"else":         ELSE,
	"enum":         ENUM,
	"extends":      EXTENDS,
	"final":        FINAL,
	"finally":      FINALLY,
	"float":        FLOAT,
	"for":          FOR,
	"goto":         GOTO,
	"if":           IF,
	"implements":   IMPLEMENTS,
	"import":       IMPORT,
	"instanceof":   INSTANCEOF,
	"int":          INT,
	"interface":    INTERFACE,
	"long":         LONG,
	"native":       NATIVE,
	"new":          NEW,
	"package":      PACKAGE,
	"private":      PRIVATE,
	"protected":    PROTECTED,
	"public":       PUBLIC,
	"return":       RETURN,
	"short":        SHORT,
	"static":       STATIC,
	"strictfp":     STRICTFP,
	"super":        SUPER,
	"switch":       SWITCH,
	"synchronized": SYNCHRONIZED,
	"this":         THIS,
	"throw":        THROW,
	"throws":       THROWS,
	"transient":    TRANSIENT,
	"try":          TRY,
	"void":         VOID,
	"volatile":     VOLATILE,
	"while":        WHILE,
}

// BooleanLiterals and NullLiteral are classified as keywords lexically but
// carry literal kinds, since (per spec.md §3.1) true/false/null are literal
// tokens, not ordinary keyword tokens.
const (
	trueSpelling  = "true"
	falseSpelling = "false"
	nullSpelling  = "null"
)

// ContextualKeywords maps the spellings the parser may promote from
// IDENTIFIER, keyed by decoded text. The lexer never consults this table;
// only parser code does, at the specific productions spec.md names (modifier
// lists, case-label guards, module declarations).
var ContextualKeywords = map[string]Kind{
	"var":        VAR,
	"yield":      YIELD,
	"record":     RECORD,
	"sealed":     SEALED,
	"permits":    PERMITS,
	"module":     MODULE,
	"open":       OPEN,
	"requires":   REQUIRES,
	"exports":    EXPORTS,
	"opens":      OPENS,
	"uses":       USES,
	"provides":   PROVIDES,
	"to":         TO,
	"with":       WITH,
	"transitive": TRANSITIVE,
	"when":       WHEN,
}

// LookupKeyword classifies decoded identifier text, returning (kind, true)
// for the closed keyword set, or (IDENTIFIER, false) otherwise. Boolean and
// null literals are folded in here since their lexical recognition is
// identical to a keyword lookup even though their Kind is a literal kind.
func LookupKeyword(decoded string) (Kind, bool) {
	switch decoded {
	case trueSpelling, falseSpelling:
		return BOOLEAN_LITERAL, true
	case nullSpelling:
		return NULL_LITERAL, true
	}
	if k, ok := Keywords[decoded]; ok {
		return k, true
	}
	return IDENTIFIER, false
}
