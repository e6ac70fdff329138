package token

var kindNames = map[Kind]string{
	ILLEGAL:     "ILLEGAL",
	END_OF_FILE: "END_OF_FILE",
	ERROR:       "ERROR",
	IDENTIFIER:  "IDENTIFIER",

	INTEGER_LITERAL: "INTEGER_LITERAL",
	LONG_LITERAL:    "LONG_LITERAL",
	FLOAT_LITERAL:   "FLOAT_LITERAL",
	DOUBLE_LITERAL:  "DOUBLE_LITERAL",
	CHAR_LITERAL:    "CHAR_LITERAL",
	STRING_LITERAL:  "STRING_LITERAL",
	BOOLEAN_LITERAL: "BOOLEAN_LITERAL",
	NULL_LITERAL:    "NULL_LITERAL",

	LINE_COMMENT:    "LINE_COMMENT",
	BLOCK_COMMENT:   "BLOCK_COMMENT",
	JAVADOC_COMMENT: "JAVADOC_COMMENT",

	ABSTRACT: "ABSTRACT", ASSERT: "ASSERT", BOOLEAN: "BOOLEAN", BREAK: "BREAK",
	BYTE: "BYTE", CASE: "CASE", CATCH: "CATCH", CHAR: "CHAR", CLASS: "CLASS",
	CONST: "CONST", CONTINUE: "CONTINUE", DEFAULT: "DEFAULT", DO: "DO",
	DOUBLE: "DOUBLE", ELSE: "ELSE", ENUM: "ENUM", EXTENDS: "EXTENDS",
	FINAL: "FINAL", FINALLY: "FINALLY", FLOAT: "FLOAT", FOR: "FOR",
	GOTO: "GOTO", IF: "IF", IMPLEMENTS: "IMPLEMENTS", IMPORT: "IMPORT",
	INSTANCEOF: "INSTANCEOF", INT: "INT", INTERFACE: "INTERFACE", LONG: "LONG",
	NATIVE: "NATIVE", NEW: "NEW", PACKAGE: "PACKAGE", PRIVATE: "PRIVATE",
	PROTECTED: "PROTECTED", PUBLIC: "PUBLIC", RETURN: "RETURN", SHORT: "SHORT",
	STATIC: "STATIC", STRICTFP: "STRICTFP", SUPER: "SUPER", SWITCH: "SWITCH",
	SYNCHRONIZED: "SYNCHRONIZED", THIS: "THIS", THROW: "THROW", THROWS: "THROWS",
	TRANSIENT: "TRANSIENT", TRY: "TRY", VOID: "VOID", VOLATILE: "VOLATILE",
	WHILE: "WHILE",

	VAR: "VAR", YIELD: "YIELD", RECORD: "RECORD", SEALED: "SEALED",
	NON_SEALED: "NON_SEALED", PERMITS: "PERMITS", MODULE: "MODULE", OPEN: "OPEN",
	REQUIRES: "REQUIRES", EXPORTS: "EXPORTS", OPENS: "OPENS", USES: "USES",
	PROVIDES: "PROVIDES", TO: "TO", WITH: "WITH", TRANSITIVE: "TRANSITIVE",
	WHEN: "WHEN",

	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACE: "LBRACE", RBRACE: "RBRACE",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET", SEMICOLON: "SEMICOLON",
	COMMA: "COMMA", DOT: "DOT", ELLIPSIS: "ELLIPSIS", AT: "AT",

	ASSIGN: "ASSIGN", GT: "GT", LT: "LT", BANG: "BANG", TILDE: "TILDE",
	QUESTION: "QUESTION", COLON: "COLON", ARROW: "ARROW", EQ: "EQ", GE: "GE",
	LE: "LE", NE: "NE", AND_AND: "AND_AND", OR_OR: "OR_OR", INC: "INC",
	DEC: "DEC", PLUS: "PLUS", MINUS: "MINUS", STAR: "STAR", SLASH: "SLASH",
	AMP: "AMP", PIPE: "PIPE", CARET: "CARET", PERCENT: "PERCENT",
	SHIFT_LEFT: "SHIFT_LEFT", SHIFT_RIGHT: "SHIFT_RIGHT",
	UNSIGNED_SHIFT_RIGHT: "UNSIGNED_SHIFT_RIGHT",
	PLUS_ASSIGN: "PLUS_ASSIGN", MINUS_ASSIGN: "MINUS_ASSIGN",
	STAR_ASSIGN: "STAR_ASSIGN", SLASH_ASSIGN: "SLASH_ASSIGN",
	AMP_ASSIGN: "AMP_ASSIGN", PIPE_ASSIGN: "PIPE_ASSIGN",
	CARET_ASSIGN: "CARET_ASSIGN", PERCENT_ASSIGN: "PERCENT_ASSIGN",
	SHIFT_LEFT_ASSIGN: "SHIFT_LEFT_ASSIGN", SHIFT_RIGHT_ASSIGN: "SHIFT_RIGHT_ASSIGN",
	UNSIGNED_SHIFT_RIGHT_ASSIGN: "UNSIGNED_SHIFT_RIGHT_ASSIGN",
	DOUBLE_COLON:                "DOUBLE_COLON",
}
