package token

// keywords maps the exact (case-sensitive) spelling of each reserved word
// to its TokenType. The source language has no case folding.
var keywords = map[string]TokenType{
	"mod":            MOD,
	"use":            USE,
	"as":             AS,
	"super":          SUPER,
	"let":            LET,
	"namespace":      NAMESPACE,
	"include":        INCLUDE,
	"constant":       CONSTANT,
	"public":         PUBLIC,
	"pol":            POL,
	"col":            COL,
	"commit":         COMMIT,
	"witness":        WITNESS,
	"fixed":          FIXED,
	"stage":          STAGE,
	"query":          QUERY,
	"constr":         CONSTR,
	"enum":           ENUM,
	"match":          MATCH,
	"if":             IF,
	"else":           ELSE,
	"in":             IN,
	"is":             IS,
	"connect":        CONNECT,
	"machine":        MACHINE,
	"degree":         DEGREE,
	"call_selectors": CALL_SELECTORS,
	"reg":            REG,
	"instr":          INSTR,
	"link":           LINK,
	"function":       FUNCTION,
	"operation":      OPERATION,
	"return":         RETURN,
	"file":           FILE,
	"loc":            LOC,
	"insn":           INSN,
	"int":            INT,
	"fe":             FE,
	"expr":           EXPR,
	"bool":           BOOL,
	"string":         STR,
}

// softKeywords is the set of reserved words that §4.1/§6 also accept as a
// plain identifier in positions where the grammar expects one. `int` and
// `fe` are included here (they are valid identifiers in general position)
// but remain reserved in type position. IsSoftKeyword exposes this set;
// internal/parser keeps its own equal set (softIdentTypes) and does not
// call it, and type-position parsing rejects `int`/`fe` outright.
var softKeywords = map[TokenType]bool{
	FILE: true,
	LOC:  true,
	INSN: true,
	INT:  true,
	FE:   true,
	EXPR: true,
	BOOL: true,
}

// LookupIdent classifies a scanned lowercase-leading identifier body as
// either a keyword TokenType or IDENT_LOWER.
func LookupIdent(literal string) TokenType {
	if tt, ok := keywords[literal]; ok {
		return tt
	}
	return IDENT_LOWER
}

// IsKeyword reports whether literal is one of the reserved words.
func IsKeyword(literal string) bool {
	_, ok := keywords[literal]
	return ok
}

// IsSoftKeyword reports whether a keyword token may also be accepted as a
// plain identifier outside of type position (spec.md §4.1, §9).
func IsSoftKeyword(t TokenType) bool {
	return softKeywords[t]
}
