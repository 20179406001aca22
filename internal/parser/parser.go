// Package parser implements the recursive-descent recognizer for both
// constraint-file (PIL) and module-file (ASM) source, sharing one
// precedence-climbing expression parser (spec.md §4).
//
// There is no panic-mode recovery: every parse function returns an error
// the moment the token stream diverges from the grammar, and that error
// propagates to the driver unchanged.
package parser

import (
	"math/big"

	"github.com/MuhtasimTanmoy/powdr/internal/lexer"
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/source"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// Parser holds one lexer and the source-reference context it stamps AST
// nodes with. It is not safe for concurrent use; each parse consumes its
// own Parser (spec.md §5).
type Parser struct {
	lex *lexer.Lexer
	ctx source.Context
	cur token.Token
}

// New creates a Parser reading from text, using ctx to stamp source
// references.
func New(text string, ctx source.Context) *Parser {
	p := &Parser{lex: lexer.New(text), ctx: ctx}
	p.cur = p.lex.NextToken()
	return p
}

// parserState is a lightweight speculative-parse checkpoint, used where
// the grammar requires a short lookahead across more than one token (the
// PIL brace-expression-list vs. plain block-expression ambiguity).
type parserState struct {
	lex lexer.LexerState
	cur token.Token
}

func (p *Parser) saveState() parserState {
	return parserState{lex: p.lex.SaveState(), cur: p.cur}
}

func (p *Parser) restoreState(s parserState) {
	p.lex.RestoreState(s.lex)
	p.cur = s.cur
}

func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.lex.NextToken()
	return tok
}

func (p *Parser) peek(n int) token.Token {
	return p.lex.Peek(n)
}

func (p *Parser) at(t token.TokenType) bool {
	return p.cur.Type == t
}

func (p *Parser) ref(tok token.Token) ast.SourceRef {
	return p.ctx.SourceRef(tok.Pos.Offset)
}

// expect consumes the current token if it matches t, otherwise returns an
// UnexpectedToken/UnexpectedEndOfInput error.
func (p *Parser) expect(t token.TokenType, expectedDesc string) (token.Token, error) {
	if p.cur.Type != t {
		return token.Token{}, unexpectedToken(p.cur, expectedDesc)
	}
	return p.advance(), nil
}

// checkLexErrors surfaces the first lexical error the lexer accumulated
// while tokenizing, if any. The lexer itself never stops at one; the
// parser does, per spec.md §7.
func (p *Parser) checkLexErrors() error {
	if errs := p.lex.Errors(); len(errs) > 0 {
		e := errs[0]
		return lexicalError(e.Pos.Offset, e.Message)
	}
	return nil
}

// softIdentTypes are the token types accepted wherever a plain lowercase
// identifier is expected, beyond IDENT_LOWER itself: the context-softened
// keywords of spec.md §4.1, §9, except in type position.
var softIdentTypes = map[token.TokenType]bool{
	token.FILE: true, token.LOC: true, token.INSN: true,
	token.INT: true, token.FE: true, token.EXPR: true, token.BOOL: true,
}

func isIdentLike(t token.TokenType) bool {
	return t == token.IDENT_LOWER || t == token.IDENT_UPPER || softIdentTypes[t]
}

// isIdentLikeNoTypeKeywords is the stricter identifier check used in type
// position: `int` and `fe` remain reserved there (spec.md §3, §4.1).
func isIdentLikeNoTypeKeywords(t token.TokenType) bool {
	if t == token.INT || t == token.FE {
		return false
	}
	return isIdentLike(t)
}

func (p *Parser) expectIdent() (token.Token, error) {
	if !isIdentLike(p.cur.Type) {
		return token.Token{}, unexpectedToken(p.cur, "identifier")
	}
	return p.advance(), nil
}

func parseBigInt(literal string) *big.Int {
	v, _ := token.ParseNumber(literal)
	return v
}

// ParsePILFile is the `parse_pil_file` entry point (spec.md §6).
func ParsePILFile(text string, ctx source.Context) (*ast.PILFile, error) {
	p := New(text, ctx)
	file, err := p.parsePILFile()
	// A lexical error is the root cause of any syntax error downstream of
	// it (a malformed token derails everything the parser reads next), so
	// it takes priority over whatever parse error it may have provoked.
	if lexErr := p.checkLexErrors(); lexErr != nil {
		return nil, lexErr
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// ParseASMModule is the `parse_asm_module` entry point (spec.md §6).
func ParseASMModule(text string, ctx source.Context) (*ast.ASMModule, error) {
	p := New(text, ctx)
	mod, err := p.parseASMModuleBody(token.EOF)
	if lexErr := p.checkLexErrors(); lexErr != nil {
		return nil, lexErr
	}
	if err != nil {
		return nil, err
	}
	return mod, nil
}

// The recognizers below are the additional public entry points spec.md §6
// exposes for testing and composition, each running in isolation over its
// own text/ctx pair rather than as a continuation of a larger parse.

// ParseSymbolPath is the `parse_symbol_path` public recognizer.
func ParseSymbolPath(text string, ctx source.Context) (ast.SymbolPath, error) {
	p := New(text, ctx)
	return p.parseSymbolPath()
}

// ParseType is the `parse_type` public recognizer.
func ParseType(text string, ctx source.Context) (ast.Type, error) {
	p := New(text, ctx)
	return p.parseType()
}

// ParseTypeVarBounds is the `parse_type_var_bounds` public recognizer.
func ParseTypeVarBounds(text string, ctx source.Context) ([]ast.TypeVarBound, error) {
	p := New(text, ctx)
	return p.parseTypeVarBounds()
}

// ParseRegisterDeclaration is the `parse_register_declaration` public
// recognizer.
func ParseRegisterDeclaration(text string, ctx source.Context) (ast.MachineStatement, error) {
	p := New(text, ctx)
	return p.parseRegisterDeclaration(p.ref(p.cur))
}

// ParseInstructionDeclaration is the `parse_instruction_declaration`
// public recognizer.
func ParseInstructionDeclaration(text string, ctx source.Context) (ast.MachineStatement, error) {
	p := New(text, ctx)
	return p.parseInstructionDeclaration(p.ref(p.cur))
}

// ParseInstruction is the `parse_instruction` public recognizer: the
// instruction signature and body without the leading `instr` keyword.
func ParseInstruction(text string, ctx source.Context) (ast.MachineStatement, error) {
	p := New(text, ctx)
	return p.parseInstruction(p.ref(p.cur))
}

// ParseLinkDeclaration is the `parse_link_declaration` public recognizer.
func ParseLinkDeclaration(text string, ctx source.Context) (ast.MachineStatement, error) {
	p := New(text, ctx)
	return p.parseLinkDeclaration(p.ref(p.cur))
}

// ParseInstructionBody is the `parse_instruction_body` public recognizer.
func ParseInstructionBody(text string, ctx source.Context) (ast.InstructionBody, error) {
	p := New(text, ctx)
	return p.parseInstructionBody()
}

// ParseCallableRef is the `parse_callable_ref` public recognizer.
func ParseCallableRef(text string, ctx source.Context) (ast.CallableRef, error) {
	p := New(text, ctx)
	return p.parseCallableRef()
}

// ParseFunctionStatement is the `parse_function_statement` public
// recognizer.
func ParseFunctionStatement(text string, ctx source.Context) (ast.FunctionStatement, error) {
	p := New(text, ctx)
	return p.parseFunctionStatement()
}
