// Package pilc is the public driver facade over internal/lexer and
// internal/parser (spec.md §4.5, §6): the two file-level entry points
// plus the additional recognizers exposed for testing and composition.
package pilc

import (
	"github.com/MuhtasimTanmoy/powdr/internal/parser"
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/source"
)

// ParseError is re-exported so callers can type-switch on it without
// importing internal/parser directly.
type ParseError = parser.ParseError

// ParsePILFile parses a constraint (PIL) source file.
func ParsePILFile(text string, ctx source.Context) (*ast.PILFile, error) {
	return parser.ParsePILFile(text, ctx)
}

// ParseASMModule parses a module (ASM) source file.
func ParseASMModule(text string, ctx source.Context) (*ast.ASMModule, error) {
	return parser.ParseASMModule(text, ctx)
}

// ParsePILFileString is a convenience wrapper building a default
// line-indexed source.Context over text.
func ParsePILFileString(text string) (*ast.PILFile, error) {
	return ParsePILFile(text, source.NewFileContext(text))
}

// ParseASMModuleString is a convenience wrapper building a default
// line-indexed source.Context over text.
func ParseASMModuleString(text string) (*ast.ASMModule, error) {
	return ParseASMModule(text, source.NewFileContext(text))
}

// ParseSymbolPath is the `parse_symbol_path` public recognizer.
func ParseSymbolPath(text string, ctx source.Context) (ast.SymbolPath, error) {
	return parser.ParseSymbolPath(text, ctx)
}

// ParseType is the `parse_type` public recognizer.
func ParseType(text string, ctx source.Context) (ast.Type, error) {
	return parser.ParseType(text, ctx)
}

// ParseTypeVarBounds is the `parse_type_var_bounds` public recognizer.
func ParseTypeVarBounds(text string, ctx source.Context) ([]ast.TypeVarBound, error) {
	return parser.ParseTypeVarBounds(text, ctx)
}

// ParseRegisterDeclaration is the `parse_register_declaration` public
// recognizer.
func ParseRegisterDeclaration(text string, ctx source.Context) (ast.MachineStatement, error) {
	return parser.ParseRegisterDeclaration(text, ctx)
}

// ParseInstructionDeclaration is the `parse_instruction_declaration`
// public recognizer.
func ParseInstructionDeclaration(text string, ctx source.Context) (ast.MachineStatement, error) {
	return parser.ParseInstructionDeclaration(text, ctx)
}

// ParseInstruction is the `parse_instruction` public recognizer.
func ParseInstruction(text string, ctx source.Context) (ast.MachineStatement, error) {
	return parser.ParseInstruction(text, ctx)
}

// ParseLinkDeclaration is the `parse_link_declaration` public recognizer.
func ParseLinkDeclaration(text string, ctx source.Context) (ast.MachineStatement, error) {
	return parser.ParseLinkDeclaration(text, ctx)
}

// ParseInstructionBody is the `parse_instruction_body` public recognizer.
func ParseInstructionBody(text string, ctx source.Context) (ast.InstructionBody, error) {
	return parser.ParseInstructionBody(text, ctx)
}

// ParseCallableRef is the `parse_callable_ref` public recognizer.
func ParseCallableRef(text string, ctx source.Context) (ast.CallableRef, error) {
	return parser.ParseCallableRef(text, ctx)
}

// ParseFunctionStatement is the `parse_function_statement` public
// recognizer.
func ParseFunctionStatement(text string, ctx source.Context) (ast.FunctionStatement, error) {
	return parser.ParseFunctionStatement(text, ctx)
}
