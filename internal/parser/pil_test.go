package parser

import (
	"testing"

	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/source"
)

func parsePILString(t *testing.T, input string) *ast.PILFile {
	t.Helper()
	file, err := ParsePILFile(input, source.NewFileContext(input))
	if err != nil {
		t.Fatalf("ParsePILFile(%q): unexpected error: %v", input, err)
	}
	return file
}

func TestParsePILFile_LetWithArithmeticInitializer(t *testing.T) {
	file := parsePILString(t, "let x = 1 + 2 * 3;")
	if len(file.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(file.Statements))
	}
	let, ok := file.Statements[0].(ast.LetStatement)
	if !ok {
		t.Fatalf("expected LetStatement, got %T", file.Statements[0])
	}
	top := asBinary(t, let.Value)
	if top.Op != ast.OpAdd {
		t.Fatalf("expected top-level OpAdd, got %v", top.Op)
	}
	right := asBinary(t, top.Right)
	if right.Op != ast.OpMul {
		t.Fatalf("expected right-hand OpMul, got %v", right.Op)
	}
}

func TestParsePILFile_NamespaceAndPolCommit(t *testing.T) {
	file := parsePILString(t, "namespace Foo(8); pol commit a, b;")
	if len(file.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(file.Statements))
	}
	commit, ok := file.Statements[1].(ast.PolynomialCommitDeclaration)
	if !ok {
		t.Fatalf("expected PolynomialCommitDeclaration, got %T", file.Statements[1])
	}
	if len(commit.Names) != 2 || commit.Names[0] != "a" || commit.Names[1] != "b" {
		t.Fatalf("expected names [a, b], got %v", commit.Names)
	}
	if commit.Stage != nil {
		t.Fatalf("expected no stage, got %v", *commit.Stage)
	}
	if commit.Query != nil {
		t.Fatalf("expected no query body, got %v", commit.Query)
	}
}

func TestParsePILFile_ArrayConcatInPolynomialConstant(t *testing.T) {
	// [1, 2] + [3]* in a polynomial-constant-definition RHS concatenates a
	// finite value with a repeated value.
	file := parsePILString(t, "pol constant a = [1, 2] + [3]*;")
	def, ok := file.Statements[0].(ast.PolynomialConstantDefinition)
	if !ok {
		t.Fatalf("expected PolynomialConstantDefinition, got %T", file.Statements[0])
	}
	top := asBinary(t, def.Value)
	if top.Op != ast.OpAdd {
		t.Fatalf("expected top-level OpAdd, got %v", top.Op)
	}
	left, ok := top.Left.(ast.ExprArray)
	if !ok || left.Repeated {
		t.Fatalf("expected non-repeated array on the left, got %#v", top.Left)
	}
	right, ok := top.Right.(ast.ExprArray)
	if !ok || !right.Repeated {
		t.Fatalf("expected repeated array on the right, got %#v", top.Right)
	}
}

func TestParsePILFile_PlookupIdentity(t *testing.T) {
	file := parsePILString(t, "{ a, b } in { c, d };")
	pl, ok := file.Statements[0].(ast.PlookupIdentity)
	if !ok {
		t.Fatalf("expected PlookupIdentity, got %T", file.Statements[0])
	}
	if len(pl.Left.Exprs) != 2 || len(pl.Right.Exprs) != 2 {
		t.Fatalf("expected 2 exprs on each side, got %d/%d", len(pl.Left.Exprs), len(pl.Right.Exprs))
	}
}

func TestParsePILFile_ConnectIdentity(t *testing.T) {
	file := parsePILString(t, "{ a, b } connect { c, d };")
	c, ok := file.Statements[0].(ast.ConnectIdentity)
	if !ok {
		t.Fatalf("expected ConnectIdentity, got %T", file.Statements[0])
	}
	if len(c.Left) != 2 || len(c.Right) != 2 {
		t.Fatalf("expected 2 exprs on each side, got %d/%d", len(c.Left), len(c.Right))
	}
}

func TestParsePILFile_BlockExpressionStatementNotMistakenForIdentity(t *testing.T) {
	// A brace-led block expression not followed by connect/in/is backtracks
	// into an ordinary bare-expression statement.
	file := parsePILString(t, "{ let y = 1; y + 1 };")
	bare, ok := file.Statements[0].(ast.BareExpressionStatement)
	if !ok {
		t.Fatalf("expected BareExpressionStatement, got %T", file.Statements[0])
	}
	if _, ok := bare.Expr.(ast.ExprBlock); !ok {
		t.Fatalf("expected ExprBlock, got %T", bare.Expr)
	}
}

func TestParsePILFile_UnexpectedTokenAfterLet(t *testing.T) {
	_, err := ParsePILFile("let = 1;", source.NewFileContext("let = 1;"))
	if err == nil {
		t.Fatalf("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != UnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v", pe.Kind)
	}
}

func TestParsePILFile_UnterminatedString(t *testing.T) {
	input := "include \"unterminated;"
	_, err := ParsePILFile(input, source.NewFileContext(input))
	if err == nil {
		t.Fatalf("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != LexicalError {
		t.Fatalf("expected LexicalError, got %v", pe.Kind)
	}
}

func TestParseTypeSymbolPath_RejectsIntInTypePosition(t *testing.T) {
	// Using `int` as a path part inside a type position is UnexpectedToken.
	_, err := ParseType("foo::int", source.NewFileContext("foo::int"))
	if err == nil {
		t.Fatalf("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != UnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v", pe.Kind)
	}
}
