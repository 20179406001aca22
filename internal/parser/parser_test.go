package parser

import (
	"testing"

	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/source"
)

func newTestParser(input string) *Parser {
	return New(input, source.NewFileContext(input))
}

func parseExprString(t *testing.T, input string) ast.Expression {
	t.Helper()
	p := newTestParser(input)
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("parseExpression(%q): unexpected error: %v", input, err)
	}
	return expr
}

func parseExprError(t *testing.T, input string) error {
	t.Helper()
	p := newTestParser(input)
	_, err := p.parseExpression()
	if err == nil {
		t.Fatalf("parseExpression(%q): expected error, got none", input)
	}
	return err
}

func asBinary(t *testing.T, e ast.Expression) ast.ExprBinary {
	t.Helper()
	b, ok := e.(ast.ExprBinary)
	if !ok {
		t.Fatalf("expected ast.ExprBinary, got %T", e)
	}
	return b
}

func asUnary(t *testing.T, e ast.Expression) ast.ExprUnary {
	t.Helper()
	u, ok := e.(ast.ExprUnary)
	if !ok {
		t.Fatalf("expected ast.ExprUnary, got %T", e)
	}
	return u
}

func asNumber(t *testing.T, e ast.Expression) ast.ExprNumber {
	t.Helper()
	n, ok := e.(ast.ExprNumber)
	if !ok {
		t.Fatalf("expected ast.ExprNumber, got %T", e)
	}
	return n
}
