package parser

import (
	"testing"

	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
)

func TestParseExpression_AddMulPrecedence(t *testing.T) {
	// a + b * c parses as a + (b * c)
	expr := parseExprString(t, "a + b * c")
	top := asBinary(t, expr)
	if top.Op != ast.OpAdd {
		t.Fatalf("expected top-level OpAdd, got %v", top.Op)
	}
	right := asBinary(t, top.Right)
	if right.Op != ast.OpMul {
		t.Fatalf("expected right-hand OpMul, got %v", right.Op)
	}
}

func TestParseExpression_PowerRightAssociative(t *testing.T) {
	// a ** b ** c parses right-associatively as a ** (b ** c)
	expr := parseExprString(t, "a ** b ** c")
	top := asBinary(t, expr)
	if top.Op != ast.OpPow {
		t.Fatalf("expected top-level OpPow, got %v", top.Op)
	}
	right := asBinary(t, top.Right)
	if right.Op != ast.OpPow {
		t.Fatalf("expected right-hand OpPow, got %v", right.Op)
	}
}

func TestParseExpression_UnaryBindsLooserThanPower(t *testing.T) {
	// -a ** b parses as -(a ** b)
	expr := parseExprString(t, "-a ** b")
	u := asUnary(t, expr)
	if u.Op != ast.OpNeg {
		t.Fatalf("expected OpNeg, got %v", u.Op)
	}
	inner := asBinary(t, u.Operand)
	if inner.Op != ast.OpPow {
		t.Fatalf("expected OpPow inside unary, got %v", inner.Op)
	}
}

func TestParseExpression_NextRowPostfixBindsTighterThanAdd(t *testing.T) {
	// a' + b parses as (a') + b
	expr := parseExprString(t, "a' + b")
	top := asBinary(t, expr)
	if top.Op != ast.OpAdd {
		t.Fatalf("expected top-level OpAdd, got %v", top.Op)
	}
	left := asUnary(t, top.Left)
	if left.Op != ast.OpNextRow {
		t.Fatalf("expected OpNextRow on left operand, got %v", left.Op)
	}
}

func TestParseExpression_ComparisonNonAssociative(t *testing.T) {
	// a < b < c is a syntax error
	err := parseExprError(t, "a < b < c")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Kind != UnexpectedToken {
		t.Fatalf("expected UnexpectedToken, got %v", pe.Kind)
	}
}

func TestParseExpression_NumberUnderscoreSeparators(t *testing.T) {
	withUnderscore := asNumber(t, parseExprString(t, "1_000_000"))
	without := asNumber(t, parseExprString(t, "1000000"))
	if withUnderscore.Value.Cmp(without.Value) != 0 {
		t.Fatalf("expected %s == %s", withUnderscore.Value, without.Value)
	}
}

func TestParseExpression_HexNumber(t *testing.T) {
	n := asNumber(t, parseExprString(t, "0xFF"))
	if n.Value.Int64() != 255 {
		t.Fatalf("expected 255, got %s", n.Value)
	}
}

func TestParseExpression_MatchExpression(t *testing.T) {
	// match x { 0 => 1, _ => 2, } has two arms: Number(0) and CatchAll
	expr := parseExprString(t, "match x { 0 => 1, _ => 2, }")
	m, ok := expr.(ast.ExprMatch)
	if !ok {
		t.Fatalf("expected ast.ExprMatch, got %T", expr)
	}
	if len(m.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(m.Arms))
	}
	if _, ok := m.Arms[0].Pattern.(ast.PatternNumber); !ok {
		t.Fatalf("expected first arm pattern PatternNumber, got %T", m.Arms[0].Pattern)
	}
	if _, ok := m.Arms[1].Pattern.(ast.PatternCatchAll); !ok {
		t.Fatalf("expected second arm pattern PatternCatchAll, got %T", m.Arms[1].Pattern)
	}
}

func TestParseExpression_PureLambda(t *testing.T) {
	// |x, y| x + y is a pure lambda with two variable patterns and an
	// addition body
	expr := parseExprString(t, "|x, y| x + y")
	l, ok := expr.(ast.ExprLambda)
	if !ok {
		t.Fatalf("expected ast.ExprLambda, got %T", expr)
	}
	if l.Kind != ast.LambdaPure {
		t.Fatalf("expected LambdaPure, got %v", l.Kind)
	}
	if len(l.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(l.Params))
	}
	for i, param := range l.Params {
		if _, ok := param.(ast.PatternVariable); !ok {
			t.Fatalf("param %d: expected PatternVariable, got %T", i, param)
		}
	}
	asBinary(t, l.Body)
}

func TestParseExpression_GenericReference(t *testing.T) {
	// a::b::<int, fe> is a generic reference with path a::b and type
	// arguments [Int, Fe]
	expr := parseExprString(t, "a::b::<int, fe>")
	ref, ok := expr.(ast.ExprReference)
	if !ok {
		t.Fatalf("expected ast.ExprReference, got %T", expr)
	}
	if ref.Path.Path.String() != "a::b" {
		t.Fatalf("expected path a::b, got %s", ref.Path.Path.String())
	}
	if len(ref.Path.TypeArgs) != 2 {
		t.Fatalf("expected 2 type args, got %d", len(ref.Path.TypeArgs))
	}
	if ref.Path.TypeArgs[0].Kind != ast.TypeInt || ref.Path.TypeArgs[1].Kind != ast.TypeFe {
		t.Fatalf("expected [Int, Fe], got %v", ref.Path.TypeArgs)
	}
}

func TestParseExpression_TrailingOperatorIsUnexpectedEOF(t *testing.T) {
	err := parseExprError(t, "1 + ")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Kind != UnexpectedEndOfInput {
		t.Fatalf("expected UnexpectedEndOfInput, got %v", pe.Kind)
	}
}
