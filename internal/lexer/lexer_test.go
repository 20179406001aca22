package lexer

import (
	"testing"

	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

func TestNextTokenPunctuationAndKeywords(t *testing.T) {
	input := `let x = 1 + 2 * 3;`

	expected := []token.TokenType{
		token.LET, token.IDENT_LOWER, token.EQ, token.NUMBER, token.PLUS,
		token.NUMBER, token.STAR, token.NUMBER, token.SEMICOLON, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: got %s, want %s (literal %q)", i, tok.Type, want, tok.Literal)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"1_000_000", "1_000_000"},
		{"0xFF", "0xFF"},
		{"0x_FF_FF", "0x_FF_FF"},
	}
	for _, c := range cases {
		l := New(c.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("input %q: got type %s, want NUMBER", c.input, tok.Type)
		}
		if tok.Literal != c.want {
			t.Errorf("input %q: literal = %q, want %q", c.input, tok.Literal, c.want)
		}
	}
}

func TestNumberValueIgnoresUnderscores(t *testing.T) {
	withSep, ok1 := token.ParseNumber("1_000")
	without, ok2 := token.ParseNumber("1000")
	if !ok1 || !ok2 {
		t.Fatalf("ParseNumber failed: ok1=%v ok2=%v", ok1, ok2)
	}
	if withSep.Cmp(without) != 0 {
		t.Errorf("1_000 != 1000: got %s vs %s", withSep, without)
	}
}

func TestHexNumberBase16(t *testing.T) {
	v, ok := token.ParseNumber("0xFF")
	if !ok {
		t.Fatal("ParseNumber(0xFF) failed")
	}
	if v.Int64() != 255 {
		t.Errorf("0xFF = %s, want 255", v)
	}
}

func TestIdentifierClasses(t *testing.T) {
	cases := []struct {
		input string
		want  token.TokenType
	}{
		{"foo", token.IDENT_LOWER},
		{"_bar", token.IDENT_LOWER},
		{"Foo", token.IDENT_UPPER},
		{"T", token.IDENT_UPPER},
		{"%FOO", token.CONST_IDENT},
		{":pub", token.PUBLIC_IDENT},
	}
	for _, c := range cases {
		l := New(c.input)
		tok := l.NextToken()
		if tok.Type != c.want {
			t.Errorf("input %q: got %s, want %s", c.input, tok.Type, c.want)
		}
	}
}

func TestSoftKeywordsLexAsKeywordTokens(t *testing.T) {
	for _, kw := range []string{"file", "loc", "insn", "int", "fe", "expr", "bool"} {
		l := New(kw)
		tok := l.NextToken()
		if !tok.Type.IsKeyword() {
			t.Errorf("%q: got %s, want a keyword token (softening happens in the parser, not the lexer)", kw, tok.Type)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "let // line comment\nx /* block\ncomment */ = 1;"
	l := New(input)
	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	want := []token.TokenType{token.LET, token.IDENT_LOWER, token.EQ, token.NUMBER, token.SEMICOLON, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
}

func TestUnterminatedStringProducesLexError(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != token.STRINGLIT {
		t.Fatalf("got %s, want STRINGLIT", tok.Type)
	}
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lexical error for unterminated string")
	}
}

func TestPeekLookahead(t *testing.T) {
	l := New("a :: < int , fe >")
	if l.Peek(0).Type != token.IDENT_LOWER {
		t.Fatalf("peek(0) = %s", l.Peek(0).Type)
	}
	if l.Peek(1).Type != token.COLONCOLON {
		t.Fatalf("peek(1) = %s", l.Peek(1).Type)
	}
	// consuming should still return tokens in order
	first := l.NextToken()
	if first.Type != token.IDENT_LOWER {
		t.Fatalf("first token = %s", first.Type)
	}
}

func TestArrayRepetitionPunctuation(t *testing.T) {
	l := New("[1, 2] + [3]*")
	var got []string
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		got = append(got, tok.Literal)
	}
	want := []string{"[", "1", ",", "2", "]", "+", "[", "3", "]", "*"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
