package parser

import (
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// parsePattern recognizes the pattern grammar of spec.md §4.3: catch-all,
// signed number, string, tuple, array (with optional `..` ellipsis per
// element), variable. Enum patterns are not recognized (spec.md §9).
func (p *Parser) parsePattern() (ast.Pattern, error) {
	tok := p.cur
	ref := p.ref(tok)
	switch tok.Type {
	case token.UNDERSCORE:
		p.advance()
		return ast.PatternCatchAll{WithRef: ast.WithRef{SrcRef: ref}}, nil

	case token.MINUS:
		p.advance()
		numTok, err := p.expect(token.NUMBER, "number")
		if err != nil {
			return nil, err
		}
		return ast.PatternNumber{WithRef: ast.WithRef{SrcRef: ref}, Negative: true, Value: parseBigInt(numTok.Literal)}, nil

	case token.NUMBER:
		p.advance()
		return ast.PatternNumber{WithRef: ast.WithRef{SrcRef: ref}, Value: parseBigInt(tok.Literal)}, nil

	case token.STRINGLIT:
		p.advance()
		return ast.PatternString{WithRef: ast.WithRef{SrcRef: ref}, Value: tok.Literal}, nil

	case token.LPAREN:
		return p.parseTuplePattern(ref)

	case token.LBRACK:
		return p.parseArrayPattern(ref)

	default:
		if isIdentLike(tok.Type) {
			p.advance()
			return ast.PatternVariable{WithRef: ast.WithRef{SrcRef: ref}, Name: tok.Literal}, nil
		}
		return nil, unexpectedToken(tok, "pattern")
	}
}

func (p *Parser) parseTuplePattern(ref ast.SourceRef) (ast.Pattern, error) {
	p.advance() // (
	var elems []ast.Pattern
	sawComma := false
	for !p.at(token.RPAREN) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		elems = append(elems, pat)
		if p.at(token.COMMA) {
			p.advance()
			sawComma = true
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if len(elems) == 1 && !sawComma {
		// `(p)` is a parenthesized pattern, not a tuple.
		return elems[0], nil
	}
	return ast.PatternTuple{WithRef: ast.WithRef{SrcRef: ref}, Elems: elems}, nil
}

func (p *Parser) parseArrayPattern(ref ast.SourceRef) (ast.Pattern, error) {
	p.advance() // [
	var elems []ast.PatternArrayElem
	for !p.at(token.RBRACK) {
		if p.at(token.DOTDOT) {
			p.advance()
			elems = append(elems, ast.PatternArrayElem{Ellipsis: true})
		} else {
			pat, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			elems = append(elems, ast.PatternArrayElem{Pattern: pat})
		}
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACK, "]"); err != nil {
		return nil, err
	}
	return ast.PatternArray{WithRef: ast.WithRef{SrcRef: ref}, Elems: elems}, nil
}
