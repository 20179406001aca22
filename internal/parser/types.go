package parser

import (
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// parseType is the `parse_type` public recognizer (spec.md §6): named,
// bottom, bool, int, fe, string, col, expr, constr, array, tuple, function.
func (p *Parser) parseType() (ast.Type, error) {
	base, err := p.parseArrayType()
	if err != nil {
		return ast.Type{}, err
	}
	if p.at(token.ARROW) {
		p.advance()
		result, err := p.parseType()
		if err != nil {
			return ast.Type{}, err
		}
		params := []ast.Type{base}
		if base.Kind == ast.TypeTuple {
			params = base.Elems
		}
		fn := ast.Type{Kind: ast.TypeFunction, Params: params, Result: &result}
		fn.SrcRef = base.SrcRef
		return fn, nil
	}
	return base, nil
}

// parseArrayType parses a primary type followed by an optional `[len?]`
// array suffix.
func (p *Parser) parseArrayType() (ast.Type, error) {
	elem, err := p.parsePrimaryType()
	if err != nil {
		return ast.Type{}, err
	}
	if p.at(token.LBRACK) {
		p.advance()
		var length ast.Expression
		if !p.at(token.RBRACK) {
			length, err = p.parseExpression()
			if err != nil {
				return ast.Type{}, err
			}
		}
		if _, err := p.expect(token.RBRACK, "]"); err != nil {
			return ast.Type{}, err
		}
		arr := ast.Type{Kind: ast.TypeArray, Elem: &elem, Length: length}
		arr.SrcRef = elem.SrcRef
		return arr, nil
	}
	return elem, nil
}

func (p *Parser) parsePrimaryType() (ast.Type, error) {
	tok := p.cur
	ref := p.ref(tok)
	switch tok.Type {
	case token.BANG:
		p.advance()
		t := ast.Type{Kind: ast.TypeBottom}
		t.SrcRef = ref
		return t, nil
	case token.BOOL:
		p.advance()
		t := ast.Type{Kind: ast.TypeBool}
		t.SrcRef = ref
		return t, nil
	case token.INT:
		p.advance()
		t := ast.Type{Kind: ast.TypeInt}
		t.SrcRef = ref
		return t, nil
	case token.FE:
		p.advance()
		t := ast.Type{Kind: ast.TypeFe}
		t.SrcRef = ref
		return t, nil
	case token.STR:
		p.advance()
		t := ast.Type{Kind: ast.TypeString}
		t.SrcRef = ref
		return t, nil
	case token.COL:
		p.advance()
		t := ast.Type{Kind: ast.TypeCol}
		t.SrcRef = ref
		return t, nil
	case token.EXPR:
		p.advance()
		t := ast.Type{Kind: ast.TypeExpr}
		t.SrcRef = ref
		return t, nil
	case token.CONSTR:
		p.advance()
		t := ast.Type{Kind: ast.TypeConstr}
		t.SrcRef = ref
		return t, nil
	case token.LPAREN:
		return p.parseTupleType(ref)
	default:
		return p.parseNamedType(ref)
	}
}

func (p *Parser) parseTupleType(ref ast.SourceRef) (ast.Type, error) {
	p.advance() // (
	var elems []ast.Type
	for !p.at(token.RPAREN) {
		ty, err := p.parseType()
		if err != nil {
			return ast.Type{}, err
		}
		elems = append(elems, ty)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return ast.Type{}, err
	}
	t := ast.Type{Kind: ast.TypeTuple, Elems: elems}
	t.SrcRef = ref
	return t, nil
}

func (p *Parser) parseNamedType(ref ast.SourceRef) (ast.Type, error) {
	path, err := p.parseTypeSymbolPath()
	if err != nil {
		return ast.Type{}, err
	}
	var typeArgs []ast.Type
	if p.at(token.LESS) {
		p.advance()
		for !p.at(token.GREATER) {
			ty, err := p.parseType()
			if err != nil {
				return ast.Type{}, err
			}
			typeArgs = append(typeArgs, ty)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.GREATER, ">"); err != nil {
			return ast.Type{}, err
		}
	}
	t := ast.Type{Kind: ast.TypeNamed, Name: path, TypeArgs: typeArgs}
	t.SrcRef = ref
	return t, nil
}

// parseTypeVarBounds is the `parse_type_var_bounds` public recognizer: a
// `<T, U: Bound1 + Bound2, ...>` generic parameter list.
func (p *Parser) parseTypeVarBounds() ([]ast.TypeVarBound, error) {
	if _, err := p.expect(token.LESS, "<"); err != nil {
		return nil, err
	}
	var vars []ast.TypeVarBound
	for !p.at(token.GREATER) {
		name, err := p.expect(token.IDENT_UPPER, "type variable")
		if err != nil {
			return nil, err
		}
		tv := ast.TypeVarBound{Name: name.Literal}
		if p.at(token.COLON) {
			p.advance()
			for {
				bound, err := p.expectIdent()
				if err != nil {
					return nil, err
				}
				tv.Bounds = append(tv.Bounds, bound.Literal)
				if p.at(token.PLUS) {
					p.advance()
					continue
				}
				break
			}
		}
		vars = append(vars, tv)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.GREATER, ">"); err != nil {
		return nil, err
	}
	return vars, nil
}

// parseOptionalStage parses a `stage(N)` clause, used by pol commit.
func (p *Parser) parseOptionalStage() (*int, error) {
	if !p.at(token.STAGE) {
		return nil, nil
	}
	p.advance()
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	numTok, err := p.expect(token.NUMBER, "number")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	v, ok := token.ParseNumber(numTok.Literal)
	if !ok || !v.IsInt64() {
		panic("stage number out of range: " + numTok.Literal)
	}
	n := int(v.Int64())
	return &n, nil
}
