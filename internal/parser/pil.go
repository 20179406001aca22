package parser

import (
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// parsePILFile parses the constraint-file entry point (spec.md §4.4).
func (p *Parser) parsePILFile() (*ast.PILFile, error) {
	var stmts []ast.PilStatement
	for !p.at(token.EOF) {
		stmt, err := p.parsePilStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.PILFile{Statements: stmts}, nil
}

// parsePilStatement dispatches on the leading keyword, falling through to
// the plookup/permutation/connect/bare-expression path when none matches.
func (p *Parser) parsePilStatement() (ast.PilStatement, error) {
	switch p.cur.Type {
	case token.INCLUDE:
		return p.parseIncludeStatement()
	case token.NAMESPACE:
		return p.parseNamespaceStatement()
	case token.LET:
		return p.parseLetStatement()
	case token.CONSTANT:
		return p.parseConstantDefinition()
	case token.PUBLIC:
		return p.parsePublicDeclaration()
	case token.POL, token.COL:
		return p.parsePolStatement()
	case token.ENUM:
		decl, err := p.parseEnumDeclaration()
		if err != nil {
			return nil, err
		}
		return *decl, nil
	default:
		return p.parseIdentityOrBareExpr()
	}
}

func (p *Parser) parseIncludeStatement() (ast.PilStatement, error) {
	ref := p.ref(p.cur)
	p.advance() // include
	pathTok, err := p.expect(token.STRINGLIT, "string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.IncludeStatement{WithRef: ast.WithRef{SrcRef: ref}, Path: pathTok.Literal}, nil
}

func (p *Parser) parseNamespaceStatement() (ast.PilStatement, error) {
	ref := p.ref(p.cur)
	p.advance() // namespace
	name, err := p.parseSymbolPath()
	if err != nil {
		return nil, err
	}
	var degree ast.Expression
	if p.at(token.LPAREN) {
		p.advance()
		degree, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.NamespaceStatement{WithRef: ast.WithRef{SrcRef: ref}, Name: name, Degree: degree}, nil
}

// parseLetStatement is shared between constraint-file and module-file
// `let` statements.
func (p *Parser) parseLetStatement() (ast.LetStatement, error) {
	ref := p.ref(p.cur)
	p.advance() // let
	nameTok, err := p.expectIdent()
	if err != nil {
		return ast.LetStatement{}, err
	}
	var typeVars []ast.TypeVarBound
	if p.at(token.LESS) {
		typeVars, err = p.parseTypeVarBounds()
		if err != nil {
			return ast.LetStatement{}, err
		}
	}
	var ty *ast.Type
	if p.at(token.COLON) {
		p.advance()
		t, err := p.parseType()
		if err != nil {
			return ast.LetStatement{}, err
		}
		ty = &t
	}
	var scheme *ast.TypeScheme
	if typeVars != nil || ty != nil {
		scheme = &ast.TypeScheme{Vars: typeVars}
		if ty != nil {
			scheme.Ty = *ty
		}
	}
	var value ast.Expression
	if p.at(token.EQ) {
		p.advance()
		value, err = p.parseExpression()
		if err != nil {
			return ast.LetStatement{}, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return ast.LetStatement{}, err
	}
	return ast.LetStatement{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Scheme: scheme, Value: value}, nil
}

func (p *Parser) parseConstantDefinition() (ast.PilStatement, error) {
	ref := p.ref(p.cur)
	p.advance() // constant
	nameTok, err := p.expect(token.CONST_IDENT, "constant identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.ConstantDefinition{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parsePublicDeclaration() (ast.PilStatement, error) {
	ref := p.ref(p.cur)
	p.advance() // public
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.PublicDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Value: value}, nil
}

// parsePolStatement handles the `pol`/`col` dispatch of spec.md §4.4:
// commit declarations, constant declarations/definitions, and plain
// (intermediate) polynomial definitions.
func (p *Parser) parsePolStatement() (ast.PilStatement, error) {
	ref := p.ref(p.cur)
	p.advance() // pol or col
	switch {
	case p.at(token.COMMIT) || p.at(token.WITNESS):
		return p.parsePolCommit(ref)
	case p.at(token.CONSTANT):
		return p.parsePolConstant(ref)
	default:
		return p.parsePolDefinition(ref)
	}
}

func (p *Parser) parsePolCommit(ref ast.SourceRef) (ast.PilStatement, error) {
	p.advance() // commit or witness
	stage, err := p.parseOptionalStage()
	if err != nil {
		return nil, err
	}
	firstName, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.LPAREN) {
		p.advance()
		var params []ast.Pattern
		for !p.at(token.RPAREN) {
			pat, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			params = append(params, pat)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.QUERY, "query"); err != nil {
			return nil, err
		}
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.PolynomialCommitDeclaration{
			WithRef: ast.WithRef{SrcRef: ref}, Stage: stage,
			Names: []string{firstName.Literal}, Query: &ast.QueryDef{Params: params, Body: body},
		}, nil
	}
	names := []string{firstName.Literal}
	for p.at(token.COMMA) {
		p.advance()
		nTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, nTok.Literal)
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.PolynomialCommitDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Stage: stage, Names: names}, nil
}

func (p *Parser) parsePolConstant(ref ast.SourceRef) (ast.PilStatement, error) {
	p.advance() // constant
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.SEMICOLON) {
		p.advance()
		return ast.PolynomialConstantDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal}, nil
	}
	if _, err := p.expect(token.EQ, "="); err != nil {
		return nil, err
	}
	value, err := p.parsePolynomialConstantValue()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.PolynomialConstantDefinition{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parsePolDefinition(ref ast.SourceRef) (ast.PilStatement, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.PolynomialDefinition{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Value: value}, nil
}

// parsePolynomialConstantValue is the array-concatenation micro-grammar of
// spec.md §9: finite `[…]` and infinite `[…]*` pieces joined by `+`, kept
// separate from expression-level `+`/`*`.
func (p *Parser) parsePolynomialConstantValue() (ast.Expression, error) {
	left, err := p.parsePolynomialConstantTerm()
	if err != nil {
		return nil, err
	}
	for p.at(token.PLUS) {
		p.advance()
		right, err := p.parsePolynomialConstantTerm()
		if err != nil {
			return nil, err
		}
		left = ast.ExprBinary{WithRef: ast.WithRef{SrcRef: left.Ref()}, Op: ast.OpAdd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePolynomialConstantTerm() (ast.Expression, error) {
	ref := p.ref(p.cur)
	if _, err := p.expect(token.LBRACK, "["); err != nil {
		return nil, err
	}
	var elems []ast.Expression
	for !p.at(token.RBRACK) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACK, "]"); err != nil {
		return nil, err
	}
	repeated := false
	if p.at(token.STAR) {
		p.advance()
		repeated = true
	}
	return ast.ExprArray{WithRef: ast.WithRef{SrcRef: ref}, Elems: elems, Repeated: repeated}, nil
}

// parseEnumDeclaration is shared between constraint-file and module-file
// enum declarations.
func (p *Parser) parseEnumDeclaration() (*ast.EnumDeclaration, error) {
	ref := p.ref(p.cur)
	p.advance() // enum
	nameTok, err := p.expect(token.IDENT_UPPER, "type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var variants []ast.EnumVariant
	for !p.at(token.RBRACE) {
		vTok, err := p.expect(token.IDENT_UPPER, "variant name")
		if err != nil {
			return nil, err
		}
		v := ast.EnumVariant{Name: vTok.Literal}
		if p.at(token.LPAREN) {
			p.advance()
			for !p.at(token.RPAREN) {
				ty, err := p.parseType()
				if err != nil {
					return nil, err
				}
				v.Fields = append(v.Fields, ty)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(token.RPAREN, ")"); err != nil {
				return nil, err
			}
		}
		variants = append(variants, v)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return &ast.EnumDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Variants: variants}, nil
}

func (p *Parser) parseBraceExprList() ([]ast.Expression, error) {
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	for !p.at(token.RBRACE) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return exprs, nil
}

// parseSelectedExpressions is the `se` production of spec.md §4.4: either a
// bare expression, or an optionally-selected `{ exprs }` list.
func (p *Parser) parseSelectedExpressions() (ast.SelectedExpressions, error) {
	if p.at(token.LBRACE) {
		exprs, err := p.parseBraceExprList()
		if err != nil {
			return ast.SelectedExpressions{}, err
		}
		return ast.SelectedExpressions{Exprs: exprs}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return ast.SelectedExpressions{}, err
	}
	if p.at(token.LBRACE) {
		exprs, err := p.parseBraceExprList()
		if err != nil {
			return ast.SelectedExpressions{}, err
		}
		return ast.SelectedExpressions{Selector: expr, Exprs: exprs}, nil
	}
	return ast.SelectedExpressions{Bare: expr}, nil
}

// parseIdentityOrBareExpr parses `{ exprs } connect { exprs }`, `se in se`,
// `se is se`, or a bare-expression statement — whichever the token stream
// commits to. A `{`-led statement is tried first as a selector-less brace
// list (the connect/plookup/permutation shape) and, if no identity keyword
// follows, reparsed as a plain expression statement (spec.md §4.4, §9).
func (p *Parser) parseIdentityOrBareExpr() (ast.PilStatement, error) {
	ref := p.ref(p.cur)
	if p.at(token.LBRACE) {
		saved := p.saveState()
		leftExprs, err := p.parseBraceExprList()
		if err == nil {
			switch {
			case p.at(token.CONNECT):
				p.advance()
				rightExprs, err := p.parseBraceExprList()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
					return nil, err
				}
				return ast.ConnectIdentity{WithRef: ast.WithRef{SrcRef: ref}, Left: leftExprs, Right: rightExprs}, nil
			case p.at(token.IN):
				p.advance()
				right, err := p.parseSelectedExpressions()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
					return nil, err
				}
				return ast.PlookupIdentity{WithRef: ast.WithRef{SrcRef: ref}, Left: ast.SelectedExpressions{Exprs: leftExprs}, Right: right}, nil
			case p.at(token.IS):
				p.advance()
				right, err := p.parseSelectedExpressions()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
					return nil, err
				}
				return ast.PermutationIdentity{WithRef: ast.WithRef{SrcRef: ref}, Left: ast.SelectedExpressions{Exprs: leftExprs}, Right: right}, nil
			}
		}
		p.restoreState(saved)
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.at(token.LBRACE) {
		leftExprs, err := p.parseBraceExprList()
		if err != nil {
			return nil, err
		}
		left := ast.SelectedExpressions{Selector: expr, Exprs: leftExprs}
		return p.finishIdentity(ref, left)
	}
	switch p.cur.Type {
	case token.IN, token.IS:
		return p.finishIdentity(ref, ast.SelectedExpressions{Bare: expr})
	default:
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.BareExpressionStatement{WithRef: ast.WithRef{SrcRef: ref}, Expr: expr}, nil
	}
}

func (p *Parser) finishIdentity(ref ast.SourceRef, left ast.SelectedExpressions) (ast.PilStatement, error) {
	switch p.cur.Type {
	case token.IN:
		p.advance()
		right, err := p.parseSelectedExpressions()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.PlookupIdentity{WithRef: ast.WithRef{SrcRef: ref}, Left: left, Right: right}, nil
	case token.IS:
		p.advance()
		right, err := p.parseSelectedExpressions()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.PermutationIdentity{WithRef: ast.WithRef{SrcRef: ref}, Left: left, Right: right}, nil
	default:
		return nil, unexpectedToken(p.cur, "in", "is")
	}
}
