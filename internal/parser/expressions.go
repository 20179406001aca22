package parser

import (
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// parseExpression is the entry point into the shared 14-level
// precedence-climbing expression grammar (spec.md §4.2), re-entered from
// all three statement dialects.
func (p *Parser) parseExpression() (ast.Expression, error) {
	if p.atLambdaStart() {
		return p.parseLambda()
	}
	return p.parseLogOr()
}

func (p *Parser) atLambdaStart() bool {
	if p.at(token.PIPE) || p.at(token.PIPE_PIPE) {
		return true
	}
	if p.at(token.QUERY) || p.at(token.CONSTR) {
		return p.peek(0).Type == token.PIPE || p.peek(0).Type == token.PIPE_PIPE
	}
	return false
}

func (p *Parser) parseLambda() (ast.Expression, error) {
	ref := p.ref(p.cur)
	kind := ast.LambdaPure
	switch p.cur.Type {
	case token.QUERY:
		kind = ast.LambdaQuery
		p.advance()
	case token.CONSTR:
		kind = ast.LambdaConstr
		p.advance()
	}
	var params []ast.Pattern
	if p.at(token.PIPE_PIPE) {
		p.advance()
	} else {
		if _, err := p.expect(token.PIPE, "|"); err != nil {
			return nil, err
		}
		for !p.at(token.PIPE) {
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
		if _, err := p.expect(token.PIPE, "|"); err != nil {
			return nil, err
		}
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.ExprLambda{WithRef: ast.WithRef{SrcRef: ref}, Kind: kind, Params: params, Body: body}, nil
}

// parseLeftAssoc implements one left-associative binary level: parse next,
// then fold in as many same-level operators as follow.
func (p *Parser) parseLeftAssoc(next func() (ast.Expression, error), ops map[token.TokenType]ast.BinaryOp) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.cur.Type]
		if !ok {
			break
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = ast.ExprBinary{WithRef: ast.WithRef{SrcRef: left.Ref()}, Op: op, Left: left, Right: right}
	}
	return left, nil
}

var logOrOps = map[token.TokenType]ast.BinaryOp{token.PIPE_PIPE: ast.OpLogOr}
var logAndOps = map[token.TokenType]ast.BinaryOp{token.AMP_AMP: ast.OpLogAnd}
var bitOrOps = map[token.TokenType]ast.BinaryOp{token.PIPE: ast.OpBitOr}
var bitXorOps = map[token.TokenType]ast.BinaryOp{token.CARET: ast.OpBitXor}
var bitAndOps = map[token.TokenType]ast.BinaryOp{token.AMP: ast.OpBitAnd}
var shiftOps = map[token.TokenType]ast.BinaryOp{token.SHL: ast.OpShl, token.SHR: ast.OpShr}
var addSubOps = map[token.TokenType]ast.BinaryOp{token.PLUS: ast.OpAdd, token.MINUS: ast.OpSub}
var mulDivModOps = map[token.TokenType]ast.BinaryOp{token.STAR: ast.OpMul, token.SLASH: ast.OpDiv, token.PERCENT: ast.OpMod}

func (p *Parser) parseLogOr() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseLogAnd, logOrOps)
}

func (p *Parser) parseLogAnd() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseCompare, logAndOps)
}

func compareOp(t token.TokenType) (ast.BinaryOp, bool) {
	switch t {
	case token.LESS:
		return ast.OpLt, true
	case token.LESS_EQ:
		return ast.OpLe, true
	case token.GREATER:
		return ast.OpGt, true
	case token.GREATER_EQ:
		return ast.OpGe, true
	case token.EQ_EQ:
		return ast.OpEqEq, true
	case token.EQ:
		return ast.OpIdentity, true
	case token.NOT_EQ:
		return ast.OpNeq, true
	}
	return 0, false
}

// parseCompare implements level 4: non-associative comparison. A second
// chained comparison (`a < b < c`) is rejected rather than folded.
func (p *Parser) parseCompare() (ast.Expression, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	op, ok := compareOp(p.cur.Type)
	if !ok {
		return left, nil
	}
	p.advance()
	right, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	result := ast.Expression(ast.ExprBinary{WithRef: ast.WithRef{SrcRef: left.Ref()}, Op: op, Left: left, Right: right})
	if _, chained := compareOp(p.cur.Type); chained {
		return nil, unexpectedToken(p.cur, "expression (comparison operators do not associate)")
	}
	return result, nil
}

func (p *Parser) parseBitOr() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseBitXor, bitOrOps)
}

func (p *Parser) parseBitXor() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseBitAnd, bitXorOps)
}

func (p *Parser) parseBitAnd() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseShift, bitAndOps)
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseAddSub, shiftOps)
}

func (p *Parser) parseAddSub() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseMulDivMod, addSubOps)
}

func (p *Parser) parseMulDivMod() (ast.Expression, error) {
	return p.parseLeftAssoc(p.parseUnaryPrefix, mulDivModOps)
}

// parseUnaryPrefix and parsePowerChain together realize the testable
// property that `- a ** b` parses as `-(a ** b)`: the unary operator's
// operand production runs through parsePowerChain, so `**` binds before
// the minus is applied (spec.md §8).
func (p *Parser) parseUnaryPrefix() (ast.Expression, error) {
	if p.at(token.MINUS) || p.at(token.BANG) {
		tok := p.advance()
		op := ast.OpNeg
		if tok.Type == token.BANG {
			op = ast.OpNot
		}
		operand, err := p.parseUnaryPrefix()
		if err != nil {
			return nil, err
		}
		return ast.ExprUnary{WithRef: ast.WithRef{SrcRef: p.ref(tok)}, Op: op, Operand: operand}, nil
	}
	return p.parsePowerChain()
}

func (p *Parser) parsePowerChain() (ast.Expression, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.at(token.POWER) {
		p.advance()
		right, err := p.parseUnaryPrefix()
		if err != nil {
			return nil, err
		}
		return ast.ExprBinary{WithRef: ast.WithRef{SrcRef: left.Ref()}, Op: ast.OpPow, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parseCallOrIndex()
	if err != nil {
		return nil, err
	}
	for p.at(token.QUOTE) {
		p.advance()
		expr = ast.ExprUnary{WithRef: ast.WithRef{SrcRef: expr.Ref()}, Op: ast.OpNextRow, Operand: expr}
	}
	return expr, nil
}

func (p *Parser) parseCallOrIndex() (ast.Expression, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.at(token.LBRACK):
			p.advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACK, "]"); err != nil {
				return nil, err
			}
			expr = ast.ExprIndex{WithRef: ast.WithRef{SrcRef: expr.Ref()}, Base: expr, Index: idx}
		case p.at(token.LPAREN):
			p.advance()
			var args []ast.Expression
			for !p.at(token.RPAREN) {
				a, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.at(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
			if _, err := p.expect(token.RPAREN, ")"); err != nil {
				return nil, err
			}
			expr = ast.ExprCall{WithRef: ast.WithRef{SrcRef: expr.Ref()}, Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

// parseAtom recognizes level 14's atomic terms (spec.md §4.2).
func (p *Parser) parseAtom() (ast.Expression, error) {
	tok := p.cur
	ref := p.ref(tok)
	switch tok.Type {
	case token.CONST_IDENT:
		p.advance()
		path := ast.SymbolPath{Parts: []ast.Part{{Name: tok.Literal}}}
		return ast.ExprReference{WithRef: ast.WithRef{SrcRef: ref}, Path: ast.GenericSymbolPath{Path: path}}, nil

	case token.PUBLIC_IDENT:
		p.advance()
		return ast.ExprPublicReference{WithRef: ast.WithRef{SrcRef: ref}, Name: tok.Literal}, nil

	case token.NUMBER:
		p.advance()
		if err := p.checkLexErrors(); err != nil {
			return nil, err
		}
		return ast.ExprNumber{WithRef: ast.WithRef{SrcRef: ref}, Value: parseBigInt(tok.Literal)}, nil

	case token.STRINGLIT:
		p.advance()
		if err := p.checkLexErrors(); err != nil {
			return nil, err
		}
		return ast.ExprString{WithRef: ast.WithRef{SrcRef: ref}, Value: tok.Literal}, nil

	case token.MATCH:
		return p.parseMatchExpr()

	case token.IF:
		return p.parseIfExpr()

	case token.LBRACE:
		return p.parseBlockExpr()

	case token.LBRACK:
		return p.parseArrayExpr()

	case token.LPAREN:
		return p.parseParenOrTupleExpr()

	case token.DOLLAR_BRACE:
		return p.parseFreeInputExpr()

	default:
		if isIdentLike(tok.Type) || tok.Type == token.COLONCOLON || tok.Type == token.SUPER {
			return p.parseReferenceExpr()
		}
		return nil, unexpectedToken(tok, "expression")
	}
}

func (p *Parser) parseReferenceExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	gp, err := p.parseGenericSymbolPath()
	if err != nil {
		return nil, err
	}
	return ast.ExprReference{WithRef: ast.WithRef{SrcRef: ref}, Path: gp}, nil
}

func (p *Parser) parseArrayExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	p.advance() // [
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
	return ast.ExprArray{WithRef: ast.WithRef{SrcRef: ref}, Elems: elems}, nil
}

func (p *Parser) parseParenOrTupleExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	p.advance() // (
	if p.at(token.RPAREN) {
		p.advance()
		return ast.ExprTuple{WithRef: ast.WithRef{SrcRef: ref}}, nil
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.at(token.COMMA) {
		elems := []ast.Expression{first}
		for p.at(token.COMMA) {
			p.advance()
			if p.at(token.RPAREN) {
				break
			}
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		return ast.ExprTuple{WithRef: ast.WithRef{SrcRef: ref}, Elems: elems}, nil
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return first, nil
}

func (p *Parser) parseFreeInputExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	p.advance() // ${
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.ExprFreeInput{WithRef: ast.WithRef{SrcRef: ref}, Inner: inner}, nil
}

func (p *Parser) parseMatchExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	p.advance() // match
	scrutinee, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var arms []ast.MatchArm
	for !p.at(token.RBRACE) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.FAT_ARROW, "=>"); err != nil {
			return nil, err
		}
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.MatchArm{Pattern: pat, Body: body})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.ExprMatch{WithRef: ast.WithRef{SrcRef: ref}, Scrutinee: scrutinee, Arms: arms}, nil
}

func (p *Parser) parseIfExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	p.advance() // if
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE, "else"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}
	return ast.ExprIf{WithRef: ast.WithRef{SrcRef: ref}, Cond: cond, Then: then, Else: elseExpr}, nil
}

// parseBlockExpr parses `{ stmt*; result? }`. A braced if/else arm with no
// statements and only a trailing expression (`{ expr }`) is the same
// production with an empty Stmts slice (spec.md §4.2).
func (p *Parser) parseBlockExpr() (ast.Expression, error) {
	ref := p.ref(p.cur)
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var stmts []ast.BlockStmt
	var result ast.Expression
	for !p.at(token.RBRACE) {
		if p.at(token.LET) {
			p.advance()
			pat, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.EQ, "="); err != nil {
				return nil, err
			}
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
				return nil, err
			}
			stmts = append(stmts, ast.BlockStmt{Let: true, Pattern: pat, Value: val})
			continue
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.at(token.SEMICOLON) {
			p.advance()
			stmts = append(stmts, ast.BlockStmt{Value: expr})
			continue
		}
		result = expr
		break
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.ExprBlock{WithRef: ast.WithRef{SrcRef: ref}, Stmts: stmts, Result: result}, nil
}
