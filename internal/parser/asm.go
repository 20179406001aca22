package parser

import (
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// parseASMModuleBody parses a sequence of module-level statements up to
// (but not consuming) terminator, which is token.EOF at the file root and
// token.RBRACE for a nested `mod name { ... }` body (spec.md §4.4).
func (p *Parser) parseASMModuleBody(terminator token.TokenType) (*ast.ASMModule, error) {
	var stmts []ast.ModuleStatement
	for !p.at(terminator) {
		stmt, err := p.parseModuleStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.ASMModule{Statements: stmts}, nil
}

func (p *Parser) parseModuleStatement() (ast.ModuleStatement, error) {
	ref := p.ref(p.cur)
	switch p.cur.Type {
	case token.MACHINE:
		m, err := p.parseMachineDefinition()
		if err != nil {
			return ast.ModuleStatement{}, err
		}
		return ast.ModuleStatement{WithRef: ast.WithRef{SrcRef: ref}, Kind: ast.ModMachine, Name: m.Name, Machine: m}, nil
	case token.LET:
		l, err := p.parseLetStatement()
		if err != nil {
			return ast.ModuleStatement{}, err
		}
		return ast.ModuleStatement{WithRef: ast.WithRef{SrcRef: ref}, Kind: ast.ModLet, Name: l.Name, Let: &l}, nil
	case token.ENUM:
		e, err := p.parseEnumDeclaration()
		if err != nil {
			return ast.ModuleStatement{}, err
		}
		return ast.ModuleStatement{WithRef: ast.WithRef{SrcRef: ref}, Kind: ast.ModEnum, Name: e.Name, Enum: e}, nil
	case token.USE:
		imp, err := p.parseImportStatement()
		if err != nil {
			return ast.ModuleStatement{}, err
		}
		name := imp.Alias
		if name == "" && len(imp.Path.Parts) > 0 {
			name = imp.Path.Parts[len(imp.Path.Parts)-1].Name
		}
		return ast.ModuleStatement{WithRef: ast.WithRef{SrcRef: ref}, Kind: ast.ModImport, Name: name, Import: imp}, nil
	case token.MOD:
		nm, err := p.parseNestedModule()
		if err != nil {
			return ast.ModuleStatement{}, err
		}
		return ast.ModuleStatement{WithRef: ast.WithRef{SrcRef: ref}, Kind: ast.ModNestedModule, Name: nm.Name, Module: nm}, nil
	default:
		return ast.ModuleStatement{}, unexpectedToken(p.cur, "machine", "let", "enum", "use", "mod")
	}
}

func (p *Parser) parseImportStatement() (*ast.ImportStatement, error) {
	p.advance() // use
	path, err := p.parseSymbolPath()
	if err != nil {
		return nil, err
	}
	alias := ""
	if p.at(token.AS) {
		p.advance()
		aliasTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		alias = aliasTok.Literal
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return &ast.ImportStatement{Path: path, Alias: alias}, nil
}

func (p *Parser) parseNestedModule() (*ast.NestedModule, error) {
	p.advance() // mod
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if p.at(token.SEMICOLON) {
		p.advance()
		return &ast.NestedModule{Name: nameTok.Literal}, nil
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	body, err := p.parseASMModuleBody(token.RBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return &ast.NestedModule{Name: nameTok.Literal, Body: body}, nil
}

func (p *Parser) parseMachineParam() (ast.MachineParam, error) {
	if p.at(token.UNDERSCORE) {
		p.advance()
		return ast.MachineParam{Underscore: true}, nil
	}
	tok, err := p.expectIdent()
	if err != nil {
		return ast.MachineParam{}, err
	}
	return ast.MachineParam{Name: tok.Literal}, nil
}

// parseMachineDefinition parses `machine Name (latch, op_id) { stmts }`.
// It is reached only through parseModuleStatement; no public recognizer
// wraps it.
func (p *Parser) parseMachineDefinition() (*ast.MachineDefinition, error) {
	ref := p.ref(p.cur)
	p.advance() // machine
	nameTok, err := p.expect(token.IDENT_UPPER, "machine name")
	if err != nil {
		return nil, err
	}
	m := &ast.MachineDefinition{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal}
	if p.at(token.LPAREN) {
		p.advance()
		m.Latch, err = p.parseMachineParam()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA, ","); err != nil {
			return nil, err
		}
		m.OperationID, err = p.parseMachineParam()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, ")"); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	for !p.at(token.RBRACE) {
		stmt, err := p.parseMachineStatement()
		if err != nil {
			return nil, err
		}
		m.Statements = append(m.Statements, stmt)
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return m, nil
}

// parseMachineStatement dispatches the 9 machine-body statement forms of
// spec.md §3, §4.4.
func (p *Parser) parseMachineStatement() (ast.MachineStatement, error) {
	ref := p.ref(p.cur)
	switch p.cur.Type {
	case token.DEGREE:
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.DegreeStatement{WithRef: ast.WithRef{SrcRef: ref}, Value: value}, nil

	case token.CALL_SELECTORS:
		p.advance()
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.CallSelectorsStatement{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal}, nil

	case token.REG:
		return p.parseRegisterDeclaration(ref)

	case token.INSTR:
		return p.parseInstructionDeclaration(ref)

	case token.LINK:
		return p.parseLinkDeclaration(ref)

	case token.FUNCTION:
		return p.parseFunctionDeclaration(ref)

	case token.OPERATION:
		return p.parseOperationDeclaration(ref)

	case token.POL, token.COL, token.LET, token.NAMESPACE, token.INCLUDE, token.CONSTANT, token.PUBLIC, token.ENUM, token.LBRACE:
		stmt, err := p.parsePilStatement()
		if err != nil {
			return nil, err
		}
		return ast.EmbeddedPilStatement{WithRef: ast.WithRef{SrcRef: ref}, Stmt: stmt}, nil

	default:
		return p.parseSubmachineDeclaration(ref)
	}
}

func (p *Parser) parseRegisterDeclaration(ref ast.SourceRef) (ast.MachineStatement, error) {
	p.advance() // reg
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	flag := ast.RegisterNone
	if p.at(token.LBRACK) {
		p.advance()
		switch {
		case p.at(token.AT):
			p.advance()
			flagTok, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			switch flagTok.Literal {
			case "pc":
				flag = ast.RegisterPC
			case "r":
				flag = ast.RegisterAssignment
			default:
				return nil, unexpectedToken(flagTok, "pc", "r")
			}
		case p.at(token.LESS_EQ):
			p.advance()
			flag = ast.RegisterReadWrite
		}
		if _, err := p.expect(token.RBRACK, "]"); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.RegisterDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Flag: flag}, nil
}

func (p *Parser) parseSubmachineDeclaration(ref ast.SourceRef) (ast.MachineStatement, error) {
	typePath, err := p.parseSymbolPath()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.at(token.LPAREN) {
		p.advance()
		for !p.at(token.RPAREN) {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
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
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.SubmachineDeclaration{WithRef: ast.WithRef{SrcRef: ref}, TypePath: typePath, Name: nameTok.Literal, Args: args}, nil
}

// parseInstructionParamList parses a comma-separated parameter list, each
// param either a bare name or `name: type`, with a bare `->` switching
// subsequent params to outputs (spec.md §4.4, §8 scenario 5). stop reports
// whether the list has ended.
func (p *Parser) parseInstructionParamList(stop func() bool) ([]ast.InstructionParam, error) {
	var params []ast.InstructionParam
	seenOutput := false
	for !stop() {
		if p.at(token.ARROW) {
			p.advance()
			seenOutput = true
			continue
		}
		tok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		param := ast.InstructionParam{Name: tok.Literal, Output: seenOutput}
		if p.at(token.COLON) {
			p.advance()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			param.Type = &typ
		}
		params = append(params, param)
		if p.at(token.COMMA) {
			p.advance()
		}
		// No comma: either the list is done (stop() catches it next
		// iteration) or a bare `->` follows, handled above.
	}
	return params, nil
}

// parseInstructionParams parses a parenthesis-delimited parameter list
// (used by operation declarations, which spec.md §4.4 does not exempt from
// parens the way §8 scenario 5 does for instructions).
func (p *Parser) parseInstructionParams(closer token.TokenType) ([]ast.InstructionParam, error) {
	return p.parseInstructionParamList(func() bool { return p.at(closer) })
}

// atInstructionBodyStart reports whether the current token begins one of
// the four instruction-body forms (spec.md §4.4): empty `;`, `{ list }`,
// `= callable_ref ;`, or `~ callable_ref ;`. Used to terminate the
// unparenthesized instruction parameter list.
func (p *Parser) atInstructionBodyStart() bool {
	return p.at(token.SEMICOLON) || p.at(token.LBRACE) || p.at(token.EQ) || p.at(token.TILDE)
}

// parseInstructionDeclaration is the `parse_instruction_declaration`
// public recognizer (spec.md §6): the `instr` keyword plus the signature
// and body parsed by parseInstruction.
func (p *Parser) parseInstructionDeclaration(ref ast.SourceRef) (ast.MachineStatement, error) {
	p.advance() // instr
	return p.parseInstruction(ref)
}

// parseInstruction is the `parse_instruction` public recognizer: the
// `name params… body` signature shared by instr declarations, without the
// leading keyword. The parameter list is unparenthesized (spec.md §8
// scenario 5: `instr jmp l: label { pc' = l }`).
func (p *Parser) parseInstruction(ref ast.SourceRef) (ast.MachineStatement, error) {
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseInstructionParamList(p.atInstructionBodyStart)
	if err != nil {
		return nil, err
	}
	body, err := p.parseInstructionBody()
	if err != nil {
		return nil, err
	}
	return ast.InstructionDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Params: params, Body: body}, nil
}

// parseInstructionBody is the `parse_instruction_body` public recognizer:
// `;` (empty), `{ elems }` (list of plookup/permutation/expr elements),
// `= callable_ref ;` (plookup shorthand), or `~ callable_ref ;`
// (permutation shorthand) (spec.md §4.4).
func (p *Parser) parseInstructionBody() (ast.InstructionBody, error) {
	if p.at(token.SEMICOLON) {
		p.advance()
		return ast.InstructionBody{Kind: ast.InstrBodyEmpty}, nil
	}
	if p.at(token.EQ) {
		p.advance()
		ref, err := p.parseCallableRef()
		if err != nil {
			return ast.InstructionBody{}, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return ast.InstructionBody{}, err
		}
		return ast.InstructionBody{Kind: ast.InstrBodyPlookup, Callable: &ref}, nil
	}
	if p.at(token.TILDE) {
		p.advance()
		ref, err := p.parseCallableRef()
		if err != nil {
			return ast.InstructionBody{}, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return ast.InstructionBody{}, err
		}
		return ast.InstructionBody{Kind: ast.InstrBodyPermutation, Callable: &ref}, nil
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return ast.InstructionBody{}, err
	}
	var elems []ast.InstructionBodyElem
	for !p.at(token.RBRACE) {
		elem, err := p.parseInstructionBodyElem()
		if err != nil {
			return ast.InstructionBody{}, err
		}
		elems = append(elems, elem)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return ast.InstructionBody{}, err
	}
	return ast.InstructionBody{Kind: ast.InstrBodyList, Elems: elems}, nil
}

func (p *Parser) parseInstructionBodyElem() (ast.InstructionBodyElem, error) {
	saved := p.saveState()
	left, err := p.parseSelectedExpressions()
	if err == nil {
		switch {
		case p.at(token.IN):
			p.advance()
			right, err := p.parseSelectedExpressions()
			if err != nil {
				return ast.InstructionBodyElem{}, err
			}
			return ast.InstructionBodyElem{Plookup: &ast.PlookupIdentity{Left: left, Right: right}}, nil
		case p.at(token.IS):
			p.advance()
			right, err := p.parseSelectedExpressions()
			if err != nil {
				return ast.InstructionBodyElem{}, err
			}
			return ast.InstructionBodyElem{Permutation: &ast.PermutationIdentity{Left: left, Right: right}}, nil
		}
	}
	p.restoreState(saved)
	expr, err := p.parseExpression()
	if err != nil {
		return ast.InstructionBodyElem{}, err
	}
	return ast.InstructionBodyElem{Expr: expr}, nil
}

// parseCallableRef is the `parse_callable_ref` public recognizer:
// `instance.callable inputs [-> outputs]`.
func (p *Parser) parseCallableRef() (ast.CallableRef, error) {
	instTok, err := p.expectIdent()
	if err != nil {
		return ast.CallableRef{}, err
	}
	if _, err := p.expect(token.DOT, "."); err != nil {
		return ast.CallableRef{}, err
	}
	callTok, err := p.expectIdent()
	if err != nil {
		return ast.CallableRef{}, err
	}
	ref := ast.CallableRef{Instance: instTok.Literal, Callable: callTok.Literal}
	for !p.at(token.SEMICOLON) && !p.at(token.ARROW) {
		e, err := p.parseExpression()
		if err != nil {
			return ast.CallableRef{}, err
		}
		ref.Inputs = append(ref.Inputs, e)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if p.at(token.ARROW) {
		p.advance()
		for !p.at(token.SEMICOLON) {
			e, err := p.parseExpression()
			if err != nil {
				return ast.CallableRef{}, err
			}
			ref.Outputs = append(ref.Outputs, e)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	return ref, nil
}

// parseLinkDeclaration is the `parse_link_declaration` public recognizer:
// `link flag => callable;` (plookup) or `link flag ~> callable;`
// (permutation).
func (p *Parser) parseLinkDeclaration(ref ast.SourceRef) (ast.MachineStatement, error) {
	p.advance() // link
	flag, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	permutation := false
	switch {
	case p.at(token.FAT_ARROW):
		p.advance()
	case p.at(token.TILDE_ARROW):
		p.advance()
		permutation = true
	default:
		return nil, unexpectedToken(p.cur, "=>", "~>")
	}
	callable, err := p.parseCallableRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.LinkDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Flag: flag, Permutation: permutation, Callable: callable}, nil
}

func (p *Parser) parseFunctionDeclaration(ref ast.SourceRef) (ast.MachineStatement, error) {
	p.advance() // function
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var params []string
	for !p.at(token.RPAREN) {
		pTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, pTok.Literal)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var body []ast.FunctionStatement
	for !p.at(token.RBRACE) {
		stmt, err := p.parseFunctionStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.expect(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.FunctionDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Params: params, Body: body}, nil
}

func (p *Parser) parseOperationDeclaration(ref ast.SourceRef) (ast.MachineStatement, error) {
	p.advance() // operation
	nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "("); err != nil {
		return nil, err
	}
	params, err := p.parseInstructionParams(token.RPAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.OperationDeclaration{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Params: params}, nil
}

// parseFunctionStatement dispatches the 5 function-body statement forms of
// spec.md §3, §4.4.
func (p *Parser) parseFunctionStatement() (ast.FunctionStatement, error) {
	ref := p.ref(p.cur)
	switch p.cur.Type {
	case token.RETURN:
		p.advance()
		var values []ast.Expression
		for !p.at(token.SEMICOLON) {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			values = append(values, e)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.ReturnStatement{WithRef: ast.WithRef{SrcRef: ref}, Values: values}, nil

	case token.DOT:
		return p.parseDebugDirective(ref)

	default:
		if isIdentLike(p.cur.Type) && p.peek(0).Type == token.COLON {
			nameTok := p.advance()
			p.advance() // :
			return ast.LabelStatement{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal}, nil
		}
		return p.parseAssignmentOrCallStatement(ref)
	}
}

func (p *Parser) parseDebugDirective(ref ast.SourceRef) (ast.FunctionStatement, error) {
	p.advance() // .
	if p.cur.Type != token.IDENT_LOWER || p.cur.Literal != "debug" {
		return nil, unexpectedToken(p.cur, "debug")
	}
	p.advance() // debug
	var kind ast.DebugDirectiveKind
	switch p.cur.Type {
	case token.FILE:
		kind = ast.DebugFile
	case token.LOC:
		kind = ast.DebugLoc
	case token.INSN:
		kind = ast.DebugInsn
	default:
		return nil, unexpectedToken(p.cur, "file", "loc", "insn")
	}
	p.advance()
	var args []string
	for !p.at(token.SEMICOLON) {
		tok := p.cur
		switch tok.Type {
		case token.NUMBER:
			args = append(args, tok.Literal)
		case token.STRINGLIT:
			args = append(args, tok.Literal)
		default:
			if isIdentLike(tok.Type) {
				args = append(args, tok.Literal)
			} else {
				return nil, unexpectedToken(tok, "argument")
			}
		}
		p.advance()
		if p.at(token.COMMA) {
			p.advance()
		}
	}
	if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	return ast.DebugDirective{WithRef: ast.WithRef{SrcRef: ref}, Kind: kind, Args: args}, nil
}

// parseAssignmentOrCallStatement disambiguates `ids <== expr;`,
// `ids <= regs = expr;`, and `name args…;` by speculatively parsing an
// identifier list and checking the token that follows it.
func (p *Parser) parseAssignmentOrCallStatement(ref ast.SourceRef) (ast.FunctionStatement, error) {
	saved := p.saveState()
	var ids []string
	for isIdentLike(p.cur.Type) {
		ids = append(ids, p.advance().Literal)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	switch {
	case p.at(token.ASSIGN_ROW):
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.AssignmentStatement{WithRef: ast.WithRef{SrcRef: ref}, Ids: ids, Value: value}, nil

	case p.at(token.LESS_EQ):
		p.advance()
		var regs []string
		for isIdentLike(p.cur.Type) {
			regs = append(regs, p.advance().Literal)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
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
		return ast.AssignmentStatement{WithRef: ast.WithRef{SrcRef: ref}, Ids: ids, Registers: regs, Value: value}, nil

	default:
		p.restoreState(saved)
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var args []ast.Expression
		for !p.at(token.SEMICOLON) {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.SEMICOLON, ";"); err != nil {
			return nil, err
		}
		return ast.InstructionCallStatement{WithRef: ast.WithRef{SrcRef: ref}, Name: nameTok.Literal, Args: args}, nil
	}
}
