package parser

import (
	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
)

// parseSymbolPathWith parses a possibly-absolute `::`-separated path using
// identLike to accept each segment name. The two-token lookahead for
// `path :: <` (generic type args, handled by the caller) versus
// `path :: ident` (path continuation) is resolved here: the loop only
// continues past a `::` when the following token is not `<` (spec.md §9).
func (p *Parser) parseSymbolPathWith(identLike func(token.TokenType) bool) (ast.SymbolPath, error) {
	var parts []ast.Part
	absolute := false
	if p.at(token.COLONCOLON) {
		absolute = true
		p.advance()
	}
	for {
		switch {
		case p.at(token.SUPER):
			p.advance()
			parts = append(parts, ast.Part{Super: true})
		case identLike(p.cur.Type):
			tok := p.advance()
			parts = append(parts, ast.Part{Name: tok.Literal})
		default:
			return ast.SymbolPath{}, unexpectedToken(p.cur, "identifier", "super")
		}
		if p.at(token.COLONCOLON) && p.peek(0).Type != token.LESS {
			p.advance()
			continue
		}
		break
	}
	if absolute {
		parts = append([]ast.Part{{Name: ""}}, parts...)
	}
	return ast.SymbolPath{Parts: parts}, nil
}

// parseSymbolPath is the `parse_symbol_path` public recognizer (spec.md §6);
// it admits context-softened identifiers but not `int`/`fe` in type
// position (that restriction is parseTypeSymbolPath's job).
func (p *Parser) parseSymbolPath() (ast.SymbolPath, error) {
	return p.parseSymbolPathWith(isIdentLike)
}

// parseTypeSymbolPath parses a SymbolPath in type position, where `int`
// and `fe` are rejected as path segments (spec.md §3).
func (p *Parser) parseTypeSymbolPath() (ast.TypeSymbolPath, error) {
	path, err := p.parseSymbolPathWith(isIdentLikeNoTypeKeywords)
	if err != nil {
		return ast.TypeSymbolPath{}, err
	}
	return ast.TypeSymbolPath{Path: path}, nil
}

// parseGenericSymbolPath parses a SymbolPath optionally followed by
// `::<type_args>`, plus the `ns.name` two-segment dot shorthand, which
// desugars to a two-part named path (spec.md §4.2).
func (p *Parser) parseGenericSymbolPath() (ast.GenericSymbolPath, error) {
	path, err := p.parseSymbolPath()
	if err != nil {
		return ast.GenericSymbolPath{}, err
	}
	if p.at(token.DOT) && len(path.Parts) == 1 && !path.Absolute() {
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return ast.GenericSymbolPath{}, err
		}
		path = ast.SymbolPath{Parts: []ast.Part{path.Parts[0], {Name: name.Literal}}}
	}
	var typeArgs []ast.Type
	if p.at(token.COLONCOLON) && p.peek(0).Type == token.LESS {
		p.advance() // ::
		p.advance() // <
		for !p.at(token.GREATER) {
			ty, err := p.parseType()
			if err != nil {
				return ast.GenericSymbolPath{}, err
			}
			typeArgs = append(typeArgs, ty)
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(token.GREATER, ">"); err != nil {
			return ast.GenericSymbolPath{}, err
		}
	}
	return ast.GenericSymbolPath{Path: path, TypeArgs: typeArgs}, nil
}
