// Package ast defines the tagged-variant AST produced by the parser
// (spec.md §3). Every statement and expression carries exactly one
// SourceRef, stamped at the start of its first token; the tree is built
// once during parsing and is immutable thereafter.
package ast

import "github.com/MuhtasimTanmoy/powdr/pkg/source"

// SourceRef is the opaque source-location handle carried by every node.
type SourceRef = source.Ref

// Node is implemented by every AST statement and expression.
type Node interface {
	Ref() SourceRef
}

// Statement is a PIL, ASM, or module-level statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node from the shared expression sub-grammar.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a node from the pattern grammar (match arms, lambda
// parameters, block-let bindings).
type Pattern interface {
	Node
	patternNode()
}

// WithRef is embedded by every concrete node to supply Ref().
type WithRef struct {
	SrcRef SourceRef
}

// Ref returns the node's source reference.
func (w WithRef) Ref() SourceRef { return w.SrcRef }

// Part is one segment of a SymbolPath: either the special `super` marker
// or a named segment.
type Part struct {
	Super bool
	Name  string // empty when Super is true
}

// SymbolPath is an ordered list of Parts. An absolute path begins with an
// empty-name Part (spec.md §3).
type SymbolPath struct {
	Parts []Part
}

// Absolute reports whether the path begins with the empty-name marker.
func (p SymbolPath) Absolute() bool {
	return len(p.Parts) > 0 && !p.Parts[0].Super && p.Parts[0].Name == ""
}

func (p SymbolPath) String() string {
	s := ""
	for i, part := range p.Parts {
		if i > 0 || p.Absolute() {
			s += "::"
		}
		if part.Super {
			s += "super"
		} else {
			s += part.Name
		}
	}
	return s
}

// GenericSymbolPath is a SymbolPath additionally carrying `::<T, ...>`
// type arguments. A plain SymbolPath rejects type arguments outright.
type GenericSymbolPath struct {
	Path     SymbolPath
	TypeArgs []Type // nil when no ::<...> suffix was present
}

// TypeSymbolPath is a SymbolPath used in type position; it rejects the
// reserved type names `int` and `fe` as path parts (spec.md §3).
type TypeSymbolPath struct {
	Path SymbolPath
}
