// Package source implements the source-reference contract spec.md §6
// describes as an external collaborator: a host-provided mapping from a
// byte offset to an opaque SourceRef value that AST nodes carry around.
//
// The core parser never inspects a Ref's fields; it only asks a Context
// for one and stores the result. FileContext is the concrete mapper this
// repo ships so the driver and CLI are runnable standalone — a host
// embedding the parser in a larger toolchain may supply its own Context
// backed by whatever span representation it already has.
package source

import "sort"

// Ref is an opaque source-location handle embedded in every AST
// statement and expression (spec.md §3's "source reference").
type Ref struct {
	Offset int
	Line   int
	Column int
}

// Context maps byte offsets in a source buffer to Refs.
type Context interface {
	SourceRef(offset int) Ref
}

// FileContext is a newline-indexed offset->line/column mapper, the
// default Context implementation.
type FileContext struct {
	text        string
	lineOffsets []int // byte offset of the start of each line
}

// NewFileContext builds a FileContext over text, precomputing line start
// offsets once so SourceRef is a binary search rather than a linear scan.
func NewFileContext(text string) *FileContext {
	offsets := []int{0}
	for i, b := range []byte(text) {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &FileContext{text: text, lineOffsets: offsets}
}

// SourceRef returns the Ref for offset, computing its 1-based line and
// rune column from the precomputed line index.
func (c *FileContext) SourceRef(offset int) Ref {
	line := sort.Search(len(c.lineOffsets), func(i int) bool {
		return c.lineOffsets[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	lineStart := c.lineOffsets[line]
	column := 1
	if offset > lineStart && offset <= len(c.text) {
		column = len([]rune(c.text[lineStart:offset])) + 1
	}
	return Ref{Offset: offset, Line: line + 1, Column: column}
}
