package pilc_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/pilc"
	"github.com/gkampitakis/go-snaps/snaps"
)

// summarize renders an AST's statement-shape (not its source positions,
// which would make the snapshot brittle to harmless text reflowing) as an
// indented list of Go type names, for easy visual diffing.
func summarizePIL(f *ast.PILFile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PILFile (%d statements)\n", len(f.Statements))
	for _, s := range f.Statements {
		fmt.Fprintf(&b, "  %T\n", s)
	}
	return b.String()
}

func summarizeASM(m *ast.ASMModule) string {
	var b strings.Builder
	writeASM(&b, m, 0)
	return b.String()
}

func writeASM(b *strings.Builder, m *ast.ASMModule, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(b, "%sASMModule (%d statements)\n", pad, len(m.Statements))
	for _, s := range m.Statements {
		fmt.Fprintf(b, "%s  %s: %T\n", pad, s.Name, s)
		if s.Machine != nil {
			for _, ms := range s.Machine.Statements {
				fmt.Fprintf(b, "%s    %T\n", pad, ms)
			}
		}
		if s.Module != nil && s.Module.Body != nil {
			writeASM(b, s.Module.Body, indent+2)
		}
	}
}

func TestSnapshot_PILFile_Namespace(t *testing.T) {
	file, err := pilc.ParsePILFileString(`
namespace Foo(8);
pol commit a, b;
pol constant c = [1, 2] + [3]*;
let d = a + b * c;
{ a } in { b };
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, summarizePIL(file))
}

func TestSnapshot_ASMModule_Machine(t *testing.T) {
	mod, err := pilc.ParseASMModuleString(`
use std::machines::Memory;

machine Main(latch, _) {
	Memory mem;
	reg pc[@pc];
	reg A;

	instr add a, b -> c { c = a + b }

	link 1 => mem.load x -> y;

	function main(a) {
		x <== add(a, 1);
		return x;
	}
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, summarizeASM(mod))
}

func TestParsePILFileString_ReportsLocatedError(t *testing.T) {
	_, err := pilc.ParsePILFileString("let = 1;")
	if err == nil {
		t.Fatalf("expected an error")
	}
	pe, ok := err.(*pilc.ParseError)
	if !ok {
		t.Fatalf("expected *pilc.ParseError, got %T", err)
	}
	if pe.Offset != 4 {
		t.Fatalf("expected offset 4 (the '=' in \"let = 1;\"), got %d", pe.Offset)
	}
}
