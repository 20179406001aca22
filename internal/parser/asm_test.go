package parser

import (
	"testing"

	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/source"
)

func parseASMString(t *testing.T, input string) *ast.ASMModule {
	t.Helper()
	mod, err := ParseASMModule(input, source.NewFileContext(input))
	if err != nil {
		t.Fatalf("ParseASMModule(%q): unexpected error: %v", input, err)
	}
	return mod
}

func TestParseASMModule_MachineWithLatchAndRegisterInstruction(t *testing.T) {
	mod := parseASMString(t, `machine M(latch, _) { reg pc[@pc]; instr jmp l: label { pc' = l } }`)
	if len(mod.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Statements))
	}
	s := mod.Statements[0]
	if s.Kind != ast.ModMachine || s.Machine == nil {
		t.Fatalf("expected a machine statement, got %#v", s)
	}
	m := s.Machine
	if m.Name != "M" {
		t.Fatalf("expected machine name M, got %q", m.Name)
	}
	if m.Latch.Underscore || m.Latch.Name != "latch" {
		t.Fatalf("expected latch param %q, got %#v", "latch", m.Latch)
	}
	if !m.OperationID.Underscore {
		t.Fatalf("expected underscore operation id, got %#v", m.OperationID)
	}
	if len(m.Statements) != 2 {
		t.Fatalf("expected 2 machine statements, got %d", len(m.Statements))
	}
	reg, ok := m.Statements[0].(ast.RegisterDeclaration)
	if !ok {
		t.Fatalf("expected RegisterDeclaration, got %T", m.Statements[0])
	}
	if reg.Name != "pc" || reg.Flag != ast.RegisterPC {
		t.Fatalf("expected pc register with @pc flag, got %#v", reg)
	}
	instr, ok := m.Statements[1].(ast.InstructionDeclaration)
	if !ok {
		t.Fatalf("expected InstructionDeclaration, got %T", m.Statements[1])
	}
	if instr.Name != "jmp" || len(instr.Params) != 1 || instr.Params[0].Name != "l" {
		t.Fatalf("unexpected instruction shape: %#v", instr)
	}
	if instr.Params[0].Type == nil || instr.Params[0].Type.Name.Path.String() != "label" {
		t.Fatalf("expected param l typed as label, got %#v", instr.Params[0].Type)
	}
	if instr.Body.Kind != ast.InstrBodyList || len(instr.Body.Elems) != 1 {
		t.Fatalf("expected a single-element instruction body, got %#v", instr.Body)
	}
}

func TestParseASMModule_ImportAndNestedModule(t *testing.T) {
	mod := parseASMString(t, `use super::super::Foo as Bar; mod sub { let x = 1; }`)
	if len(mod.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(mod.Statements))
	}
	imp := mod.Statements[0]
	if imp.Kind != ast.ModImport || imp.Import == nil || imp.Import.Alias != "Bar" {
		t.Fatalf("expected import aliased Bar, got %#v", imp)
	}
	nested := mod.Statements[1]
	if nested.Kind != ast.ModNestedModule || nested.Module == nil || nested.Module.Body == nil {
		t.Fatalf("expected nested module with a body, got %#v", nested)
	}
	if len(nested.Module.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in nested module body, got %d", len(nested.Module.Body.Statements))
	}
}

func TestParseASMModule_LinkDeclaration(t *testing.T) {
	mod := parseASMString(t, `machine M(latch, _) { link 1 => sub.add x, y -> z; }`)
	link, ok := mod.Statements[0].Machine.Statements[0].(ast.LinkDeclaration)
	if !ok {
		t.Fatalf("expected LinkDeclaration, got %T", mod.Statements[0].Machine.Statements[0])
	}
	if link.Permutation {
		t.Fatalf("expected plookup link (=>), got permutation")
	}
	if link.Callable.Instance != "sub" || link.Callable.Callable != "add" {
		t.Fatalf("unexpected callable ref: %#v", link.Callable)
	}
	if len(link.Callable.Inputs) != 2 || len(link.Callable.Outputs) != 1 {
		t.Fatalf("expected 2 inputs, 1 output, got %d/%d", len(link.Callable.Inputs), len(link.Callable.Outputs))
	}
}

func TestParseASMModule_FunctionBodyAssignmentAndReturn(t *testing.T) {
	mod := parseASMString(t, `machine M(latch, _) {
		function f(a) {
			x <== a + 1;
			y <= A = a;
			loop: jmp loop;
			return x, y;
		}
	}`)
	fn, ok := mod.Statements[0].Machine.Statements[0].(ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %T", mod.Statements[0].Machine.Statements[0])
	}
	if len(fn.Body) != 5 {
		t.Fatalf("expected 5 function statements, got %d", len(fn.Body))
	}
	assign1, ok := fn.Body[0].(ast.AssignmentStatement)
	if !ok || len(assign1.Registers) != 0 {
		t.Fatalf("expected a register-less assignment, got %#v", fn.Body[0])
	}
	assign2, ok := fn.Body[1].(ast.AssignmentStatement)
	if !ok || len(assign2.Registers) != 1 || assign2.Registers[0] != "A" {
		t.Fatalf("expected assignment through register A, got %#v", fn.Body[1])
	}
	if _, ok := fn.Body[2].(ast.LabelStatement); !ok {
		t.Fatalf("expected LabelStatement, got %T", fn.Body[2])
	}
	call, ok := fn.Body[3].(ast.InstructionCallStatement)
	if !ok || call.Name != "jmp" {
		t.Fatalf("expected an instruction call to jmp, got %#v", fn.Body[3])
	}
	ret, ok := fn.Body[4].(ast.ReturnStatement)
	if !ok || len(ret.Values) != 2 {
		t.Fatalf("expected a 2-value return, got %#v", fn.Body[4])
	}
}

func TestParseASMModule_DebugDirective(t *testing.T) {
	mod := parseASMString(t, `machine M(latch, _) {
		function f() {
			.debug loc 1 2 3;
			return;
		}
	}`)
	fn := mod.Statements[0].Machine.Statements[0].(ast.FunctionDeclaration)
	dbg, ok := fn.Body[0].(ast.DebugDirective)
	if !ok {
		t.Fatalf("expected DebugDirective, got %T", fn.Body[0])
	}
	if dbg.Kind != ast.DebugLoc || len(dbg.Args) != 3 {
		t.Fatalf("unexpected debug directive: %#v", dbg)
	}
}

func TestParseASMModule_InstructionBodyPlookupShorthand(t *testing.T) {
	mod := parseASMString(t, `machine M(latch, _) { instr add a, b -> c = sub.add a, b -> c; }`)
	instr, ok := mod.Statements[0].Machine.Statements[0].(ast.InstructionDeclaration)
	if !ok {
		t.Fatalf("expected InstructionDeclaration, got %T", mod.Statements[0].Machine.Statements[0])
	}
	if len(instr.Params) != 3 || !instr.Params[2].Output {
		t.Fatalf("expected 2 inputs and 1 output param, got %#v", instr.Params)
	}
	if instr.Body.Kind != ast.InstrBodyPlookup || instr.Body.Callable == nil {
		t.Fatalf("expected plookup shorthand body, got %#v", instr.Body)
	}
	if instr.Body.Callable.Instance != "sub" || instr.Body.Callable.Callable != "add" {
		t.Fatalf("unexpected callable ref: %#v", instr.Body.Callable)
	}
}

func TestParseASMModule_InstructionBodyPermutationShorthand(t *testing.T) {
	mod := parseASMString(t, `machine M(latch, _) { instr add a, b -> c ~ sub.add a, b -> c; }`)
	instr, ok := mod.Statements[0].Machine.Statements[0].(ast.InstructionDeclaration)
	if !ok {
		t.Fatalf("expected InstructionDeclaration, got %T", mod.Statements[0].Machine.Statements[0])
	}
	if instr.Body.Kind != ast.InstrBodyPermutation || instr.Body.Callable == nil {
		t.Fatalf("expected permutation shorthand body, got %#v", instr.Body)
	}
}
