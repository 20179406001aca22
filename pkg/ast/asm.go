package ast

func (ModuleStatement) statementNode() {}

// ASMModule is the root node of a module (ASM) source file.
type ASMModule struct {
	Statements []ModuleStatement
}

// ModuleStatementKind discriminates the five SymbolDefinition forms a
// ModuleStatement wraps (spec.md §3).
type ModuleStatementKind int

const (
	ModMachine ModuleStatementKind = iota
	ModLet
	ModEnum
	ModImport
	ModNestedModule
)

// ImportStatement is `use path [as alias];`.
type ImportStatement struct {
	Path  SymbolPath
	Alias string // empty when no `as alias` clause is present
}

// NestedModule is `mod name;` (Body nil, an external module reference) or
// `mod name { ... }` (Body holds the local module's statements).
type NestedModule struct {
	Name string
	Body *ASMModule
}

// MachineParam is one of a machine's two declaration-line parameters
// (latch, operation id), each either a name or the `_` placeholder.
type MachineParam struct {
	Underscore bool
	Name       string // empty when Underscore
}

// MachineDefinition is `machine Name (latch, op_id) { stmts }`.
type MachineDefinition struct {
	WithRef
	Name       string
	Latch      MachineParam
	OperationID MachineParam
	Statements []MachineStatement
}

// ModuleStatement wraps one symbol definition at module scope.
type ModuleStatement struct {
	WithRef
	Kind    ModuleStatementKind
	Name    string // symbol name; for an import, the alias or else the path's last segment
	Machine *MachineDefinition
	Let     *LetStatement
	Enum    *EnumDeclaration
	Import  *ImportStatement
	Module  *NestedModule
}

// MachineStatement is one of the 9 statement forms recognized inside a
// machine body (spec.md §3, §4.4).
type MachineStatement interface {
	Node
	machineStatementNode()
}

func (DegreeStatement) machineStatementNode()         {}
func (CallSelectorsStatement) machineStatementNode()  {}
func (SubmachineDeclaration) machineStatementNode()   {}
func (RegisterDeclaration) machineStatementNode()     {}
func (InstructionDeclaration) machineStatementNode()  {}
func (LinkDeclaration) machineStatementNode()         {}
func (EmbeddedPilStatement) machineStatementNode()    {}
func (FunctionDeclaration) machineStatementNode()     {}
func (OperationDeclaration) machineStatementNode()    {}

// DegreeStatement is `degree expr;`.
type DegreeStatement struct {
	WithRef
	Value Expression
}

// CallSelectorsStatement is `call_selectors name;`.
type CallSelectorsStatement struct {
	WithRef
	Name string
}

// SubmachineDeclaration instantiates a submachine: `TypePath name(args…);`.
type SubmachineDeclaration struct {
	WithRef
	TypePath SymbolPath
	Name     string
	Args     []Expression
}

// RegisterFlag discriminates the optional flag on a register declaration.
// Only the flag itself is recognized; a default-update expression is not
// (spec.md §9).
type RegisterFlag int

const (
	RegisterNone RegisterFlag = iota
	RegisterPC                // @pc
	RegisterReadWrite         // <=
	RegisterAssignment        // @r
)

// RegisterDeclaration is `reg name[flag];`.
type RegisterDeclaration struct {
	WithRef
	Name string
	Flag RegisterFlag
}

// InstructionParam is one parameter of an instruction or operation
// declaration; Output marks a `->`-side output parameter. Type is nil when
// the parameter carries no `: type` annotation.
type InstructionParam struct {
	Name   string
	Type   *Type
	Output bool
}

// InstructionBodyKind discriminates the four instruction-body forms of
// spec.md §4.4.
type InstructionBodyKind int

const (
	InstrBodyEmpty InstructionBodyKind = iota
	InstrBodyList
	InstrBodyPlookup
	InstrBodyPermutation
)

// InstructionBodyElem is one element of an InstrBodyList body: exactly one
// of Plookup, Permutation, or Expr is set.
type InstructionBodyElem struct {
	Plookup     *PlookupIdentity
	Permutation *PermutationIdentity
	Expr        Expression
}

// InstructionBody is the body of an instruction declaration, in one of the
// four forms named by Kind.
type InstructionBody struct {
	Kind     InstructionBodyKind
	Elems    []InstructionBodyElem // set when Kind == InstrBodyList
	Callable *CallableRef          // set when Kind is Plookup or Permutation
}

// InstructionDeclaration is `instr name params… body`, with an
// unparenthesized parameter list.
type InstructionDeclaration struct {
	WithRef
	Name   string
	Params []InstructionParam
	Body   InstructionBody
}

// CallableRef is `instance.callable inputs [-> outputs]`.
type CallableRef struct {
	Instance string
	Callable string
	Inputs   []Expression
	Outputs  []Expression // nil when no `-> outputs` clause is present
}

// LinkDeclaration is `link flag => callable;` (plookup) or
// `link flag ~> callable;` (permutation).
type LinkDeclaration struct {
	WithRef
	Flag        Expression
	Permutation bool
	Callable    CallableRef
}

// EmbeddedPilStatement is a constraint-language statement written directly
// inside a machine body.
type EmbeddedPilStatement struct {
	WithRef
	Stmt PilStatement
}

// FunctionDeclaration is `function name(params…) { body }`.
type FunctionDeclaration struct {
	WithRef
	Name   string
	Params []string
	Body   []FunctionStatement
}

// OperationDeclaration is `operation name(params…);`.
type OperationDeclaration struct {
	WithRef
	Name   string
	Params []InstructionParam
}

// FunctionStatement is one of the 5 statement forms recognized inside a
// function body (spec.md §4.4).
type FunctionStatement interface {
	Node
	functionStatementNode()
}

func (AssignmentStatement) functionStatementNode()     {}
func (LabelStatement) functionStatementNode()          {}
func (DebugDirective) functionStatementNode()          {}
func (ReturnStatement) functionStatementNode()         {}
func (InstructionCallStatement) functionStatementNode() {}

// AssignmentStatement is `ids <== expr;` (Registers nil) or
// `ids <= regs = expr;` (Registers set).
type AssignmentStatement struct {
	WithRef
	Ids       []string
	Registers []string
	Value     Expression
}

// LabelStatement is `name:`.
type LabelStatement struct {
	WithRef
	Name string
}

// DebugDirectiveKind discriminates the three `.debug` directive forms.
type DebugDirectiveKind int

const (
	DebugFile DebugDirectiveKind = iota
	DebugLoc
	DebugInsn
)

// DebugDirective is `.debug file|loc|insn args…;`.
type DebugDirective struct {
	WithRef
	Kind DebugDirectiveKind
	Args []string
}

// ReturnStatement is `return exprs…;`.
type ReturnStatement struct {
	WithRef
	Values []Expression
}

// InstructionCallStatement is `name args…;` inside a function body.
type InstructionCallStatement struct {
	WithRef
	Name string
	Args []Expression
}
