package ast

func (IncludeStatement) statementNode()                  {}
func (NamespaceStatement) statementNode()                {}
func (LetStatement) statementNode()                      {}
func (ConstantDefinition) statementNode()                {}
func (PolynomialDefinition) statementNode()               {}
func (PublicDeclaration) statementNode()                  {}
func (PolynomialConstantDeclaration) statementNode()       {}
func (PolynomialConstantDefinition) statementNode()        {}
func (PolynomialCommitDeclaration) statementNode()         {}
func (EnumDeclaration) statementNode()                     {}
func (PlookupIdentity) statementNode()                      {}
func (PermutationIdentity) statementNode()                  {}
func (ConnectIdentity) statementNode()                      {}
func (BareExpressionStatement) statementNode()              {}

// PILFile is the root node of a constraint (PIL) source file.
type PILFile struct {
	Statements []PilStatement
}

// PilStatement is any of the 14 statement forms recognized in constraint-file
// position (spec.md §3, §4.4).
type PilStatement interface {
	Statement
}

// IncludeStatement is `include "path";`.
type IncludeStatement struct {
	WithRef
	Path string
}

// NamespaceStatement is `namespace Name(degree);`.
type NamespaceStatement struct {
	WithRef
	Name   SymbolPath
	Degree Expression // nil when no degree is given
}

// LetStatement is `let name [<type_vars>] [: type] [= expr];`.
type LetStatement struct {
	WithRef
	Name   string
	Scheme *TypeScheme // nil when there is no type ascription or type vars
	Value  Expression  // nil when there is no initializer
}

// ConstantDefinition is `constant %NAME = expr;`.
type ConstantDefinition struct {
	WithRef
	Name  string
	Value Expression
}

// PolynomialDefinition is `pol name = expr;`, an intermediate (non-committed,
// non-constant) polynomial.
type PolynomialDefinition struct {
	WithRef
	Name  string
	Value Expression
}

// PublicDeclaration is `public name = expr;`.
type PublicDeclaration struct {
	WithRef
	Name  string
	Value Expression
}

// PolynomialConstantDeclaration is `pol constant name;` with no initializer.
type PolynomialConstantDeclaration struct {
	WithRef
	Name string
}

// PolynomialConstantDefinition is `pol constant name = array_expr;`, where
// Value is built from the finite/infinite-array micro-grammar (spec.md §9).
type PolynomialConstantDefinition struct {
	WithRef
	Name  string
	Value Expression
}

// QueryDef ties a query lambda to a single committed polynomial, the
// `pol commit name(params) query body` form.
type QueryDef struct {
	Params []Pattern
	Body   Expression
}

// PolynomialCommitDeclaration is `pol commit [stage(N)] names…` or, when a
// single name is given with a query body, `pol commit [stage(N)] name(params)
// query body`.
type PolynomialCommitDeclaration struct {
	WithRef
	Stage *int
	Names []string
	Query *QueryDef // non-nil only for the single-name query-tied form
}

// EnumVariant is one `Name` or `Name(field_types…)` arm of an enum.
type EnumVariant struct {
	Name   string
	Fields []Type // nil when the variant carries no fields
}

// EnumDeclaration is `enum Name { variants… }`.
type EnumDeclaration struct {
	WithRef
	Name     string
	Variants []EnumVariant
}

// SelectedExpressions is one side of a plookup/permutation identity: either
// a single bare expression, or a brace-enclosed expression list with an
// optional leading selector.
type SelectedExpressions struct {
	Selector Expression   // optional selector before the braces; nil if absent
	Exprs    []Expression // non-nil when this side used the `{ exprs }` form
	Bare     Expression   // set when this side is a single bare expression
}

// PlookupIdentity is `se in se`.
type PlookupIdentity struct {
	WithRef
	Left, Right SelectedExpressions
}

// PermutationIdentity is `se is se`.
type PermutationIdentity struct {
	WithRef
	Left, Right SelectedExpressions
}

// ConnectIdentity is `{ exprs } connect { exprs }`.
type ConnectIdentity struct {
	WithRef
	Left, Right []Expression
}

// BareExpressionStatement is a constraint-file statement consisting of a
// single expression (an identity written without the `let`/`pol` vocabulary).
type BareExpressionStatement struct {
	WithRef
	Expr Expression
}
