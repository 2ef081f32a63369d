package ast

import "github.com/cwbudde/ecmaparse/pkg/symbol"

func (*BlockStatement) statementNode()      {}
func (*EmptyStatement) statementNode()      {}
func (*ExpressionStatement) statementNode() {}
func (*IfStatement) statementNode()         {}
func (*WhileStatement) statementNode()      {}
func (*DoWhileStatement) statementNode()    {}
func (*ForStatement) statementNode()        {}
func (*SwitchStatement) statementNode()     {}
func (*TryStatement) statementNode()        {}
func (*ThrowStatement) statementNode()      {}
func (*BreakStatement) statementNode()      {}
func (*ContinueStatement) statementNode()   {}
func (*ReturnStatement) statementNode()     {}
func (*LabelledStatement) statementNode()   {}
func (*VariableStatement) statementNode()   {}
func (*DebuggerStatement) statementNode()   {}

// BlockStatement is `{ StatementList }`.
type BlockStatement struct {
	BaseNode
	Body *StatementList
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	BaseNode
}

// ExpressionStatement wraps any expression used in statement position,
// including the `await expr;` and labellable-identifier-disambiguated
// forms the dispatcher routes here.
type ExpressionStatement struct {
	BaseNode
	Expr Expression
}

// IfStatement is `if (Cond) Then [else Else]`.
type IfStatement struct {
	BaseNode
	Cond Expression
	Then Statement
	Else Statement // nil if absent
}

// WhileStatement is `while (Cond) Body`.
type WhileStatement struct {
	BaseNode
	Cond Expression
	Body Statement
}

// DoWhileStatement is `do Body while (Cond);`.
type DoWhileStatement struct {
	BaseNode
	Body Statement
	Cond Expression
}

// ForStatement is the classic three-clause `for (Init; Cond; Update) Body`.
// For-in/for-of are not represented: the three-clause recogniser is the
// only `for` form this core implements (see parser.parseForStatement).
type ForStatement struct {
	BaseNode
	Init   Node // Expression, *VariableStatement, *LexicalDeclaration, or nil
	Cond   Expression
	Update Expression
	Body   Statement
}

// SwitchStatement is `switch (Disc) { Cases }`.
type SwitchStatement struct {
	BaseNode
	Disc  Expression
	Cases []*SwitchCase
}

// SwitchCase is one `case Test:` or `default:` clause.
type SwitchCase struct {
	Test Expression // nil for `default`
	Body *StatementList
}

// TryStatement is `try Block [catch (Param) Handler] [finally Finally]`.
type TryStatement struct {
	BaseNode
	Block      *BlockStatement
	CatchParam BindingTarget // nil if the catch clause is absent or paramless
	Handler    *BlockStatement
	Finally    *BlockStatement
}

// ThrowStatement is `throw Expr;`.
type ThrowStatement struct {
	BaseNode
	Expr Expression
}

// BreakStatement is `break [Label];`.
type BreakStatement struct {
	BaseNode
	Label symbol.Symbol
	HasLabel bool
}

// ContinueStatement is `continue [Label];`.
type ContinueStatement struct {
	BaseNode
	Label symbol.Symbol
	HasLabel bool
}

// ReturnStatement is `return [Expr];`, only legal when AllowReturn is set
// (spec.md §4.1).
type ReturnStatement struct {
	BaseNode
	Expr Expression // nil if bare `return;`
}

// LabelledStatement is `Label: Statement` (spec.md §4.6 identifier + `:`
// lookahead disambiguation).
type LabelledStatement struct {
	BaseNode
	Label symbol.Symbol
	Body  Statement
}

// VariableStatement is `var Declarators;`. Unlike let/const it is not a
// lexical declaration: its names are var-scoped (spec.md §4.9).
type VariableStatement struct {
	BaseNode
	Declarators []*VariableDeclarator
}

// VariableDeclarator pairs a binding target with an optional initialiser.
type VariableDeclarator struct {
	Target BindingTarget
	Init   Expression // nil if absent
}

// DebuggerStatement is the `debugger;` statement.
type DebuggerStatement struct {
	BaseNode
}
