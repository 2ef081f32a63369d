package ast

import "github.com/cwbudde/ecmaparse/pkg/symbol"

func (*Identifier) expressionNode()         {}
func (*NumericLiteral) expressionNode()     {}
func (*StringLiteral) expressionNode()      {}
func (*BooleanLiteral) expressionNode()     {}
func (*NullLiteral) expressionNode()        {}
func (*RegExpLiteral) expressionNode()      {}
func (*ThisExpression) expressionNode()     {}
func (*ArrayLiteral) expressionNode()       {}
func (*ObjectLiteral) expressionNode()      {}
func (*UnaryExpression) expressionNode()    {}
func (*UpdateExpression) expressionNode()   {}
func (*BinaryExpression) expressionNode()   {}
func (*LogicalExpression) expressionNode()  {}
func (*AssignmentExpression) expressionNode() {}
func (*ConditionalExpression) expressionNode() {}
func (*CallExpression) expressionNode()     {}
func (*NewExpression) expressionNode()      {}
func (*MemberExpression) expressionNode()   {}
func (*AwaitExpression) expressionNode()    {}
func (*YieldExpression) expressionNode()    {}
func (*FunctionExpression) expressionNode() {}
func (*SequenceExpression) expressionNode() {}

// Identifier is a bare name reference, distinct from BindingIdentifier
// (which only ever appears in a binding position).
type Identifier struct {
	BaseNode
	Name symbol.Symbol
}

// NumericLiteral is a decimal or hex numeric literal.
type NumericLiteral struct {
	BaseNode
	Value float64
	Raw   string
}

// StringLiteral is a single- or double-quoted string literal. Raw holds the
// lexer's token literal, which for strings is the escape-decoded text
// without the surrounding quotes; Value is the same text interned.
type StringLiteral struct {
	BaseNode
	Value symbol.Symbol
	Raw   string
}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	BaseNode
	Value bool
}

// NullLiteral is `null`.
type NullLiteral struct {
	BaseNode
}

// RegExpLiteral is `/pattern/flags`, lexed only when the lexer's goal is
// GoalRegExp.
type RegExpLiteral struct {
	BaseNode
	Pattern string
	Flags   string
}

// ThisExpression is the `this` keyword used as a primary expression.
type ThisExpression struct {
	BaseNode
}

// ArrayLiteral is `[ Elements ]`; nil elements represent elisions.
type ArrayLiteral struct {
	BaseNode
	Elements []Expression
}

// ObjectLiteral is `{ Properties }`.
type ObjectLiteral struct {
	BaseNode
	Properties []*ObjectProperty
}

// ObjectProperty is one `key: value` or shorthand `{ key }` entry.
type ObjectProperty struct {
	Key       symbol.Symbol
	Computed  bool
	KeyExpr   Expression // set when Computed
	Value     Expression
	Shorthand bool
}

// UnaryOp enumerates the prefix unary operators.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
	OpPos
	OpTypeof
	OpVoid
	OpDelete
	OpBitNot
)

// UnaryExpression is a prefix unary operator applied to an expression.
type UnaryExpression struct {
	BaseNode
	Op      UnaryOp
	Operand Expression
}

// UpdateExpression is `++x`, `x++`, `--x`, or `x--`.
type UpdateExpression struct {
	BaseNode
	Op      string // "++" or "--"
	Prefix  bool
	Operand Expression
}

// BinaryOp enumerates the binary arithmetic/relational/`in`/`instanceof`
// operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpStrictEq
	OpStrictNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpIn
	OpInstanceof
)

// BinaryExpression is `Left Op Right`. The parser refuses to produce one
// with Op==OpIn unless AllowIn was set (spec.md §4.1).
type BinaryExpression struct {
	BaseNode
	Op    BinaryOp
	Left  Expression
	Right Expression
}

// LogicalExpression is `Left && Right`, `Left || Right`, or
// `Left ?? Right`, kept distinct from BinaryExpression because of their
// short-circuiting semantics.
type LogicalExpression struct {
	BaseNode
	Op    string // "&&", "||", "??"
	Left  Expression
	Right Expression
}

// AssignmentExpression is `Target = Value` or `Target /= Value`. Target is
// the left-hand side exactly as parsed; a destructuring left-hand side
// stays an ArrayLiteral/ObjectLiteral and is not converted to a binding
// pattern.
type AssignmentExpression struct {
	BaseNode
	Op     string // "=" or "/="
	Target Expression
	Value  Expression
}

// ConditionalExpression is `Test ? Cons : Alt`.
type ConditionalExpression struct {
	BaseNode
	Test Expression
	Cons Expression
	Alt  Expression
}

// CallExpression is `Callee(Args)`.
type CallExpression struct {
	BaseNode
	Callee Expression
	Args   []Expression
}

// NewExpression is `new Callee(Args)`.
type NewExpression struct {
	BaseNode
	Callee Expression
	Args   []Expression
}

// MemberExpression is `Object.Property` or `Object[Property]`.
type MemberExpression struct {
	BaseNode
	Object   Expression
	Property Expression // Identifier for dotted access, any Expression for computed
	Computed bool
}

// AwaitExpression is `await Expr`, only produced when AllowAwait is set;
// elsewhere `await` is parsed as a plain Identifier.
type AwaitExpression struct {
	BaseNode
	Operand Expression
}

// YieldExpression is `yield [*] [Expr]`, only produced when AllowYield is
// set.
type YieldExpression struct {
	BaseNode
	Delegate bool // `yield*`
	Operand  Expression // nil for bare `yield`
}

// FunctionExpression is an (optionally named) function literal used in
// expression position, e.g. as a default initialiser's value.
type FunctionExpression struct {
	BaseNode
	Name        symbol.Symbol
	HasName     bool
	Params      []BindingTarget
	Body        *StatementList
	IsAsync     bool
	IsGenerator bool
}

// SequenceExpression is the comma operator: `a, b, c`.
type SequenceExpression struct {
	BaseNode
	Expressions []Expression
}
