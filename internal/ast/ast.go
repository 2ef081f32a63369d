package ast

import "github.com/cwbudde/ecmaparse/pkg/token"

// Node is the common interface implemented by every AST node. Every node is
// constructed exactly once, by exactly one recogniser.
type Node interface {
	Span() token.Span
}

// Statement is any node that can appear in a StatementList.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a Statement that also introduces one or more bindings
// (function, class, let, const, var).
type Declaration interface {
	Statement
	declarationNode()
}

// Expression is any node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// BaseNode carries the source span every concrete node embeds.
type BaseNode struct {
	SpanValue token.Span
}

// Span returns the node's source extent.
func (b BaseNode) Span() token.Span { return b.SpanValue }
