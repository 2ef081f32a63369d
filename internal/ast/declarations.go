package ast

import "github.com/cwbudde/ecmaparse/pkg/symbol"

func (*LexicalDeclaration) statementNode()   {}
func (*LexicalDeclaration) declarationNode() {}
func (*FunctionDeclaration) statementNode()   {}
func (*FunctionDeclaration) declarationNode() {}
func (*ClassDeclaration) statementNode()      {}
func (*ClassDeclaration) declarationNode()    {}

// LexicalKind distinguishes `let` from `const`.
type LexicalKind int

const (
	Let LexicalKind = iota
	Const
)

// LexicalDeclaration is `let Declarators;` or `const Declarators;`.
type LexicalDeclaration struct {
	BaseNode
	Kind        LexicalKind
	Declarators []*VariableDeclarator
}

// FunctionDeclaration is `[async] function [*] Name(Params) { Body }`.
// Hoistable: moved to the front of its enclosing statement list.
type FunctionDeclaration struct {
	BaseNode
	Name      symbol.Symbol
	Params    []BindingTarget
	Body      *StatementList
	IsAsync   bool
	IsGenerator bool
}

// ClassDeclaration is `class Name [extends Super] { Members }`. Not
// hoistable: only function/generator declarations hoist.
type ClassDeclaration struct {
	BaseNode
	Name       symbol.Symbol
	HasName    bool // false for an unnamed default-export class (allowDefault)
	SuperClass Expression
	Members    []*ClassMember
}

// ClassMember is a method or field inside a class body. Only the shape
// needed by the early-error/name-collection queries and by a CLI summary
// view is modelled; full class semantics are out of this core's scope.
type ClassMember struct {
	Name     symbol.Symbol
	IsStatic bool
	Kind     ClassMemberKind
	Value    Node // *FunctionDeclaration-shaped body for methods, Expression for fields
}

// ClassMemberKind distinguishes method/getter/setter/field members.
type ClassMemberKind int

const (
	MethodMember ClassMemberKind = iota
	GetterMember
	SetterMember
	FieldMember
)
