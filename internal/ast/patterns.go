package ast

import "github.com/cwbudde/ecmaparse/pkg/symbol"

// BindingTarget is whatever a binding can destructure into: a plain
// identifier or a nested pattern.
type BindingTarget interface {
	Node
	bindingTargetNode()
}

// BindingIdentifier is a single interned name introduced by a binding
// position.
type BindingIdentifier struct {
	BaseNode
	Name symbol.Symbol
}

func (*BindingIdentifier) bindingTargetNode() {}

// ObjectBindingPattern is the `{ ... }` destructuring target.
// Elements is never empty: a pattern with no properties and no rest is
// represented as a single ObjectPatternEmpty element, per the spec's
// "Empty is produced exactly when an object pattern has zero elements and
// no rest" invariant.
type ObjectBindingPattern struct {
	BaseNode
	Elements []ObjectPatternElement
}

func (*ObjectBindingPattern) bindingTargetNode() {}
func (*ObjectBindingPattern) expressionNode()    {}

// ObjectPatternElement is one of the four object-pattern element shapes.
type ObjectPatternElement interface {
	objectPatternElementNode()
}

// ObjectPatternSingleName binds a single property, optionally renaming it
// and/or giving it a default initialiser: `{ a }`, `{ a: b }`, `{ a = 1 }`.
type ObjectPatternSingleName struct {
	Ident        symbol.Symbol // the local binding name
	PropertyName symbol.Symbol // the source property name (== Ident for shorthand)
	DefaultInit  Expression    // nil if absent
}

func (ObjectPatternSingleName) objectPatternElementNode() {}

// ObjectPatternNested binds a property to a nested pattern: `{ a: {x, y} }`.
type ObjectPatternNested struct {
	PropertyName symbol.Symbol
	Nested       BindingTarget // *ObjectBindingPattern or *ArrayBindingPattern
	DefaultInit  Expression
}

func (ObjectPatternNested) objectPatternElementNode() {}

// ObjectPatternComputedName binds a computed property key's value to a
// target: `{ [k]: x }`, `{ [k]: { y } = {} }`. The key is an arbitrary
// expression evaluated at destructure time, so unlike ObjectPatternSingleName
// and ObjectPatternNested it carries no static property symbol -- a
// trailing rest element's ExcludedKeys never includes it.
type ObjectPatternComputedName struct {
	KeyExpr     Expression
	Target      BindingTarget
	DefaultInit Expression
}

func (ObjectPatternComputedName) objectPatternElementNode() {}

// ObjectPatternRestProperty is `...rest`, always last if present. ExcludedKeys
// lists the property symbols already bound before the rest, needed by
// destructuring semantics to know which own-enumerable keys to copy.
type ObjectPatternRestProperty struct {
	Ident        symbol.Symbol
	ExcludedKeys []symbol.Symbol
}

func (ObjectPatternRestProperty) objectPatternElementNode() {}

// ObjectPatternEmpty marks a `{}` pattern with nothing to bind.
type ObjectPatternEmpty struct{}

func (ObjectPatternEmpty) objectPatternElementNode() {}

// ArrayBindingPattern is the `[ ... ]` destructuring target.
type ArrayBindingPattern struct {
	BaseNode
	Elements []ArrayPatternElement
}

func (*ArrayBindingPattern) bindingTargetNode() {}
func (*ArrayBindingPattern) expressionNode()    {}

// ArrayPatternElement is one of the five array-pattern element shapes.
type ArrayPatternElement interface {
	arrayPatternElementNode()
}

// ArrayPatternSingleName is `a` or `a = init`.
type ArrayPatternSingleName struct {
	Ident       symbol.Symbol
	DefaultInit Expression
}

func (ArrayPatternSingleName) arrayPatternElementNode() {}

// ArrayPatternNested is `{...}` or `[...]` nested inside an array pattern,
// optionally with its own default initialiser.
type ArrayPatternNested struct {
	Nested      BindingTarget
	DefaultInit Expression
}

func (ArrayPatternNested) arrayPatternElementNode() {}

// ArrayPatternSingleNameRest is `...rest`, always last if present.
type ArrayPatternSingleNameRest struct {
	Ident symbol.Symbol
}

func (ArrayPatternSingleNameRest) arrayPatternElementNode() {}

// ArrayPatternNestedRest is `...{ }` or `...[ ]`, always last if present.
type ArrayPatternNestedRest struct {
	Nested BindingTarget
}

func (ArrayPatternNestedRest) arrayPatternElementNode() {}

// ArrayPatternElision is an empty slot: `[, a]`.
type ArrayPatternElision struct{}

func (ArrayPatternElision) arrayPatternElementNode() {}
