package ast

import (
	"sort"

	"github.com/cwbudde/ecmaparse/pkg/symbol"
)

// StatementList is an ordered sequence of statements plus the strict-mode
// flag that applied while parsing them.
type StatementList struct {
	Items  []Statement
	Strict bool
}

// IsHoistable reports whether s is a function or generator declaration,
// the only statement kinds moved to the front of a list.
func IsHoistable(s Statement) bool {
	fn, ok := s.(*FunctionDeclaration)
	return ok && fn != nil
}

// StableHoistHeader reorders items in place so that every hoistable
// declaration precedes every non-hoistable item, preserving the original
// relative order within each group.
//
// sort.SliceStable is required, not sort.Slice: the relative order of
// non-hoistable items is observable as evaluation order.
func StableHoistHeader(items []Statement) {
	sort.SliceStable(items, func(i, j int) bool {
		return IsHoistable(items[i]) && !IsHoistable(items[j])
	})
}

// LexicalName pairs a lexically declared name with whether it was
// introduced by a function declaration.
type LexicalName struct {
	Name         symbol.Symbol
	IsFunction   bool
}

// LexicallyDeclaredNames returns the (name, isFunctionDeclaration) pairs
// introduced directly by list's own items: let/const declarators, and
// top-level function/class declarations. It does not recurse into nested
// blocks -- a nested block's lexical declarations belong to that block's
// own scope, not to list's.
func LexicallyDeclaredNames(list *StatementList) []LexicalName {
	var out []LexicalName
	for _, item := range list.Items {
		switch n := item.(type) {
		case *LexicalDeclaration:
			for _, d := range n.Declarators {
				collectBindingNames(d.Target, func(sym symbol.Symbol) {
					out = append(out, LexicalName{Name: sym, IsFunction: false})
				})
			}
		case *FunctionDeclaration:
			out = append(out, LexicalName{Name: n.Name, IsFunction: true})
		case *ClassDeclaration:
			if n.HasName {
				out = append(out, LexicalName{Name: n.Name, IsFunction: false})
			}
		}
	}
	return out
}

// VarDeclaredNames extends set with every name introduced by a `var`
// statement anywhere in list, recursing through nested blocks/control-flow
// bodies (var is function/script scoped, not block scoped) but not through
// nested function or class bodies, which have their own var scope.
func VarDeclaredNames(list *StatementList, set map[symbol.Symbol]bool) {
	for _, item := range list.Items {
		varDeclaredNamesInStatement(item, set)
	}
}

func varDeclaredNamesInStatement(s Statement, set map[symbol.Symbol]bool) {
	switch n := s.(type) {
	case *VariableStatement:
		for _, d := range n.Declarators {
			collectBindingNames(d.Target, func(sym symbol.Symbol) { set[sym] = true })
		}
	case *BlockStatement:
		if n.Body != nil {
			VarDeclaredNames(n.Body, set)
		}
	case *IfStatement:
		if n.Then != nil {
			varDeclaredNamesInStatement(n.Then, set)
		}
		if n.Else != nil {
			varDeclaredNamesInStatement(n.Else, set)
		}
	case *WhileStatement:
		varDeclaredNamesInStatement(n.Body, set)
	case *DoWhileStatement:
		varDeclaredNamesInStatement(n.Body, set)
	case *ForStatement:
		if initStmt, ok := n.Init.(*VariableStatement); ok {
			varDeclaredNamesInStatement(initStmt, set)
		}
		varDeclaredNamesInStatement(n.Body, set)
	case *SwitchStatement:
		for _, c := range n.Cases {
			if c.Body != nil {
				VarDeclaredNames(c.Body, set)
			}
		}
	case *TryStatement:
		if n.Block != nil {
			varDeclaredNamesInStatement(n.Block, set)
		}
		if n.Handler != nil {
			varDeclaredNamesInStatement(n.Handler, set)
		}
		if n.Finally != nil {
			varDeclaredNamesInStatement(n.Finally, set)
		}
	case *LabelledStatement:
		varDeclaredNamesInStatement(n.Body, set)
	}
}

// collectBindingNames walks a BindingTarget and invokes fn for every name
// it binds, including names nested arbitrarily deep inside object/array
// patterns.
func collectBindingNames(target BindingTarget, fn func(symbol.Symbol)) {
	switch t := target.(type) {
	case *BindingIdentifier:
		fn(t.Name)
	case *ObjectBindingPattern:
		for _, el := range t.Elements {
			switch e := el.(type) {
			case ObjectPatternSingleName:
				fn(e.Ident)
			case ObjectPatternNested:
				collectBindingNames(e.Nested, fn)
			case ObjectPatternComputedName:
				collectBindingNames(e.Target, fn)
			case ObjectPatternRestProperty:
				fn(e.Ident)
			case ObjectPatternEmpty:
				// nothing to bind
			}
		}
	case *ArrayBindingPattern:
		for _, el := range t.Elements {
			switch e := el.(type) {
			case ArrayPatternSingleName:
				fn(e.Ident)
			case ArrayPatternNested:
				collectBindingNames(e.Nested, fn)
			case ArrayPatternSingleNameRest:
				fn(e.Ident)
			case ArrayPatternNestedRest:
				collectBindingNames(e.Nested, fn)
			case ArrayPatternElision:
				// nothing to bind
			}
		}
	}
}
