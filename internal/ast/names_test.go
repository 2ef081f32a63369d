package ast

import (
	"testing"

	"github.com/cwbudde/ecmaparse/pkg/symbol"
)

func TestStableHoistHeaderPreservesRelativeOrder(t *testing.T) {
	a := &VariableStatement{}
	fn1 := &FunctionDeclaration{}
	b := &ExpressionStatement{}
	fn2 := &FunctionDeclaration{}

	items := []Statement{a, fn1, b, fn2}
	StableHoistHeader(items)

	if items[0] != fn1 || items[1] != fn2 {
		t.Fatalf("hoistable declarations not moved to the front in order: %v", items)
	}
	if items[2] != a || items[3] != b {
		t.Fatalf("non-hoistable items lost their relative order: %v", items)
	}
}

func TestStableHoistHeaderNoFunctionsIsNoop(t *testing.T) {
	a := &VariableStatement{}
	b := &ExpressionStatement{}
	items := []Statement{a, b}
	StableHoistHeader(items)
	if items[0] != a || items[1] != b {
		t.Fatalf("order changed with no hoistable items: %v", items)
	}
}

func TestLexicallyDeclaredNamesFromDestructuring(t *testing.T) {
	tbl := symbol.NewTable()
	a := tbl.Intern("a")
	rest := tbl.Intern("rest")

	target := &ObjectBindingPattern{
		Elements: []ObjectPatternElement{
			ObjectPatternSingleName{Ident: a, PropertyName: a},
			ObjectPatternRestProperty{Ident: rest, ExcludedKeys: []symbol.Symbol{a}},
		},
	}
	list := &StatementList{
		Items: []Statement{
			&LexicalDeclaration{
				Kind:        Let,
				Declarators: []*VariableDeclarator{{Target: target}},
			},
		},
	}

	names := LexicallyDeclaredNames(list)
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2: %+v", len(names), names)
	}
	if names[0].Name != a || names[0].IsFunction {
		t.Fatalf("first name = %+v, want (a, false)", names[0])
	}
	if names[1].Name != rest || names[1].IsFunction {
		t.Fatalf("second name = %+v, want (rest, false)", names[1])
	}
}

func TestLexicallyDeclaredNamesFunctionAndClass(t *testing.T) {
	tbl := symbol.NewTable()
	f := tbl.Intern("f")
	c := tbl.Intern("C")

	list := &StatementList{
		Items: []Statement{
			&FunctionDeclaration{Name: f},
			&ClassDeclaration{Name: c, HasName: true},
			&ClassDeclaration{HasName: false}, // unnamed default-export class: no name to collect
		},
	}

	names := LexicallyDeclaredNames(list)
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2 (unnamed class excluded): %+v", len(names), names)
	}
	if names[0].Name != f || !names[0].IsFunction {
		t.Fatalf("first name = %+v, want (f, true)", names[0])
	}
	if names[1].Name != c || names[1].IsFunction {
		t.Fatalf("second name = %+v, want (C, false)", names[1])
	}
}

func TestVarDeclaredNamesRecursesThroughControlFlowNotFunctions(t *testing.T) {
	tbl := symbol.NewTable()
	outer := tbl.Intern("outer")
	inner := tbl.Intern("inner")
	shadowed := tbl.Intern("shadowed")

	innerFn := &FunctionDeclaration{
		Name: shadowed,
		Body: &StatementList{
			Items: []Statement{
				&VariableStatement{
					Declarators: []*VariableDeclarator{
						{Target: &BindingIdentifier{Name: shadowed}},
					},
				},
			},
		},
	}

	list := &StatementList{
		Items: []Statement{
			&VariableStatement{
				Declarators: []*VariableDeclarator{
					{Target: &BindingIdentifier{Name: outer}},
				},
			},
			&IfStatement{
				Then: &BlockStatement{
					Body: &StatementList{
						Items: []Statement{
							&VariableStatement{
								Declarators: []*VariableDeclarator{
									{Target: &BindingIdentifier{Name: inner}},
								},
							},
							innerFn,
						},
					},
				},
			},
		},
	}

	set := map[symbol.Symbol]bool{}
	VarDeclaredNames(list, set)

	if !set[outer] || !set[inner] {
		t.Fatalf("expected outer and inner to be var-declared, got %v", set)
	}
	if set[shadowed] {
		t.Fatalf("var inside a nested function body must not leak into the enclosing var scope: %v", set)
	}
}

func TestCollectBindingNamesNestedArrayInsideObject(t *testing.T) {
	tbl := symbol.NewTable()
	b := tbl.Intern("b")
	c := tbl.Intern("c")

	target := &ObjectBindingPattern{
		Elements: []ObjectPatternElement{
			ObjectPatternNested{
				PropertyName: tbl.Intern("a"),
				Nested: &ArrayBindingPattern{
					Elements: []ArrayPatternElement{
						ArrayPatternSingleName{Ident: b},
						ArrayPatternElision{},
						ArrayPatternSingleNameRest{Ident: c},
					},
				},
			},
		},
	}

	var got []symbol.Symbol
	collectBindingNames(target, func(s symbol.Symbol) { got = append(got, s) })

	if len(got) != 2 || got[0] != b || got[1] != c {
		t.Fatalf("got %v, want [b c] (elision contributes no name)", got)
	}
}
