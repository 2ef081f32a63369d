package parser

import (
	"testing"

	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/cwbudde/ecmaparse/internal/hostenv"
)

func mustParse(t *testing.T, src string) *ast.StatementList {
	t.Helper()
	p := New(src, nil, nil)
	list, err := p.ParseAll()
	if err != nil {
		t.Fatalf("ParseAll(%q) returned unexpected error: %v", src, err)
	}
	return list
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	p := New(src, nil, nil)
	_, err := p.ParseAll()
	if err == nil {
		t.Fatalf("ParseAll(%q) expected an error, got none", src)
	}
	return err
}

func TestScriptEndToEnd(t *testing.T) {
	t.Run("use strict directive sets StatementList.Strict", func(t *testing.T) {
		list := mustParse(t, `"use strict"; var x = 1;`)
		if !list.Strict {
			t.Error("expected Strict=true")
		}
		if len(list.Items) != 2 {
			t.Fatalf("expected 2 items (directive + var statement), got %d", len(list.Items))
		}
	})

	t.Run("function redeclared with var is accepted", func(t *testing.T) {
		list := mustParse(t, `function f(){} var f;`)
		if len(list.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(list.Items))
		}
		if _, ok := list.Items[0].(*ast.FunctionDeclaration); !ok {
			t.Errorf("expected hoisted FunctionDeclaration first, got %T", list.Items[0])
		}
	})

	t.Run("duplicate let is rejected", func(t *testing.T) {
		err := parseErr(t, `let x; let x;`)
		pe, ok := err.(*ParseError)
		if !ok || pe.Kind != General {
			t.Fatalf("expected a General ParseError, got %#v", err)
		}
	})

	t.Run("let then var with same name is rejected", func(t *testing.T) {
		err := parseErr(t, `let x; var x;`)
		pe, ok := err.(*ParseError)
		if !ok || pe.Kind != General {
			t.Fatalf("expected a General ParseError, got %#v", err)
		}
	})

	t.Run("object rest pattern", func(t *testing.T) {
		list := mustParse(t, `var { a, b: c = 1, ...rest } = o;`)
		stmt := list.Items[0].(*ast.VariableStatement)
		pat := stmt.Declarators[0].Target.(*ast.ObjectBindingPattern)
		if len(pat.Elements) != 3 {
			t.Fatalf("expected 3 elements, got %d", len(pat.Elements))
		}
		rest, ok := pat.Elements[2].(ast.ObjectPatternRestProperty)
		if !ok {
			t.Fatalf("expected RestProperty last, got %T", pat.Elements[2])
		}
		if len(rest.ExcludedKeys) != 2 {
			t.Errorf("expected 2 excluded keys, got %d", len(rest.ExcludedKeys))
		}
	})

	t.Run("object pattern computed key", func(t *testing.T) {
		list := mustParse(t, `var { [k]: x } = o;`)
		stmt := list.Items[0].(*ast.VariableStatement)
		pat := stmt.Declarators[0].Target.(*ast.ObjectBindingPattern)
		if len(pat.Elements) != 1 {
			t.Fatalf("expected 1 element, got %d", len(pat.Elements))
		}
		elem, ok := pat.Elements[0].(ast.ObjectPatternComputedName)
		if !ok {
			t.Fatalf("expected ComputedName, got %T", pat.Elements[0])
		}
		if _, ok := elem.KeyExpr.(*ast.Identifier); !ok {
			t.Errorf("expected key expression to be an Identifier, got %T", elem.KeyExpr)
		}
		if _, ok := elem.Target.(*ast.BindingIdentifier); !ok {
			t.Errorf("expected target to be a BindingIdentifier, got %T", elem.Target)
		}
	})

	t.Run("array pattern elision and rest", func(t *testing.T) {
		list := mustParse(t, `var [ , a, , ...r ] = x;`)
		stmt := list.Items[0].(*ast.VariableStatement)
		pat := stmt.Declarators[0].Target.(*ast.ArrayBindingPattern)
		if len(pat.Elements) != 4 {
			t.Fatalf("expected 4 elements, got %d", len(pat.Elements))
		}
		if _, ok := pat.Elements[0].(ast.ArrayPatternElision); !ok {
			t.Errorf("element 0: expected Elision, got %T", pat.Elements[0])
		}
		if _, ok := pat.Elements[1].(ast.ArrayPatternSingleName); !ok {
			t.Errorf("element 1: expected SingleName, got %T", pat.Elements[1])
		}
		if _, ok := pat.Elements[2].(ast.ArrayPatternElision); !ok {
			t.Errorf("element 2: expected Elision, got %T", pat.Elements[2])
		}
		if _, ok := pat.Elements[3].(ast.ArrayPatternSingleNameRest); !ok {
			t.Errorf("element 3: expected SingleNameRest, got %T", pat.Elements[3])
		}
	})

	t.Run("function declaration in strict block is rejected", func(t *testing.T) {
		p := New(`{ function g(){} }`, nil, nil)
		p.cursor.SetStrictMode(true)
		_, err := p.ParseAll()
		if err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("return at top level is rejected", func(t *testing.T) {
		if err := parseErr(t, `return;`); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestHoistingIsStablePartition(t *testing.T) {
	list := mustParse(t, `
		var a = 1;
		function f(){}
		var b = 2;
		function g(){}
		a;
	`)
	if len(list.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(list.Items))
	}
	if _, ok := list.Items[0].(*ast.FunctionDeclaration); !ok {
		t.Fatalf("item 0: expected FunctionDeclaration, got %T", list.Items[0])
	}
	if list.Items[0].(*ast.FunctionDeclaration) == nil {
		t.Fatal("unreachable")
	}
	if _, ok := list.Items[1].(*ast.FunctionDeclaration); !ok {
		t.Fatalf("item 1: expected FunctionDeclaration, got %T", list.Items[1])
	}
	// Non-hoistable items keep their original relative order: var a, var b,
	// then the bare expression statement `a;`.
	rest := list.Items[2:]
	if _, ok := rest[0].(*ast.VariableStatement); !ok {
		t.Fatalf("item 2: expected VariableStatement, got %T", rest[0])
	}
	if _, ok := rest[1].(*ast.VariableStatement); !ok {
		t.Fatalf("item 3: expected VariableStatement, got %T", rest[1])
	}
	if _, ok := rest[2].(*ast.ExpressionStatement); !ok {
		t.Fatalf("item 4: expected ExpressionStatement, got %T", rest[2])
	}
}

func TestValidateScriptAgainstHostEnvironment(t *testing.T) {
	host := hostenv.NewEnvironment()
	p := New(`let x;`, nil, host)
	host.DefineBinding(p.Symbols().Intern("x"))

	_, err := p.ParseAll()
	if err == nil {
		t.Fatal("expected a collision error against a pre-existing host binding")
	}
}

func TestValidateScriptSkipsEmptyStatementList(t *testing.T) {
	list := mustParse(t, ``)
	if len(list.Items) != 0 {
		t.Fatalf("expected an empty statement list, got %d items", len(list.Items))
	}
}
