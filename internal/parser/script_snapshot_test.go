package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cwbudde/ecmaparse/internal/ast"
	"github.com/gkampitakis/go-snaps/snaps"
)

// corpus scripts exercising each component of the covered core: grammar
// parameterisation, the binding-pattern recogniser, the statement dispatcher,
// hoisting, and the script-level early-error validator. Snapshotting the
// parsed shape (not just "it parsed") catches regressions in element
// ordering, elision counting, and hoisting that a bare pass/fail test would
// miss.
var snapshotScripts = []struct {
	name string
	src  string
}{
	{"directive_prologue", `"use strict"; var x = 1;`},
	{"hoisting_order", `var a = 1; function f(){} var b = 2; function g(){} a;`},
	{"object_pattern_rest", `var { a, b: c = 1, ...rest } = o;`},
	{"array_pattern_elision_rest", `var [ , a, , ...r ] = x;`},
	{"nested_destructuring", `var { a: [ b, { c } = {} ] } = o;`},
	{"labelled_vs_expression", `outer: for (;;) { break outer; } x;`},
	{"for_loop_no_in", `for (let i = 0; i < 10; i = i + 1) { i; }`},
	{"try_catch_finally", `try { throw 1; } catch (e) { e; } finally { 1; }`},
	{"function_declaration", `function* gen(a, [b, c] = []) { yield a; }`},
	{"class_declaration", `class C extends Base { static m() { return 1; } }`},
}

// snapshotStatementList renders a StatementList's shape -- strict flag, then
// one line per top-level item naming its concrete kind -- into a stable,
// human-diffable string for go-snaps to compare across runs.
func snapshotStatementList(list *ast.StatementList) string {
	var b strings.Builder
	fmt.Fprintf(&b, "strict=%v items=%d\n", list.Strict, len(list.Items))
	for i, item := range list.Items {
		fmt.Fprintf(&b, "%d: %s\n", i, snapshotKind(item))
	}
	return b.String()
}

func snapshotKind(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.FunctionDeclaration:
		return fmt.Sprintf("FunctionDeclaration(generator=%v, async=%v)", n.IsGenerator, n.IsAsync)
	case *ast.ClassDeclaration:
		return fmt.Sprintf("ClassDeclaration(hasName=%v, members=%d)", n.HasName, len(n.Members))
	case *ast.LexicalDeclaration:
		kind := "let"
		if n.Kind == ast.Const {
			kind = "const"
		}
		return fmt.Sprintf("LexicalDeclaration(%s, declarators=%d)", kind, len(n.Declarators))
	case *ast.VariableStatement:
		return fmt.Sprintf("VariableStatement(declarators=%d)", len(n.Declarators))
	case *ast.LabelledStatement:
		return "LabelledStatement"
	case *ast.ForStatement:
		return "ForStatement"
	case *ast.TryStatement:
		return fmt.Sprintf("TryStatement(hasCatch=%v, hasFinally=%v)", n.Handler != nil, n.Finally != nil)
	case *ast.ExpressionStatement:
		return "ExpressionStatement"
	default:
		return fmt.Sprintf("%T", s)
	}
}

// TestScriptSnapshots snapshots the parsed shape of a small corpus of
// scripts chosen to exercise every component named in the covered core.
func TestScriptSnapshots(t *testing.T) {
	for _, tc := range snapshotScripts {
		t.Run(tc.name, func(t *testing.T) {
			list := mustParse(t, tc.src)
			snaps.MatchSnapshot(t, snapshotStatementList(list))
		})
	}
}
