package symbol

import "testing"

func TestInternReturnsStableHandleForSameString(t *testing.T) {
	tbl := NewTable()
	a1 := tbl.Intern("foo")
	a2 := tbl.Intern("foo")
	if a1 != a2 {
		t.Fatalf("interning the same string twice gave different handles: %v, %v", a1, a2)
	}

	b := tbl.Intern("bar")
	if a1 == b {
		t.Fatalf("distinct strings interned to the same handle")
	}
}

func TestResolveRoundTrips(t *testing.T) {
	tbl := NewTable()
	sym := tbl.Intern("myVariable")
	if got := tbl.Resolve(sym); got != "myVariable" {
		t.Fatalf("Resolve() = %q, want %q", got, "myVariable")
	}
}

func TestResolveUnknownHandleIsEmpty(t *testing.T) {
	tbl := NewTable()
	if got := tbl.Resolve(InvalidSymbol); got != "" {
		t.Fatalf("Resolve(InvalidSymbol) = %q, want empty string", got)
	}
	if got := tbl.Resolve(Symbol(999)); got != "" {
		t.Fatalf("Resolve(out-of-range) = %q, want empty string", got)
	}
}

func TestLookupDoesNotIntern(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Lookup("neverSeen"); ok {
		t.Fatalf("Lookup reported a string that was never interned")
	}

	tbl.Intern("seen")
	sym, ok := tbl.Lookup("seen")
	if !ok {
		t.Fatalf("Lookup did not find a string that was interned")
	}
	if tbl.Resolve(sym) != "seen" {
		t.Fatalf("Lookup returned a handle that resolves to %q, want %q", tbl.Resolve(sym), "seen")
	}
}

func TestNewTablePrePopulatesWellKnownSymbols(t *testing.T) {
	tbl := NewTable()
	cases := map[string]Symbol{
		"arguments": Arguments,
		"eval":      Eval,
		"let":       Let,
		"yield":     Yield,
		"await":     Await,
	}
	for s, want := range cases {
		got, ok := tbl.Lookup(s)
		if !ok {
			t.Fatalf("%q was not pre-interned by NewTable", s)
		}
		if got != want {
			t.Fatalf("Lookup(%q) = %v, want package var %v", s, got, want)
		}
	}
}

func TestTwoTablesResolveIndependently(t *testing.T) {
	t1 := NewTable()
	t2 := NewTable()

	t2.Intern("unrelated") // shifts t2's next free index relative to t1's
	a := t1.Intern("shared")
	b := t2.Intern("shared")

	if t1.Resolve(a) != "shared" || t2.Resolve(b) != "shared" {
		t.Fatalf("each table must resolve its own handle back to the interned string")
	}
	// Handles from different tables are not comparable; only the package
	// vars (Arguments/Eval/Let/Yield/Await) are guaranteed to line up since
	// NewTable interns them first, in the same order, for every table.
	if t1.Resolve(Let) != "let" || t2.Resolve(Let) != "let" {
		t.Fatalf("well-known symbol Let must resolve the same way across tables")
	}
}
