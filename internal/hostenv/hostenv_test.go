package hostenv

import (
	"testing"

	"github.com/cwbudde/ecmaparse/pkg/symbol"
)

func TestNilEnvironmentBehavesEmpty(t *testing.T) {
	var e *Environment
	if e.HasBinding(symbol.Symbol(0)) {
		t.Fatalf("nil Environment reported a binding")
	}
	if _, ok := e.GlobalProperty("undefined"); ok {
		t.Fatalf("nil Environment reported a global property")
	}
}

func TestDefineBindingIsObservedByHasBinding(t *testing.T) {
	e := NewEnvironment()
	tbl := symbol.NewTable()
	name := tbl.Intern("x")

	if e.HasBinding(name) {
		t.Fatalf("fresh environment already has binding %v", name)
	}
	e.DefineBinding(name)
	if !e.HasBinding(name) {
		t.Fatalf("DefineBinding did not register the binding")
	}
}

func TestGlobalPropertyConfigurability(t *testing.T) {
	e := NewEnvironment()
	e.DefineGlobalProperty("globalThis", true)
	e.DefineGlobalProperty("undefined", false)

	d, ok := e.GlobalProperty("globalThis")
	if !ok {
		t.Fatalf("expected globalThis to be registered")
	}
	if configurable, ok := d.Configurable(); !ok || !configurable {
		t.Fatalf("globalThis should be configurable, got (%v, %v)", configurable, ok)
	}

	d, ok = e.GlobalProperty("undefined")
	if !ok {
		t.Fatalf("expected undefined to be registered")
	}
	if configurable, ok := d.Configurable(); !ok || configurable {
		t.Fatalf("undefined should be non-configurable, got (%v, %v)", configurable, ok)
	}
}

func TestGlobalPropertyAbsentReportsNotOK(t *testing.T) {
	e := NewEnvironment()
	d, ok := e.GlobalProperty("neverDefined")
	if ok {
		t.Fatalf("unregistered property reported present")
	}
	if configurable, ok := d.Configurable(); ok || configurable {
		t.Fatalf("zero-value descriptor should report (false, false), got (%v, %v)", configurable, ok)
	}
}
