// Package hostenv defines the execution-context contract the script-level
// early-error validator consults read-only: whether a name is already bound
// in the running environment,
// and whether an existing global property can be shadowed by a lexical
// declaration.
//
// This module never evaluates anything, so Environment is always supplied
// by a caller (typically the CLI, pre-populated with nothing, or a future
// host embedding this parser); parsing a script against a nil Environment
// is equivalent to an empty host with no pre-existing bindings.
package hostenv

import "github.com/cwbudde/ecmaparse/pkg/symbol"

// PropertyDescriptor is the subset of a global property's descriptor the
// validator needs: whether it can be redefined by a lexical declaration.
type PropertyDescriptor struct {
	configurable bool
	isSet        bool
}

// NewPropertyDescriptor records a property's configurability.
func NewPropertyDescriptor(configurable bool) PropertyDescriptor {
	return PropertyDescriptor{configurable: configurable, isSet: true}
}

// Configurable reports (value, ok): ok is false if the descriptor itself is
// absent (no such global property).
func (d PropertyDescriptor) Configurable() (bool, bool) {
	return d.configurable, d.isSet
}

// Environment is the narrow read-only view of the host's execution context
// the validator needs. A nil *Environment behaves as an empty host: no
// bindings, no global properties.
type Environment struct {
	bindings        map[symbol.Symbol]bool
	globalProps     map[string]PropertyDescriptor
}

// NewEnvironment creates an empty host environment.
func NewEnvironment() *Environment {
	return &Environment{
		bindings:    make(map[symbol.Symbol]bool),
		globalProps: make(map[string]PropertyDescriptor),
	}
}

// HasBinding reports whether name is already bound in this environment.
func (e *Environment) HasBinding(name symbol.Symbol) bool {
	if e == nil {
		return false
	}
	return e.bindings[name]
}

// DefineBinding registers name as already bound, for tests and embedders
// that pre-seed a global scope.
func (e *Environment) DefineBinding(name symbol.Symbol) {
	e.bindings[name] = true
}

// GlobalProperty returns the descriptor for a named global property, if any
// exists.
func (e *Environment) GlobalProperty(name string) (PropertyDescriptor, bool) {
	if e == nil {
		return PropertyDescriptor{}, false
	}
	d, ok := e.globalProps[name]
	return d, ok
}

// DefineGlobalProperty registers a global property descriptor, for tests
// and embedders that pre-seed host globals (e.g. a non-configurable
// `undefined`).
func (e *Environment) DefineGlobalProperty(name string, configurable bool) {
	e.globalProps[name] = NewPropertyDescriptor(configurable)
}
