// Package env re-exports the Environment type from internal/value.
//
// The real implementation lives in internal/value because Closures
// (a Value variant) capture an *Environment, and Environments store
// Values — putting both in one package avoids an import cycle between
// value and env.
package env

import "github.com/tscott-dev/lumen/internal/value"

// Environment is Lumen's lexical scope frame (spec §4.4).
type Environment = value.Environment

// New creates a root-level environment with no outer scope.
func New() *Environment {
	return value.NewEnvironment()
}

// NewChild creates a plain child frame enclosed by outer, for forms
// like `let*` that introduce a scope without binding call arguments.
func NewChild(outer *Environment) *Environment {
	return value.NewChildEnvironment(outer)
}

// Bind builds the argument-binding frame for a closure application
// (spec §4.4's `new(outer, binds, exprs)`), marking the frame so
// `eval` can skip past it when locating the root environment.
func Bind(outer *Environment, binds value.Value, exprs []value.Value) (*Environment, error) {
	return value.BindEnvironment(outer, binds, exprs)
}
