package value

import "fmt"

// Environment is a lexically scoped Symbol→Value frame with a link to
// its outer frame (spec §4.4). The isArgs flag marks frames built by
// closure application; `eval`'s root-environment lookup (spec §4.6)
// walks outward past these frames.
type Environment struct {
	vars   map[string]Value
	outer  *Environment
	isArgs bool
}

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// NewChildEnvironment creates a plain child frame (e.g. for `let*`),
// not marked as an argument-binding frame.
func NewChildEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), outer: outer}
}

// BindEnvironment builds the argument-binding frame for a closure
// application (spec §4.4's `new(outer, binds, exprs)`). binds is
// either a single Symbol (bound to exprs[0]) or a List/Vector of
// Symbols, optionally containing a literal `&` that names the symbol
// binding the remaining exprs as a List. Missing positional exprs bind
// to Nil. The returned frame is marked isArgs so `eval` can skip past
// it when walking to the root environment.
func BindEnvironment(outer *Environment, binds Value, exprs []Value) (*Environment, error) {
	e := &Environment{vars: make(map[string]Value), outer: outer, isArgs: true}

	if sym, ok := binds.(*Symbol); ok {
		var v Value = Nil
		if len(exprs) > 0 {
			v = exprs[0]
		}
		e.vars[sym.Name] = v
		return e, nil
	}

	items, ok := AsSequence(binds)
	if !ok {
		return nil, fmt.Errorf("fn* parameter list must be a symbol or a sequence of symbols, got %s", Kind(binds))
	}

	pos := 0
	for i := 0; i < len(items); i++ {
		sym, ok := items[i].(*Symbol)
		if !ok {
			return nil, fmt.Errorf("fn* parameter must be a symbol, got %s", Kind(items[i]))
		}
		if sym.Name == "&" {
			i++
			if i >= len(items) {
				return nil, fmt.Errorf("'&' in parameter list must be followed by a binding symbol")
			}
			restSym, ok := items[i].(*Symbol)
			if !ok {
				return nil, fmt.Errorf("'&' rest parameter must be a symbol, got %s", Kind(items[i]))
			}
			var rest []Value
			if pos < len(exprs) {
				rest = append(rest, exprs[pos:]...)
			}
			e.vars[restSym.Name] = NewList(rest...)
			return e, nil
		}

		var v Value = Nil
		if pos < len(exprs) {
			v = exprs[pos]
		}
		e.vars[sym.Name] = v
		pos++
	}

	return e, nil
}

// Set upserts name in the current frame only (spec §4.4: "upsert in
// the current frame").
func (e *Environment) Set(name string, v Value) {
	e.vars[name] = v
}

// Find walks outward from e until a frame defines name, returning that
// frame and true, or (nil, false) if no frame defines it.
func (e *Environment) Find(name string) (*Environment, bool) {
	for cur := e; cur != nil; cur = cur.outer {
		if _, ok := cur.vars[name]; ok {
			return cur, true
		}
	}
	return nil, false
}

// Get looks up name through the frame chain, returning (value, true)
// if defined, or (nil, false) otherwise. Callers that need the
// undefined-symbol error kind construct it themselves (spec §7) — this
// package has no dependency on the error taxonomy.
func (e *Environment) Get(name string) (Value, bool) {
	frame, ok := e.Find(name)
	if !ok {
		return nil, false
	}
	return frame.vars[name], true
}

// IsArgs reports whether e is an argument-binding frame built by
// BindEnvironment for a closure application.
func (e *Environment) IsArgs() bool {
	return e.isArgs
}

// Outer returns e's enclosing frame, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// EvalRoot walks outward from e past argument-binding frames, stopping
// at the first non-args frame. This realizes the `eval` primitive's
// "root environment" lookup (spec §4.6).
func (e *Environment) EvalRoot() *Environment {
	cur := e
	for cur.outer != nil && cur.isArgs {
		cur = cur.outer
	}
	return cur
}

// Keys returns the symbol names defined directly in e (not its outer
// chain), in sorted order, for the `env-keys` primitive (spec §4.7).
func (e *Environment) Keys() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
