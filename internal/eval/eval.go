// Package eval implements Lumen's evaluator (spec §4.6): a single
// trampoline entry point that rebinds its own ast/env locals instead
// of recursing, so `do`, `if`, `let*` tail positions, quasiquote, and
// closure application all run in constant host-stack depth. Grounded
// on original_source/c_thylacine/eval.c for the step order (macro
// expand, then dispatch) this package's tests exercise directly.
package eval

import (
	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

// Eval implements the trampoline described in spec §4.6: on each
// iteration it macro-expands ast, then either dispatches a special
// form, evaluates ast via eval-ast, or applies a Function/Closure
// head. Tail positions rebind ast/env and loop instead of recursing.
func Eval(ast value.Value, environment *env.Environment) (value.Value, error) {
	for {
		expanded, err := macroExpand(ast, environment)
		if err != nil {
			return nil, err
		}
		ast = expanded

		list, ok := ast.(*value.List)
		if !ok {
			return evalAST(ast, environment)
		}
		if len(list.Items) == 0 {
			return ast, nil
		}

		if sym, ok := list.Items[0].(*value.Symbol); ok {
			next, nextEnv, result, handled, err := evalSpecialForm(sym.Name, list, environment)
			if err != nil {
				return nil, err
			}
			if handled {
				return result, nil
			}
			if next != nil || nextEnv != nil {
				ast, environment = next, nextEnv
				continue
			}
		}

		evaluated, err := evalAST(list, environment)
		if err != nil {
			return nil, err
		}
		evList := evaluated.(*value.List)
		head, args := evList.Items[0], evList.Items[1:]

		switch fn := head.(type) {
		case *value.Function:
			return fn.Call(environment, args)
		case *value.Closure:
			newEnv, err := env.Bind(fn.Env, fn.Params, args)
			if err != nil {
				return nil, err
			}
			ast, environment = fn.Body, newEnv
			continue
		default:
			return nil, errors.NewTypeError("cannot call %s as a function", value.Kind(head))
		}
	}
}

// Apply invokes fn with already-evaluated args, for use by core
// primitives (`apply`, `map`, `swap!`) that need to call a Function or
// Closure value outside of the evaluator's own tail position. callerEnv
// is passed through to a Function so env-aware primitives like `eval`
// still see the dynamic calling environment when invoked indirectly.
// Unlike the trampoline in Eval, this recurses on the host stack,
// which is acceptable here because these call sites are not in tail
// position.
func Apply(callerEnv *env.Environment, fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Function:
		return f.Call(callerEnv, args)
	case *value.Closure:
		newEnv, err := env.Bind(f.Env, f.Params, args)
		if err != nil {
			return nil, err
		}
		return Eval(f.Body, newEnv)
	default:
		return nil, errors.NewTypeError("cannot call %s as a function", value.Kind(fn))
	}
}

// evalAST implements spec §4.6's eval-ast helper: a Symbol resolves
// through the environment chain, List/Vector rebuild with each element
// evaluated, HashMap rebuilds with each key and value evaluated
// (pairwise, in order, then re-sorted by HashMapBuilder.Build), and
// everything else evaluates to itself.
func evalAST(ast value.Value, environment *env.Environment) (value.Value, error) {
	switch v := ast.(type) {
	case *value.Symbol:
		val, ok := environment.Get(v.Name)
		if !ok {
			return nil, errors.NewUndefinedSymbolError(v.Name)
		}
		return val, nil

	case *value.List:
		items, err := evalEach(v.Items, environment)
		if err != nil {
			return nil, err
		}
		return value.NewList(items...), nil

	case *value.Vector:
		items, err := evalEach(v.Items, environment)
		if err != nil {
			return nil, err
		}
		return value.NewVector(items...), nil

	case *value.HashMap:
		b := value.NewHashMapBuilder()
		for _, e := range v.Entries() {
			k, err := Eval(e.Key, environment)
			if err != nil {
				return nil, err
			}
			val, err := Eval(e.Val, environment)
			if err != nil {
				return nil, err
			}
			b.Add(k, val)
		}
		return b.Build(), nil

	default:
		return ast, nil
	}
}

func evalEach(forms []value.Value, environment *env.Environment) ([]value.Value, error) {
	out := make([]value.Value, len(forms))
	for i, f := range forms {
		v, err := Eval(f, environment)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
