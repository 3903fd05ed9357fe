package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/eval"
	"github.com/tscott-dev/lumen/internal/value"
)

func builtinAtom(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.NewAtom(args[0]), nil
}

func builtinAtomP(_ *value.Environment, args []value.Value) (value.Value, error) {
	_, ok := args[0].(*value.Atom)
	return value.Bool(ok), nil
}

func builtinDeref(_ *value.Environment, args []value.Value) (value.Value, error) {
	a, ok := args[0].(*value.Atom)
	if !ok {
		return nil, errors.NewTypeError("deref requires an atom, got %s", value.Kind(args[0]))
	}
	return a.Deref(), nil
}

func builtinReset(_ *value.Environment, args []value.Value) (value.Value, error) {
	a, ok := args[0].(*value.Atom)
	if !ok {
		return nil, errors.NewTypeError("reset! requires an atom, got %s", value.Kind(args[0]))
	}
	return a.Reset(args[1]), nil
}

// builtinSwap implements `swap!`: reads the atom, calls `(f current .
// rest-args)`, stores and returns the result. Single-threaded
// evaluation makes this atomic in the sense spec §5 requires: no
// evaluator step can interleave between the read and the store.
func builtinSwap(environment *value.Environment, args []value.Value) (value.Value, error) {
	a, ok := args[0].(*value.Atom)
	if !ok {
		return nil, errors.NewTypeError("swap! requires an atom, got %s", value.Kind(args[0]))
	}
	fnArgs := make([]value.Value, 0, len(args)-1)
	fnArgs = append(fnArgs, a.Deref())
	fnArgs = append(fnArgs, args[2:]...)
	result, err := eval.Apply(environment, args[1], fnArgs)
	if err != nil {
		return nil, err
	}
	return a.Reset(result), nil
}
