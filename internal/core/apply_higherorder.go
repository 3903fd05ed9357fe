package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/eval"
	"github.com/tscott-dev/lumen/internal/value"
)

// builtinApply implements `(apply f a b... coll)` (spec §4.7): the
// final argument is spread into the call, every argument before it is
// passed positionally ahead of it.
func builtinApply(environment *value.Environment, args []value.Value) (value.Value, error) {
	fn := args[0]
	last := args[len(args)-1]
	tail, ok := value.AsSequence(last)
	if !ok {
		return nil, errors.NewTypeError("apply requires its last argument to be a sequence, got %s", value.Kind(last))
	}
	callArgs := make([]value.Value, 0, len(args)-2+len(tail))
	callArgs = append(callArgs, args[1:len(args)-1]...)
	callArgs = append(callArgs, tail...)
	return eval.Apply(environment, fn, callArgs)
}

// builtinMap implements `(map f coll)`: applies f to each element of
// coll in order, collecting the results into a fresh List.
func builtinMap(environment *value.Environment, args []value.Value) (value.Value, error) {
	fn := args[0]
	items, ok := value.AsSequence(args[1])
	if !ok {
		return nil, errors.NewTypeError("map requires a sequence, got %s", value.Kind(args[1]))
	}
	out := make([]value.Value, len(items))
	for i, item := range items {
		v, err := eval.Apply(environment, fn, []value.Value{item})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewList(out...), nil
}

// builtinThrow is the bindable Function form of `throw` (spec §4.7
// groups it with apply/map as a value that can be passed around, even
// though `(throw X)` at a list head is intercepted directly by the
// evaluator's special-form dispatch before this is ever reached).
func builtinThrow(_ *value.Environment, args []value.Value) (value.Value, error) {
	return nil, errors.NewUserError(args[0])
}

// builtinEnvKeys implements `(env-keys)` (spec §4.7): the symbol names
// defined directly in the calling environment's own frame.
func builtinEnvKeys(environment *value.Environment, _ []value.Value) (value.Value, error) {
	names := environment.Keys()
	out := make([]value.Value, len(names))
	for i, name := range names {
		out[i] = value.NewSymbol(name)
	}
	return value.NewList(out...), nil
}
