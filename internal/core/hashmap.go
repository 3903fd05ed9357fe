package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

func builtinHashMap(_ *value.Environment, args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return nil, errors.NewTypeError("hash-map requires an even number of arguments")
	}
	b := value.NewHashMapBuilder()
	for i := 0; i+1 < len(args); i += 2 {
		b.Add(args[i], args[i+1])
	}
	return b.Build(), nil
}

func builtinMapP(_ *value.Environment, args []value.Value) (value.Value, error) {
	_, ok := args[0].(*value.HashMap)
	return value.Bool(ok), nil
}

// builtinGet implements `get`: a non-map first argument returns nil
// (spec §4.7) rather than signalling an error.
func builtinGet(_ *value.Environment, args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.HashMap)
	if !ok {
		return value.Nil, nil
	}
	v, ok := m.Get(args[1])
	if !ok {
		return value.Nil, nil
	}
	return v, nil
}

// builtinContainsP implements `contains?`. Per spec §9's pinned Open
// Question, a non-map first argument returns Nil (the reference
// implementation's behavior), not False.
func builtinContainsP(_ *value.Environment, args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.HashMap)
	if !ok {
		return value.Nil, nil
	}
	return value.Bool(m.Has(args[1])), nil
}

func builtinKeys(_ *value.Environment, args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.HashMap)
	if !ok {
		return nil, errors.NewTypeError("keys requires a map, got %s", value.Kind(args[0]))
	}
	return value.NewList(m.Keys()...), nil
}

func builtinVals(_ *value.Environment, args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.HashMap)
	if !ok {
		return nil, errors.NewTypeError("vals requires a map, got %s", value.Kind(args[0]))
	}
	return value.NewList(m.Vals()...), nil
}

func builtinAssoc(_ *value.Environment, args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.HashMap)
	if !ok {
		return nil, errors.NewTypeError("assoc requires a map, got %s", value.Kind(args[0]))
	}
	if len(args[1:])%2 != 0 {
		return nil, errors.NewTypeError("assoc requires an even number of key/value arguments")
	}
	return m.Assoc(args[1:]...), nil
}

func builtinDissoc(_ *value.Environment, args []value.Value) (value.Value, error) {
	m, ok := args[0].(*value.HashMap)
	if !ok {
		return nil, errors.NewTypeError("dissoc requires a map, got %s", value.Kind(args[0]))
	}
	return m.Dissoc(args[1:]...), nil
}
