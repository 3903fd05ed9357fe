package core

import "github.com/tscott-dev/lumen/internal/value"

func builtinNilP(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.Bool(args[0] == value.Nil), nil
}

func builtinTrueP(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.Bool(args[0] == value.True), nil
}

func builtinFalseP(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.Bool(args[0] == value.False), nil
}

func builtinSymbolP(_ *value.Environment, args []value.Value) (value.Value, error) {
	_, ok := args[0].(*value.Symbol)
	return value.Bool(ok), nil
}

func builtinKeywordP(_ *value.Environment, args []value.Value) (value.Value, error) {
	_, ok := args[0].(*value.Keyword)
	return value.Bool(ok), nil
}

func builtinFnP(_ *value.Environment, args []value.Value) (value.Value, error) {
	switch fn := args[0].(type) {
	case *value.Function:
		return value.True, nil
	case *value.Closure:
		return value.Bool(!fn.IsMacro), nil
	default:
		return value.False, nil
	}
}

func builtinMacroP(_ *value.Environment, args []value.Value) (value.Value, error) {
	closure, ok := args[0].(*value.Closure)
	return value.Bool(ok && closure.IsMacro), nil
}

func builtinNumberP(_ *value.Environment, args []value.Value) (value.Value, error) {
	switch args[0].(type) {
	case *value.Integer, *value.Float:
		return value.True, nil
	default:
		return value.False, nil
	}
}

func builtinStringP(_ *value.Environment, args []value.Value) (value.Value, error) {
	_, ok := args[0].(*value.String)
	return value.Bool(ok), nil
}
