package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

// builtinEqual implements `=`, the structural comparator of spec §3.
// Unlike the ordered comparisons below, it accepts any two Values of
// any kind.
func builtinEqual(_ *value.Environment, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewTypeError("= requires exactly 2 arguments")
	}
	return value.Bool(value.Equal(args[0], args[1])), nil
}

// numericCompare backs the four ordered comparisons, which spec §4.7
// requires both operands to be numeric.
func numericCompare(args []value.Value, ok func(cmp int) bool) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewTypeError("comparison requires exactly 2 arguments")
	}
	a, _, err := numOf(args[0])
	if err != nil {
		return nil, err
	}
	b, _, err := numOf(args[1])
	if err != nil {
		return nil, err
	}
	switch {
	case a < b:
		return value.Bool(ok(-1)), nil
	case a > b:
		return value.Bool(ok(1)), nil
	default:
		return value.Bool(ok(0)), nil
	}
}

func builtinLessThan(_ *value.Environment, args []value.Value) (value.Value, error) {
	return numericCompare(args, func(cmp int) bool { return cmp < 0 })
}

func builtinLessEqual(_ *value.Environment, args []value.Value) (value.Value, error) {
	return numericCompare(args, func(cmp int) bool { return cmp <= 0 })
}

func builtinGreaterThan(_ *value.Environment, args []value.Value) (value.Value, error) {
	return numericCompare(args, func(cmp int) bool { return cmp > 0 })
}

func builtinGreaterEqual(_ *value.Environment, args []value.Value) (value.Value, error) {
	return numericCompare(args, func(cmp int) bool { return cmp >= 0 })
}
