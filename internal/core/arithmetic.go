package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

// numKind tracks whether a variadic arithmetic fold has seen a Float
// yet (spec §4.7: "once any Float has been seen, the
// running result is Float, else Integer").
type numKind int

const (
	kindInt numKind = iota
	kindFloat
)

func numOf(v value.Value) (float64, numKind, error) {
	switch n := v.(type) {
	case *value.Integer:
		return float64(n.Val), kindInt, nil
	case *value.Float:
		return n.Val, kindFloat, nil
	default:
		return 0, 0, errors.NewTypeError("expected a number, got %s", value.Kind(v))
	}
}

func requireNumbers(args []value.Value) ([]float64, numKind, error) {
	floats := make([]float64, len(args))
	kind := kindInt
	for i, a := range args {
		f, k, err := numOf(a)
		if err != nil {
			return nil, 0, err
		}
		floats[i] = f
		if k == kindFloat {
			kind = kindFloat
		}
	}
	return floats, kind, nil
}

func numResult(f float64, kind numKind) value.Value {
	if kind == kindFloat {
		return value.NewFloat(f)
	}
	return value.NewInteger(int64(f))
}

func builtinAdd(_ *value.Environment, args []value.Value) (value.Value, error) {
	floats, kind, err := requireNumbers(args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, f := range floats {
		sum += f
	}
	return numResult(sum, kind), nil
}

func builtinSub(_ *value.Environment, args []value.Value) (value.Value, error) {
	floats, kind, err := requireNumbers(args)
	if err != nil {
		return nil, err
	}
	if len(floats) == 0 {
		return value.NewInteger(0), nil
	}
	acc := floats[0]
	for _, f := range floats[1:] {
		acc -= f
	}
	return numResult(acc, kind), nil
}

func builtinMul(_ *value.Environment, args []value.Value) (value.Value, error) {
	floats, kind, err := requireNumbers(args)
	if err != nil {
		return nil, err
	}
	acc := 1.0
	for _, f := range floats {
		acc *= f
	}
	return numResult(acc, kind), nil
}

// builtinDiv implements `/`: division by a zero Integer, or a Float
// divisor within value.IsZeroFloat's epsilon of zero, signals the user
// error "Division by zero" rather than producing Inf/NaN (spec §4.7,
// §9 Open Questions).
func builtinDiv(_ *value.Environment, args []value.Value) (value.Value, error) {
	floats, kind, err := requireNumbers(args)
	if err != nil {
		return nil, err
	}
	if len(floats) == 0 {
		return value.NewInteger(1), nil
	}
	acc := floats[0]
	for i, f := range floats[1:] {
		if isZeroDivisor(args[i+1], f) {
			return nil, errors.NewUserError(value.NewString("Division by zero"))
		}
		acc /= f
	}
	return numResult(acc, kind), nil
}

func isZeroDivisor(operand value.Value, f float64) bool {
	if _, ok := operand.(*value.Integer); ok {
		return f == 0
	}
	return value.IsZeroFloat(f)
}
