package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

func builtinList(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.NewList(args...), nil
}

func builtinListP(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.Bool(value.IsList(args[0])), nil
}

func builtinVectorP(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.Bool(value.IsVector(args[0])), nil
}

func builtinSequentialP(_ *value.Environment, args []value.Value) (value.Value, error) {
	_, ok := value.AsSequence(args[0])
	return value.Bool(ok), nil
}

func builtinEmptyP(_ *value.Environment, args []value.Value) (value.Value, error) {
	if args[0] == value.Nil {
		return value.True, nil
	}
	return value.Bool(value.IsEmptySeq(args[0])), nil
}

func builtinCount(_ *value.Environment, args []value.Value) (value.Value, error) {
	if args[0] == value.Nil {
		return value.NewInteger(0), nil
	}
	items, ok := value.AsSequence(args[0])
	if !ok {
		return nil, errors.NewTypeError("count requires a sequence or nil, got %s", value.Kind(args[0]))
	}
	return value.NewInteger(int64(len(items))), nil
}

func builtinFirst(_ *value.Environment, args []value.Value) (value.Value, error) {
	if args[0] == value.Nil {
		return value.Nil, nil
	}
	items, ok := value.AsSequence(args[0])
	if !ok {
		return nil, errors.NewTypeError("first requires a sequence or nil, got %s", value.Kind(args[0]))
	}
	if len(items) == 0 {
		return value.Nil, nil
	}
	return items[0], nil
}

func builtinRest(_ *value.Environment, args []value.Value) (value.Value, error) {
	if args[0] == value.Nil {
		return value.NewList(), nil
	}
	items, ok := value.AsSequence(args[0])
	if !ok {
		return nil, errors.NewTypeError("rest requires a sequence or nil, got %s", value.Kind(args[0]))
	}
	if len(items) <= 1 {
		return value.NewList(), nil
	}
	return value.NewList(items[1:]...), nil
}

// builtinNth implements `nth`: an out-of-range index signals the user
// error "index out of range" (spec §4.7, §8).
func builtinNth(_ *value.Environment, args []value.Value) (value.Value, error) {
	items, ok := value.AsSequence(args[0])
	if !ok {
		return nil, errors.NewTypeError("nth requires a sequence, got %s", value.Kind(args[0]))
	}
	idx, ok := args[1].(*value.Integer)
	if !ok {
		return nil, errors.NewTypeError("nth index must be an integer, got %s", value.Kind(args[1]))
	}
	if idx.Val < 0 || idx.Val >= int64(len(items)) {
		return nil, errors.NewUserError(value.NewString("index out of range"))
	}
	return items[idx.Val], nil
}

func builtinCons(_ *value.Environment, args []value.Value) (value.Value, error) {
	items, ok := value.AsSequence(args[1])
	if !ok {
		return nil, errors.NewTypeError("cons requires a sequence as its second argument, got %s", value.Kind(args[1]))
	}
	out := make([]value.Value, 0, len(items)+1)
	out = append(out, args[0])
	out = append(out, items...)
	return value.NewList(out...), nil
}

func builtinConcat(_ *value.Environment, args []value.Value) (value.Value, error) {
	var out []value.Value
	for _, a := range args {
		items, ok := value.AsSequence(a)
		if !ok {
			return nil, errors.NewTypeError("concat requires sequence arguments, got %s", value.Kind(a))
		}
		out = append(out, items...)
	}
	return value.NewList(out...), nil
}

// builtinConj implements `conj` (spec §4.7, §9): it appends to a
// Vector in argument order, and prepends to a List one argument at a
// time — each new element goes to the front, so the trailing
// arguments end up in reverse order relative to the input
// (`(conj '(3) 1 2)` => `(2 1 3)`).
func builtinConj(_ *value.Environment, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, errors.NewTypeError("conj requires at least 1 argument")
	}
	switch value.Kind(args[0]) {
	case "vector":
		items, _ := value.AsSequence(args[0])
		out := make([]value.Value, 0, len(items)+len(args)-1)
		out = append(out, items...)
		out = append(out, args[1:]...)
		return value.NewVector(out...), nil
	case "list":
		items, _ := value.AsSequence(args[0])
		out := items
		for _, a := range args[1:] {
			fresh := make([]value.Value, 0, len(out)+1)
			fresh = append(fresh, a)
			fresh = append(fresh, out...)
			out = fresh
		}
		return value.NewList(out...), nil
	default:
		return nil, errors.NewTypeError("conj requires a list or vector, got %s", value.Kind(args[0]))
	}
}

// builtinSeq implements `seq` (spec §4.7): identity on Lists, converts
// a Vector to a List and a String to a List of single-character
// Strings, returns nil for nil or any empty input.
func builtinSeq(_ *value.Environment, args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.List:
		if len(v.Items) == 0 {
			return value.Nil, nil
		}
		return v, nil
	case *value.Vector:
		if len(v.Items) == 0 {
			return value.Nil, nil
		}
		return value.NewList(v.Items...), nil
	case *value.String:
		if len(v.Val) == 0 {
			return value.Nil, nil
		}
		chars := make([]value.Value, len(v.Val))
		for i := 0; i < len(v.Val); i++ {
			chars[i] = value.NewString(v.Val[i : i+1])
		}
		return value.NewList(chars...), nil
	case nil:
		return value.Nil, nil
	default:
		if args[0] == value.Nil {
			return value.Nil, nil
		}
		return nil, errors.NewTypeError("seq requires a sequence, string, or nil, got %s", value.Kind(args[0]))
	}
}

func builtinVector(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.NewVector(args...), nil
}
