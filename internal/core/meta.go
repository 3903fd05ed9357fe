package core

import (
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

func builtinMeta(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.Meta(args[0]), nil
}

func builtinWithMeta(_ *value.Environment, args []value.Value) (value.Value, error) {
	out, ok := value.WithMeta(args[0], args[1])
	if !ok {
		return nil, errors.NewTypeError("with-meta does not support %s", value.Kind(args[0]))
	}
	return out, nil
}
