package core

import (
	"strings"

	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/value"
)

func builtinSymbol(_ *value.Environment, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, errors.NewTypeError("symbol requires a string, got %s", value.Kind(args[0]))
	}
	return value.NewSymbol(s.Val), nil
}

// builtinKeyword implements `keyword` (spec §4.7): identity on an
// existing Keyword, and on a String strips any leading ':' before
// storing the bare name, so a caller-supplied leading colon is never
// doubled when the value is printed.
func builtinKeyword(_ *value.Environment, args []value.Value) (value.Value, error) {
	switch v := args[0].(type) {
	case *value.Keyword:
		return v, nil
	case *value.String:
		return value.NewKeyword(strings.TrimPrefix(v.Val, ":")), nil
	default:
		return nil, errors.NewTypeError("keyword requires a string or keyword, got %s", value.Kind(args[0]))
	}
}
