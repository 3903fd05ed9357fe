package core

import (
	"os"

	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/eval"
	"github.com/tscott-dev/lumen/internal/reader"
	"github.com/tscott-dev/lumen/internal/value"
)

// ReadLineFunc is the line-editor facade `readline` calls through. The
// REPL (internal/repl) owns the actual facade implementation; it is
// injected here via MakeNamespace so this package never imports repl
// (which imports core to build its environment).
type ReadLineFunc func(prompt string) (line string, ok bool)

func builtinReadString(_ *value.Environment, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, errors.NewTypeError("read-string requires a string, got %s", value.Kind(args[0]))
	}
	v, err := reader.ReadStr(s.Val)
	if err == errors.ErrEOF {
		return value.Nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func builtinSlurp(_ *value.Environment, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.String)
	if !ok {
		return nil, errors.NewTypeError("slurp requires a string path, got %s", value.Kind(args[0]))
	}
	data, err := os.ReadFile(s.Val)
	if err != nil {
		return nil, errors.NewResourceError("failed to read "+s.Val, err)
	}
	return value.NewString(string(data)), nil
}

// builtinEval implements `(eval X)`: evaluates X in the root
// environment, walking outward past any argument-binding frames (spec
// §4.6) from wherever `eval` was dynamically called.
func builtinEval(environment *value.Environment, args []value.Value) (value.Value, error) {
	return eval.Eval(args[0], environment.EvalRoot())
}

func makeReadlineBuiltin(readLine ReadLineFunc) value.Fn {
	return func(_ *value.Environment, args []value.Value) (value.Value, error) {
		prompt := ""
		if len(args) > 0 {
			if s, ok := args[0].(*value.String); ok {
				prompt = s.Val
			}
		}
		line, ok := readLine(prompt)
		if !ok {
			return value.Nil, nil
		}
		return value.NewString(line), nil
	}
}
