package core

import (
	"fmt"

	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/value"
)

// builtinPrn implements `prn`: readable, space-joined, written to
// stdout with a trailing newline, returns nil.
func builtinPrn(_ *value.Environment, args []value.Value) (value.Value, error) {
	fmt.Println(printer.Join(args, true, " "))
	return value.Nil, nil
}

// builtinPrintln implements `println`: display-mode, space-joined,
// written to stdout with a trailing newline, returns nil.
func builtinPrintln(_ *value.Environment, args []value.Value) (value.Value, error) {
	fmt.Println(printer.Join(args, false, " "))
	return value.Nil, nil
}

// builtinPrStr implements `pr-str`: readable, space-joined, returned
// as a String (no output written).
func builtinPrStr(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.NewString(printer.Join(args, true, " ")), nil
}

// builtinStr implements `str`: display-mode, concatenated with no
// separator, returned as a String.
func builtinStr(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.NewString(printer.Join(args, false, "")), nil
}
