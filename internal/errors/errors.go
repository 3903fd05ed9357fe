// Package errors implements Lumen's error taxonomy (spec §7): typed
// error carriers threaded through the reader and evaluator, in the
// same shape as a compiler's CompilerError/FormatErrors pairing —
// a small set of typed, formattable errors plus a single-error
// formatter (Diagnostic) for the REPL's diagnostic line. Lumen has no
// source-location tracking (spec Non-goals), so the position/caret
// rendering that shape usually carries is dropped.
package errors

import (
	"fmt"

	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/value"
)

// ParseError reports a malformed input to the lexer/reader (spec
// §4.2/§4.5: "parse failure"). Datum is an optional descriptive value
// chosen by the reader; it is nil when there is nothing more specific
// to report than Message.
type ParseError struct {
	Message string
	Datum   value.Value
}

func (e *ParseError) Error() string {
	if e.Datum != nil {
		return fmt.Sprintf("parse error: %s: %s", e.Message, printer.PrStr(e.Datum, true))
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError constructs a ParseError with no datum.
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// TypeError reports a value of the wrong kind reaching a primitive or
// special form that requires a specific variant.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return fmt.Sprintf("type error: %s", e.Message) }

// NewTypeError constructs a TypeError.
func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// UndefinedSymbolError reports a Symbol with no binding in the
// environment chain (spec §4.4's Environment.get).
type UndefinedSymbolError struct {
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("'%s' not found", e.Name)
}

// NewUndefinedSymbolError constructs an UndefinedSymbolError.
func NewUndefinedSymbolError(name string) *UndefinedSymbolError {
	return &UndefinedSymbolError{Name: name}
}

// ResourceError reports a failure in an external resource operation;
// file I/O in `slurp` is the one producer. Cause holds the underlying
// Go error, if any. The `readline` primitive never produces one: a
// failed read of its line-editor facade is reported the same way as
// EOF, by returning nil.
type ResourceError struct {
	Message string
	Cause   error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resource error: %s", e.Message)
}

func (e *ResourceError) Unwrap() error { return e.Cause }

// NewResourceError constructs a ResourceError wrapping cause.
func NewResourceError(message string, cause error) *ResourceError {
	return &ResourceError{Message: message, Cause: cause}
}

// UserError carries an arbitrary Value payload raised by `throw` (spec
// §4.6). Its Error() text renders the payload the same way the REPL
// would display it.
type UserError struct {
	Payload value.Value
}

func (e *UserError) Error() string {
	return printer.PrStr(e.Payload, false)
}

// NewUserError wraps payload as a UserError.
func NewUserError(payload value.Value) *UserError {
	return &UserError{Payload: payload}
}

// ErrEOF is the sentinel returned by the REPL's input loop at end of
// input (spec §7's "eof" kind).
var ErrEOF = fmt.Errorf("EOF")

// Exit codes per spec §6: data errors (parse/type/undefined-symbol/
// user) vs. OS/resource errors, distinguished so the script driver can
// pick the right process exit status.
const (
	ExitOK        = 0
	ExitDataError = 65
	ExitOSError   = 71
)

// ExitCode maps an error produced by the reader/evaluator to the
// process exit code spec §6/§7 assigns it. A nil error (or ErrEOF) is
// ExitOK.
func ExitCode(err error) int {
	if err == nil || err == ErrEOF {
		return ExitOK
	}
	switch err.(type) {
	case *ResourceError:
		return ExitOSError
	case *ParseError, *TypeError, *UndefinedSymbolError, *UserError:
		return ExitDataError
	default:
		return ExitDataError
	}
}

// Diagnostic renders a single REPL-facing diagnostic line for err,
// matching spec §7's "prints a brief diagnostic (the payload in the
// case of user errors)".
func Diagnostic(err error) string {
	return err.Error()
}
