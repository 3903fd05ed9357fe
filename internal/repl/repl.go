package repl

import (
	"fmt"
	"io"

	"github.com/tscott-dev/lumen/internal/core"
	"github.com/tscott-dev/lumen/internal/env"
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/eval"
	"github.com/tscott-dev/lumen/internal/printer"
	"github.com/tscott-dev/lumen/internal/reader"
	"github.com/tscott-dev/lumen/internal/value"
)

// NewRootEnv builds the root environment: every core primitive bound
// by MakeNamespace, plus the bootstrap source of spec §6 evaluated
// into it. readLine backs the `readline` primitive.
func NewRootEnv(readLine core.ReadLineFunc) (*env.Environment, error) {
	e := core.MakeNamespace(readLine)
	form, err := reader.ReadStr(bootstrapSource)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	if _, err := eval.Eval(form, e); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return e, nil
}

// rep reads, evaluates, and prints one line, mirroring step0_repl.c's
// mal_rep. A blank input (errors.ErrEOF from an empty token stream)
// produces no output and no error, so a bare newline just re-prompts.
func rep(src string, environment *env.Environment, out io.Writer) error {
	form, err := reader.ReadStr(src)
	if err == errors.ErrEOF {
		return nil
	}
	if err != nil {
		return err
	}
	result, err := eval.Eval(form, environment)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, printer.PrStr(result, true))
	return nil
}

// Run drives the interactive loop of spec §6: print `user> `, read a
// line via facade, rep it, print a diagnostic and re-prompt on error,
// until the facade reports EOF, then print "goodbye". The REPL SHOULD
// release transient garbage between lines (spec §5); Go's GC already
// reclaims everything rep no longer references, so no explicit
// collection call is needed here.
func Run(facade *Facade, environment *env.Environment, out io.Writer) {
	for {
		line, ok := facade.Prompt("user> ")
		if !ok {
			break
		}
		if err := rep(line, environment, out); err != nil {
			fmt.Fprintln(out, errors.Diagnostic(err))
		}
	}
	fmt.Fprintln(out, "goodbye")
}

// Banner prints the interactive-only greeting spec §6 specifies,
// naming the bound *host-language*.
func Banner(environment *env.Environment, out io.Writer) {
	host, _ := environment.Get("*host-language*")
	if host == nil {
		host = value.NewString("lumen")
	}
	fmt.Fprintln(out, "Mal ["+printer.PrStr(host, false)+"]")
}

// RunScript evaluates `(load-file path)` in environment with
// *ARGV* bound to scriptArgs (spec §6), returning the error (if any)
// so the caller can map it to a process exit code via errors.ExitCode.
func RunScript(path string, scriptArgs []string, environment *env.Environment) error {
	argv := make([]value.Value, len(scriptArgs))
	for i, a := range scriptArgs {
		argv[i] = value.NewString(a)
	}
	environment.Set("*ARGV*", value.NewList(argv...))

	form := value.NewList(value.NewSymbol("load-file"), value.NewString(path))
	_, err := eval.Eval(form, environment)
	return err
}
