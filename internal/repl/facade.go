// Package repl implements the interactive loop and script driver of
// spec §6, grounded on original_source/c_thylacine/console_input.c
// (the line-editor facade) and step0_repl.c (the read-eval-print
// loop's own shape — `mal_read`/`mal_eval`/`mal_print`/`mal_rep`).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tscott-dev/lumen/internal/core"
)

// Facade is the line-editor contract spec §6 names: init(progname),
// prompt(str)→line-or-EOF, history_add(line), fini(). The C reference
// compiles one of two implementations (GNU readline or buffered
// stdin) behind this same shape; this module has only one, a plain
// bufio.Scanner over stdin, since no readline-style library appears
// anywhere in the example pack (see DESIGN.md) — `HAVE_READLINE`'s
// alternate branch in console_input.c is itself just buffered stdio,
// so the fallback is the one the reference ships by default.
type Facade struct {
	scanner *bufio.Scanner
	out     io.Writer
	history []string
}

// NewFacade constructs a Facade reading lines from in and writing
// prompts to out. No Init/Fini step is needed since the scanner
// opens no resource beyond the handles the caller already owns.
func NewFacade(in io.Reader, out io.Writer) *Facade {
	return &Facade{scanner: bufio.NewScanner(in), out: out}
}

// Prompt writes prompt to the facade's output, then reads one line.
// It returns ok=false at EOF, matching console_input's NULL return.
func (f *Facade) Prompt(prompt string) (string, bool) {
	fmt.Fprint(f.out, prompt)
	if !f.scanner.Scan() {
		return "", false
	}
	return f.scanner.Text(), true
}

// HistoryAdd records line, mirroring console_input_history_add. The
// buffered-stdin C implementation is a no-op; this one appends line to
// an in-process history slice that nothing else reads.
func (f *Facade) HistoryAdd(line string) {
	f.history = append(f.history, line)
}

// ReadLineFunc adapts f to the core.ReadLineFunc signature
// core.MakeNamespace needs for the `readline` primitive.
func (f *Facade) ReadLineFunc() core.ReadLineFunc {
	return func(prompt string) (string, bool) {
		line, ok := f.Prompt(prompt)
		if ok {
			f.HistoryAdd(line)
		}
		return line, ok
	}
}

// NewStdFacade builds a Facade over os.Stdin/os.Stdout, the console
// REPL's default line editor.
func NewStdFacade() *Facade {
	return NewFacade(os.Stdin, os.Stdout)
}
