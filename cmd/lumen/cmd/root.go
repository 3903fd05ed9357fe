package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tscott-dev/lumen/internal/errors"
	"github.com/tscott-dev/lumen/internal/repl"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// verbosity counts repetitions of -v; each repetition raises the log
// threshold (spec §6). Gated trace output is written only by tracef
// calls in this package, not by a logging library — see
// SPEC_FULL.md's Logging section.
var verbosity int

var rootCmd = &cobra.Command{
	Use:   "lumen [script] [args...]",
	Short: "A small homoiconic Lisp interpreter",
	Long: `Lumen is a tree-walking interpreter for a small homoiconic Lisp
dialect: a lexer, reader, evaluator with tail-call optimization,
macros, and a core primitive library.

Run with no arguments to start an interactive REPL. Pass a script
path to evaluate it via (load-file SCRIPT), with any trailing
arguments bound to *ARGV*.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			runREPL()
			return nil
		}
		runScriptAndExit(args[0], args[1:])
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (repeatable)")
}

func tracef(level int, format string, args ...any) {
	if verbosity >= level {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// runREPL implements spec §6's interactive mode: bootstrap the root
// environment, print the host-language banner, then loop until EOF.
func runREPL() {
	facade := repl.NewStdFacade()
	environment, err := repl.NewRootEnv(facade.ReadLineFunc())
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Diagnostic(err))
		os.Exit(errors.ExitCode(err))
	}
	tracef(1, "lumen: starting REPL\n")
	repl.Banner(environment, os.Stdout)
	repl.Run(facade, environment, os.Stdout)
}

// runScriptAndExit implements the script-mode CLI contract: evaluate
// (load-file path) with *ARGV* bound to scriptArgs, then exit with the
// exit code spec §6/§7 assigns the resulting error (0 on success).
func runScriptAndExit(path string, scriptArgs []string) {
	facade := repl.NewStdFacade()
	environment, err := repl.NewRootEnv(facade.ReadLineFunc())
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Diagnostic(err))
		os.Exit(errors.ExitCode(err))
	}
	tracef(1, "lumen: loading %s\n", path)
	err = repl.RunScript(path, scriptArgs, environment)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Diagnostic(err))
	}
	os.Exit(errors.ExitCode(err))
}
