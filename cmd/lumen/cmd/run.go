package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run script [args...]",
	Short: "Evaluate a script file",
	Long: `Evaluate SCRIPT via (load-file SCRIPT) in a fresh root environment,
binding any trailing arguments to *ARGV*.

This is the explicit form of the default action: "lumen script.mal"
and "lumen run script.mal" are equivalent.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runScriptAndExit(args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
