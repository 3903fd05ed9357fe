// Command lumen is the CLI entry point for the Lumen interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/tscott-dev/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
