// Package cmd implements the ucore command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ucore",
	Short: "CORE language processor",
	Long: `ucore compiles, pretty-prints, and executes programs written in the
CORE teaching language: integers, declarations, assignment,
conditionals, loops, and line-oriented read/write.

Commands:
  run      compile and execute a program
  fmt      print the canonical rendering of a program
  lex      dump the lexeme stream of a program
  batch    run a TOML/YAML suite of jobs
  version  show the ucore version`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// errorExitf prints a formatted error message and exits with code 1.
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ucore: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints an error and exits with code 1.
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "ucore: %v\n", err)
	os.Exit(1)
}

// readInput reads a program or data file; "-" means stdin.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
