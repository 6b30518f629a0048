package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/ucore"
)

var (
	runData      string
	runPretty    bool
	runParseOnly bool
)

var runCmd = &cobra.Command{
	Use:   "run <program> [input]",
	Short: "Compile and execute a CORE program",
	Long: `Compile and execute a CORE program against an input-data file.

The program file and the input file may each be "-" to read from
stdin. Input data is free-form text containing optionally-signed
integer tokens; read statements pull them left-to-right.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := readInput(args[0])
		if err != nil {
			errorExitf("cannot read program %s: %v", args[0], err)
		}

		data := runData
		if len(args) == 2 {
			if runData != "" {
				errorExitf("input file and --data are mutually exclusive")
			}
			data, err = readInput(args[1])
			if err != nil {
				errorExitf("cannot read input %s: %v", args[1], err)
			}
		}

		prog, err := ucore.Compile(source)
		if err != nil {
			errorExit(err)
		}

		if runPretty {
			fmt.Print(prog.Print())
			if !runParseOnly {
				fmt.Println()
			}
		}
		if runParseOnly {
			for _, name := range prog.Unused() {
				fmt.Fprintf(os.Stderr, "ucore: warning: identifier declared but never used: %s\n", name)
			}
			return
		}

		stdout := bufio.NewWriter(os.Stdout)
		defer stdout.Flush()

		_, err = prog.Run(strings.NewReader(data), &ucore.Config{Output: stdout})
		if err != nil {
			stdout.Flush()
			errorExit(err)
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&runData, "data", "d", "", "inline input data instead of an input file")
	runCmd.Flags().BoolVarP(&runPretty, "pretty", "p", false, "print the canonical rendering before execution output")
	runCmd.Flags().BoolVarP(&runParseOnly, "parse-only", "n", false, "stop after a successful parse")
	rootCmd.AddCommand(runCmd)
}
