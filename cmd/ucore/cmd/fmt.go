package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/ucore"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <program>",
	Short: "Print the canonical rendering of a CORE program",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := readInput(args[0])
		if err != nil {
			errorExitf("cannot read program %s: %v", args[0], err)
		}

		prog, err := ucore.Compile(source)
		if err != nil {
			errorExit(err)
		}

		if fmtWrite {
			if args[0] == "-" {
				errorExitf("cannot rewrite stdin in place")
			}
			if err := os.WriteFile(args[0], []byte(prog.Print()), 0o644); err != nil {
				errorExitf("cannot write %s: %v", args[0], err)
			}
			return
		}
		fmt.Print(prog.Print())
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file in place")
	rootCmd.AddCommand(fmtCmd)
}
