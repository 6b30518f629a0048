package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/ucore"
)

var lexIDs bool

var lexCmd = &cobra.Command{
	Use:   "lex <program>",
	Short: "Dump the lexeme stream of a CORE program",
	Long: `Dump the lexeme stream of a CORE program, one lexeme per line,
ending with the EOF sentinel. With --ids the stable numeric kind id
of each lexeme is included.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := readInput(args[0])
		if err != nil {
			errorExitf("cannot read program %s: %v", args[0], err)
		}

		lexemes, err := ucore.Tokenize(source)
		if err != nil {
			errorExit(err)
		}

		for _, lx := range lexemes {
			if lexIDs {
				fmt.Printf("#%-4d %-3d %-12s %s\n", lx.Seq, lx.ID, lx.Kind, lx.Text)
			} else {
				fmt.Printf("#%-4d %-12s %s\n", lx.Seq, lx.Kind, lx.Text)
			}
		}
	},
}

func init() {
	lexCmd.Flags().BoolVar(&lexIDs, "ids", false, "include numeric kind ids")
	rootCmd.AddCommand(lexCmd)
}
