package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/ucore"
	"github.com/kolkov/ucore/internal/manifest"
)

var batchVerbose bool

var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Run a TOML/YAML suite of CORE jobs",
	Long: `Run a suite of jobs described by a TOML or YAML manifest.

Each job names a program file, optional input (a file or inline data),
and optional expected output (inline or a file). Jobs with an
expectation are reported PASS or FAIL; jobs without one just run.
The exit code is non-zero if any job fails.

Example manifest (TOML):

  name = "course exercises"

  [[jobs]]
  name    = "squares"
  program = "squares.core"
  input   = "squares.data"
  expect  = "X = 9\n"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		suite, err := manifest.Load(args[0])
		if err != nil {
			errorExit(err)
		}

		if suite.Name != "" {
			fmt.Printf("suite: %s\n", suite.Name)
		}

		passed, failed := 0, 0
		for i := range suite.Jobs {
			if runJob(&suite.Jobs[i]) {
				passed++
			} else {
				failed++
			}
		}

		fmt.Printf("%d passed, %d failed\n", passed, failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

// runJob executes one job and reports PASS/FAIL. Returns false on any
// failure: unreadable files, compile or runtime errors, or an output
// mismatch.
func runJob(job *manifest.Job) bool {
	source, err := os.ReadFile(job.Program)
	if err != nil {
		fmt.Printf("FAIL  %s (cannot read program: %v)\n", job.Name, err)
		return false
	}

	data := job.Data
	if job.Input != "" {
		raw, err := os.ReadFile(job.Input)
		if err != nil {
			fmt.Printf("FAIL  %s (cannot read input: %v)\n", job.Name, err)
			return false
		}
		data = string(raw)
	}

	output, err := ucore.Run(string(source), strings.NewReader(data), nil)
	if err != nil {
		fmt.Printf("FAIL  %s (%v)\n", job.Name, err)
		return false
	}

	if !job.HasExpectation() {
		fmt.Printf("PASS  %s\n", job.Name)
		return true
	}

	want := job.Expect
	if job.ExpectFile != "" {
		raw, err := os.ReadFile(job.ExpectFile)
		if err != nil {
			fmt.Printf("FAIL  %s (cannot read expected output: %v)\n", job.Name, err)
			return false
		}
		want = string(raw)
	}

	if output != want {
		fmt.Printf("FAIL  %s (output mismatch)\n", job.Name)
		if batchVerbose {
			fmt.Printf("--- want\n%s--- got\n%s", want, output)
		}
		return false
	}
	fmt.Printf("PASS  %s\n", job.Name)
	return true
}

func init() {
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "show diffs for failures")
	rootCmd.AddCommand(batchCmd)
}
