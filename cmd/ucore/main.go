// ucore - CORE language processor
//
// Compiles, pretty-prints, and executes programs written in the CORE
// teaching language.
package main

import (
	"os"

	"github.com/kolkov/ucore/cmd/ucore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
