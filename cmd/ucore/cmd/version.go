package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kolkov/ucore"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the ucore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ucore version %s\n", ucore.Version)
		fmt.Printf("  go:      %s\n", runtime.Version())
		fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.Version = ucore.Version
	rootCmd.AddCommand(versionCmd)
}
