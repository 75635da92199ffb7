// Souschef is a terminal cooking assistant.
//
// It keeps a cookbook of YAML recipes and walks you through them one step
// at a time in a hands-free cooking mode. Companion devices on the same
// network can follow along and drive the steps through souschef-server.
//
// Usage:
//
//	souschef [command] [flags]
//
// Running without arguments launches the interactive cooking assistant.
// See 'souschef --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtreloar/souschef/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "souschef",
	Short: "Terminal cooking assistant",
	Long: `A terminal assistant for cooking from your own recipe collection.

Browse the cookbook, then cook hands-free: one step on screen at a time,
with timers, progress, and a jump-to-step menu. Companion devices on the
same network can follow along via 'souschef-server'.

If no command is specified, the interactive assistant will launch.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistant(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("souschef %s (commit: %s)\n", version.Version, version.Commit)
	},
}
