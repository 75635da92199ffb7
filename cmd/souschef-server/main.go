// Souschef-server shares a cooking session with companion devices.
//
// It loads one recipe, opens a cooking session on it, and serves the
// session over HTTP and WebSocket so phones and tablets on the same
// network can follow along and drive the steps. The server can announce
// itself via mDNS so companions find it without configuration.
//
// Usage:
//
//	souschef-server serve --recipe <id> [flags]
//
// See 'souschef-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtreloar/souschef/internal/cookbook"
	"github.com/mtreloar/souschef/internal/server"
	"github.com/mtreloar/souschef/internal/session"
	"github.com/mtreloar/souschef/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "souschef-server",
	Short: "Souschef companion sync server",
	Long: `A standalone server that shares a cooking session over the network.

Every connected companion sees the same step; advancing from any device
moves the step for all of them. Commands that would run past either end
of the recipe are ignored rather than rejected.

Note: For cooking at the terminal, use the 'souschef' assistant.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	host        string
	port        int
	recipeID    string
	cookbookDir string
	logLevel    string
	announce    bool
	name        string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the companion sync server",
	Long: `Start the companion sync server for one recipe.

Companions connect over WebSocket at /ws and receive a state snapshot on
every cursor move. The current recipe and state are also available as
JSON at /api/recipe and /api/state.`,
	Example: `  # Serve a recipe from the default cookbook
  souschef-server serve --recipe shakshuka

  # Announce on the LAN so companions can discover the session
  souschef-server serve --recipe shakshuka --announce --name "Kitchen"

  # Custom port and verbose logging
  souschef-server serve --recipe shakshuka --port 9000 --log-level debug`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 8484, "Listen port")
	serveCmd.Flags().StringVar(&recipeID, "recipe", "", "Recipe id to cook (required)")
	serveCmd.Flags().StringVar(&cookbookDir, "cookbook", "", "Cookbook directory (default: config dir)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&announce, "announce", false, "Advertise the session via mDNS")
	serveCmd.Flags().StringVar(&name, "name", "", "Instance name for the mDNS advertisement (default: hostname)")

	_ = serveCmd.MarkFlagRequired("recipe")
}

func runServe(cmd *cobra.Command, args []string) error {
	dir := cookbookDir
	if dir == "" {
		var err error
		dir, err = cookbook.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to locate cookbook directory: %w", err)
		}
	}

	lib, err := cookbook.Load(dir)
	if err != nil {
		return fmt.Errorf("failed to load cookbook: %w", err)
	}

	r, ok := lib.Get(recipeID)
	if !ok {
		return fmt.Errorf("recipe %q not found in %s", recipeID, lib.Dir())
	}

	config := &server.Config{
		Host:     host,
		Port:     port,
		LogLevel: logLevel,
		Announce: announce,
		Name:     name,
	}

	srv, err := server.New(config, session.New(r))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("souschef-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
