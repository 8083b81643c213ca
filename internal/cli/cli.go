// Package cli implements the wayreach command-line interface.
//
// This package provides commands for inspecting road networks, computing
// directional reach for single edges, scoring candidate batches, exporting
// networks for visualization, and running the HTTP API. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - reach: Compute directional reach for one edge
//   - score: Score many candidate edges and flag isolated ones
//   - info: Show network statistics
//   - export: Export a network as DOT or SVG
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wayreach/wayreach/pkg/buildinfo"
	"github.com/wayreach/wayreach/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wayreach"

	// defaultMaxReach is the default saturation threshold per direction.
	defaultMaxReach = 50

	// defaultMinReach is the default isolation cutoff used by score.
	defaultMinReach = 50

	// maxMaxReach caps --max, matching the API limit. The threshold also
	// sizes the expansion's bucket allocation, so it must stay bounded.
	maxMaxReach = 100000
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wayreach",
		Short:        "Wayreach bounds the directional reach of road-network edges",
		Long:         `Wayreach estimates how well-connected a road-network edge is: how many distinct edges it can reach outbound and how many can reach it inbound, capped at a threshold. Candidates on isolated micro-networks can be rejected before route construction.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.reachCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/wayreach/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newFileCache creates the CLI's file cache, falling back to a null cache
// when no cache directory can be resolved.
func newFileCache() cache.Cache {
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}
