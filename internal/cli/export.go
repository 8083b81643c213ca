package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayreach/wayreach/pkg/graph"
)

// exportCommand creates the export command for DOT and SVG output.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [network.json]",
		Short: "Export a network as DOT or SVG",
		Long: `Export a network as DOT or SVG.

The DOT output marks conditionally restricted edges with dashed lines and
closed edges with dotted lines, which makes restriction-heavy pockets easy
to spot. SVG rendering goes through Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with new extension)")

	return cmd
}

// runExport renders the network in the requested format.
func (c *CLI) runExport(path, format, output string) error {
	n, err := graph.ReadNetworkFile(path)
	if err != nil {
		return fmt.Errorf("load network %s: %w", path, err)
	}

	format = strings.ToLower(format)
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(graph.ToDOT(n))
	case "svg":
		data, err = graph.RenderSVG(n)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want dot or svg)", format)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Exported %s (%d edges) to %s", path, n.EdgeCount(), output)
	return nil
}
