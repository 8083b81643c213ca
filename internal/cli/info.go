package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wayreach/wayreach/pkg/graph"
)

// infoCommand creates the info command for network statistics.
func (c *CLI) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [network.json]",
		Short: "Show network statistics",
		Long: `Show network statistics.

Prints edge and node counts, the road-class distribution, and how many
edges carry conditional restrictions or closures.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(args[0])
		},
	}
	return cmd
}

// runInfo loads the network and prints its statistics.
func (c *CLI) runInfo(path string) error {
	n, err := graph.ReadNetworkFile(path)
	if err != nil {
		return fmt.Errorf("load network %s: %w", path, err)
	}

	conditional, closed := 0, 0
	for _, id := range n.EdgeIDs() {
		e, err := n.Edge(id)
		if err != nil {
			return err
		}
		if e.Conditional {
			conditional++
		}
		if e.Closed {
			closed++
		}
	}

	printSuccess("Network %s", path)
	printKeyValue("edges", strconv.Itoa(n.EdgeCount()))
	printKeyValue("nodes", strconv.Itoa(n.NodeCount()))
	printKeyValue("conditional", strconv.Itoa(conditional))
	printKeyValue("closed", strconv.Itoa(closed))

	counts := n.ClassCounts()
	if len(counts) > 0 {
		printNewline()
		printInfo("Road classes:")
		for _, class := range graph.Classes() {
			if count, ok := counts[class]; ok {
				printDetail("%-12s %d", class.String(), count)
			}
		}
	}
	return nil
}
