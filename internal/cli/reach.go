package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayreach/wayreach/pkg/costing"
	"github.com/wayreach/wayreach/pkg/graph"
	"github.com/wayreach/wayreach/pkg/reach"
)

// reachCommand creates the reach command for scoring a single edge.
func (c *CLI) reachCommand() *cobra.Command {
	var (
		edge        uint64
		maxReach    uint32
		direction   string
		profileName string
		profileFile string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "reach [network.json]",
		Short: "Compute directional reach for one edge",
		Long: `Compute directional reach for one edge.

Reach counts how many distinct edges are reachable outbound from the edge
and how many edges can reach it inbound, following the access rules of the
selected costing profile. Counting stops once the threshold set by --max is
hit, so a result equal to the threshold means "at least this many".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReach(args[0], edge, maxReach, direction, profileName, profileFile, asJSON)
		},
	}

	cmd.Flags().Uint64VarP(&edge, "edge", "e", 0, "edge id to score (required)")
	cmd.Flags().Uint32Var(&maxReach, "max", defaultMaxReach, "saturation threshold per direction")
	cmd.Flags().StringVarP(&direction, "direction", "d", "both", "directions to compute: both, outbound, inbound")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "auto", "builtin costing profile: auto, bicycle, pedestrian")
	cmd.Flags().StringVar(&profileFile, "profile-file", "", "load costing profile from a TOML file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	_ = cmd.MarkFlagRequired("edge")

	return cmd
}

// runReach loads the network, resolves the profile, and prints the result.
func (c *CLI) runReach(path string, edge uint64, maxReach uint32, direction, profileName, profileFile string, asJSON bool) error {
	if err := validateThreshold(maxReach); err != nil {
		return err
	}

	n, err := graph.ReadNetworkFile(path)
	if err != nil {
		return fmt.Errorf("load network %s: %w", path, err)
	}

	model, name, err := resolveProfile(profileName, profileFile)
	if err != nil {
		return err
	}

	dir, err := parseDirection(direction)
	if err != nil {
		return err
	}

	c.Logger.Debug("computing reach", "edge", edge, "max", maxReach, "direction", dir.String(), "profile", name)
	p := newProgress(c.Logger)
	res, err := reach.Compute(graph.EdgeID(edge), maxReach, n, model, dir)
	if err != nil {
		return fmt.Errorf("compute reach for edge %d: %w", edge, err)
	}
	p.done(fmt.Sprintf("Scored edge %d", edge))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printSuccess("Edge %d (%s profile, threshold %d)", edge, name, maxReach)
	if dir&reach.Outbound != 0 {
		printKeyValue("outbound", formatReach(res.Outbound, maxReach))
	}
	if dir&reach.Inbound != 0 {
		printKeyValue("inbound", formatReach(res.Inbound, maxReach))
	}
	return nil
}

// formatReach renders a count, flagging values that hit the threshold.
func formatReach(count, maxReach uint32) string {
	if count >= maxReach {
		return fmt.Sprintf("%d (saturated)", count)
	}
	return fmt.Sprintf("%d", count)
}

// validateThreshold bounds a saturation threshold from the command line.
func validateThreshold(maxReach uint32) error {
	if maxReach < 1 || maxReach > maxMaxReach {
		return fmt.Errorf("max must be in [1, %d], got %d", maxMaxReach, maxReach)
	}
	return nil
}

// resolveProfile returns the costing model named by the flags. An explicit
// profile file takes precedence over the builtin profile name.
func resolveProfile(name, file string) (costing.Model, string, error) {
	if file != "" {
		p, err := costing.LoadProfileFile(file)
		if err != nil {
			return nil, "", fmt.Errorf("load profile %s: %w", file, err)
		}
		return p, p.Name, nil
	}
	p, err := costing.Builtin(name)
	if err != nil {
		return nil, "", err
	}
	return p, name, nil
}

// parseDirection maps a flag value to a direction mask.
func parseDirection(raw string) (reach.Direction, error) {
	switch raw {
	case "", "both":
		return reach.Both, nil
	case "outbound":
		return reach.Outbound, nil
	case "inbound":
		return reach.Inbound, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want both, outbound, or inbound)", raw)
}
