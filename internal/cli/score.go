package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayreach/wayreach/pkg/batch"
	"github.com/wayreach/wayreach/pkg/graph"
)

// scoreCommand creates the score command for batch candidate scoring.
func (c *CLI) scoreCommand() *cobra.Command {
	var (
		edgesStr    string
		maxReach    uint32
		minReach    uint32
		direction   string
		profileName string
		profileFile string
		workers     int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "score [network.json]",
		Short: "Score candidate edges and flag isolated ones",
		Long: `Score candidate edges and flag isolated ones.

Each candidate's directional reach is computed up to the --max threshold.
Candidates whose reach stays below --min in any requested direction are
marked isolated: they sit on a disconnected micro-network (a parking aisle,
a private loop) and make poor route endpoints.

By default every edge in the network is scored. Use --edges to restrict
scoring to a comma-separated list of edge ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScore(cmd.Context(), args[0], edgesStr, maxReach, minReach, direction, profileName, profileFile, workers, output)
		},
	}

	cmd.Flags().StringVar(&edgesStr, "edges", "", "comma-separated edge ids to score (default: all)")
	cmd.Flags().Uint32Var(&maxReach, "max", defaultMaxReach, "saturation threshold per direction")
	cmd.Flags().Uint32Var(&minReach, "min", defaultMinReach, "isolation cutoff (0 disables)")
	cmd.Flags().StringVarP(&direction, "direction", "d", "both", "directions to compute: both, outbound, inbound")
	cmd.Flags().StringVarP(&profileName, "profile", "p", "auto", "builtin costing profile: auto, bicycle, pedestrian")
	cmd.Flags().StringVar(&profileFile, "profile-file", "", "load costing profile from a TOML file")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (0 = all CPUs)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write scores as JSON to a file (default: stdout summary)")

	return cmd
}

// runScore scores the candidates and writes the summary or JSON report.
func (c *CLI) runScore(ctx context.Context, path, edgesStr string, maxReach, minReach uint32, direction, profileName, profileFile string, workers int, output string) error {
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

	edges, err := parseEdgeList(edgesStr, n)
	if err != nil {
		return err
	}

	scorer := &batch.Scorer{
		MaxReach:  maxReach,
		MinReach:  minReach,
		Direction: dir,
		Workers:   workers,
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Scoring %d candidates...", len(edges)))
	spinner.Start()

	p := newProgress(c.Logger)
	scores, err := scorer.Score(ctx, n, model, edges)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Scoring failed")
		return fmt.Errorf("score candidates: %w", err)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Scored %d candidates (%s profile, threshold %d)", len(scores), name, maxReach))
	p.done(fmt.Sprintf("Scored %d candidates", len(scores)))

	if output != "" {
		if err := writeScores(scores, output); err != nil {
			return err
		}
		printDetail("wrote %d scores to %s", len(scores), output)
		return nil
	}

	isolated := 0
	for _, s := range scores {
		if s.Isolated {
			isolated++
		}
	}
	printKeyValue("isolated", strconv.Itoa(isolated))
	printKeyValue("connected", strconv.Itoa(len(scores)-isolated))
	if isolated > 0 {
		printNewline()
		printWarning("Isolated candidates:")
		for _, s := range scores {
			if s.Isolated {
				printDetail("edge %d: outbound=%d inbound=%d", s.Edge, s.Result.Outbound, s.Result.Inbound)
			}
		}
	}
	return nil
}

// parseEdgeList parses a comma-separated edge id list, defaulting to every
// edge in the network when the list is empty.
func parseEdgeList(raw string, n *graph.Network) ([]graph.EdgeID, error) {
	if strings.TrimSpace(raw) == "" {
		return n.EdgeIDs(), nil
	}
	parts := strings.Split(raw, ",")
	edges := make([]graph.EdgeID, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid edge id %q", part)
		}
		edges = append(edges, graph.EdgeID(id))
	}
	return edges, nil
}

// writeScores writes the score report as indented JSON.
func writeScores(scores []batch.Score, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scores); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}
