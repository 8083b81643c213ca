package cli

import (
	"io"
	"testing"

	"github.com/wayreach/wayreach/pkg/graph"
	"github.com/wayreach/wayreach/pkg/reach"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"reach", "score", "info", "export", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		raw     string
		want    reach.Direction
		wantErr bool
	}{
		{raw: "", want: reach.Both},
		{raw: "both", want: reach.Both},
		{raw: "outbound", want: reach.Outbound},
		{raw: "inbound", want: reach.Inbound},
		{raw: "sideways", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseDirection(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDirection(%q) accepted invalid input", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDirection(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDirection(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseEdgeList(t *testing.T) {
	n := graph.NewNetwork()
	for i := 1; i <= 3; i++ {
		if err := n.AddEdge(graph.DirectedEdge{ID: graph.EdgeID(i), From: graph.NodeID(i), To: graph.NodeID(i + 1)}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	// Empty list defaults to every edge
	edges, err := parseEdgeList("", n)
	if err != nil {
		t.Fatalf("parseEdgeList empty: %v", err)
	}
	if len(edges) != 3 {
		t.Errorf("default edge list has %d entries, want 3", len(edges))
	}

	// Explicit list with whitespace
	edges, err = parseEdgeList(" 1, 3 ", n)
	if err != nil {
		t.Fatalf("parseEdgeList explicit: %v", err)
	}
	if len(edges) != 2 || edges[0] != 1 || edges[1] != 3 {
		t.Errorf("edge list = %v, want [1 3]", edges)
	}

	if _, err := parseEdgeList("1,abc", n); err == nil {
		t.Error("parseEdgeList accepted a non-numeric id")
	}
}

func TestResolveProfile(t *testing.T) {
	model, name, err := resolveProfile("bicycle", "")
	if err != nil {
		t.Fatalf("resolveProfile: %v", err)
	}
	if model == nil || name != "bicycle" {
		t.Errorf("resolveProfile = %v %q", model, name)
	}

	if _, _, err := resolveProfile("horse", ""); err == nil {
		t.Error("resolveProfile accepted an unknown builtin")
	}
	if _, _, err := resolveProfile("auto", "/nonexistent/profile.toml"); err == nil {
		t.Error("resolveProfile accepted a missing profile file")
	}
}

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		maxReach uint32
		wantErr  bool
	}{
		{maxReach: 0, wantErr: true},
		{maxReach: 1},
		{maxReach: defaultMaxReach},
		{maxReach: maxMaxReach},
		{maxReach: maxMaxReach + 1, wantErr: true},
		{maxReach: 4000000000, wantErr: true},
	}
	for _, tt := range tests {
		err := validateThreshold(tt.maxReach)
		if tt.wantErr && err == nil {
			t.Errorf("validateThreshold(%d) accepted an out-of-range threshold", tt.maxReach)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validateThreshold(%d): %v", tt.maxReach, err)
		}
	}
}

func TestFormatReach(t *testing.T) {
	if got := formatReach(3, 50); got != "3" {
		t.Errorf("formatReach(3, 50) = %q", got)
	}
	if got := formatReach(50, 50); got != "50 (saturated)" {
		t.Errorf("formatReach(50, 50) = %q", got)
	}
}
