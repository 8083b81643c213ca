package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the network.
//
// Nodes are drawn as small circles labeled by node ID; directed edges carry
// their edge ID and road class. Conditional edges are dashed, closed edges
// dotted, so restriction structure is visible at a glance when debugging
// reach estimates.
//
// The DOT output can be rendered with Graphviz tools (dot, neato, etc.) or
// programmatically with RenderSVG.
func ToDOT(n *Network) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Network {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=circle, style=filled, fillcolor=white];\n\n")

	for _, id := range n.EdgeIDs() {
		e := n.edges[id]
		style := "solid"
		switch {
		case e.Closed:
			style = "dotted"
		case e.Conditional:
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  %d -> %d [label=\"%d (%s)\", style=%s];\n",
			e.From, e.To, e.ID, e.Class, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the network as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it to SVG format. The returned bytes are a complete SVG document
// suitable for embedding in HTML or saving to a file.
//
// RenderSVG requires the Graphviz library (github.com/goccy/go-graphviz) and
// its dependencies. Errors are returned if Graphviz cannot initialize, the
// DOT is malformed, or rendering fails; all are wrapped with fmt.Errorf %w.
func RenderSVG(n *Network) ([]byte, error) {
	dot := ToDOT(n)

	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
