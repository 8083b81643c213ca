package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// =============================================================================
// Network Serialization API
// =============================================================================

// File is the JSON wire representation of a network.
type File struct {
	Edges []EdgeRecord `json:"edges"`
}

// EdgeRecord is the JSON wire representation of one directed edge.
// Road classes are serialized by name for readability and stability.
type EdgeRecord struct {
	ID          uint64  `json:"id"`
	From        uint32  `json:"from"`
	To          uint32  `json:"to"`
	Length      float64 `json:"length"`
	Class       string  `json:"class"`
	Conditional bool    `json:"conditional,omitempty"`
	Closed      bool    `json:"closed,omitempty"`
}

// MarshalNetwork converts a network to JSON bytes.
// Edges are sorted by ID for deterministic output.
func MarshalNetwork(n *Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNetworkTo(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteNetworkFile writes a network to a JSON file.
// The file is created with 0644 permissions.
func WriteNetworkFile(n *Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeNetworkTo(n, f)
}

// WriteNetwork writes a network as JSON to an io.Writer.
// Use MarshalNetwork for in-memory serialization or WriteNetworkFile for files.
func WriteNetwork(n *Network, w io.Writer) error {
	return writeNetworkTo(n, w)
}

// ReadNetworkFile reads a JSON file and returns the decoded network.
// Returns validation errors for malformed records or duplicate edge IDs.
func ReadNetworkFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readNetworkFrom(f)
}

// ReadNetwork decodes a JSON network from an io.Reader.
// Use ReadNetworkFile for files or pass bytes.NewReader for in-memory data.
func ReadNetwork(r io.Reader) (*Network, error) {
	return readNetworkFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeNetworkTo(n *Network, w io.Writer) error {
	out := FromNetwork(n)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readNetworkFrom(r io.Reader) (*Network, error) {
	var data File
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToNetwork(data)
}

// FromNetwork converts a network to its wire representation.
// Edges are sorted by ID.
func FromNetwork(n *Network) File {
	records := make([]EdgeRecord, 0, n.EdgeCount())
	for _, id := range n.EdgeIDs() {
		e := n.edges[id]
		records = append(records, EdgeRecord{
			ID:          uint64(e.ID),
			From:        uint32(e.From),
			To:          uint32(e.To),
			Length:      e.Length,
			Class:       e.Class.String(),
			Conditional: e.Conditional,
			Closed:      e.Closed,
		})
	}
	return File{Edges: records}
}

// ToNetwork builds a network from its wire representation, validating
// road class names and edge ID uniqueness.
func ToNetwork(data File) (*Network, error) {
	n := NewNetwork()
	for _, rec := range data.Edges {
		class, err := ParseClass(rec.Class)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", rec.ID, err)
		}
		err = n.AddEdge(DirectedEdge{
			ID:          EdgeID(rec.ID),
			From:        NodeID(rec.From),
			To:          NodeID(rec.To),
			Length:      rec.Length,
			Class:       class,
			Conditional: rec.Conditional,
			Closed:      rec.Closed,
		})
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Classes returns all recognized road classes in class order.
func Classes() []Class {
	classes := make([]Class, 0, len(classNames))
	for c := range classNames {
		classes = append(classes, c)
	}
	slices.Sort(classes)
	return classes
}

// ClassNames returns all recognized road class names in class order.
func ClassNames() []string {
	classes := Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
