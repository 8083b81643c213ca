package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEdgeID is returned by [Network.AddEdge] when the edge ID is the
	// reserved invalid value. All edges must carry a resolvable identifier.
	ErrInvalidEdgeID = errors.New("edge ID must not be the invalid sentinel")

	// ErrDuplicateEdgeID is returned by [Network.AddEdge] when an edge with the
	// same ID already exists. Edge IDs must be unique within a network.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrUnknownEdge is returned when an edge ID cannot be resolved to a
	// directed edge in the network.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrUnknownClass is returned when parsing a road class name that is not
	// one of the recognized classes.
	ErrUnknownClass = errors.New("unknown road class")
)

// EdgeID is an opaque, stable identifier for a directed edge, unique within
// a network. The zero value is a valid identifier; InvalidEdge is reserved.
type EdgeID uint64

// InvalidEdge is the reserved identifier for "no edge".
const InvalidEdge = EdgeID(^uint64(0))

// NodeID identifies an intersection (graph vertex) within a network.
type NodeID uint32

// Dir selects the traversal direction of an expansion.
type Dir int

const (
	// Forward walks successor edges: edges leaving an edge's end node.
	Forward Dir = iota
	// Reverse walks predecessor edges: edges entering an edge's start node.
	Reverse
)

// String returns "forward" or "reverse".
func (d Dir) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Class categorizes a directed edge by road type. Costing models key their
// speed and access tables on it.
type Class int

const (
	ClassMotorway Class = iota
	ClassTrunk
	ClassPrimary
	ClassSecondary
	ClassTertiary
	ClassResidential
	ClassService
	ClassPath
)

var classNames = map[Class]string{
	ClassMotorway:    "motorway",
	ClassTrunk:       "trunk",
	ClassPrimary:     "primary",
	ClassSecondary:   "secondary",
	ClassTertiary:    "tertiary",
	ClassResidential: "residential",
	ClassService:     "service",
	ClassPath:        "path",
}

// String returns the lowercase class name (e.g., "residential").
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// ParseClass converts a class name to a Class.
// Returns ErrUnknownClass for unrecognized names.
func ParseClass(name string) (Class, error) {
	for c, n := range classNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// DirectedEdge is a one-way traversable segment of the network.
// A two-way street is stored as two directed edges, one per direction.
type DirectedEdge struct {
	ID     EdgeID  // Unique identifier within the network
	From   NodeID  // Start node
	To     NodeID  // End node
	Length float64 // Length in meters
	Class  Class   // Road class

	// Conditional marks an edge whose passability depends on conditions a
	// costing model cannot settle during a fast estimate (time-of-day bans,
	// destination-only access). Costing reports such edges as
	// restriction-skippable rather than allowed or restricted.
	Conditional bool

	// Closed marks an edge that is permanently impassable (construction,
	// barriers). Costing reports closed edges as restricted for every profile.
	Closed bool
}

// Reader resolves edge identities during an expansion. Implementations must
// be safe for concurrent reads by independent expansions; the expansion
// engine never mutates the network through it.
type Reader interface {
	// Edge resolves an edge ID to its directed-edge record.
	// Returns an error wrapping ErrUnknownEdge if the ID cannot be resolved.
	Edge(id EdgeID) (*DirectedEdge, error)

	// Adjacent returns the edges reachable from id in one traversal step:
	// successor edges (leaving the edge's end node) in Forward mode,
	// predecessor edges (entering the edge's start node) in Reverse mode.
	Adjacent(id EdgeID, dir Dir) ([]EdgeID, error)
}
