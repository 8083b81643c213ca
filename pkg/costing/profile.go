package costing

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wayreach/wayreach/pkg/graph"
)

var (
	// ErrNoProfileName is returned when a profile has an empty name.
	ErrNoProfileName = errors.New("costing profile must have a name")

	// ErrBadSpeed is returned when a profile declares a non-positive speed.
	ErrBadSpeed = errors.New("profile speed must be positive")

	// ErrNoAccess is returned when a profile grants access to no road class
	// at all, which would make every edge restricted.
	ErrNoAccess = errors.New("profile must allow at least one road class")

	// ErrUnknownProfile is returned by Builtin for unrecognized profile names.
	ErrUnknownProfile = errors.New("unknown costing profile")
)

// kmhToMs converts km/h to m/s.
const kmhToMs = 1.0 / 3.6

// Profile is a table-driven costing model for one travel mode.
// Speeds and access are keyed by road class; classes missing from either
// table fall back to the profile defaults.
type Profile struct {
	Name string // Travel mode name (e.g., "auto")

	// DefaultSpeed is the km/h assumed for classes absent from Speeds.
	DefaultSpeed float64

	Speeds map[graph.Class]float64 // km/h per road class
	Access map[graph.Class]bool    // traversable per road class
}

// Allowed reports the traversal verdict for the edge: Restricted for closed
// edges and inaccessible classes, Conditional for restriction-skippable
// edges, Allowed otherwise.
func (p *Profile) Allowed(e *graph.DirectedEdge) Permission {
	if e.Closed {
		return Restricted
	}
	if allowed, ok := p.Access[e.Class]; ok && !allowed {
		return Restricted
	}
	if e.Conditional {
		return Conditional
	}
	return Allowed
}

// Cost returns the edge traversal time in seconds at the profile's speed
// for the edge's road class.
func (p *Profile) Cost(e *graph.DirectedEdge) float64 {
	speed := p.DefaultSpeed
	if s, ok := p.Speeds[e.Class]; ok {
		speed = s
	}
	return e.Length / (speed * kmhToMs)
}

// Validate checks profile consistency and returns nil if valid.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrNoProfileName
	}
	if p.DefaultSpeed <= 0 {
		return fmt.Errorf("%w: default speed %.1f", ErrBadSpeed, p.DefaultSpeed)
	}
	for class, speed := range p.Speeds {
		if speed <= 0 {
			return fmt.Errorf("%w: %s %.1f", ErrBadSpeed, class, speed)
		}
	}
	// Classes absent from the access table are allowed, so a profile is
	// only degenerate when it explicitly denies every known class.
	denied := 0
	for _, allowed := range p.Access {
		if !allowed {
			denied++
		}
	}
	if denied == len(graph.Classes()) {
		return ErrNoAccess
	}
	return nil
}

// Ensure Profile implements Model.
var _ Model = (*Profile)(nil)

// =============================================================================
// Built-in Profiles
// =============================================================================

// Auto returns the default car costing profile.
func Auto() *Profile {
	return &Profile{
		Name:         "auto",
		DefaultSpeed: 40,
		Speeds: map[graph.Class]float64{
			graph.ClassMotorway:    110,
			graph.ClassTrunk:       90,
			graph.ClassPrimary:     70,
			graph.ClassSecondary:   60,
			graph.ClassTertiary:    50,
			graph.ClassResidential: 30,
			graph.ClassService:     20,
		},
		Access: map[graph.Class]bool{
			graph.ClassPath: false,
		},
	}
}

// Bicycle returns the default bicycle costing profile.
func Bicycle() *Profile {
	return &Profile{
		Name:         "bicycle",
		DefaultSpeed: 18,
		Speeds: map[graph.Class]float64{
			graph.ClassPrimary:     22,
			graph.ClassSecondary:   20,
			graph.ClassResidential: 18,
			graph.ClassService:     15,
			graph.ClassPath:        12,
		},
		Access: map[graph.Class]bool{
			graph.ClassMotorway: false,
			graph.ClassTrunk:    false,
		},
	}
}

// Pedestrian returns the default walking costing profile.
func Pedestrian() *Profile {
	return &Profile{
		Name:         "pedestrian",
		DefaultSpeed: 5,
		Access: map[graph.Class]bool{
			graph.ClassMotorway: false,
			graph.ClassTrunk:    false,
		},
	}
}

// Builtin returns the built-in profile with the given name.
// Recognized names: auto, bicycle, pedestrian.
func Builtin(name string) (*Profile, error) {
	switch name {
	case "auto":
		return Auto(), nil
	case "bicycle":
		return Bicycle(), nil
	case "pedestrian":
		return Pedestrian(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// =============================================================================
// TOML Loading
// =============================================================================

// profileFile is the TOML wire representation of a profile.
// Road classes are keyed by name, matching graph.ParseClass.
type profileFile struct {
	Name         string             `toml:"name"`
	DefaultSpeed float64            `toml:"default_speed"`
	Speeds       map[string]float64 `toml:"speeds"`
	Access       map[string]bool    `toml:"access"`
}

// LoadProfileFile reads a costing profile from a TOML file and validates it.
//
// Example profile:
//
//	name = "auto"
//	default_speed = 40.0
//
//	[speeds]
//	motorway = 110.0
//	residential = 30.0
//
//	[access]
//	path = false
func LoadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	return parseProfile(data)
}

func parseProfile(data []byte) (*Profile, error) {
	var file profileFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	p := &Profile{
		Name:         file.Name,
		DefaultSpeed: file.DefaultSpeed,
		Speeds:       make(map[graph.Class]float64, len(file.Speeds)),
		Access:       make(map[graph.Class]bool, len(file.Access)),
	}
	for name, speed := range file.Speeds {
		class, err := graph.ParseClass(name)
		if err != nil {
			return nil, err
		}
		p.Speeds[class] = speed
	}
	for name, allowed := range file.Access {
		class, err := graph.ParseClass(name)
		if err != nil {
			return nil, err
		}
		p.Access[class] = allowed
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
