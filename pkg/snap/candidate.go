// Package snap implements the geometric snap-resolution engine: given a
// cursor position and the current shape and solid collections, it finds
// the interesting points (corners, midpoints, centers, quadrants,
// perpendicular feet, intersections, nearest-on-edge) within a tolerance
// and returns them ranked by distance.
//
// Every query is a pure function over the collections passed in. Nothing
// is cached between queries and nothing is mutated, so results are always
// correct after any shape edit.
package snap

import "github.com/GokerOzenc93/yago/pkg/geometry"

// Kind identifies which generator produced a candidate
type Kind int

const (
	Endpoint Kind = iota
	Midpoint
	Center
	Quadrant
	Perpendicular
	Intersection
	Nearest
	kindCount
)

// String returns a human-readable snap kind name
func (k Kind) String() string {
	switch k {
	case Endpoint:
		return "endpoint"
	case Midpoint:
		return "midpoint"
	case Center:
		return "center"
	case Quadrant:
		return "quadrant"
	case Perpendicular:
		return "perpendicular"
	case Intersection:
		return "intersection"
	case Nearest:
		return "nearest"
	}
	return "unknown"
}

// Kinds lists every snap kind in ranking-independent declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Candidate is one snappable point produced by a query. Distance is in
// the query's metric: pixels for the screen metric, model units for the
// world metric.
type Candidate struct {
	Point    geometry.Vector3
	Kind     Kind
	ShapeID  string // originating shape or solid id, empty for derived points
	Distance float64
}

// Settings maps each snap kind to whether its generator runs. A missing
// key counts as disabled. Settings are owned by the calling tool and are
// only read during a query.
type Settings map[Kind]bool

// DefaultSettings returns settings with every snap kind enabled
func DefaultSettings() Settings {
	s := make(Settings, kindCount)
	for _, k := range Kinds() {
		s[k] = true
	}
	return s
}

// Enabled reports whether the generator for a kind should run
func (s Settings) Enabled(k Kind) bool {
	return s[k]
}

// Clone returns an independent copy of the settings. Tools use this to
// save the active configuration before narrowing it, so deactivation can
// restore it exactly.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
