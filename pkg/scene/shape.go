// Package scene holds the shape and solid collections owned by the
// application layer. Shapes are in-progress 2D outlines drawn in the XY
// drawing plane; solids are placed 3D bodies with a pose and a mesh.
// Everything here is plain data: queries over it never mutate it.
package scene

import (
	"github.com/google/uuid"

	"github.com/GokerOzenc93/yago/pkg/geometry"
)

// ShapeKind identifies the concrete 2D shape variant
type ShapeKind int

const (
	ShapePolyline ShapeKind = iota
	ShapePolygon
	ShapeRectangle
	ShapeCircle
)

// String returns a human-readable shape kind name
func (k ShapeKind) String() string {
	switch k {
	case ShapePolyline:
		return "polyline"
	case ShapePolygon:
		return "polygon"
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	}
	return "unknown"
}

// Shape is a 2D outline being drawn in the XY plane. Points are owned by
// the shape and ordered. Circles store no outline points; they carry a
// center and radius instead.
type Shape struct {
	ID     string
	Kind   ShapeKind
	Points []geometry.Vector3
	Closed bool

	// Circle only
	Center geometry.Vector3
	Radius float64
}

// NewPolyline creates an open polyline shape from ordered points
func NewPolyline(points []geometry.Vector3) *Shape {
	return &Shape{
		ID:     uuid.NewString(),
		Kind:   ShapePolyline,
		Points: points,
	}
}

// NewPolygon creates a closed polygon shape from ordered points
func NewPolygon(points []geometry.Vector3) *Shape {
	return &Shape{
		ID:     uuid.NewString(),
		Kind:   ShapePolygon,
		Points: points,
		Closed: true,
	}
}

// NewRectangle creates a closed rectangle shape from two diagonal corners
// in the XY plane. The corners are expanded to the four corner points in
// counter-clockwise order.
func NewRectangle(a, b geometry.Vector3) *Shape {
	min := a.Min(b)
	max := a.Max(b)
	return &Shape{
		ID:   uuid.NewString(),
		Kind: ShapeRectangle,
		Points: []geometry.Vector3{
			{X: min.X, Y: min.Y, Z: min.Z},
			{X: max.X, Y: min.Y, Z: min.Z},
			{X: max.X, Y: max.Y, Z: min.Z},
			{X: min.X, Y: max.Y, Z: min.Z},
		},
		Closed: true,
	}
}

// NewCircle creates a circle shape from a center point and radius
func NewCircle(center geometry.Vector3, radius float64) *Shape {
	return &Shape{
		ID:     uuid.NewString(),
		Kind:   ShapeCircle,
		Center: center,
		Radius: radius,
	}
}

// closingDuplicate reports whether the last stored point repeats the
// first one. Some construction paths store the synthetic closing point
// explicitly; corner iteration has to skip it to avoid a duplicate of
// point 0.
func (s *Shape) closingDuplicate() bool {
	n := len(s.Points)
	if !s.Closed || n < 2 {
		return false
	}
	return s.Points[n-1].Distance(s.Points[0]) < 1e-9
}

// Corners returns the shape's distinct corner points in order. For closed
// shapes a stored synthetic closing point is dropped. Circles have no
// corners.
func (s *Shape) Corners() []geometry.Vector3 {
	if s.Kind == ShapeCircle {
		return nil
	}
	points := s.Points
	if s.closingDuplicate() {
		points = points[:len(points)-1]
	}
	return points
}

// Segments returns the consecutive point-pair segments of the shape,
// including the closing segment for closed shapes. Circles yield no
// segments; their geometry is handled analytically.
func (s *Shape) Segments() []geometry.Segment {
	corners := s.Corners()
	if len(corners) < 2 {
		return nil
	}

	segments := make([]geometry.Segment, 0, len(corners))
	for i := 0; i+1 < len(corners); i++ {
		segments = append(segments, geometry.NewSegment(corners[i], corners[i+1]))
	}
	if s.Closed {
		segments = append(segments, geometry.NewSegment(corners[len(corners)-1], corners[0]))
	}
	return segments
}

// CenterPoint returns the geometric center for shape kinds that define
// one: the stored center for circles and the diagonal midpoint for
// rectangles. ok is false for other kinds.
func (s *Shape) CenterPoint() (geometry.Vector3, bool) {
	switch s.Kind {
	case ShapeCircle:
		return s.Center, true
	case ShapeRectangle:
		if len(s.Points) >= 3 {
			return s.Points[0].Midpoint(s.Points[2]), true
		}
	}
	return geometry.Vector3{}, false
}
