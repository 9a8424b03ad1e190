package scene

import (
	"github.com/google/uuid"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/mesh"
)

// SolidKind identifies the concrete solid variant
type SolidKind int

const (
	SolidBox SolidKind = iota
	SolidCylinder
	SolidRoundedBox
	SolidImported
)

// String returns a human-readable solid kind name
func (k SolidKind) String() string {
	switch k {
	case SolidBox:
		return "box"
	case SolidCylinder:
		return "cylinder"
	case SolidRoundedBox:
		return "rounded box"
	case SolidImported:
		return "imported"
	}
	return "unknown"
}

// Solid is a placed 3D body: a mesh buffer in local coordinates plus the
// pose transforming it into world space. The mesh is owned by the solid
// and replaced wholesale on geometry changes, never mutated in place.
type Solid struct {
	ID   string
	Kind SolidKind
	Pose geometry.Transform
	Mesh *mesh.Buffer
}

// NewSolid creates a solid with an identity pose
func NewSolid(kind SolidKind, buffer *mesh.Buffer) *Solid {
	return &Solid{
		ID:   uuid.NewString(),
		Kind: kind,
		Pose: geometry.IdentityTransform(),
		Mesh: buffer,
	}
}

// Center returns the solid's world-space center, which is its pose
// translation
func (s *Solid) Center() geometry.Vector3 {
	return s.Pose.Translation
}

// WorldBounds returns the axis-aligned bounding box of the posed mesh.
// An empty solid yields an inverted (never-extended) box.
func (s *Solid) WorldBounds() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	if s.Mesh.IsEmpty() {
		return bounds
	}
	for i := 0; i < s.Mesh.VertexCount(); i++ {
		bounds.Extend(s.Pose.Apply(s.Mesh.Vertex(i)))
	}
	return bounds
}
