package scene

import (
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/mesh"
)

func TestSolidCenterFollowsPose(t *testing.T) {
	s := NewSolid(SolidBox, mesh.Box(2, 2, 2))
	if s.Center() != geometry.NewVector3(0, 0, 0) {
		t.Errorf("fresh solid center: expected origin, got %v", s.Center())
	}

	s.Pose.Translation = geometry.NewVector3(3, -1, 2)
	if s.Center() != geometry.NewVector3(3, -1, 2) {
		t.Errorf("center should track translation, got %v", s.Center())
	}
}

func TestSolidWorldBounds(t *testing.T) {
	s := NewSolid(SolidBox, mesh.Box(2, 4, 6))
	s.Pose.Translation = geometry.NewVector3(10, 0, 0)

	bounds := s.WorldBounds()
	if bounds.Min != geometry.NewVector3(9, -2, -3) || bounds.Max != geometry.NewVector3(11, 2, 3) {
		t.Errorf("world bounds wrong: [%v, %v]", bounds.Min, bounds.Max)
	}
}

func TestSolidUniqueIDs(t *testing.T) {
	a := NewSolid(SolidBox, nil)
	b := NewSolid(SolidCylinder, nil)
	if a.ID == b.ID {
		t.Error("solids must get unique ids")
	}
}
