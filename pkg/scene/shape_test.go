package scene

import (
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
)

func TestPolylineSegments(t *testing.T) {
	s := NewPolyline([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(10, 10, 0),
	})

	segments := s.Segments()
	if len(segments) != 2 {
		t.Fatalf("open polyline segments: expected 2, got %d", len(segments))
	}
	if segments[1].End != s.Points[2] {
		t.Errorf("unexpected last segment end: %v", segments[1].End)
	}
}

func TestPolygonClosingSegment(t *testing.T) {
	s := NewPolygon([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(5, 8, 0),
	})

	segments := s.Segments()
	if len(segments) != 3 {
		t.Fatalf("polygon segments: expected 3 (incl. closing), got %d", len(segments))
	}
	last := segments[len(segments)-1]
	if last.End != s.Points[0] {
		t.Errorf("closing segment must return to point 0, got %v", last.End)
	}
}

func TestCornersSkipSyntheticClosingPoint(t *testing.T) {
	// Stored with an explicit closing point duplicating point 0.
	p0 := geometry.NewVector3(0, 0, 0)
	s := NewPolygon([]geometry.Vector3{
		p0,
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(5, 8, 0),
		p0,
	})

	corners := s.Corners()
	if len(corners) != 3 {
		t.Errorf("corners: expected 3 (closing duplicate skipped), got %d", len(corners))
	}
	if len(s.Segments()) != 3 {
		t.Errorf("segments: expected 3, got %d", len(s.Segments()))
	}
}

func TestRectangleCenter(t *testing.T) {
	s := NewRectangle(geometry.NewVector3(0, 0, 0), geometry.NewVector3(4, 2, 0))

	center, ok := s.CenterPoint()
	if !ok {
		t.Fatal("rectangle must have a center")
	}
	if center != geometry.NewVector3(2, 1, 0) {
		t.Errorf("rectangle center: expected (2,1,0), got %v", center)
	}
	if len(s.Segments()) != 4 {
		t.Errorf("rectangle segments: expected 4, got %d", len(s.Segments()))
	}
}

func TestCircleHasNoCornersOrSegments(t *testing.T) {
	s := NewCircle(geometry.NewVector3(1, 2, 0), 5)

	if s.Corners() != nil {
		t.Error("circle must have no corner points")
	}
	if s.Segments() != nil {
		t.Error("circle must have no segments")
	}

	center, ok := s.CenterPoint()
	if !ok || center != s.Center {
		t.Errorf("circle center: expected %v, got %v (ok=%v)", s.Center, center, ok)
	}
}

func TestShapeIDsUnique(t *testing.T) {
	a := NewCircle(geometry.Vector3{}, 1)
	b := NewCircle(geometry.Vector3{}, 1)
	if a.ID == b.ID {
		t.Error("shape ids must be unique")
	}
	if a.ID == "" {
		t.Error("shape id must not be empty")
	}
}
