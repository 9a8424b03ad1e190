package viewer

import (
	"math"
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
)

func testCamera() *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 0, 10),
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: 10,
	}
}

func TestProjectCenterAndDepth(t *testing.T) {
	cam := testCamera()
	vp := NewViewport(800, 600)

	p, depth, ok := cam.Project(geometry.NewVector3(0, 0, 0), vp)
	if !ok {
		t.Fatal("target should project")
	}
	if math.Abs(p.X-400) > 1e-9 || math.Abs(p.Y-300) > 1e-9 {
		t.Errorf("target should land on viewport center, got %v", p)
	}
	if math.Abs(depth-10) > 1e-9 {
		t.Errorf("depth: expected 10, got %v", depth)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := testCamera()
	vp := NewViewport(800, 600)

	if _, _, ok := cam.Project(geometry.NewVector3(0, 0, 15), vp); ok {
		t.Error("point behind the camera must not project")
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	cam := testCamera()
	vp := NewViewport(800, 600)

	world := geometry.NewVector3(1.5, -0.75, 2)
	screen, _, ok := cam.Project(world, vp)
	if !ok {
		t.Fatal("projection failed")
	}

	origin, dir := cam.Unproject(screen, vp)

	// The ray must pass through the original world point.
	toPoint := world.Sub(origin)
	distAlong := toPoint.Dot(dir)
	closest := origin.Add(dir.Mul(distAlong))
	if closest.Distance(world) > 1e-9 {
		t.Errorf("unprojected ray misses the point by %v", closest.Distance(world))
	}
}

func TestNewCameraFramesBounds(t *testing.T) {
	bounds := geometry.NewBoundingBox()
	bounds.Extend(geometry.NewVector3(-2, -2, -2))
	bounds.Extend(geometry.NewVector3(2, 2, 2))

	cam := NewCamera(bounds)
	if cam.Distance != 8 {
		t.Errorf("distance: expected twice the largest dimension (8), got %v", cam.Distance)
	}
	if cam.Target != bounds.Center() {
		t.Errorf("target should be the bounds center, got %v", cam.Target)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	cam := testCamera()
	cam.Rotate(10, 0)
	if cam.RotationX >= math.Pi/2 {
		t.Errorf("pitch not clamped: %v", cam.RotationX)
	}
}

func TestZoomFloor(t *testing.T) {
	cam := testCamera()
	cam.Zoom(-0.9999)
	cam.Zoom(-0.9999)
	if cam.Distance < 0.1 {
		t.Errorf("distance below floor: %v", cam.Distance)
	}
}
