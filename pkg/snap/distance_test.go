package snap

import (
	"math"
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/viewer"
)

// frontCamera looks down the -Z axis at the origin from (0,0,10)
func frontCamera() *viewer.Camera {
	return &viewer.Camera{
		Position: geometry.NewVector3(0, 0, 10),
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: 10,
	}
}

func TestDistanceWorldMetric(t *testing.T) {
	r := Resolver{Metric: MetricWorld}

	d := r.Distance(geometry.NewVector3(3, 4, 0), geometry.NewVector3(0, 0, 0))
	if math.Abs(d-5) > 1e-10 {
		t.Errorf("world distance: expected 5, got %v", d)
	}
}

func TestDistanceScreenMetric(t *testing.T) {
	r := Resolver{
		Metric:   MetricScreen,
		Camera:   frontCamera(),
		Viewport: viewer.NewViewport(800, 600),
	}

	// A point half a unit off-axis at depth 10 lands about 36 pixels from
	// the viewport center with a 45 degree FOV.
	d := r.Distance(geometry.NewVector3(0.5, 0, 0), geometry.NewVector3(0, 0, 0))
	expected := (0.5 / (10 * math.Tan(math.Pi/8) * (800.0 / 600.0))) * 400
	if math.Abs(d-expected) > 1e-9 {
		t.Errorf("screen distance: expected %v, got %v", expected, d)
	}
	if d < 30 || d > 45 {
		t.Errorf("screen distance magnitude off: got %v px", d)
	}
}

func TestDistanceScreenBehindCamera(t *testing.T) {
	r := Resolver{
		Metric:   MetricScreen,
		Camera:   frontCamera(),
		Viewport: viewer.NewViewport(800, 600),
	}

	// Behind the camera plane the candidate must never pass any tolerance.
	d := r.Distance(geometry.NewVector3(0, 0, 20), geometry.NewVector3(0, 0, 0))
	if !math.IsInf(d, 1) {
		t.Errorf("behind-camera distance: expected +Inf, got %v", d)
	}
}

func TestDistanceScreenCursorOverride(t *testing.T) {
	cam := frontCamera()
	vp := viewer.NewViewport(800, 600)
	projected, _, ok := cam.Project(geometry.NewVector3(0.5, 0, 0), vp)
	if !ok {
		t.Fatal("projection unexpectedly failed")
	}

	cursor := projected
	r := Resolver{Metric: MetricScreen, Camera: cam, Viewport: vp, Cursor: &cursor}

	// With the cursor sitting on the candidate's pixel the distance is zero
	// regardless of where the world query point unprojected to.
	d := r.Distance(geometry.NewVector3(0.5, 0, 0), geometry.NewVector3(0, 0, 0))
	if math.Abs(d) > 1e-9 {
		t.Errorf("cursor-anchored distance: expected 0, got %v", d)
	}
}

func TestDistanceScreenWithoutCameraFallsBack(t *testing.T) {
	r := Resolver{Metric: MetricScreen}

	d := r.Distance(geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, 0, 0))
	if math.Abs(d-1) > 1e-10 {
		t.Errorf("expected world fallback distance 1, got %v", d)
	}
}

func TestResolveMetricSwitch(t *testing.T) {
	// One endpoint half a unit from the query: within a 1-unit world
	// tolerance, but ~36 px from the viewport center and therefore outside
	// a 20 px screen tolerance.
	ctx := Context{Shapes: []*scene.Shape{
		scene.NewPolyline([]geometry.Vector3{
			geometry.NewVector3(0.5, 0, 0),
			geometry.NewVector3(0.5, 5, 0),
		}),
	}}

	world := Query{
		Point:     geometry.NewVector3(0, 0, 0),
		Tolerance: 1.0,
		Settings:  Settings{Endpoint: true},
		Metric:    MetricWorld,
	}
	if result := Resolve(ctx, world); len(result) != 1 {
		t.Errorf("world metric: expected 1 candidate, got %d", len(result))
	}

	screen := Query{
		Point:     geometry.NewVector3(0, 0, 0),
		Tolerance: 20,
		Settings:  Settings{Endpoint: true},
		Metric:    MetricScreen,
		Camera:    frontCamera(),
		Viewport:  viewer.NewViewport(800, 600),
	}
	if result := Resolve(ctx, screen); len(result) != 0 {
		t.Errorf("screen metric: candidate should miss 20 px tolerance, got %d", len(result))
	}

	// Widening the pixel tolerance brings it back, with Distance in pixels.
	screen.Tolerance = 50
	result := Resolve(ctx, screen)
	if len(result) != 1 {
		t.Fatalf("screen metric wide: expected 1 candidate, got %d", len(result))
	}
	if result[0].Distance < 30 || result[0].Distance > 45 {
		t.Errorf("screen candidate distance should be in pixels (~36), got %v", result[0].Distance)
	}
}
