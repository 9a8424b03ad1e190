package tool

import (
	"math"
	"reflect"
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

func TestRadiusFitFromQuadrantPicks(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewRadiusTool(&settings)
	tool.Activate()

	center := geometry.NewVector3(1, 2, 0)
	ctx := snap.Context{Shapes: []*scene.Shape{scene.NewCircle(center, 5)}}

	// Three picks near three quadrant points of the circle.
	tool.PointerDown(ctx, queryAt(5.9, 2.1))
	tool.PointerDown(ctx, queryAt(-3.9, 1.9))
	if len(tool.Measurements) != 0 {
		t.Fatal("fit must not run before the third pick")
	}
	if len(tool.PickedPoints()) != 2 {
		t.Fatalf("expected 2 collected picks, got %d", len(tool.PickedPoints()))
	}
	tool.PointerDown(ctx, queryAt(1.1, 7.1))

	if len(tool.Measurements) != 1 {
		t.Fatalf("expected a committed measurement, got %d", len(tool.Measurements))
	}
	rm := tool.Measurements[0]
	if rm.Center.Distance(center) > 1e-9 {
		t.Errorf("fitted center: expected %v, got %v", center, rm.Center)
	}
	if math.Abs(rm.Radius-5) > 1e-9 {
		t.Errorf("fitted radius: expected 5, got %v", rm.Radius)
	}
	if rm.StdDev > 1e-9 {
		t.Errorf("exact picks should fit with zero residual, got stddev %v", rm.StdDev)
	}
	if len(tool.PickedPoints()) != 0 {
		t.Errorf("picks should be cleared after commit, got %d", len(tool.PickedPoints()))
	}
}

func TestRadiusDiscardsCollinearPicks(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewRadiusTool(&settings)
	tool.Activate()

	// Empty scene: picks fall back to the raw points, which are collinear.
	tool.PointerDown(snap.Context{}, queryAt(0, 0))
	tool.PointerDown(snap.Context{}, queryAt(1, 0))
	tool.PointerDown(snap.Context{}, queryAt(2, 0))

	if len(tool.Measurements) != 0 {
		t.Errorf("collinear picks must not produce a measurement")
	}
	if len(tool.PickedPoints()) != 0 {
		t.Errorf("degenerate pick set should be discarded, got %d picks", len(tool.PickedPoints()))
	}
}

func TestRadiusIgnoresDuplicatePick(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewRadiusTool(&settings)
	tool.Activate()

	tool.PointerDown(snap.Context{}, queryAt(0, 0))
	tool.PointerDown(snap.Context{}, queryAt(0, 0))
	if len(tool.PickedPoints()) != 1 {
		t.Errorf("duplicate pick should be ignored, got %d picks", len(tool.PickedPoints()))
	}
}

func TestRadiusCancelAndSettingsRestore(t *testing.T) {
	settings := snap.DefaultSettings()
	original := settings.Clone()
	tool := NewRadiusTool(&settings)

	tool.Activate()
	if settings.Enabled(snap.Intersection) {
		t.Error("intersection snaps should be off while picking arc points")
	}
	if !settings.Enabled(snap.Quadrant) || !settings.Enabled(snap.Nearest) {
		t.Error("quadrant and nearest snaps should stay on for arc picks")
	}

	tool.PointerDown(snap.Context{}, queryAt(0, 0))
	tool.Cancel()
	if len(tool.PickedPoints()) != 0 {
		t.Errorf("cancel should discard picks, got %d", len(tool.PickedPoints()))
	}

	tool.Deactivate()
	if !reflect.DeepEqual(settings, original) {
		t.Errorf("settings not restored: expected %v, got %v", original, settings)
	}
}
