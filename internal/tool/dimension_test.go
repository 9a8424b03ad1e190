package tool

import (
	"math"
	"reflect"
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

func rectangleScene() snap.Context {
	return snap.Context{Shapes: []*scene.Shape{
		scene.NewRectangle(geometry.NewVector3(0, 0, 0), geometry.NewVector3(4, 2, 0)),
	}}
}

func queryAt(x, y float64) snap.Query {
	return snap.Query{
		Point:     geometry.NewVector3(x, y, 0),
		Tolerance: 0.5,
	}
}

func TestDimensionPickSequence(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewDimensionTool(&settings)
	tool.Activate()
	ctx := rectangleScene()

	if tool.Phase() != PhaseIdle {
		t.Fatalf("fresh tool phase: expected idle, got %v", tool.Phase())
	}

	// First click near the origin corner snaps to it.
	tool.PointerDown(ctx, queryAt(0.1, -0.1))
	if tool.Phase() != PhaseFirstPointSet {
		t.Fatalf("after first pick: expected first point set, got %v", tool.Phase())
	}
	if tool.Start() != geometry.NewVector3(0, 0, 0) {
		t.Errorf("start: expected corner (0,0,0), got %v", tool.Start())
	}

	// Second click near the adjacent corner.
	tool.PointerDown(ctx, queryAt(3.9, 0.1))
	if tool.Phase() != PhasePositioning {
		t.Fatalf("after second pick: expected positioning, got %v", tool.Phase())
	}
	if tool.End() != geometry.NewVector3(4, 0, 0) {
		t.Errorf("end: expected corner (4,0,0), got %v", tool.End())
	}

	// Moving the pointer slides the offset perpendicular to the measured
	// direction: the along-axis component is dropped.
	tool.PointerMove(ctx, queryAt(2, 3))
	if tool.Preview() != geometry.NewVector3(0, 3, 0) {
		t.Errorf("preview: expected (0,3,0), got %v", tool.Preview())
	}

	// Third click commits.
	tool.PointerDown(ctx, queryAt(2, 3))
	if tool.Phase() != PhaseIdle {
		t.Errorf("after commit: expected idle, got %v", tool.Phase())
	}
	if len(tool.Dimensions) != 1 {
		t.Fatalf("expected 1 committed dimension, got %d", len(tool.Dimensions))
	}
	dim := tool.Dimensions[0]
	if math.Abs(dim.Length-4) > 1e-10 {
		t.Errorf("length: expected 4, got %v", dim.Length)
	}
	if dim.Offset != geometry.NewVector3(0, 3, 0) {
		t.Errorf("offset: expected (0,3,0), got %v", dim.Offset)
	}
}

func TestDimensionRejectsRepeatedStartPoint(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewDimensionTool(&settings)
	tool.Activate()
	ctx := rectangleScene()

	tool.PointerDown(ctx, queryAt(0.1, 0.1))
	tool.PointerDown(ctx, queryAt(-0.1, 0.1)) // snaps to the same corner
	if tool.Phase() != PhaseFirstPointSet {
		t.Errorf("identical second pick must not advance, got %v", tool.Phase())
	}
}

func TestDimensionCancelFromEveryPhase(t *testing.T) {
	settings := snap.DefaultSettings()
	ctx := rectangleScene()

	advance := map[string]func(*DimensionTool){
		"idle": func(tool *DimensionTool) {},
		"first point set": func(tool *DimensionTool) {
			tool.PointerDown(ctx, queryAt(0, 0))
		},
		"positioning": func(tool *DimensionTool) {
			tool.PointerDown(ctx, queryAt(0, 0))
			tool.PointerDown(ctx, queryAt(4, 0))
		},
	}

	for name, setup := range advance {
		tool := NewDimensionTool(&settings)
		tool.Activate()
		setup(tool)

		tool.Cancel()
		if tool.Phase() != PhaseIdle {
			t.Errorf("cancel from %s: expected idle, got %v", name, tool.Phase())
		}
		if len(tool.Dimensions) != 0 {
			t.Errorf("cancel from %s: no dimension may be committed", name)
		}
		tool.Deactivate()
	}
}

func TestDimensionCancelKeepsCommitted(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewDimensionTool(&settings)
	tool.Activate()
	ctx := rectangleScene()

	tool.PointerDown(ctx, queryAt(0, 0))
	tool.PointerDown(ctx, queryAt(4, 0))
	tool.PointerDown(ctx, queryAt(2, 1))
	if len(tool.Dimensions) != 1 {
		t.Fatalf("expected a committed dimension, got %d", len(tool.Dimensions))
	}

	tool.PointerDown(ctx, queryAt(0, 2))
	tool.Cancel()
	if len(tool.Dimensions) != 1 {
		t.Errorf("cancel discarded a committed dimension")
	}
	if tool.Phase() != PhaseIdle {
		t.Errorf("expected idle after cancel, got %v", tool.Phase())
	}
}

func TestDimensionSettingsSaveRestore(t *testing.T) {
	settings := snap.DefaultSettings()
	settings[snap.Quadrant] = false
	original := settings.Clone()

	tool := NewDimensionTool(&settings)
	tool.Activate()

	expected := snap.Settings{snap.Endpoint: true, snap.Midpoint: true}
	if !reflect.DeepEqual(settings, expected) {
		t.Errorf("active settings: expected %v, got %v", expected, settings)
	}

	// A second Activate must not clobber the saved copy.
	tool.Activate()

	tool.Deactivate()
	if !reflect.DeepEqual(settings, original) {
		t.Errorf("settings not restored: expected %v, got %v", original, settings)
	}

	// Deactivate without a matching Activate is harmless.
	tool.Deactivate()
	if !reflect.DeepEqual(settings, original) {
		t.Errorf("settings changed by idle deactivate: got %v", settings)
	}
}

func TestDimensionUnsnappedFallback(t *testing.T) {
	settings := snap.DefaultSettings()
	tool := NewDimensionTool(&settings)
	tool.Activate()

	// Empty scene: picks fall back to the raw query point.
	tool.PointerDown(snap.Context{}, queryAt(1, 1))
	if tool.Start() != geometry.NewVector3(1, 1, 0) {
		t.Errorf("fallback start: expected (1,1,0), got %v", tool.Start())
	}
}
