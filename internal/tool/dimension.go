package tool

import (
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// Dimension is a committed linear measurement between two picked points.
// Offset is where the dimension line was placed, projected so it stays
// level with the start point along the measured direction.
type Dimension struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Offset geometry.Vector3
	Length float64
}

// DimensionTool measures the distance between two snapped points.
// Pick sequence: start point, end point, then a third click places the
// dimension line. Escape cancels the pick in progress at any phase.
type DimensionTool struct {
	phase   Phase
	start   geometry.Vector3
	end     geometry.Vector3
	preview geometry.Vector3

	settings *snap.Settings
	saved    snap.Settings

	// Dimensions accumulates committed measurements in pick order
	Dimensions []Dimension
}

// NewDimensionTool creates a tool operating on the shared snap settings
func NewDimensionTool(settings *snap.Settings) *DimensionTool {
	return &DimensionTool{settings: settings}
}

// Phase returns the current pick phase
func (t *DimensionTool) Phase() Phase {
	return t.phase
}

// Start returns the recorded start point, meaningful outside PhaseIdle
func (t *DimensionTool) Start() geometry.Vector3 {
	return t.start
}

// End returns the recorded end point, meaningful in PhasePositioning
func (t *DimensionTool) End() geometry.Vector3 {
	return t.end
}

// Preview returns the live offset position while positioning
func (t *DimensionTool) Preview() geometry.Vector3 {
	return t.preview
}

// Activate saves the shared snap settings and narrows them to the kinds
// that make sense for dimension picks. Calling Activate twice without a
// Deactivate is a no-op so the saved copy is never overwritten with an
// already-narrowed one.
func (t *DimensionTool) Activate() {
	if t.saved != nil {
		return
	}
	t.saved = t.settings.Clone()
	narrowed := make(snap.Settings, 2)
	narrowed[snap.Endpoint] = true
	narrowed[snap.Midpoint] = true
	*t.settings = narrowed
}

// Deactivate cancels any pick in progress and restores the snap
// settings exactly as they were before Activate.
func (t *DimensionTool) Deactivate() {
	t.Cancel()
	if t.saved != nil {
		*t.settings = t.saved
		t.saved = nil
	}
}

// Cancel discards the pick in progress and returns to PhaseIdle.
// Committed dimensions are kept.
func (t *DimensionTool) Cancel() {
	t.phase = PhaseIdle
	t.start = geometry.Vector3{}
	t.end = geometry.Vector3{}
	t.preview = geometry.Vector3{}
}

// PointerDown advances the pick sequence. The query's settings are
// replaced with the tool's active ones; in the positioning phase the
// click commits at the current preview position without snapping.
func (t *DimensionTool) PointerDown(ctx snap.Context, q snap.Query) {
	switch t.phase {
	case PhaseIdle:
		q.Settings = *t.settings
		t.start, _ = pick(ctx, q)
		t.preview = t.start
		t.phase = PhaseFirstPointSet

	case PhaseFirstPointSet:
		q.Settings = *t.settings
		point, _ := pick(ctx, q)
		if point.Distance(t.start) < 1e-9 {
			return
		}
		t.end = point
		t.preview = t.end
		t.phase = PhasePositioning

	case PhasePositioning:
		t.Dimensions = append(t.Dimensions, Dimension{
			Start:  t.start,
			End:    t.end,
			Offset: t.preview,
			Length: t.start.Distance(t.end),
		})
		t.Cancel()
	}
}

// PointerMove updates the live preview. While waiting for the end point
// it tracks the snapped hover position; while positioning it slides the
// dimension offset perpendicular to the measured direction.
func (t *DimensionTool) PointerMove(ctx snap.Context, q snap.Query) {
	switch t.phase {
	case PhaseFirstPointSet:
		q.Settings = *t.settings
		t.preview, _ = pick(ctx, q)

	case PhasePositioning:
		t.preview = t.offsetPosition(q.Point)
	}
}

// offsetPosition drops the component of the pointer position along the
// measured direction, so the dimension line stays parallel to the
// measured segment no matter where the pointer wanders.
func (t *DimensionTool) offsetPosition(p geometry.Vector3) geometry.Vector3 {
	dir := t.end.Sub(t.start)
	if dir.Length() < 1e-10 {
		return p
	}
	dir = dir.Normalize()
	along := p.Sub(t.start).Dot(dir)
	return p.Sub(dir.Mul(along))
}
