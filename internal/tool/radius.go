package tool

import (
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// radiusPickCount is how many arc points a radius measurement needs
const radiusPickCount = 3

// RadiusMeasurement is a committed circle fit through picked arc points.
// StdDev is the standard deviation of the radial residuals; a large
// value means the picks were not actually on one circle.
type RadiusMeasurement struct {
	Points []geometry.Vector3
	Center geometry.Vector3
	Radius float64
	StdDev float64
}

// RadiusTool fits a circle through three snapped picks on an arc.
// The fit runs in the drawing plane; picks that leave the fit
// degenerate (collinear points) are discarded as a group.
type RadiusTool struct {
	points []geometry.Vector3

	settings *snap.Settings
	saved    snap.Settings

	// Measurements accumulates committed fits in pick order
	Measurements []RadiusMeasurement
}

// NewRadiusTool creates a tool operating on the shared snap settings
func NewRadiusTool(settings *snap.Settings) *RadiusTool {
	return &RadiusTool{settings: settings}
}

// PickedPoints returns the arc points collected so far
func (t *RadiusTool) PickedPoints() []geometry.Vector3 {
	return t.points
}

// Activate saves the shared snap settings and narrows them to kinds
// that land on curved geometry
func (t *RadiusTool) Activate() {
	if t.saved != nil {
		return
	}
	t.saved = t.settings.Clone()
	narrowed := make(snap.Settings, 3)
	narrowed[snap.Endpoint] = true
	narrowed[snap.Quadrant] = true
	narrowed[snap.Nearest] = true
	*t.settings = narrowed
}

// Deactivate discards collected picks and restores the snap settings
// exactly as they were before Activate
func (t *RadiusTool) Deactivate() {
	t.Cancel()
	if t.saved != nil {
		*t.settings = t.saved
		t.saved = nil
	}
}

// Cancel discards the picks collected so far, keeping committed
// measurements
func (t *RadiusTool) Cancel() {
	t.points = nil
}

// PointerDown adds a snapped pick. The third pick runs the circle fit
// and commits a measurement; a degenerate pick set is discarded so the
// tool never gets stuck.
func (t *RadiusTool) PointerDown(ctx snap.Context, q snap.Query) {
	q.Settings = *t.settings
	point, _ := pick(ctx, q)

	for _, existing := range t.points {
		if existing.Distance(point) < 1e-9 {
			return
		}
	}
	t.points = append(t.points, point)
	if len(t.points) < radiusPickCount {
		return
	}

	fit, err := geometry.FitCircleXY(t.points)
	if err != nil {
		t.points = nil
		return
	}
	t.Measurements = append(t.Measurements, RadiusMeasurement{
		Points: t.points,
		Center: fit.Center,
		Radius: fit.Radius,
		StdDev: fit.StdDev,
	})
	t.points = nil
}
