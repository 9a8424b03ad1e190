package snap

import (
	"math"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/viewer"
)

// Metric selects how candidate distance is measured. The choice is
// explicit rather than inferred from whether a camera happens to be
// present, so callers always know which unit their tolerance is in.
type Metric int

const (
	// MetricWorld measures 3D Euclidean distance in model units.
	MetricWorld Metric = iota
	// MetricScreen measures pixel distance after camera projection.
	// Under perspective a fixed world tolerance is inconsistent (near
	// geometry looms large, far geometry shrinks); pixel tolerance picks
	// uniformly at any zoom.
	MetricScreen
)

// Resolver measures the distance between a candidate point and the query
// in the active metric. One resolver instance serves every generator in a
// query so all seven snap kinds share the same notion of "close enough".
type Resolver struct {
	Metric   Metric
	Camera   *viewer.Camera
	Viewport viewer.Viewport

	// Cursor, when set with the screen metric, is the raw pixel position
	// of the pointer. It replaces the projection of the query point, which
	// avoids double rounding through an unproject/project round trip.
	Cursor *geometry.Vector2
}

// Distance returns the distance from a world-space candidate point to the
// query point. With the screen metric, points behind the camera resolve
// to +Inf so they can never pass a tolerance check. Falls back to world
// distance when the screen metric is requested without a camera.
func (r Resolver) Distance(point, query geometry.Vector3) float64 {
	if r.Metric == MetricScreen && r.Camera != nil {
		projected, _, ok := r.Camera.Project(point, r.Viewport)
		if !ok {
			return math.Inf(1)
		}

		var queryPx geometry.Vector2
		if r.Cursor != nil {
			queryPx = *r.Cursor
		} else {
			q, _, qok := r.Camera.Project(query, r.Viewport)
			if !qok {
				return math.Inf(1)
			}
			queryPx = q
		}
		return projected.Distance(queryPx)
	}

	return point.Distance(query)
}
