package snap

import (
	"sort"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/viewer"
)

// Context is the snapshot of scene state a query runs against. It is
// passed by reference from the owning application layer and never
// mutated here.
type Context struct {
	Shapes []*scene.Shape
	Solids []*scene.Solid
}

// Query describes one snap resolution request.
type Query struct {
	// Point is the query position in world space, typically the cursor
	// unprojected onto the drawing plane.
	Point geometry.Vector3

	// Tolerance is the maximum accepted candidate distance, in pixels for
	// MetricScreen and model units for MetricWorld.
	Tolerance float64

	// Settings gates generators per snap kind.
	Settings Settings

	// Metric selects the distance measure. MetricScreen requires Camera;
	// without one the resolver falls back to world distance.
	Metric   Metric
	Camera   *viewer.Camera
	Viewport viewer.Viewport

	// Cursor is the raw pixel position of the pointer, used as the query
	// side of screen-metric distances when set.
	Cursor *geometry.Vector2

	// Direction is the directed first leg of the active drawing tool.
	// The Perpendicular generator only runs when it is set.
	Direction *geometry.Vector3
}

// Resolve runs every enabled generator over the context, filters by
// tolerance, and returns all candidates sorted ascending by distance.
// The list may be empty. Consuming tools typically take the first
// element; the full list supports cycling through overlapping snaps.
//
// Resolve is total: missing meshes, degenerate segments and non-finite
// intermediate results reduce the candidate set instead of failing.
// Everything is recomputed from the context on every call.
func Resolve(ctx Context, q Query) []Candidate {
	c := &collector{
		ctx: ctx,
		q:   q,
		resolver: Resolver{
			Metric:   q.Metric,
			Camera:   q.Camera,
			Viewport: q.Viewport,
			Cursor:   q.Cursor,
		},
	}
	c.gatherSegments()

	if q.Settings.Enabled(Endpoint) {
		c.endpoints()
	}
	if q.Settings.Enabled(Midpoint) {
		c.midpoints()
	}
	if q.Settings.Enabled(Center) {
		c.centers()
	}
	if q.Settings.Enabled(Quadrant) {
		c.quadrants()
	}
	if q.Settings.Enabled(Perpendicular) && q.Direction != nil {
		c.perpendicular()
	}
	if q.Settings.Enabled(Intersection) {
		c.intersections()
	}
	if q.Settings.Enabled(Nearest) {
		c.nearest()
	}

	sort.SliceStable(c.out, func(i, j int) bool {
		return c.out[i].Distance < c.out[j].Distance
	})
	return c.out
}
