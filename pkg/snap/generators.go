package snap

import (
	"math"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
)

// perpendicularDot is the |cos| threshold below which a segment counts as
// perpendicular to the active drawing direction, about cos(84°).
const perpendicularDot = 0.1

// taggedSegment is a segment annotated with its originating shape or
// solid id.
type taggedSegment struct {
	seg     geometry.Segment
	shapeID string
}

// collector runs the candidate generators for one query and accumulates
// accepted candidates. Each generator is a pure function of the context
// snapshot; the collector only exists to share the segment list and the
// resolver between them.
type collector struct {
	ctx      Context
	q        Query
	resolver Resolver
	segments []taggedSegment
	out      []Candidate
}

// gatherSegments derives the transient edge set for this query: every
// consecutive point pair of every shape plus every feature edge of every
// solid. Edges are recomputed per query, never stored.
func (c *collector) gatherSegments() {
	for _, shape := range c.ctx.Shapes {
		for _, seg := range shape.Segments() {
			c.segments = append(c.segments, taggedSegment{seg: seg, shapeID: shape.ID})
		}
	}
	for _, solid := range c.ctx.Solids {
		for _, seg := range Edges(solid) {
			c.segments = append(c.segments, taggedSegment{seg: seg, shapeID: solid.ID})
		}
	}
}

// add files a raw point as a candidate if it is finite and within
// tolerance in the active metric.
func (c *collector) add(point geometry.Vector3, kind Kind, shapeID string) {
	if !point.IsFinite() {
		return
	}
	d := c.resolver.Distance(point, c.q.Point)
	if math.IsNaN(d) || d > c.q.Tolerance {
		return
	}
	c.out = append(c.out, Candidate{
		Point:    point,
		Kind:     kind,
		ShapeID:  shapeID,
		Distance: d,
	})
}

// endpoints yields one candidate per deduplicated solid vertex and one
// per distinct shape corner.
func (c *collector) endpoints() {
	for _, shape := range c.ctx.Shapes {
		for _, corner := range shape.Corners() {
			c.add(corner, Endpoint, shape.ID)
		}
	}
	for _, solid := range c.ctx.Solids {
		for _, vertex := range Vertices(solid) {
			c.add(vertex, Endpoint, solid.ID)
		}
	}
}

// midpoints yields the midpoint of every gathered segment.
func (c *collector) midpoints() {
	for _, ts := range c.segments {
		c.add(ts.seg.Midpoint(), Midpoint, ts.shapeID)
	}
}

// centers yields the pose translation of every solid, the stored center
// of circles and the diagonal midpoint of rectangles.
func (c *collector) centers() {
	for _, shape := range c.ctx.Shapes {
		if center, ok := shape.CenterPoint(); ok {
			c.add(center, Center, shape.ID)
		}
	}
	for _, solid := range c.ctx.Solids {
		c.add(solid.Center(), Center, solid.ID)
	}
}

// quadrants yields the four cardinal extremes of every circle shape.
func (c *collector) quadrants() {
	for _, shape := range c.ctx.Shapes {
		if shape.Kind != scene.ShapeCircle {
			continue
		}
		for _, point := range geometry.QuadrantPoints(shape.Center, shape.Radius) {
			c.add(point, Quadrant, shape.ID)
		}
	}
}

// perpendicular yields, for every segment nearly perpendicular to the
// active drawing direction, the closest point on that segment to the
// query. Gated on Query.Direction by the caller.
func (c *collector) perpendicular() {
	dir := c.q.Direction.Normalize()
	if dir.Length() == 0 {
		return
	}
	for _, ts := range c.segments {
		segDir := ts.seg.Direction()
		if segDir.Length() < 1e-10 {
			continue
		}
		if math.Abs(dir.Dot(segDir.Normalize())) > perpendicularDot {
			continue
		}
		c.add(ts.seg.ClosestPoint(c.q.Point), Perpendicular, ts.shapeID)
	}
}

// intersections yields the crossing point of every segment pair that
// intersects within both segments' bounds in the drawing plane. This is
// the full pairwise search across shape segments and solid edges.
func (c *collector) intersections() {
	for i := 0; i < len(c.segments); i++ {
		for j := i + 1; j < len(c.segments); j++ {
			if point, ok := geometry.IntersectXY(c.segments[i].seg, c.segments[j].seg); ok {
				c.add(point, Intersection, c.segments[i].shapeID)
			}
		}
	}
}

// nearest yields the closest point on every segment to the query point.
func (c *collector) nearest() {
	for _, ts := range c.segments {
		c.add(ts.seg.ClosestPoint(c.q.Point), Nearest, ts.shapeID)
	}
}
