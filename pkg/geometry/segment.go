package geometry

import "math"

// degenerateEpsilon guards divisions in segment math. Segments shorter
// than this and intersection denominators below this are treated as
// degenerate and produce no result.
const degenerateEpsilon = 1e-10

// Segment represents a straight line segment between two points
type Segment struct {
	Start Vector3
	End   Vector3
}

// NewSegment creates a new segment
func NewSegment(start, end Vector3) Segment {
	return Segment{Start: start, End: end}
}

// Direction returns the un-normalized direction vector from start to end
func (s Segment) Direction() Vector3 {
	return s.End.Sub(s.Start)
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the point halfway along the segment
func (s Segment) Midpoint() Vector3 {
	return s.Start.Midpoint(s.End)
}

// ClosestPoint returns the point on the segment closest to p.
// The query point is projected onto the infinite line and the parametric
// value is clamped to [0,1]. A zero-length segment returns its start point.
func (s Segment) ClosestPoint(p Vector3) Vector3 {
	dir := s.Direction()
	lenSq := dir.Dot(dir)
	if lenSq < degenerateEpsilon {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(dir) / lenSq
	t = math.Max(0, math.Min(1, t))
	return s.Start.Add(dir.Mul(t))
}

// IntersectXY computes the intersection of two segments projected onto the
// XY drawing plane using the standard determinant formula. It returns false
// when the segments are parallel or degenerate (denominator below epsilon)
// or when the intersection falls outside either segment (t or u not in [0,1]).
// The Z coordinate of the result is interpolated along segment a.
func IntersectXY(a, b Segment) (Vector3, bool) {
	x1, y1 := a.Start.X, a.Start.Y
	x2, y2 := a.End.X, a.End.Y
	x3, y3 := b.Start.X, b.Start.Y
	x4, y4 := b.End.X, b.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < degenerateEpsilon {
		return Vector3{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vector3{}, false
	}

	return a.Start.Lerp(a.End, t), true
}
