// Package analysis computes summary statistics over solids for the info
// command and the measurement overlays.
package analysis

import (
	"fmt"
	"math"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// Report summarizes one solid. Vertex and edge counts are the
// deduplicated feature counts, not raw triangle-soup totals, so a cube
// reports 8 and 12 no matter how it was triangulated.
type Report struct {
	Bounds        geometry.BoundingBox
	Dimensions    geometry.Vector3
	VertexCount   int
	EdgeCount     int
	TriangleCount int
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze computes the full report for a solid. A solid without mesh
// data yields a zero report.
func Analyze(solid *scene.Solid) Report {
	if solid == nil || solid.Mesh.IsEmpty() {
		return Report{}
	}

	report := Report{
		Bounds:        solid.WorldBounds(),
		VertexCount:   len(snap.Vertices(solid)),
		TriangleCount: solid.Mesh.TriangleCount(),
		SurfaceArea:   surfaceArea(solid),
	}
	report.Dimensions = report.Bounds.Size()

	edges := snap.Edges(solid)
	report.EdgeCount = len(edges)
	if len(edges) > 0 {
		min := math.MaxFloat64
		max := 0.0
		total := 0.0
		for _, e := range edges {
			l := e.Length()
			total += l
			min = math.Min(min, l)
			max = math.Max(max, l)
		}
		report.MinEdgeLength = min
		report.MaxEdgeLength = max
		report.AvgEdgeLength = total / float64(len(edges))
	}

	return report
}

// surfaceArea sums the posed triangle areas of the solid's mesh
func surfaceArea(solid *scene.Solid) float64 {
	area := 0.0
	for t := 0; t < solid.Mesh.TriangleCount(); t++ {
		i0, i1, i2 := solid.Mesh.Triangle(t)
		a := solid.Pose.Apply(solid.Mesh.Vertex(i0))
		b := solid.Pose.Apply(solid.Mesh.Vertex(i1))
		c := solid.Pose.Apply(solid.Mesh.Vertex(i2))
		area += b.Sub(a).Cross(c.Sub(a)).Length() / 2
	}
	return area
}

// NearestVertex returns the deduplicated vertex of the solid closest to
// a point, with its distance. ok is false for solids without geometry.
func NearestVertex(solid *scene.Solid, point geometry.Vector3) (geometry.Vector3, float64, bool) {
	best := geometry.Vector3{}
	bestDist := math.MaxFloat64
	found := false
	for _, v := range snap.Vertices(solid) {
		if d := point.Distance(v); d < bestDist {
			best, bestDist = v, d
			found = true
		}
	}
	return best, bestDist, found
}

// FormatLength formats a length value with a unit suffix
func FormatLength(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.4f %s", value, unit)
}

// FormatVector formats a vector for report output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
