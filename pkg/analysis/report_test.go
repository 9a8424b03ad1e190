package analysis

import (
	"math"
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/mesh"
	"github.com/GokerOzenc93/yago/pkg/scene"
)

func TestAnalyzeCube(t *testing.T) {
	cube := scene.NewSolid(scene.SolidBox, mesh.Box(2, 2, 2))

	report := Analyze(cube)
	if report.VertexCount != 8 {
		t.Errorf("vertex count: expected 8, got %d", report.VertexCount)
	}
	if report.EdgeCount != 12 {
		t.Errorf("edge count: expected 12, got %d", report.EdgeCount)
	}
	if report.TriangleCount != 12 {
		t.Errorf("triangle count: expected 12, got %d", report.TriangleCount)
	}
	if math.Abs(report.SurfaceArea-24) > 1e-9 {
		t.Errorf("surface area: expected 24, got %v", report.SurfaceArea)
	}
	if report.Dimensions != geometry.NewVector3(2, 2, 2) {
		t.Errorf("dimensions: expected (2,2,2), got %v", report.Dimensions)
	}
	if report.MinEdgeLength != 2 || report.MaxEdgeLength != 2 {
		t.Errorf("edge lengths: expected all 2, got [%v, %v]", report.MinEdgeLength, report.MaxEdgeLength)
	}
}

func TestAnalyzeAppliesPose(t *testing.T) {
	cube := scene.NewSolid(scene.SolidBox, mesh.Box(2, 2, 2))
	cube.Pose.Scale = geometry.NewVector3(2, 2, 2)

	report := Analyze(cube)
	if math.Abs(report.SurfaceArea-96) > 1e-9 {
		t.Errorf("scaled surface area: expected 96, got %v", report.SurfaceArea)
	}
	if math.Abs(report.MaxEdgeLength-4) > 1e-9 {
		t.Errorf("scaled edge length: expected 4, got %v", report.MaxEdgeLength)
	}
}

func TestAnalyzeEmptySolid(t *testing.T) {
	report := Analyze(scene.NewSolid(scene.SolidImported, nil))
	if report.VertexCount != 0 || report.EdgeCount != 0 || report.SurfaceArea != 0 {
		t.Errorf("empty solid should yield zero report, got %+v", report)
	}
	if nilReport := Analyze(nil); nilReport.TriangleCount != 0 {
		t.Error("nil solid should yield zero report")
	}
}

func TestNearestVertex(t *testing.T) {
	cube := scene.NewSolid(scene.SolidBox, mesh.Box(2, 2, 2))

	vertex, dist, ok := NearestVertex(cube, geometry.NewVector3(1.1, 1.1, 1.1))
	if !ok {
		t.Fatal("expected a nearest vertex")
	}
	if vertex != geometry.NewVector3(1, 1, 1) {
		t.Errorf("nearest vertex: expected (1,1,1), got %v", vertex)
	}
	if math.Abs(dist-math.Sqrt(0.03)) > 1e-9 {
		t.Errorf("nearest distance: got %v", dist)
	}

	if _, _, ok := NearestVertex(nil, geometry.Vector3{}); ok {
		t.Error("nil solid must report no vertex")
	}
}
