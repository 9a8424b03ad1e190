package snap

import (
	"math"
	"testing"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/mesh"
	"github.com/GokerOzenc93/yago/pkg/scene"
)

// soupFrom expands an indexed buffer into a plain triangle soup, the
// form STL imports arrive in.
func soupFrom(b *mesh.Buffer) *mesh.Buffer {
	soup := &mesh.Buffer{}
	for t := 0; t < b.TriangleCount(); t++ {
		i0, i1, i2 := b.Triangle(t)
		for _, i := range []int{i0, i1, i2} {
			v := b.Vertex(i)
			soup.Positions = append(soup.Positions, float32(v.X), float32(v.Y), float32(v.Z))
		}
	}
	return soup
}

func TestVerticesCubeDedup(t *testing.T) {
	cube := scene.NewSolid(scene.SolidBox, mesh.Box(2, 2, 2))

	verts := Vertices(cube)
	if len(verts) != 8 {
		t.Errorf("cube vertices: expected 8 after dedup, got %d", len(verts))
	}
}

func TestVerticesCubeSoupDedup(t *testing.T) {
	// 12 triangles * 3 corners = 36 raw vertices; dedup must still find 8.
	cube := scene.NewSolid(scene.SolidImported, soupFrom(mesh.Box(2, 2, 2)))

	verts := Vertices(cube)
	if len(verts) != 8 {
		t.Errorf("soup cube vertices: expected 8 after dedup, got %d", len(verts))
	}
}

func TestVerticesAppliesPose(t *testing.T) {
	cube := scene.NewSolid(scene.SolidBox, mesh.Box(2, 2, 2))
	cube.Pose.Translation = geometry.NewVector3(10, 0, 0)
	cube.Pose.Scale = geometry.NewVector3(2, 1, 1)

	verts := Vertices(cube)
	if len(verts) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(verts))
	}

	bounds := geometry.NewBoundingBox()
	for _, v := range verts {
		bounds.Extend(v)
	}
	if bounds.Min.X != 8 || bounds.Max.X != 12 {
		t.Errorf("pose not applied: X range [%v, %v], expected [8, 12]", bounds.Min.X, bounds.Max.X)
	}
}

func TestEdgesCubeSuppressesDiagonals(t *testing.T) {
	cube := scene.NewSolid(scene.SolidBox, mesh.Box(2, 2, 2))

	edges := Edges(cube)
	if len(edges) != 12 {
		t.Errorf("cube edges: expected 12 feature edges (diagonals suppressed), got %d", len(edges))
	}

	// Every feature edge of a cube has length equal to the side.
	for i, e := range edges {
		if math.Abs(e.Length()-2) > 1e-9 {
			t.Errorf("edge %d has length %v, expected 2 (face diagonal leaked through?)", i, e.Length())
		}
	}
}

func TestEdgesCubeSoup(t *testing.T) {
	cube := scene.NewSolid(scene.SolidImported, soupFrom(mesh.Box(2, 2, 2)))

	edges := Edges(cube)
	if len(edges) != 12 {
		t.Errorf("soup cube edges: expected 12, got %d", len(edges))
	}
}

func TestMissingGeometry(t *testing.T) {
	empty := scene.NewSolid(scene.SolidImported, nil)

	if verts := Vertices(empty); verts != nil {
		t.Errorf("solid without mesh must yield no vertices, got %d", len(verts))
	}
	if edges := Edges(empty); edges != nil {
		t.Errorf("solid without mesh must yield no edges, got %d", len(edges))
	}
	if Vertices(nil) != nil || Edges(nil) != nil {
		t.Error("nil solid must yield nothing")
	}
}

func TestVerticesQuantizationMergesNearby(t *testing.T) {
	// Two vertices 0.004 apart land on the same 0.01 grid cell.
	buffer := &mesh.Buffer{Positions: []float32{
		1.000, 0, 0,
		1.004, 0, 0,
		5, 5, 5,
	}}
	s := scene.NewSolid(scene.SolidImported, buffer)

	verts := Vertices(s)
	if len(verts) != 2 {
		t.Errorf("expected nearby vertices to merge on the grid: got %d, want 2", len(verts))
	}
	// First occurrence wins.
	if len(verts) > 0 && verts[0].X != 1.0 {
		t.Errorf("first occurrence should be kept, got %v", verts[0])
	}
}
