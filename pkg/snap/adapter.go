package snap

import (
	"math"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
)

// Vertex positions are deduplicated on a fixed decimal grid so shared
// mesh corners produce one candidate instead of one per triangle corner.
// Two decimal places in model units.
const dedupGridScale = 100.0

// coplanarDot is the |dot| threshold above which two face normals count
// as parallel. Edges shared only by coplanar triangles are triangulation
// artifacts (quad diagonals), not snappable feature edges.
const coplanarDot = 1.0 - 1e-6

type gridKey [3]int64

func quantize(p geometry.Vector3) gridKey {
	return gridKey{
		int64(math.Round(p.X * dedupGridScale)),
		int64(math.Round(p.Y * dedupGridScale)),
		int64(math.Round(p.Z * dedupGridScale)),
	}
}

// Vertices extracts the world-space vertices of a solid, deduplicated on
// the fixed grid with first-occurrence order preserved. A solid without a
// usable position buffer yields nil; that is never an error.
func Vertices(s *scene.Solid) []geometry.Vector3 {
	if s == nil || s.Mesh.IsEmpty() {
		return nil
	}

	seen := make(map[gridKey]struct{}, s.Mesh.VertexCount())
	var out []geometry.Vector3
	for i := 0; i < s.Mesh.VertexCount(); i++ {
		world := s.Pose.Apply(s.Mesh.Vertex(i))
		key := quantize(world)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, world)
	}
	return out
}

// edgeRecord tracks one unique undirected mesh edge while scanning
// triangles.
type edgeRecord struct {
	a, b   int              // canonical local vertex ids, a < b
	count  int              // number of adjacent triangles
	normal geometry.Vector3 // normal of the first adjacent triangle
	crease bool             // true once a non-parallel adjacent normal shows up
}

// Edges extracts the feature edges of a solid as world-space segments:
// boundary edges, crease edges between non-coplanar faces, and therefore
// all silhouette, vertical and internal 3D corner edges. Diagonals that
// only split a flat face into triangles are suppressed, so a triangulated
// cube yields its 12 true edges. A solid without a usable position buffer
// yields nil.
func Edges(s *scene.Solid) []geometry.Segment {
	if s == nil || s.Mesh.IsEmpty() {
		return nil
	}

	// Weld vertices on the dedup grid in local space so triangle soups
	// and indexed meshes produce the same adjacency.
	ids := make(map[gridKey]int)
	var welded []geometry.Vector3
	weld := func(v geometry.Vector3) int {
		key := quantize(v)
		if id, ok := ids[key]; ok {
			return id
		}
		id := len(welded)
		ids[key] = id
		welded = append(welded, v)
		return id
	}

	var order []gridKey2 // first-seen edge order for deterministic output
	records := make(map[gridKey2]*edgeRecord)

	for t := 0; t < s.Mesh.TriangleCount(); t++ {
		i0, i1, i2 := s.Mesh.Triangle(t)
		v0 := s.Mesh.Vertex(i0)
		v1 := s.Mesh.Vertex(i1)
		v2 := s.Mesh.Vertex(i2)

		a, b, c := weld(v0), weld(v1), weld(v2)
		if a == b || b == c || a == c {
			continue // degenerate triangle
		}

		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		for _, pair := range [3][2]int{{a, b}, {b, c}, {c, a}} {
			lo, hi := pair[0], pair[1]
			if lo > hi {
				lo, hi = hi, lo
			}
			key := gridKey2{lo, hi}
			rec, ok := records[key]
			if !ok {
				records[key] = &edgeRecord{a: lo, b: hi, count: 1, normal: normal}
				order = append(order, key)
				continue
			}
			rec.count++
			if math.Abs(rec.normal.Dot(normal)) < coplanarDot {
				rec.crease = true
			}
		}
	}

	var out []geometry.Segment
	for _, key := range order {
		rec := records[key]
		// Boundary edges (one adjacent face) and creases are features;
		// edges interior to a flat face are not.
		if rec.count >= 2 && !rec.crease {
			continue
		}
		out = append(out, geometry.NewSegment(
			s.Pose.Apply(welded[rec.a]),
			s.Pose.Apply(welded[rec.b]),
		))
	}
	return out
}

type gridKey2 [2]int
