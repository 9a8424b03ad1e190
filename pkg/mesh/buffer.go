// Package mesh provides the triangle buffer type backing placed solids,
// plus primitive generators for the built-in solid kinds.
package mesh

import "github.com/GokerOzenc93/yago/pkg/geometry"

// Buffer is a triangle mesh in local (unposed) coordinates.
// Positions is flat with 3 floats per vertex (x,y,z). Indices is optional:
// when present it holds 3 vertex indices per triangle; when empty the
// positions form a triangle soup, 3 consecutive vertices per triangle.
type Buffer struct {
	Positions []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Indices   []uint32  // [i0,i1,i2, ...] triangles, optional
}

// VertexCount returns the number of vertices
func (b *Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles
func (b *Buffer) TriangleCount() int {
	if len(b.Indices) > 0 {
		return len(b.Indices) / 3
	}
	return b.VertexCount() / 3
}

// IsEmpty returns true if the buffer has no usable geometry
func (b *Buffer) IsEmpty() bool {
	return b == nil || len(b.Positions) == 0
}

// Vertex returns vertex i as a Vector3 in local coordinates
func (b *Buffer) Vertex(i int) geometry.Vector3 {
	return geometry.Vector3{
		X: float64(b.Positions[i*3]),
		Y: float64(b.Positions[i*3+1]),
		Z: float64(b.Positions[i*3+2]),
	}
}

// Triangle returns the vertex indices of triangle i, resolving the index
// buffer when present.
func (b *Buffer) Triangle(i int) (int, int, int) {
	if len(b.Indices) > 0 {
		return int(b.Indices[i*3]), int(b.Indices[i*3+1]), int(b.Indices[i*3+2])
	}
	return i * 3, i*3 + 1, i*3 + 2
}

// Bounds returns the axis-aligned bounding box of the buffer
func (b *Buffer) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := 0; i < b.VertexCount(); i++ {
		bbox.Extend(b.Vertex(i))
	}
	return bbox
}
