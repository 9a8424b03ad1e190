// Package stl reads STL files into mesh buffers so external models can be
// placed as solids.
package stl

import (
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/mesh"
)

// Model is a parsed STL file: the solid name from the file plus its
// triangle soup as a mesh buffer.
type Model struct {
	Name string
	Mesh *mesh.Buffer
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return m.Mesh.TriangleCount()
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	return m.Mesh.Bounds()
}
