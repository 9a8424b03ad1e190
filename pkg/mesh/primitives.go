package mesh

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// roundedBoxCells controls marching cubes tessellation resolution for
// SDF-generated solids. Kept moderate: the result feeds interactive
// snapping, not manufacturing output.
const roundedBoxCells = 60

// Box builds an axis-aligned box centered at the origin with the given
// dimensions. The mesh is indexed: 8 corner vertices shared by 12
// triangles, two per face.
func Box(x, y, z float64) *Buffer {
	hx := float32(x / 2)
	hy := float32(y / 2)
	hz := float32(z / 2)

	positions := []float32{
		-hx, -hy, -hz, // 0
		hx, -hy, -hz, // 1
		hx, hy, -hz, // 2
		-hx, hy, -hz, // 3
		-hx, -hy, hz, // 4
		hx, -hy, hz, // 5
		hx, hy, hz, // 6
		-hx, hy, hz, // 7
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // -Z
		4, 5, 6, 4, 6, 7, // +Z
		0, 1, 5, 0, 5, 4, // -Y
		3, 7, 6, 3, 6, 2, // +Y
		0, 4, 7, 0, 7, 3, // -X
		1, 2, 6, 1, 6, 5, // +X
	}

	return &Buffer{Positions: positions, Indices: indices}
}

// Cylinder builds a cylinder of the given height and radius centered at
// the origin, with its axis along Z. segments controls the tessellation
// of the curved surface; values below 3 are clamped to 3.
func Cylinder(height, radius float64, segments int) *Buffer {
	if segments < 3 {
		segments = 3
	}

	hz := float32(height / 2)
	n := segments

	// Ring vertices: bottom ring [0..n), top ring [n..2n), then the two
	// cap centers.
	positions := make([]float32, 0, (2*n+2)*3)
	for _, z := range []float32{-hz, hz} {
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			positions = append(positions,
				float32(radius*math.Cos(angle)),
				float32(radius*math.Sin(angle)),
				z,
			)
		}
	}
	bottomCenter := uint32(2 * n)
	topCenter := uint32(2*n + 1)
	positions = append(positions, 0, 0, -hz, 0, 0, hz)

	indices := make([]uint32, 0, n*12)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b0, b1 := uint32(i), uint32(j)
		t0, t1 := uint32(n+i), uint32(n+j)

		// Side quad
		indices = append(indices, b0, b1, t1, b0, t1, t0)
		// Caps
		indices = append(indices, bottomCenter, b1, b0)
		indices = append(indices, topCenter, t0, t1)
	}

	return &Buffer{Positions: positions, Indices: indices}
}

// RoundedBox builds a box with filleted edges by meshing a signed
// distance field with marching cubes. Unlike Box, the result is a
// triangle soup without an index buffer.
func RoundedBox(x, y, z, round float64) (*Buffer, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, round)
	if err != nil {
		return nil, fmt.Errorf("sdf box: %w", err)
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(roundedBoxCells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("marching cubes produced no triangles")
	}

	positions := make([]float32, 0, len(triangles)*9)
	for _, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			positions = append(positions, float32(v.X), float32(v.Y), float32(v.Z))
		}
	}

	return &Buffer{Positions: positions}, nil
}
