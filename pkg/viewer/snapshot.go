package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// Snapshot renders the scene offscreen: depth-shaded solid faces with
// feature edges on top, shapes as outlines. Used for headless exports
// where no window exists.
func Snapshot(shapes []*scene.Shape, solids []*scene.Solid, camera *Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	viewport := NewViewport(float64(width), float64(height))

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	for _, solid := range solids {
		drawSolidFaces(img, zbuffer, solid, camera, viewport)
	}
	for _, solid := range solids {
		for _, edge := range snap.Edges(solid) {
			drawWorldLine(img, edge.Start, edge.End, camera, viewport, color.RGBA{230, 230, 230, 255})
		}
	}
	for _, shape := range shapes {
		for _, seg := range shape.Segments() {
			drawWorldLine(img, seg.Start, seg.End, camera, viewport, color.RGBA{120, 180, 255, 255})
		}
	}

	return img
}

// drawSolidFaces fills the posed triangles of a solid with a simple
// depth-based shade
func drawSolidFaces(img *image.RGBA, zbuffer []float64, solid *scene.Solid, camera *Camera, viewport Viewport) {
	if solid.Mesh.IsEmpty() {
		return
	}

	for t := 0; t < solid.Mesh.TriangleCount(); t++ {
		i0, i1, i2 := solid.Mesh.Triangle(t)
		p1, z1, ok1 := camera.Project(solid.Pose.Apply(solid.Mesh.Vertex(i0)), viewport)
		p2, z2, ok2 := camera.Project(solid.Pose.Apply(solid.Mesh.Vertex(i1)), viewport)
		p3, z3, ok3 := camera.Project(solid.Pose.Apply(solid.Mesh.Vertex(i2)), viewport)
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		avgZ := (z1 + z2 + z3) / 3
		shade := uint8(math.Max(40, math.Min(200, 220-avgZ*4)))
		fillTriangleDepth(img, zbuffer,
			p1.X, p1.Y, z1, p2.X, p2.Y, z2, p3.X, p3.Y, z3,
			color.RGBA{shade, shade, shade, 255})
	}
}

func drawWorldLine(img *image.RGBA, start, end geometry.Vector3, camera *Camera, viewport Viewport, col color.RGBA) {
	p1, _, ok1 := camera.Project(start, viewport)
	p2, _, ok2 := camera.Project(end, viewport)
	if !ok1 || !ok2 {
		return
	}
	drawLine(img, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), col)
}

// fillTriangleDepth fills a screen-space triangle with scanlines and a
// z-buffer test
func fillTriangleDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	v := [3][3]float64{{x1, y1, z1}, {x2, y2, z2}, {x3, y3, z3}}
	if v[0][1] > v[1][1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1][1] > v[2][1] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0][1] > v[1][1] {
		v[0], v[1] = v[1], v[0]
	}

	bounds := img.Bounds()
	width := bounds.Max.X

	for y := int(math.Max(0, v[0][1])); y <= int(math.Min(float64(bounds.Max.Y-1), v[2][1])); y++ {
		fy := float64(y)

		type hit struct{ x, z float64 }
		var hits []hit
		edges := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
		for _, e := range edges {
			a, b := v[e[0]], v[e[1]]
			if a[1] == b[1] || fy < a[1] || fy > b[1] {
				continue
			}
			t := (fy - a[1]) / (b[1] - a[1])
			hits = append(hits, hit{a[0] + t*(b[0]-a[0]), a[2] + t*(b[2]-a[2])})
		}
		if len(hits) < 2 {
			continue
		}

		left, right := hits[0], hits[1]
		if left.x > right.x {
			left, right = right, left
		}
		xStart := int(math.Max(0, left.x))
		xEnd := int(math.Min(float64(bounds.Max.X-1), right.x))
		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if right.x != left.x {
				t = (float64(x) - left.x) / (right.x - left.x)
			}
			z := left.z + t*(right.z-left.z)
			idx := y*width + x
			if idx >= 0 && idx < len(zbuffer) && z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a clipped line with Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
