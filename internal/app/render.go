package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GokerOzenc93/yago/internal/overlay"
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// meshToRaylib expands a mesh buffer into a raylib mesh with per-face
// normals and baked diffuse shading, and uploads it to the GPU
func meshToRaylib(solid *scene.Solid) rl.Mesh {
	triangleCount := solid.Mesh.TriangleCount()
	vertexCount := triangleCount * 3

	m := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for t := 0; t < triangleCount; t++ {
		i0, i1, i2 := solid.Mesh.Triangle(t)
		a := solid.Pose.Apply(solid.Mesh.Vertex(i0))
		b := solid.Pose.Apply(solid.Mesh.Vertex(i1))
		c := solid.Pose.Apply(solid.Mesh.Vertex(i2))

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Length() > 1e-12 {
			normal = normal.Normalize()
		}

		intensity := math.Max(0.3, -normal.Dot(lightDir))
		r := uint8(200 * intensity * 0.5)
		g := uint8(200 * intensity * 0.6)
		bl := uint8(200 * intensity)

		for _, v := range []geometry.Vector3{a, b, c} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = r
			colors[idx*4+1] = g
			colors[idx*4+2] = bl
			colors[idx*4+3] = 255
			idx++
		}
	}

	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
		m.Normals = &normals[0]
		m.Colors = &colors[0]
	}

	rl.UploadMesh(&m, false)
	return m
}

// refreshModelMesh replaces the GPU mesh for the imported solid
func (app *App) refreshModelMesh(solid *scene.Solid) {
	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.mesh)
		app.Model.hasMesh = false
	}
	if solid == nil || solid.Mesh.IsEmpty() {
		return
	}
	app.Model.mesh = meshToRaylib(solid)
	app.Model.hasMesh = true
}

// drawScene draws everything inside the 3D mode block
func (app *App) drawScene() {
	if app.View.showFilled && app.Model.hasMesh {
		rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
	}

	if app.View.showWireframe {
		for _, solid := range app.Scene.solids {
			for _, edge := range snap.Edges(solid) {
				rl.DrawLine3D(toRl(edge.Start), toRl(edge.End), rl.NewColor(220, 220, 220, 255))
			}
		}
	}

	shapeColor := rl.NewColor(120, 180, 255, 255)
	for _, shape := range app.Scene.shapes {
		for _, seg := range shape.Segments() {
			rl.DrawLine3D(toRl(seg.Start), toRl(seg.End), shapeColor)
		}
		if shape.Kind == scene.ShapeCircle {
			drawCircle3D(shape.Center, shape.Radius, shapeColor)
		}
	}
}

// drawOverlays draws tools, measurements and the hover marker in 2D
// screen space, after 3D mode ends
func (app *App) drawOverlays() {
	if !app.View.showOverlays {
		return
	}
	camera := app.Camera.rlCamera

	for _, dim := range app.Tools.dimension.Dimensions {
		overlay.DrawDimension(dim, camera, app.font)
	}
	for _, rm := range app.Tools.radius.Measurements {
		overlay.DrawRadius(rm, camera, app.font)
	}

	if app.Tools.active == ToolDimension {
		overlay.DrawDimensionPreview(app.Tools.dimension, camera)
	}
	if app.Tools.active == ToolRadius {
		for _, p := range app.Tools.radius.PickedPoints() {
			overlay.DrawSnapMarker(snap.Candidate{Point: p, Kind: snap.Nearest}, camera)
		}
	}

	if app.Tools.hover != nil {
		overlay.DrawSnapMarker(*app.Tools.hover, camera)
	}

	app.drawStatusBar()
}

// drawStatusBar shows the active tool and its pick phase
func (app *App) drawStatusBar() {
	text := "[d] dimension  [r] radius  [esc] cancel  [w] wireframe  [f] filled"
	switch app.Tools.active {
	case ToolDimension:
		text = "dimension: " + app.Tools.dimension.Phase().String() + "  (esc cancels)"
	case ToolRadius:
		text = fmt.Sprintf("radius: pick arc points (%d/3)  (esc cancels)", len(app.Tools.radius.PickedPoints()))
	}
	rl.DrawTextEx(app.font, text, rl.Vector2{X: 12, Y: float32(rl.GetScreenHeight()) - 28}, 16, 1, rl.LightGray)
}

func drawCircle3D(center geometry.Vector3, radius float64, col rl.Color) {
	const segments = 64
	for i := 0; i < segments; i++ {
		a1 := float64(i) * 2 * math.Pi / segments
		a2 := float64(i+1) * 2 * math.Pi / segments
		p1 := geometry.NewVector3(center.X+radius*math.Cos(a1), center.Y+radius*math.Sin(a1), center.Z)
		p2 := geometry.NewVector3(center.X+radius*math.Cos(a2), center.Y+radius*math.Sin(a2), center.Z)
		rl.DrawLine3D(toRl(p1), toRl(p2), col)
	}
}

func toRl(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
