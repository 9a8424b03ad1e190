package app

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GokerOzenc93/yago/internal/tool"
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/mesh"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// Run opens the interactive viewer on the given file. Pass an empty
// path to start with an empty scene.
func Run(sourceFile string) {
	app := &App{
		View: ViewSettings{
			showFilled:    true,
			showWireframe: true,
			showOverlays:  true,
		},
	}
	app.Tools.settings = snap.DefaultSettings()
	app.Tools.dimension = tool.NewDimensionTool(&app.Tools.settings)
	app.Tools.radius = tool.NewRadiusTool(&app.Tools.settings)

	var solid *scene.Solid
	if sourceFile == "" {
		app.buildDemoScene()
	} else {
		loaded, stlFile, isOpenSCAD, err := loadSolid(sourceFile)
		if err != nil {
			fmt.Printf("error loading file: %v\n", err)
			os.Exit(1)
		}
		solid = loaded
		app.Scene.solids = append(app.Scene.solids, solid)
		app.FileWatch = FileWatchState{
			sourceFile:  sourceFile,
			isOpenSCAD:  isOpenSCAD,
			tempSTLFile: stlFile,
		}
		if isOpenSCAD {
			defer os.Remove(app.FileWatch.tempSTLFile)
		}

		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("warning: file watching unavailable: %v\n", err)
		} else {
			defer app.FileWatch.watcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1400, 900, "YAGO")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // escape is the tool-cancel key

	app.font = rl.GetFontDefault()
	app.Model.material = rl.LoadMaterialDefault()
	if solid != nil {
		app.refreshModelMesh(solid)
	}

	app.frameCamera()

	for !rl.WindowShouldClose() {
		ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrl && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadSolid()
		}
		app.applyLoaded()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.rlCamera)
		app.drawScene()
		rl.EndMode3D()

		app.drawOverlays()

		rl.EndDrawing()
	}

	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.mesh)
	}
	rl.CloseWindow()
}

// buildDemoScene fills the scene with sample solids and shapes so the
// tools have something to snap to when no file is given
func (app *App) buildDemoScene() {
	box := scene.NewSolid(scene.SolidBox, mesh.Box(4, 4, 4))

	cylinder := scene.NewSolid(scene.SolidCylinder, mesh.Cylinder(4, 1.5, 48))
	cylinder.Pose.Translation = geometry.NewVector3(8, 0, 0)

	app.Scene.solids = append(app.Scene.solids, box, cylinder)

	if rounded, err := mesh.RoundedBox(4, 4, 4, 0.5); err == nil {
		solid := scene.NewSolid(scene.SolidRoundedBox, rounded)
		solid.Pose.Translation = geometry.NewVector3(-8, 0, 0)
		app.Scene.solids = append(app.Scene.solids, solid)
	}

	app.Scene.shapes = append(app.Scene.shapes,
		scene.NewRectangle(geometry.NewVector3(-2, 6, 0), geometry.NewVector3(4, 10, 0)),
		scene.NewCircle(geometry.NewVector3(8, 8, 0), 2),
		scene.NewPolyline([]geometry.Vector3{
			geometry.NewVector3(-8, 6, 0),
			geometry.NewVector3(-4, 10, 0),
			geometry.NewVector3(-8, 10, 0),
		}),
	)
}

// frameCamera positions the orbit camera to frame the scene
func (app *App) frameCamera() {
	bounds := geometry.NewBoundingBox()
	for _, solid := range app.Scene.solids {
		b := solid.WorldBounds()
		bounds.Extend(b.Min)
		bounds.Extend(b.Max)
	}
	for _, shape := range app.Scene.shapes {
		for _, p := range shape.Points {
			bounds.Extend(p)
		}
	}

	center := geometry.NewVector3(0, 0, 0)
	distance := float32(10)
	if bounds.Min.X <= bounds.Max.X {
		center = bounds.Center()
		size := bounds.Size()
		maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
		if maxDim > 0 {
			distance = float32(maxDim * 2)
		}
	}

	c := &app.Camera
	c.target = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	c.distance = distance
	c.angleX = 0.3
	c.angleY = 0.3
	c.defaultDist = distance
	c.defaultAngleX = 0.3
	c.defaultAngleY = 0.3
	c.rlCamera = rl.Camera3D{
		Position:   rl.Vector3{X: c.target.X, Y: c.target.Y, Z: c.target.Z + distance},
		Target:     c.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}
