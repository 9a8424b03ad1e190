package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GokerOzenc93/yago/internal/tool"
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/snap"
	"github.com/GokerOzenc93/yago/pkg/viewer"
)

// snapTolerancePx is the pick tolerance in pixels
const snapTolerancePx = 20

// handleInput processes one frame of keyboard and mouse input
func (app *App) handleInput() {
	app.handleKeys()

	// Right drag orbits, middle drag pans, wheel zooms.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		app.orbit(rl.GetMouseDelta())
	}
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		app.pan(rl.GetMouseDelta())
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoom(wheel)
	}

	app.updateHover()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.pointerDown()
	}
}

// handleKeys switches tools and view settings
func (app *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyD):
		app.activateTool(ToolDimension)
	case rl.IsKeyPressed(rl.KeyR):
		app.activateTool(ToolRadius)
	case rl.IsKeyPressed(rl.KeyEscape):
		app.cancelActiveTool()
	case rl.IsKeyPressed(rl.KeyW):
		app.View.showWireframe = !app.View.showWireframe
	case rl.IsKeyPressed(rl.KeyF):
		app.View.showFilled = !app.View.showFilled
	case rl.IsKeyPressed(rl.KeyM):
		app.View.showOverlays = !app.View.showOverlays
	case rl.IsKeyPressed(rl.KeyHome):
		app.resetCamera()
	}
}

// activateTool switches the active tool, deactivating the previous one
// so its snap-settings narrowing is unwound first
func (app *App) activateTool(next ActiveTool) {
	if app.Tools.active == next {
		return
	}
	app.deactivateTool()
	app.Tools.active = next
	switch next {
	case ToolDimension:
		app.Tools.dimension.Activate()
	case ToolRadius:
		app.Tools.radius.Activate()
	}
}

// deactivateTool returns to the idle tool, restoring snap settings
func (app *App) deactivateTool() {
	switch app.Tools.active {
	case ToolDimension:
		app.Tools.dimension.Deactivate()
	case ToolRadius:
		app.Tools.radius.Deactivate()
	}
	app.Tools.active = ToolNone
}

// cancelActiveTool aborts the pick in progress; a second escape leaves
// the tool entirely
func (app *App) cancelActiveTool() {
	switch app.Tools.active {
	case ToolDimension:
		if app.Tools.dimension.Phase() != tool.PhaseIdle {
			app.Tools.dimension.Cancel()
			return
		}
	case ToolRadius:
		if len(app.Tools.radius.PickedPoints()) > 0 {
			app.Tools.radius.Cancel()
			return
		}
	}
	app.deactivateTool()
}

// query builds a screen-metric snap query at the current mouse position
func (app *App) query() snap.Query {
	mouse := rl.GetMousePosition()
	cursor := geometry.NewVector2(float64(mouse.X), float64(mouse.Y))
	vp := viewer.NewViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))

	origin, dir := app.Camera.snapCam.Unproject(cursor, vp)
	return snap.Query{
		Point:     planeHit(origin, dir),
		Tolerance: snapTolerancePx,
		Settings:  app.Tools.settings,
		Metric:    snap.MetricScreen,
		Camera:    &app.Camera.snapCam,
		Viewport:  vp,
		Cursor:    &cursor,
	}
}

// planeHit intersects the pointer ray with the Z=0 drawing plane
func planeHit(origin, dir geometry.Vector3) geometry.Vector3 {
	if math.Abs(dir.Z) < 1e-10 {
		return origin.Add(dir.Mul(10))
	}
	t := -origin.Z / dir.Z
	if t < 0 {
		return origin.Add(dir.Mul(10))
	}
	return origin.Add(dir.Mul(t))
}

// updateHover resolves the best candidate under the pointer and feeds
// pointer motion to the active tool
func (app *App) updateHover() {
	ctx := snap.Context{Shapes: app.Scene.shapes, Solids: app.Scene.solids}
	q := app.query()

	candidates := snap.Resolve(ctx, q)
	if len(candidates) > 0 {
		app.Tools.hover = &candidates[0]
	} else {
		app.Tools.hover = nil
	}

	if app.Tools.active == ToolDimension {
		app.Tools.dimension.PointerMove(ctx, q)
	}
}

// pointerDown forwards a click to the active tool
func (app *App) pointerDown() {
	ctx := snap.Context{Shapes: app.Scene.shapes, Solids: app.Scene.solids}
	q := app.query()

	switch app.Tools.active {
	case ToolDimension:
		app.Tools.dimension.PointerDown(ctx, q)
	case ToolRadius:
		app.Tools.radius.PointerDown(ctx, q)
	}
}
