// Package app is the raylib frontend: an interactive viewer with snap
// picking, dimension and radius measurement tools and hot reload of the
// source file.
package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GokerOzenc93/yago/internal/tool"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
	"github.com/GokerOzenc93/yago/pkg/viewer"
	"github.com/GokerOzenc93/yago/pkg/watcher"
)

// ActiveTool selects which measurement tool receives pointer events
type ActiveTool int

const (
	ToolNone ActiveTool = iota
	ToolDimension
	ToolRadius
)

// CameraState holds the orbit parameters and both camera views: the
// raylib one used for drawing and the viewer one used by the snap
// engine's screen metric. They are kept in sync every frame.
type CameraState struct {
	rlCamera rl.Camera3D
	snapCam  viewer.Camera

	distance float32
	angleX   float32
	angleY   float32
	target   rl.Vector3

	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// SceneState holds the shape and solid collections snap queries run
// against
type SceneState struct {
	shapes []*scene.Shape
	solids []*scene.Solid
}

// ToolState holds the measurement tools and the shared snap settings
// they narrow while active
type ToolState struct {
	active    ActiveTool
	settings  snap.Settings
	dimension *tool.DimensionTool
	radius    *tool.RadiusTool

	// hover is the best candidate under the pointer this frame
	hover *snap.Candidate
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showFilled    bool
	showWireframe bool
	showOverlays  bool
}

// FileWatchState holds hot-reload state for the loaded source file
type FileWatchState struct {
	sourceFile  string
	isOpenSCAD  bool
	tempSTLFile string
	watcher     *watcher.Watcher

	needsReload bool
	isLoading   bool
	loadStarted time.Time
	loaded      *scene.Solid
	loadedSTL   string
}

// ModelData holds the GPU-side mesh of the loaded solid
type ModelData struct {
	mesh     rl.Mesh
	material rl.Material
	hasMesh  bool
}

// App aggregates all frontend state
type App struct {
	Camera    CameraState
	Scene     SceneState
	Tools     ToolState
	View      ViewSettings
	FileWatch FileWatchState
	Model     ModelData
	font      rl.Font
}
