package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/scene"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

// snapTolerancePx is the pick tolerance of the scene view in pixels
const snapTolerancePx = 20

// circleOutlineSegments is how many line segments approximate a circle
const circleOutlineSegments = 64

// SceneView is a fyne widget showing shapes and solid wireframes with
// snap picking. Taps resolve through the snap engine with a pixel
// tolerance; drags orbit the camera, scrolling zooms.
type SceneView struct {
	widget.BaseWidget
	shapes []*scene.Shape
	solids []*scene.Solid
	camera *Camera

	settings snap.Settings
	picked   []snap.Candidate

	lines      []*canvas.Line
	markers    []*canvas.Circle
	dragStart  *fyne.Position
	isDragging bool
	viewport   Viewport

	onSnap func(snap.Candidate)
}

// NewSceneView creates a view framing the given solids
func NewSceneView(shapes []*scene.Shape, solids []*scene.Solid) *SceneView {
	bounds := geometry.NewBoundingBox()
	for _, solid := range solids {
		b := solid.WorldBounds()
		bounds.Extend(b.Min)
		bounds.Extend(b.Max)
	}
	for _, shape := range shapes {
		for _, p := range shape.Points {
			bounds.Extend(p)
		}
	}

	v := &SceneView{
		shapes:   shapes,
		solids:   solids,
		camera:   NewCamera(bounds),
		settings: snap.DefaultSettings(),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnSnap sets the callback invoked with the best candidate of a tap
func (v *SceneView) SetOnSnap(callback func(snap.Candidate)) {
	v.onSnap = callback
}

// SetSnapSettings replaces the snap settings used for picking
func (v *SceneView) SetSnapSettings(settings snap.Settings) {
	v.settings = settings
}

// Camera exposes the view's camera for frontends that position it
func (v *SceneView) Camera() *Camera {
	return v.camera
}

// CreateRenderer creates the fyne renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneViewRenderer{view: v}
}

// Render rebuilds the projected line set for the current camera
func (v *SceneView) Render(width, height float64) {
	v.viewport = NewViewport(width, height)
	v.lines = v.lines[:0]

	for _, solid := range v.solids {
		for _, edge := range snap.Edges(solid) {
			v.projectLine(edge, nil)
		}
	}
	for _, shape := range v.shapes {
		for _, seg := range shape.Segments() {
			v.projectLine(seg, color.RGBA{120, 180, 255, 255})
		}
		if shape.Kind == scene.ShapeCircle {
			v.projectCircle(shape)
		}
	}

	v.updateMarkers()
	v.Refresh()
}

// projectLine appends a canvas line for a world segment. A nil color
// selects depth-shaded gray.
func (v *SceneView) projectLine(seg geometry.Segment, col color.Color) {
	p1, z1, ok1 := v.camera.Project(seg.Start, v.viewport)
	p2, z2, ok2 := v.camera.Project(seg.End, v.viewport)
	if !ok1 || !ok2 {
		return
	}

	if col == nil {
		avgZ := (z1 + z2) / 2
		brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))
		col = color.RGBA{brightness, brightness, brightness, 255}
	}

	line := canvas.NewLine(col)
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(float32(p1.X), float32(p1.Y))
	line.Position2 = fyne.NewPos(float32(p2.X), float32(p2.Y))
	v.lines = append(v.lines, line)
}

// projectCircle approximates a circle outline with line segments in the
// drawing plane
func (v *SceneView) projectCircle(shape *scene.Shape) {
	col := color.RGBA{120, 180, 255, 255}
	for i := 0; i < circleOutlineSegments; i++ {
		a1 := float64(i) * 2 * math.Pi / circleOutlineSegments
		a2 := float64(i+1) * 2 * math.Pi / circleOutlineSegments
		p1 := geometry.NewVector3(
			shape.Center.X+shape.Radius*math.Cos(a1),
			shape.Center.Y+shape.Radius*math.Sin(a1),
			shape.Center.Z,
		)
		p2 := geometry.NewVector3(
			shape.Center.X+shape.Radius*math.Cos(a2),
			shape.Center.Y+shape.Radius*math.Sin(a2),
			shape.Center.Z,
		)
		v.projectLine(geometry.NewSegment(p1, p2), col)
	}
}

// updateMarkers places a marker circle on every picked snap point
func (v *SceneView) updateMarkers() {
	v.markers = v.markers[:0]
	for _, cand := range v.picked {
		p, _, ok := v.camera.Project(cand.Point, v.viewport)
		if !ok {
			continue
		}
		marker := canvas.NewCircle(color.RGBA{255, 160, 40, 255})
		marker.StrokeColor = color.White
		marker.StrokeWidth = 2
		size := float32(10)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(p.X)-size/2, float32(p.Y)-size/2))
		v.markers = append(v.markers, marker)
	}
}

// Tapped resolves the tap through the snap engine and records the best
// candidate
func (v *SceneView) Tapped(event *fyne.PointEvent) {
	if v.isDragging {
		return
	}

	cursor := geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y))
	origin, dir := v.camera.Unproject(cursor, v.viewport)
	query := snap.Query{
		Point:     planeHit(origin, dir),
		Tolerance: snapTolerancePx,
		Settings:  v.settings,
		Metric:    snap.MetricScreen,
		Camera:    v.camera,
		Viewport:  v.viewport,
		Cursor:    &cursor,
	}

	candidates := snap.Resolve(snap.Context{Shapes: v.shapes, Solids: v.solids}, query)
	if len(candidates) == 0 {
		return
	}

	v.picked = append(v.picked, candidates[0])
	if len(v.picked) > 2 {
		v.picked = v.picked[len(v.picked)-2:]
	}
	v.updateMarkers()
	v.Refresh()

	if v.onSnap != nil {
		v.onSnap(candidates[0])
	}
}

// planeHit intersects a ray with the Z=0 drawing plane, falling back to
// a point along the ray when it is parallel to the plane
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

// Picked returns the recorded snap picks, newest last
func (v *SceneView) Picked() []snap.Candidate {
	return v.picked
}

// ClearPicks removes all recorded snap picks
func (v *SceneView) ClearPicks() {
	v.picked = nil
	v.markers = v.markers[:0]
	v.Refresh()
}

// Dragged orbits the camera
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.viewport.Width, v.viewport.Height)
	}
	v.dragStart = &event.Position
	v.isDragging = true
}

// DragEnd finishes a camera orbit
func (v *SceneView) DragEnd() {
	v.dragStart = nil
	v.isDragging = false
}

// Scrolled zooms the camera
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Render(v.viewport.Width, v.viewport.Height)
}

type sceneViewRenderer struct {
	view    *SceneView
	objects []fyne.CanvasObject
}

func (r *sceneViewRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *sceneViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sceneViewRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	for _, marker := range r.view.markers {
		r.objects = append(r.objects, marker)
	}
	canvas.Refresh(r.view)
}

func (r *sceneViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sceneViewRenderer) Destroy() {}
