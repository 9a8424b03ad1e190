package overlay

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GokerOzenc93/yago/internal/tool"
	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/snap"
)

const (
	markerSize    = float32(7)
	lineThickness = float32(2)
	labelFontSize = float32(14)
	labelPadding  = float32(6)
)

var (
	dimensionColor = rl.NewColor(100, 200, 255, 255)
	radiusColor    = rl.Magenta
	snapColor      = rl.NewColor(255, 200, 60, 255)
)

func toScreen(p geometry.Vector3, camera rl.Camera3D) rl.Vector2 {
	return rl.GetWorldToScreen(rl.Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}, camera)
}

// DrawSnapMarker draws a glyph at a snap candidate, shaped by kind so
// the user can tell what they are about to pick: square for endpoints,
// triangle for midpoints, circle for centers and quadrants, cross for
// intersections, perpendicular foot mark, plain dot for nearest.
func DrawSnapMarker(cand snap.Candidate, camera rl.Camera3D) {
	p := toScreen(cand.Point, camera)
	s := markerSize

	switch cand.Kind {
	case snap.Endpoint:
		rl.DrawRectangleLinesEx(rl.Rectangle{X: p.X - s, Y: p.Y - s, Width: 2 * s, Height: 2 * s}, lineThickness, snapColor)
	case snap.Midpoint:
		rl.DrawTriangleLines(
			rl.Vector2{X: p.X, Y: p.Y - s},
			rl.Vector2{X: p.X - s, Y: p.Y + s},
			rl.Vector2{X: p.X + s, Y: p.Y + s},
			snapColor)
	case snap.Center, snap.Quadrant:
		rl.DrawCircleLines(int32(p.X), int32(p.Y), s, snapColor)
	case snap.Intersection:
		rl.DrawLineEx(rl.Vector2{X: p.X - s, Y: p.Y - s}, rl.Vector2{X: p.X + s, Y: p.Y + s}, lineThickness, snapColor)
		rl.DrawLineEx(rl.Vector2{X: p.X - s, Y: p.Y + s}, rl.Vector2{X: p.X + s, Y: p.Y - s}, lineThickness, snapColor)
	case snap.Perpendicular:
		rl.DrawLineEx(rl.Vector2{X: p.X - s, Y: p.Y + s}, rl.Vector2{X: p.X - s, Y: p.Y - s}, lineThickness, snapColor)
		rl.DrawLineEx(rl.Vector2{X: p.X - s, Y: p.Y + s}, rl.Vector2{X: p.X + s, Y: p.Y + s}, lineThickness, snapColor)
	default:
		rl.DrawCircle(int32(p.X), int32(p.Y), s/2, snapColor)
	}
}

// DrawDimension draws a committed dimension: witness lines from the
// measured points to the offset line, the offset line itself and the
// length label at its middle.
func DrawDimension(dim tool.Dimension, camera rl.Camera3D, font rl.Font) {
	along := dim.End.Sub(dim.Start)
	offsetEnd := dim.Offset.Add(along)

	p1 := toScreen(dim.Start, camera)
	p2 := toScreen(dim.End, camera)
	o1 := toScreen(dim.Offset, camera)
	o2 := toScreen(offsetEnd, camera)

	rl.DrawLineEx(p1, o1, 1, rl.Fade(dimensionColor, 0.5))
	rl.DrawLineEx(p2, o2, 1, rl.Fade(dimensionColor, 0.5))
	rl.DrawLineEx(o1, o2, lineThickness, dimensionColor)

	label := Label{
		Text:      fmt.Sprintf("%.2f", dim.Length),
		ScreenPos: rl.Vector2{X: (o1.X + o2.X) / 2, Y: (o1.Y + o2.Y) / 2},
		Color:     dimensionColor,
	}
	label.Draw(font, labelFontSize, labelPadding)
}

// DrawDimensionPreview draws the in-progress dimension while the tool
// is picking or positioning
func DrawDimensionPreview(t *tool.DimensionTool, camera rl.Camera3D) {
	switch t.Phase() {
	case tool.PhaseFirstPointSet:
		rl.DrawLineEx(toScreen(t.Start(), camera), toScreen(t.Preview(), camera), 1, rl.Fade(dimensionColor, 0.7))
	case tool.PhasePositioning:
		DrawDimension(tool.Dimension{
			Start:  t.Start(),
			End:    t.End(),
			Offset: t.Preview(),
			Length: t.Start().Distance(t.End()),
		}, camera, rl.GetFontDefault())
	}
}

// DrawRadius draws a fitted circle, its center and picked arc points,
// with the radius label above the center
func DrawRadius(rm tool.RadiusMeasurement, camera rl.Camera3D, font rl.Font) {
	for _, point := range rm.Points {
		p := toScreen(point, camera)
		rl.DrawCircleLines(int32(p.X), int32(p.Y), markerSize, radiusColor)
	}

	center := toScreen(rm.Center, camera)
	rl.DrawCircle(int32(center.X), int32(center.Y), markerSize/2, radiusColor)

	drawCircleXY(rm.Center, rm.Radius, camera)

	label := Label{
		Text:      fmt.Sprintf("R %.2f", rm.Radius),
		ScreenPos: rl.Vector2{X: center.X, Y: center.Y - 30},
		Color:     radiusColor,
	}
	label.Draw(font, labelFontSize, labelPadding)
}

// drawCircleXY projects a drawing-plane circle as screen-space segments
func drawCircleXY(center geometry.Vector3, radius float64, camera rl.Camera3D) {
	const segments = 64
	for i := 0; i < segments; i++ {
		a1 := float64(i) * 2 * math.Pi / segments
		a2 := float64(i+1) * 2 * math.Pi / segments
		p1 := geometry.NewVector3(center.X+radius*math.Cos(a1), center.Y+radius*math.Sin(a1), center.Z)
		p2 := geometry.NewVector3(center.X+radius*math.Cos(a2), center.Y+radius*math.Sin(a2), center.Z)
		rl.DrawLineEx(toScreen(p1, camera), toScreen(p2, camera), lineThickness, rl.Fade(radiusColor, 0.8))
	}
}
