// Package overlay draws measurement artifacts and snap markers in 2D
// screen space on top of the 3D view.
package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed text label anchored at a screen position
type Label struct {
	Text      string
	ScreenPos rl.Vector2
	Color     rl.Color
}

// Draw renders the label and returns its background rectangle
func (l *Label) Draw(font rl.Font, fontSize, padding float32) rl.Rectangle {
	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	rect := rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, 2, l.Color)
	rl.DrawTextEx(font, l.Text, rl.Vector2{
		X: l.ScreenPos.X - textSize.X/2,
		Y: l.ScreenPos.Y,
	}, fontSize, 1, l.Color)

	return rect
}
