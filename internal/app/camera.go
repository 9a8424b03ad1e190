package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GokerOzenc93/yago/pkg/geometry"
	"github.com/GokerOzenc93/yago/pkg/viewer"
)

// updateCamera recomputes the orbit position and mirrors it into the
// snap camera so screen-metric queries see exactly what is drawn
func (app *App) updateCamera() {
	c := &app.Camera

	x := c.distance * float32(math.Cos(float64(c.angleX))) * float32(math.Sin(float64(c.angleY)))
	y := c.distance * float32(math.Sin(float64(c.angleX)))
	z := c.distance * float32(math.Cos(float64(c.angleX))) * float32(math.Cos(float64(c.angleY)))

	c.rlCamera.Position = rl.Vector3{
		X: c.target.X + x,
		Y: c.target.Y + y,
		Z: c.target.Z + z,
	}
	c.rlCamera.Target = c.target

	c.snapCam = viewer.Camera{
		Position: geometry.NewVector3(float64(c.rlCamera.Position.X), float64(c.rlCamera.Position.Y), float64(c.rlCamera.Position.Z)),
		Target:   geometry.NewVector3(float64(c.target.X), float64(c.target.Y), float64(c.target.Z)),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      float64(c.rlCamera.Fovy) * math.Pi / 180,
		Distance: float64(c.distance),
	}
}

// resetCamera restores the framing chosen at startup
func (app *App) resetCamera() {
	c := &app.Camera
	c.distance = c.defaultDist
	c.angleX = c.defaultAngleX
	c.angleY = c.defaultAngleY
}

// orbit applies a mouse-drag rotation with the pitch clamped short of
// the poles
func (app *App) orbit(delta rl.Vector2) {
	c := &app.Camera
	c.angleY += delta.X * 0.01
	c.angleX += delta.Y * 0.01

	limit := float32(math.Pi/2 - 0.1)
	if c.angleX > limit {
		c.angleX = limit
	}
	if c.angleX < -limit {
		c.angleX = -limit
	}
}

// pan moves the orbit target in the view plane
func (app *App) pan(delta rl.Vector2) {
	c := &app.Camera
	forward := rl.Vector3Normalize(rl.Vector3Subtract(c.target, c.rlCamera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.rlCamera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	speed := c.distance * 0.001
	c.target = rl.Vector3Add(c.target, rl.Vector3Scale(right, -delta.X*speed))
	c.target = rl.Vector3Add(c.target, rl.Vector3Scale(up, delta.Y*speed))
}

// zoom scales the orbit distance
func (app *App) zoom(wheel float32) {
	c := &app.Camera
	c.distance *= 1 - wheel*0.1
	if c.distance < 0.1 {
		c.distance = 0.1
	}
}
