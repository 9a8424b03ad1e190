// Package viewer provides the camera model and the fyne scene widget.
// The camera is the projection collaborator of the snap engine: it maps
// world points to viewport pixels for the screen-space distance metric.
package viewer

import (
	"math"

	"github.com/GokerOzenc93/yago/pkg/geometry"
)

// nearClip is the minimum camera-space depth considered in front of the
// camera. Points at or behind it cannot be projected meaningfully.
const nearClip = 0.01

// Viewport is the pixel rectangle projections map into
type Viewport struct {
	Width  float64
	Height float64
}

// NewViewport creates a viewport of the given pixel size
func NewViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height}
}

// Camera represents a perspective camera orbiting a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance <= 0 {
		distance = 10
	}

	return &Camera{
		Position: center.Add(geometry.NewVector3(0, 0, distance)),
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Distance: distance,
	}
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Spherical coordinates around the target
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project maps a world point to viewport pixel coordinates. The returned
// depth is the camera-space distance along the view direction; points with
// depth <= nearClip are behind (or on) the camera plane and ok is false.
func (c *Camera) Project(point geometry.Vector3, viewport Viewport) (geometry.Vector2, float64, bool) {
	// View transformation
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= nearClip {
		return geometry.Vector2{}, z, false
	}

	aspect := viewport.Width / viewport.Height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(viewport.Width/2) + (viewport.Width / 2)
	screenY := (-y/(z*fovScale))*(viewport.Height/2) + (viewport.Height / 2)

	return geometry.NewVector2(screenX, screenY), z, true
}

// Unproject converts viewport pixel coordinates to a world-space ray
func (c *Camera) Unproject(screen geometry.Vector2, viewport Viewport) (origin, direction geometry.Vector3) {
	// Normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screen.X / viewport.Width) - 1.0
	ndcY := 1.0 - (2.0 * screen.Y / viewport.Height)

	aspect := viewport.Width / viewport.Height
	fovScale := math.Tan(c.FOV / 2)

	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return c.Position, rayDir.Normalize()
}
