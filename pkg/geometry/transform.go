package geometry

import "math"

// Transform represents a solid's pose: non-uniform scale, then rotation
// around X, Y and Z (radians, applied in that order), then translation.
type Transform struct {
	Translation Vector3
	Rotation    Vector3
	Scale       Vector3
}

// IdentityTransform returns the identity pose
func IdentityTransform() Transform {
	return Transform{Scale: NewVector3(1, 1, 1)}
}

// NewTransform creates a transform from translation, rotation and scale
func NewTransform(translation, rotation, scale Vector3) Transform {
	return Transform{Translation: translation, Rotation: rotation, Scale: scale}
}

// Apply transforms a local-space point into world space
func (t Transform) Apply(p Vector3) Vector3 {
	// Scale
	p = Vector3{X: p.X * t.Scale.X, Y: p.Y * t.Scale.Y, Z: p.Z * t.Scale.Z}

	// Rotate X, then Y, then Z
	if t.Rotation.X != 0 {
		sin, cos := math.Sincos(t.Rotation.X)
		p = Vector3{X: p.X, Y: p.Y*cos - p.Z*sin, Z: p.Y*sin + p.Z*cos}
	}
	if t.Rotation.Y != 0 {
		sin, cos := math.Sincos(t.Rotation.Y)
		p = Vector3{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}
	}
	if t.Rotation.Z != 0 {
		sin, cos := math.Sincos(t.Rotation.Z)
		p = Vector3{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos, Z: p.Z}
	}

	return p.Add(t.Translation)
}
