package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// QuadrantPoints returns the four cardinal extreme points of a circle in
// the XY drawing plane: center ± (radius, 0) and center ± (0, radius).
func QuadrantPoints(center Vector3, radius float64) [4]Vector3 {
	return [4]Vector3{
		{X: center.X + radius, Y: center.Y, Z: center.Z},
		{X: center.X - radius, Y: center.Y, Z: center.Z},
		{X: center.X, Y: center.Y + radius, Z: center.Z},
		{X: center.X, Y: center.Y - radius, Z: center.Z},
	}
}

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircleXY fits a circle to a set of points lying in (or near) an XY
// drawing plane using the Kåsa least-squares method: the model
//
//	x² + y² = a·x + b·y + c
//
// is linear in (a, b, c), so the overdetermined system is solved with a
// QR-based least-squares solve over all points, not just three of them.
// The Z coordinate of the returned center is the mean of the input Zs.
// Returns an error when fewer than 3 points are given or when the points
// are collinear (rank-deficient system).
func FitCircleXY(points []Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle, got %d", len(points))
	}

	n := len(points)
	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	var zSum float64
	for i, p := range points {
		a.Set(i, 0, p.X)
		a.Set(i, 1, p.Y)
		a.Set(i, 2, 1)
		b.SetVec(i, p.X*p.X+p.Y*p.Y)
		zSum += p.Z
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("points are collinear: %w", err)
	}

	cx := sol.AtVec(0) / 2.0
	cy := sol.AtVec(1) / 2.0
	rSq := sol.AtVec(2) + cx*cx + cy*cy
	if rSq <= 0 || math.IsNaN(rSq) || math.IsInf(rSq, 0) {
		return nil, fmt.Errorf("degenerate circle fit")
	}
	radius := math.Sqrt(rSq)

	center := NewVector3(cx, cy, zSum/float64(n))

	// Fit quality: standard deviation of radial residuals over all points.
	var sumErr float64
	for _, p := range points {
		dx := p.X - cx
		dy := p.Y - cy
		dist := math.Sqrt(dx*dx + dy*dy)
		sumErr += (dist - radius) * (dist - radius)
	}
	stdDev := math.Sqrt(sumErr / float64(n))

	return &CircleFit{
		Center: center,
		Radius: radius,
		StdDev: stdDev,
	}, nil
}
