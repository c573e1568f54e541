package graphicsstate

import (
	"math"

	"github.com/tsawler/haikupuzzle/model"
)

// maxArcFragment is the largest sweep, in degrees, approximated by a single
// cubic curve.
const maxArcFragment = 90.0

// Curve is one cubic Bézier curve: start point, two control points and end
// point.
type Curve struct {
	P0, C1, C2, P3 model.Point
}

// ArcPoint returns the point at angle degrees on the ellipse inscribed in box.
// Angles are measured counter-clockwise from the positive x axis.
func ArcPoint(box model.BBox, angle float64) model.Point {
	c := box.Center()
	theta := angle * math.Pi / 180
	return model.Point{
		X: c.X + box.Width/2*math.Cos(theta),
		Y: c.Y + box.Height/2*math.Sin(theta),
	}
}

// ArcCurves approximates an elliptical arc with cubic Bézier curves. The
// sweep is split into equal fragments of at most 90 degrees; each fragment
// uses the standard 4/3·tan(θ/4) control point distance.
func ArcCurves(box model.BBox, startAngle, extent float64) []Curve {
	if extent == 0 {
		return nil
	}

	n := int(math.Ceil(math.Abs(extent) / maxArcFragment))
	frag := extent / float64(n)
	fragRad := frag * math.Pi / 180
	kappa := 4.0 / 3.0 * math.Tan(fragRad/4)

	c := box.Center()
	rx, ry := box.Width/2, box.Height/2

	curves := make([]Curve, 0, n)
	for i := 0; i < n; i++ {
		t0 := (startAngle + float64(i)*frag) * math.Pi / 180
		t1 := t0 + fragRad
		cos0, sin0 := math.Cos(t0), math.Sin(t0)
		cos1, sin1 := math.Cos(t1), math.Sin(t1)

		curves = append(curves, Curve{
			P0: model.Point{X: c.X + rx*cos0, Y: c.Y + ry*sin0},
			C1: model.Point{X: c.X + rx*(cos0-kappa*sin0), Y: c.Y + ry*(sin0+kappa*cos0)},
			C2: model.Point{X: c.X + rx*(cos1+kappa*sin1), Y: c.Y + ry*(sin1-kappa*cos1)},
			P3: model.Point{X: c.X + rx*cos1, Y: c.Y + ry*sin1},
		})
	}
	return curves
}
