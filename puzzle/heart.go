package puzzle

import (
	"fmt"
	"math"

	"github.com/tsawler/haikupuzzle/graphicsstate"
	"github.com/tsawler/haikupuzzle/model"
)

// DefaultHeartSamples is the number of points used to draw a heart
const DefaultHeartSamples = 200

// HeartPoints samples the classic heart curve
//
//	x = 16 sin³ t
//	y = 13 cos t - 5 cos 2t - 2 cos 3t - cos 4t
//
// over [0, 2π] and normalises it into the unit square. The first and last
// points coincide.
func HeartPoints(samples int) []model.Point {
	if samples < 2 {
		samples = 2
	}

	raw := make([]model.Point, samples)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range raw {
		t := 2 * math.Pi * float64(i) / float64(samples-1)
		sin := math.Sin(t)
		p := model.Point{
			X: 16 * sin * sin * sin,
			Y: 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t),
		}
		raw[i] = p
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	norm := model.Translate(-minX, -minY).Multiply(model.Scale(1/(maxX-minX), 1/(maxY-minY)))
	for i, p := range raw {
		raw[i] = norm.Transform(p)
	}
	return raw
}

// Heart returns a closed polyline heart filling box
func Heart(box model.BBox, samples int) (*graphicsstate.Path, error) {
	if !box.IsValid() {
		return nil, model.NewConfigError("heart", "heart box must have positive size, got %vx%v", box.Width, box.Height)
	}

	m := model.Scale(box.Width, box.Height).Multiply(model.Translate(box.X, box.Y))
	points := HeartPoints(samples)
	for i, p := range points {
		points[i] = m.Transform(p)
	}

	path := graphicsstate.NewPath()
	path.Polyline(points)
	path.ClosePath()
	if path.IsEmpty() {
		return nil, fmt.Errorf("empty heart path")
	}
	return path, nil
}
