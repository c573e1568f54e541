package puzzle

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/tsawler/haikupuzzle/graphicsstate"
	"github.com/tsawler/haikupuzzle/model"
)

// Proportions of a piece, relative to its size
const (
	DefaultCornerRatio = 0.1
	StubRatio          = 0.2
	BumpRatio          = 0.057
)

// bumpStart is the angle, on the top edge, where the bump leaves the stub.
// The bump sweeps bumpExtent clockwise from there.
const (
	bumpStart  = 120.0
	bumpExtent = -240.0
)

// Edge identifies a side of a piece. Edges are ordered clockwise starting
// at the top; edge k is the top edge rotated k quarter turns clockwise.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Edges lists the four edges in drawing order
var Edges = [4]Edge{Top, Right, Bottom, Left}

// String returns the edge name
func (e Edge) String() string {
	switch e {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// StartAngle returns the angle at which the notch bump on this edge
// starts: 120, 30, -60 and -150 degrees for Top, Right, Bottom and Left
func (e Edge) StartAngle() float64 {
	return bumpStart - 90*float64(e)
}

// rotate turns v, a vector from the piece centre, clockwise by the edge's
// number of quarter turns
func (e Edge) rotate(v geom.Coord) geom.Coord {
	for i := 0; i < int(e)%4; i++ {
		v = geom.Coord{X: v.Y, Y: -v.X}
	}
	return v
}

// PieceSpec describes one puzzle piece. Anchor is the lower-left corner of
// the piece's bounding square.
type PieceSpec struct {
	Anchor      model.Point
	Size        float64
	CornerRatio float64
}

// NewPieceSpec returns a spec with the default corner ratio
func NewPieceSpec(anchor model.Point, size float64) PieceSpec {
	return PieceSpec{Anchor: anchor, Size: size, CornerRatio: DefaultCornerRatio}
}

// CornerRadius returns the radius of the rounded corners
func (s PieceSpec) CornerRadius() float64 {
	return s.CornerRatio * s.Size
}

// Center returns the centre of the piece, where all notches meet
func (s PieceSpec) Center() model.Point {
	return model.Point{X: s.Anchor.X + s.Size/2, Y: s.Anchor.Y + s.Size/2}
}

// Bounds returns the square the piece outline is inscribed in
func (s PieceSpec) Bounds() model.BBox {
	return model.NewBBox(s.Anchor.X, s.Anchor.Y, s.Size, s.Size)
}

// Validate checks that the piece can be drawn
func (s PieceSpec) Validate() error {
	if math.IsNaN(s.Size) || math.IsInf(s.Size, 0) || s.Size <= 0 {
		return model.NewConfigError("size", "piece size must be positive and finite, got %v", s.Size)
	}
	if !s.Anchor.IsFinite() {
		return model.NewConfigError("anchor", "piece anchor must be finite, got %v", s.Anchor)
	}
	if math.IsNaN(s.CornerRatio) || s.CornerRatio < 0 || s.CornerRatio >= 0.5 {
		return model.NewConfigError("corner_ratio", "corner radius must be less than half the size, got ratio %v", s.CornerRatio)
	}
	return nil
}

// BuildPiece returns the path for a piece of the given size with its
// lower-left corner at anchor and the default corner ratio
func BuildPiece(anchor model.Point, size float64) (*graphicsstate.Path, error) {
	return NewPieceSpec(anchor, size).Build()
}

// Build returns the outline followed by the four notch subpaths
func (s PieceSpec) Build() (*graphicsstate.Path, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	path := graphicsstate.NewPath()
	s.appendOutline(path)
	for _, e := range Edges {
		s.appendNotch(path, e)
	}
	return path, nil
}

// at converts a vector from the piece centre into page coordinates
func (s PieceSpec) at(v geom.Coord) model.Point {
	c := s.Center()
	p := geom.Coord{X: c.X, Y: c.Y}.Plus(v)
	return model.Point{X: p.X, Y: p.Y}
}

// appendOutline traces the rounded square clockwise, starting just after
// the top-left corner. Each edge is a straight run followed by the corner
// arc that turns onto the next edge.
func (s PieceSpec) appendOutline(path *graphicsstate.Path) {
	h := s.Size / 2
	r := s.CornerRadius()

	runStart := geom.Coord{X: -(h - r), Y: h}
	runEnd := geom.Coord{X: h - r, Y: h}
	cornerCenter := geom.Coord{X: h - r, Y: h - r}

	start := s.at(runStart)
	path.MoveTo(start.X, start.Y)

	for _, e := range Edges {
		end := s.at(e.rotate(runEnd))
		path.LineTo(end.X, end.Y)

		if r > 0 {
			c := s.at(e.rotate(cornerCenter))
			path.Arc(c.X-r, c.Y-r, c.X+r, c.Y+r, 90-90*float64(e), -90)
		}
	}
	path.ClosePath()
}

// appendNotch draws the notch on edge e: stub, bump, run into the centre
func (s PieceSpec) appendNotch(path *graphicsstate.Path, e Edge) {
	h := s.Size / 2
	rn := BumpRatio * s.Size
	theta := bumpStart * math.Pi / 180

	mid := geom.Coord{X: 0, Y: h}
	stubEnd := mid.Minus(geom.Coord{X: 0, Y: StubRatio * s.Size})
	bumpCenter := stubEnd.Minus(geom.Coord{X: math.Cos(theta), Y: math.Sin(theta)}.Times(rn))

	m := s.at(e.rotate(mid))
	path.MoveTo(m.X, m.Y)

	p := s.at(e.rotate(stubEnd))
	path.LineTo(p.X, p.Y)

	c := s.at(e.rotate(bumpCenter))
	path.Arc(c.X-rn, c.Y-rn, c.X+rn, c.Y+rn, e.StartAngle(), bumpExtent)

	center := s.Center()
	path.LineTo(center.X, center.Y)
}
