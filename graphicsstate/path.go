package graphicsstate

import (
	"math"

	"github.com/tsawler/haikupuzzle/model"
)

// PathSegmentType defines the type of path segment
type PathSegmentType int

const (
	// PathMoveTo starts a new subpath
	PathMoveTo PathSegmentType = iota
	// PathLineTo draws a line to a point
	PathLineTo
	// PathCurveTo draws a cubic Bézier curve
	PathCurveTo
	// PathArc draws a partial ellipse inscribed in a bounding box
	PathArc
	// PathClosePath closes the current subpath
	PathClosePath
)

// String returns the segment type name
func (t PathSegmentType) String() string {
	switch t {
	case PathMoveTo:
		return "MoveTo"
	case PathLineTo:
		return "LineTo"
	case PathCurveTo:
		return "CurveTo"
	case PathArc:
		return "Arc"
	case PathClosePath:
		return "ClosePath"
	default:
		return "Unknown"
	}
}

// PathSegment represents a single segment of a path
type PathSegment struct {
	Type PathSegmentType

	// For MoveTo and LineTo: single point
	// For CurveTo: control point 1, control point 2, end point
	// For Arc: two opposite corners of the bounding box
	Points []model.Point

	// Arc parameters in degrees
	StartAngle float64
	Extent     float64
}

// ArcBox returns the bounding box of an arc segment
func (s PathSegment) ArcBox() model.BBox {
	return model.NewBBoxFromPoints(s.Points[0], s.Points[1])
}

// ArcStart returns the first point of an arc segment
func (s PathSegment) ArcStart() model.Point {
	return ArcPoint(s.ArcBox(), s.StartAngle)
}

// ArcEnd returns the last point of an arc segment
func (s PathSegment) ArcEnd() model.Point {
	return ArcPoint(s.ArcBox(), s.StartAngle+s.Extent)
}

// EndPoint returns where the segment leaves the current point. ClosePath has
// no end point of its own and reports false.
func (s PathSegment) EndPoint() (model.Point, bool) {
	switch s.Type {
	case PathMoveTo, PathLineTo:
		return s.Points[0], true
	case PathCurveTo:
		return s.Points[2], true
	case PathArc:
		return s.ArcEnd(), true
	default:
		return model.Point{}, false
	}
}

// Path represents a graphics path being constructed
type Path struct {
	// Segments contains all the path segments
	Segments []PathSegment

	// CurrentPoint is the current point in user space
	CurrentPoint model.Point

	// SubpathStart is the start of the current subpath (for closepath)
	SubpathStart model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{
		Segments: make([]PathSegment, 0),
	}
}

// MoveTo starts a new subpath at the specified point (m operator)
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{
		Type:   PathMoveTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line segment from current point to (x, y) (l operator)
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint {
		// Treat as moveto if no current point
		p.MoveTo(x, y)
		return
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{
		Type:   PathLineTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
}

// CurveTo appends a cubic Bézier curve (c operator)
// Control points (x1, y1) and (x2, y2), end point (x3, y3)
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x1, y1)
	}

	p.Segments = append(p.Segments, PathSegment{
		Type: PathCurveTo,
		Points: []model.Point{
			{X: x1, Y: y1},
			{X: x2, Y: y2},
			{X: x3, Y: y3},
		},
	})
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// Arc appends the part of the ellipse inscribed in the box (x1, y1)-(x2, y2)
// that starts at startAngle and sweeps extent degrees. If the path has a
// current point the arc is joined to it with a straight line; otherwise the
// arc starts a new subpath.
func (p *Path) Arc(x1, y1, x2, y2, startAngle, extent float64) {
	seg := PathSegment{
		Type:       PathArc,
		Points:     []model.Point{{X: x1, Y: y1}, {X: x2, Y: y2}},
		StartAngle: startAngle,
		Extent:     extent,
	}
	if !p.HasCurrentPoint {
		p.SubpathStart = seg.ArcStart()
	}
	p.Segments = append(p.Segments, seg)
	p.CurrentPoint = seg.ArcEnd()
	p.HasCurrentPoint = true
}

// ClosePath closes the current subpath (h operator)
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, PathSegment{
		Type: PathClosePath,
	})

	// Move current point back to subpath start
	p.CurrentPoint = p.SubpathStart
}

// Rectangle appends a rectangle as a complete subpath (re operator)
func (p *Path) Rectangle(x, y, width, height float64) {
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.ClosePath()
}

// Polyline appends an open subpath through the given points
func (p *Path) Polyline(points []model.Point) {
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
}

// Append copies the segments of other onto the end of p
func (p *Path) Append(other *Path) {
	if other == nil || other.IsEmpty() {
		return
	}
	p.Segments = append(p.Segments, other.Segments...)
	p.CurrentPoint = other.CurrentPoint
	p.SubpathStart = other.SubpathStart
	p.HasCurrentPoint = other.HasCurrentPoint
}

// Clear resets the path
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.CurrentPoint = model.Point{}
	p.SubpathStart = model.Point{}
	p.HasCurrentPoint = false
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Subpaths splits the path at every MoveTo. An arc that opens the path
// without a preceding MoveTo starts the first subpath.
func (p *Path) Subpaths() [][]PathSegment {
	var out [][]PathSegment
	for _, seg := range p.Segments {
		if seg.Type == PathMoveTo || len(out) == 0 {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], seg)
	}
	return out
}

// Bounds returns the bounding box of every point the path passes through.
// Arcs are sampled, so the box is exact for lines and tight for arcs.
func (p *Path) Bounds() model.BBox {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt model.Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	for _, seg := range p.Segments {
		switch seg.Type {
		case PathMoveTo, PathLineTo:
			add(seg.Points[0])
		case PathCurveTo:
			for _, pt := range seg.Points {
				add(pt)
			}
		case PathArc:
			box := seg.ArcBox()
			const steps = 64
			for i := 0; i <= steps; i++ {
				add(ArcPoint(box, seg.StartAngle+seg.Extent*float64(i)/steps))
			}
		}
	}

	if math.IsInf(minX, 1) {
		return model.BBox{}
	}
	return model.NewBBoxFromPoints(model.Point{X: minX, Y: minY}, model.Point{X: maxX, Y: maxY})
}
