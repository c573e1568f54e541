package contentstream

import (
	"bytes"
	"fmt"

	"github.com/tsawler/haikupuzzle/core"
	"github.com/tsawler/haikupuzzle/graphicsstate"
	"github.com/tsawler/haikupuzzle/model"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "re", "q")
	Operands []core.Object // The operands
}

// String returns the operation in content stream syntax
func (op Operation) String() string {
	var b bytes.Buffer
	for _, operand := range op.Operands {
		b.WriteString(operand.String())
		b.WriteByte(' ')
	}
	b.WriteString(op.Operator)
	return b.String()
}

// joinTolerance is the distance below which an arc is considered to start
// at the current point, so no joining line is drawn.
const joinTolerance = 1e-6

// Builder accumulates content stream operations for one page. It tracks the
// graphics state so that repeated style and font selections are written
// only once.
type Builder struct {
	ops   []Operation
	state *graphicsstate.GraphicsState
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		ops:   make([]Operation, 0),
		state: graphicsstate.NewGraphicsState(),
	}
}

func (b *Builder) emit(operator string, operands ...core.Object) {
	b.ops = append(b.ops, Operation{Operator: operator, Operands: operands})
}

func reals(values ...float64) []core.Object {
	out := make([]core.Object, len(values))
	for i, v := range values {
		out[i] = core.Real(v)
	}
	return out
}

// Operations returns the recorded operations in order
func (b *Builder) Operations() []Operation {
	return b.ops
}

// Len returns the number of recorded operations
func (b *Builder) Len() int {
	return len(b.ops)
}

// State returns the tracked graphics state
func (b *Builder) State() *graphicsstate.GraphicsState {
	return b.state
}

// Save saves the graphics state (q operator)
func (b *Builder) Save() {
	b.state.Save()
	b.emit("q")
}

// Restore restores the last saved graphics state (Q operator)
func (b *Builder) Restore() error {
	if err := b.state.Restore(); err != nil {
		return err
	}
	b.emit("Q")
	return nil
}

// ApplyStyle selects line width, stroke colour and fill colour. Components
// that are already in effect are not written again.
func (b *Builder) ApplyStyle(s graphicsstate.RenderStyle) {
	if b.state.HasStyle(s) {
		return
	}
	cur := b.state.Style
	if cur == nil || cur.LineWidth != s.LineWidth {
		b.emit("w", core.Real(s.LineWidth))
	}
	if cur == nil || cur.StrokeColor != s.StrokeColor {
		b.emit("RG", reals(s.StrokeColor[0], s.StrokeColor[1], s.StrokeColor[2])...)
	}
	if cur == nil || cur.FillColor != s.FillColor {
		b.emit("rg", reals(s.FillColor[0], s.FillColor[1], s.FillColor[2])...)
	}
	b.state.SetStyle(s)
}

// AppendPath writes the segments of p as path construction operators.
// Arcs become cubic curves; an arc that follows a current point is joined
// to it with a line.
func (b *Builder) AppendPath(p *graphicsstate.Path) error {
	if p == nil {
		return fmt.Errorf("nil path")
	}

	var current model.Point
	hasCurrent := false
	var subpathStart model.Point

	for i, seg := range p.Segments {
		switch seg.Type {
		case graphicsstate.PathMoveTo:
			pt := seg.Points[0]
			b.emit("m", reals(pt.X, pt.Y)...)
			current, subpathStart, hasCurrent = pt, pt, true

		case graphicsstate.PathLineTo:
			pt := seg.Points[0]
			if !hasCurrent {
				b.emit("m", reals(pt.X, pt.Y)...)
				subpathStart = pt
			} else {
				b.emit("l", reals(pt.X, pt.Y)...)
			}
			current, hasCurrent = pt, true

		case graphicsstate.PathCurveTo:
			c1, c2, end := seg.Points[0], seg.Points[1], seg.Points[2]
			if !hasCurrent {
				b.emit("m", reals(c1.X, c1.Y)...)
				subpathStart = c1
			}
			b.emit("c", reals(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)...)
			current, hasCurrent = end, true

		case graphicsstate.PathArc:
			curves := graphicsstate.ArcCurves(seg.ArcBox(), seg.StartAngle, seg.Extent)
			start := seg.ArcStart()
			switch {
			case !hasCurrent:
				b.emit("m", reals(start.X, start.Y)...)
				subpathStart = start
			case current.Distance(start) > joinTolerance:
				b.emit("l", reals(start.X, start.Y)...)
			}
			for _, c := range curves {
				b.emit("c", reals(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P3.X, c.P3.Y)...)
			}
			current, hasCurrent = seg.ArcEnd(), true

		case graphicsstate.PathClosePath:
			if hasCurrent {
				b.emit("h")
				current = subpathStart
			}

		default:
			return fmt.Errorf("segment %d: unknown segment type %v", i, seg.Type)
		}

		if !current.IsFinite() {
			return fmt.Errorf("segment %d: non-finite coordinate", i)
		}
	}
	return nil
}

// Stroke strokes the current path (S operator)
func (b *Builder) Stroke() {
	b.emit("S")
}

// StrokePath appends p and strokes it
func (b *Builder) StrokePath(p *graphicsstate.Path) error {
	if err := b.AppendPath(p); err != nil {
		return err
	}
	b.Stroke()
	return nil
}

// Rectangle appends a rectangle subpath (re operator)
func (b *Builder) Rectangle(x, y, width, height float64) {
	b.emit("re", reals(x, y, width, height)...)
}

// StrokeRect strokes the outline of a rectangle
func (b *Builder) StrokeRect(r model.BBox) {
	b.Rectangle(r.X, r.Y, r.Width, r.Height)
	b.Stroke()
}

// ShowText writes one run of already encoded text with its origin at
// (x, y). fontName is the resource name of the font, e.g. "F1".
func (b *Builder) ShowText(fontName string, size, x, y float64, encoded []byte) {
	b.emit("BT")
	if !b.state.HasFont(fontName, size) {
		b.emit("Tf", core.Name(fontName), core.Real(size))
		b.state.SetFont(fontName, size)
	}
	b.emit("Td", reals(x, y)...)
	b.emit("Tj", core.String(encoded))
	b.emit("ET")
}

// Bytes serializes the recorded operations, one per line
func (b *Builder) Bytes() []byte {
	var buf bytes.Buffer
	for _, op := range b.ops {
		buf.WriteString(op.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Reset discards every operation and the tracked state
func (b *Builder) Reset() {
	b.ops = b.ops[:0]
	b.state = graphicsstate.NewGraphicsState()
}
