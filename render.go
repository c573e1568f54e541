package haikupuzzle

import (
	"fmt"
	"math"

	"github.com/tsawler/haikupuzzle/config"
	"github.com/tsawler/haikupuzzle/contentstream"
	"github.com/tsawler/haikupuzzle/font"
	"github.com/tsawler/haikupuzzle/graphicsstate"
	"github.com/tsawler/haikupuzzle/layout"
	"github.com/tsawler/haikupuzzle/model"
	"github.com/tsawler/haikupuzzle/puzzle"
	"github.com/tsawler/haikupuzzle/writer"
	"go.uber.org/zap"
)

// lineLeading is the distance between stacked lines, in font sizes
const lineLeading = 1.25

// encodedLine is one line of text ready to be shown
type encodedLine struct {
	data  []byte
	width float64 // At the job's font size
}

// job is everything a render needs, validated before any output exists
type job struct {
	name   string
	grid   *layout.Grid
	style  graphicsstate.RenderStyle
	font   *font.TrueTypeFont
	size   float64
	items  [][]encodedLine
	draw   drawFunc
	logger *zap.Logger

	heartSamples int

	// Jigsaw sheets draw pieces instead of text
	pieces int
	sheet  *jigsawSheet
}

// drawFunc draws one item at pos. fontName is the page resource name of
// the job's font.
type drawFunc func(j *job, b *contentstream.Builder, fontName string, pos layout.Position, lines []encodedLine) error

// prepare validates the configuration, loads the font and input and
// encodes every line.
func (g *Generator) prepare() (*job, error) {
	if g.err != nil {
		return nil, g.err
	}
	opts := g.options
	cfg := *opts.cfg
	cfg.Layout = opts.layoutName()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pc, err := cfg.PageConfig()
	if err != nil {
		return nil, err
	}
	style, err := cfg.RenderStyle()
	if err != nil {
		return nil, err
	}

	j := &job{
		name:   cfg.Layout,
		style:  style,
		size:   cfg.Font.Size,
		logger: opts.logger,

		heartSamples: opts.heartSamples,
	}

	if g.jigsaw != nil {
		if err := j.prepareJigsaw(g.jigsaw, pc); err != nil {
			return nil, err
		}
		return j, nil
	}

	span := 1
	switch cfg.Layout {
	case config.LayoutTriplet:
		span = 3
		j.draw = drawTriplet
	case config.LayoutTag:
		j.draw = drawTag
	case config.LayoutPuzzle:
		j.draw = drawPuzzle
	}
	if j.grid, err = layout.NewGrid(pc, span); err != nil {
		return nil, err
	}

	haikus, err := g.Haikus()
	if err != nil {
		return nil, err
	}

	if j.font, err = opts.loadFont(); err != nil {
		return nil, err
	}
	if cfg.Font.Name != "" {
		j.font = j.font.WithFamily(cfg.Font.Name)
	}
	j.logger.Debug("loaded font",
		zap.String("name", cfg.Font.Name),
		zap.String("base_font", j.font.BaseFont),
		zap.Float64("size", j.size),
	)

	j.items = make([][]encodedLine, len(haikus))
	for i, h := range haikus {
		if err := h.Validate(); err != nil {
			return nil, err
		}
		lines, err := j.encode(h)
		if err != nil {
			return nil, err
		}
		j.items[i] = lines
	}
	return j, nil
}

// encode converts the lines of h to the font encoding
func (j *job) encode(h model.Haiku) ([]encodedLine, error) {
	out := make([]encodedLine, len(h.Lines))
	for i, line := range h.Lines {
		data, err := j.font.Encode(line)
		if err != nil {
			return nil, &model.RowError{Row: h.Row, Reason: fmt.Sprintf("line %d cannot be encoded", i+1), Err: err}
		}
		out[i] = encodedLine{data: data, width: j.font.EncodedWidth(data, j.size)}
	}
	return out, nil
}

// render writes every page. The writer stays open.
func (j *job) render(w *writer.Writer) (*Result, error) {
	if j.sheet != nil {
		return j.renderJigsaw(w)
	}

	fontName, err := w.AddFont(j.font)
	if err != nil {
		return nil, err
	}

	var b *contentstream.Builder
	pag := layout.NewPaginator(j.grid)
	for _, lines := range j.items {
		pl := pag.Next()
		if b == nil {
			if b, err = j.beginPage(w, pl); err != nil {
				return nil, err
			}
		}
		if err := j.draw(j, b, fontName, pl.Position, lines); err != nil {
			return nil, fmt.Errorf("item %d: %w", pl.Index+1, err)
		}
		if pl.LastOnPage {
			if err := w.EndPage(); err != nil {
				return nil, err
			}
			b = nil
		}
	}

	// An empty input still yields one blank page.
	if len(j.items) == 0 {
		if b, err = j.beginPage(w, layout.Placement{NewPage: true}); err != nil {
			return nil, err
		}
	}
	if b != nil {
		if err := w.EndPage(); err != nil {
			return nil, err
		}
	}

	return &Result{Items: len(j.items), Layout: j.name}, nil
}

// beginPage starts the page holding pl with the job's style applied
func (j *job) beginPage(w *writer.Writer, pl layout.Placement) (*contentstream.Builder, error) {
	c := j.grid.Config
	b, err := w.BeginPage(c.PageWidth, c.PageHeight)
	if err != nil {
		return nil, err
	}
	b.ApplyStyle(j.style)

	j.logger.Debug("starting page",
		zap.Int("page", pl.Position.Page+1),
		zap.Int("item", pl.Index+1),
		zap.Int("capacity", j.grid.Capacity()),
	)
	return b, nil
}

// showCentered shows line centred on center
func (j *job) showCentered(b *contentstream.Builder, fontName string, line encodedLine, center model.Point) {
	origin := layout.CenterText(line.width, center.X, center.Y, j.size)
	b.ShowText(fontName, j.size, origin.X, origin.Y, line.data)
}

// showStacked shows lines as a block centred on center
func (j *job) showStacked(b *contentstream.Builder, fontName string, lines []encodedLine, center model.Point) {
	centers := layout.StackLines(center, len(lines), lineLeading*j.size)
	for i, line := range lines {
		j.showCentered(b, fontName, line, centers[i])
	}
}

// drawTriplet draws three boxes side by side, one line in each, joined by
// hearts drawn in the gaps
func drawTriplet(j *job, b *contentstream.Builder, fontName string, pos layout.Position, lines []encodedLine) error {
	c := j.grid.Config
	for i := 0; i < j.grid.Span; i++ {
		box := j.grid.ObjectBox(pos, i)
		b.StrokeRect(box)
		if i < len(lines) {
			j.showCentered(b, fontName, lines[i], box.Center())
		}
		if i == j.grid.Span-1 {
			break
		}

		side := c.ObjectHeight / 3
		center := model.Point{X: box.Right() + c.ObjectPaddingX/2, Y: box.Center().Y}
		heart, err := puzzle.Heart(model.NewBBoxAround(center, side, side), j.heartSamples)
		if err != nil {
			return err
		}
		if err := b.StrokePath(heart); err != nil {
			return err
		}
	}
	return nil
}

// drawTag draws one box with every line stacked in it
func drawTag(j *job, b *contentstream.Builder, fontName string, pos layout.Position, lines []encodedLine) error {
	box := j.grid.ItemBox(pos)
	b.StrokeRect(box)
	j.showStacked(b, fontName, lines, box.Center())
	return nil
}

// drawPuzzle draws a square puzzle piece centred in the cell with the lines
// stacked over it
func drawPuzzle(j *job, b *contentstream.Builder, fontName string, pos layout.Position, lines []encodedLine) error {
	box := j.grid.ItemBox(pos)
	side := math.Min(box.Width, box.Height)
	center := box.Center()

	piece, err := puzzle.BuildPiece(model.Point{X: center.X - side/2, Y: center.Y - side/2}, side)
	if err != nil {
		return err
	}
	if err := b.StrokePath(piece); err != nil {
		return err
	}
	j.showStacked(b, fontName, lines, center)
	return nil
}
