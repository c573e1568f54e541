package haikupuzzle

import (
	"fmt"
	"math"

	"github.com/tsawler/haikupuzzle/contentstream"
	"github.com/tsawler/haikupuzzle/layout"
	"github.com/tsawler/haikupuzzle/model"
	"github.com/tsawler/haikupuzzle/puzzle"
	"github.com/tsawler/haikupuzzle/writer"
)

// jigsawGap is the space between neighbouring pieces, in piece sizes
const jigsawGap = 0.1

// jigsawSheet is a rows x cols block of blank pieces
type jigsawSheet struct {
	rows int
	cols int
	size float64
}

// prepareJigsaw lays the sheet out on the configured page. Each row of the
// sheet is one grid item spanning cols cells, so rows wrap onto new pages
// whole.
func (j *job) prepareJigsaw(s *jigsawSheet, pc layout.PageConfig) error {
	if s.rows < 1 || s.cols < 1 {
		return model.NewConfigError("jigsaw", "rows and cols must be at least 1, got %d x %d", s.rows, s.cols)
	}
	if math.IsNaN(s.size) || math.IsInf(s.size, 0) || s.size <= 0 {
		return model.NewConfigError("jigsaw", "piece size must be positive, got %v", s.size)
	}

	pc.ObjectWidth = s.size
	pc.ObjectHeight = s.size
	pc.ObjectPaddingX = jigsawGap * s.size
	pc.ObjectPaddingY = jigsawGap * s.size

	grid, err := layout.NewGrid(pc, s.cols)
	if err != nil {
		return fmt.Errorf("jigsaw of %d columns: %w", s.cols, err)
	}

	j.name = "jigsaw"
	j.grid = grid
	j.sheet = s
	j.pieces = s.rows * s.cols
	return nil
}

// renderJigsaw draws every piece of the sheet
func (j *job) renderJigsaw(w *writer.Writer) (*Result, error) {
	var (
		b   *contentstream.Builder
		err error
	)
	pag := layout.NewPaginator(j.grid)
	for r := 0; r < j.sheet.rows; r++ {
		pl := pag.Next()
		if b == nil {
			if b, err = j.beginPage(w, pl); err != nil {
				return nil, err
			}
		}
		for c := 0; c < j.sheet.cols; c++ {
			box := j.grid.ObjectBox(pl.Position, c)
			piece, err := puzzle.BuildPiece(model.Point{X: box.X, Y: box.Y}, j.sheet.size)
			if err != nil {
				return nil, err
			}
			if err := b.StrokePath(piece); err != nil {
				return nil, err
			}
		}
		if pl.LastOnPage {
			if err := w.EndPage(); err != nil {
				return nil, err
			}
			b = nil
		}
	}
	if b != nil {
		if err := w.EndPage(); err != nil {
			return nil, err
		}
	}

	return &Result{Items: j.pieces, Layout: j.name}, nil
}
