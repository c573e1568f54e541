package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/haikupuzzle/model"
)

// ErrZeroCapacity is returned when not a single item fits on a page
var ErrZeroCapacity = errors.New("grid has zero capacity")

// PageConfig holds page and object dimensions in points
type PageConfig struct {
	PageWidth  float64
	PageHeight float64

	// Margins on each side of the page
	PagePaddingX float64
	PagePaddingY float64

	// Size of one object
	ObjectWidth  float64
	ObjectHeight float64

	// Space between neighbouring objects
	ObjectPaddingX float64
	ObjectPaddingY float64
}

// Validate checks that every dimension is finite, sizes are positive and
// paddings are not negative
func (c PageConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"page_width", c.PageWidth},
		{"page_height", c.PageHeight},
		{"object_width", c.ObjectWidth},
		{"object_height", c.ObjectHeight},
	}
	for _, f := range positive {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return model.NewConfigError(f.name, "must be positive, got %v", f.value)
		}
	}

	paddings := []struct {
		name  string
		value float64
	}{
		{"page_padding_x", c.PagePaddingX},
		{"page_padding_y", c.PagePaddingY},
		{"object_padding_x", c.ObjectPaddingX},
		{"object_padding_y", c.ObjectPaddingY},
	}
	for _, f := range paddings {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return model.NewConfigError(f.name, "must not be negative, got %v", f.value)
		}
	}
	return nil
}

// UsableWidth returns the page width inside the margins
func (c PageConfig) UsableWidth() float64 {
	return c.PageWidth - 2*c.PagePaddingX
}

// UsableHeight returns the page height inside the margins
func (c PageConfig) UsableHeight() float64 {
	return c.PageHeight - 2*c.PagePaddingY
}

// ItemWidth returns the horizontal pitch of the grid
func (c PageConfig) ItemWidth() float64 {
	return c.ObjectWidth + c.ObjectPaddingX
}

// ItemHeight returns the vertical pitch of the grid
func (c PageConfig) ItemHeight() float64 {
	return c.ObjectHeight + c.ObjectPaddingY
}

// GridCapacity returns how many whole items fit: rows = floor(pageHeight /
// itemHeight), cols = floor(pageWidth / itemWidth). Either may be zero.
func GridCapacity(itemWidth, itemHeight, pageWidth, pageHeight float64) (rows, cols int) {
	if itemWidth <= 0 || itemHeight <= 0 || pageWidth <= 0 || pageHeight <= 0 {
		return 0, 0
	}
	return int(math.Floor(pageHeight / itemHeight)), int(math.Floor(pageWidth / itemWidth))
}

// Position locates an item: the page, and the row and column of its first
// cell. Row 0 is the top row.
type Position struct {
	Page int
	Row  int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("page %d row %d col %d", p.Page, p.Row, p.Col)
}

// PositionFor maps a sequential cell index to its grid position, filling
// rows left to right and pages top to bottom. rows and cols must be
// positive; otherwise the zero Position is returned.
func PositionFor(index, rows, cols int) Position {
	if rows <= 0 || cols <= 0 || index < 0 {
		return Position{}
	}
	perPage := rows * cols
	return Position{
		Page: index / perPage,
		Row:  (index % perPage) / cols,
		Col:  index % cols,
	}
}

// WrapSpan moves an item that needs span cells and would run past the last
// column to column 0 of the next row, or of the next page's first row when
// the row is the last one
func WrapSpan(pos Position, span, rows, cols int) Position {
	if pos.Col+span <= cols {
		return pos
	}
	pos.Col = 0
	pos.Row++
	if pos.Row >= rows {
		pos.Row = 0
		pos.Page++
	}
	return pos
}

// ItemsPerPage returns how many items of the given span fit on one page
func ItemsPerPage(rows, cols, span int) int {
	if span <= 1 {
		return rows * cols
	}
	return rows * (cols / span)
}

// ShouldStartNewPage reports whether item index is the last one on its
// page, so a new page must be started before item index+1. The capacity
// is rows*(cols/span) so that breaks fall where the Paginator's wrap guard
// fills a page; the Paginator reports it as Placement.LastOnPage.
func ShouldStartNewPage(index, rows, cols, span int) bool {
	capacity := ItemsPerPage(rows, cols, span)
	if capacity <= 0 {
		return false
	}
	return (index+1)%capacity == 0
}

// Grid is a validated page layout with its computed capacity
type Grid struct {
	Config PageConfig
	Rows   int
	Cols   int
	Span   int
}

// NewGrid computes the grid for cfg with items spanning span cells. It
// fails with a configuration error when the dimensions are invalid, when
// no row or column fits, or when an item is wider than a row.
func NewGrid(cfg PageConfig, span int) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if span < 1 {
		return nil, model.NewConfigError("span", "must be at least 1, got %d", span)
	}

	rows, cols := GridCapacity(cfg.ItemWidth(), cfg.ItemHeight(), cfg.UsableWidth(), cfg.UsableHeight())
	if rows == 0 || cols == 0 {
		err := model.NewConfigError("grid", "%d rows x %d cols fit a %.2f x %.2f pt usable area",
			rows, cols, cfg.UsableWidth(), cfg.UsableHeight())
		return nil, fmt.Errorf("%w: %w", ErrZeroCapacity, err)
	}
	if span > cols {
		return nil, model.NewConfigError("grid", "an item spans %d cells but only %d columns fit", span, cols)
	}

	return &Grid{Config: cfg, Rows: rows, Cols: cols, Span: span}, nil
}

// Capacity returns the number of items per page
func (g *Grid) Capacity() int {
	return ItemsPerPage(g.Rows, g.Cols, g.Span)
}

// PageCount returns the number of pages n items need
func (g *Grid) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	capacity := g.Capacity()
	return (n + capacity - 1) / capacity
}

// CellBox returns the object rectangle of a single cell
func (g *Grid) CellBox(row, col int) model.BBox {
	c := g.Config
	x := c.PagePaddingX + float64(col)*c.ItemWidth()
	top := c.PageHeight - c.PagePaddingY - float64(row)*c.ItemHeight()
	return model.NewBBox(x, top-c.ObjectHeight, c.ObjectWidth, c.ObjectHeight)
}

// ObjectBox returns the rectangle of the i-th cell covered by the item at pos
func (g *Grid) ObjectBox(pos Position, i int) model.BBox {
	return g.CellBox(pos.Row, pos.Col+i)
}

// ItemBox returns the rectangle covering every cell of the item at pos,
// including the padding between them
func (g *Grid) ItemBox(pos Position) model.BBox {
	first := g.ObjectBox(pos, 0)
	last := g.ObjectBox(pos, g.Span-1)
	return model.NewBBox(first.X, first.Y, last.Right()-first.X, first.Height)
}

// Placement is where the paginator put one item
type Placement struct {
	Index    int
	Position Position

	// NewPage is set on the first item of every page, including the first
	NewPage bool

	// LastOnPage is set when the page is full after this item
	LastOnPage bool
}

// Paginator assigns grid positions to items in order. It keeps a running
// cell index so that cells skipped by a wrapped item are never reused.
type Paginator struct {
	grid  *Grid
	cell  int // Next free cell, counted across pages
	index int
	page  int
}

// NewPaginator starts placing items at the top left of the first page
func NewPaginator(g *Grid) *Paginator {
	return &Paginator{grid: g, page: -1}
}

// Next places the next item
func (p *Paginator) Next() Placement {
	g := p.grid
	pos := WrapSpan(PositionFor(p.cell, g.Rows, g.Cols), g.Span, g.Rows, g.Cols)
	p.cell = (pos.Page*g.Rows+pos.Row)*g.Cols + pos.Col + g.Span

	pl := Placement{
		Index:      p.index,
		Position:   pos,
		NewPage:    pos.Page != p.page,
		LastOnPage: ShouldStartNewPage(p.index, g.Rows, g.Cols, g.Span),
	}
	p.page = pos.Page
	p.index++
	return pl
}

// Pages returns the number of pages opened so far
func (p *Paginator) Pages() int {
	return p.page + 1
}
