// Package layout places items on a grid of fixed-size cells and positions
// text inside them.
//
// # Grid
//
// A [PageConfig] describes the page, its margins and the object drawn in
// each cell. [NewGrid] computes how many rows and columns fit the usable
// area and rejects layouts where nothing fits:
//
//	grid, err := layout.NewGrid(cfg, 3)
//	p := layout.NewPaginator(grid)
//	for _, item := range items {
//	    pl := p.Next()
//	    if pl.NewPage { ... }
//	    box := grid.ItemBox(pl.Position)
//	}
//
// Items can span several adjacent cells of one row. An item that would run
// past the last column moves to the start of the next row, and the cells it
// skipped stay empty.
//
// The index functions [PositionFor], [WrapSpan] and [ShouldStartNewPage]
// are the arithmetic underneath the [Paginator].
//
// # Text
//
// [CenterText] returns the origin for a run of text so that it appears
// centred on a point. The vertical position uses half the font size, which
// is close enough for the short lines drawn here.
package layout
