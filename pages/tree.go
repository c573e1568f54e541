package pages

import (
	"github.com/tsawler/haikupuzzle/core"
	"github.com/tsawler/haikupuzzle/model"
)

// Catalog represents the PDF document catalog (root of document structure)
type Catalog struct {
	Pages core.IndirectRef
}

// Dict returns the catalog dictionary
func (c *Catalog) Dict() core.Dict {
	return core.Dict{
		"Type":  core.Name("Catalog"),
		"Pages": c.Pages,
	}
}

// PageTree is a flat page tree: a single /Pages node holding every page
type PageTree struct {
	kids []core.IndirectRef
}

// NewPageTree creates an empty page tree
func NewPageTree() *PageTree {
	return &PageTree{kids: make([]core.IndirectRef, 0)}
}

// Add appends a page
func (t *PageTree) Add(ref core.IndirectRef) {
	t.kids = append(t.kids, ref)
}

// Count returns the number of pages
func (t *PageTree) Count() int {
	return len(t.kids)
}

// Kids returns the page references in order
func (t *PageTree) Kids() []core.IndirectRef {
	return t.kids
}

// Dict returns the /Pages dictionary
func (t *PageTree) Dict() core.Dict {
	kids := make(core.Array, len(t.kids))
	for i, ref := range t.kids {
		kids[i] = ref
	}
	return core.Dict{
		"Type":  core.Name("Pages"),
		"Kids":  kids,
		"Count": core.Int(len(t.kids)),
	}
}

// Page represents a single page object
type Page struct {
	Parent   core.IndirectRef
	MediaBox model.BBox
	Contents core.IndirectRef

	// Fonts maps resource names (e.g. "F1") to font objects
	Fonts map[string]core.IndirectRef
}

// Width returns the page width
func (p *Page) Width() float64 {
	return p.MediaBox.Width
}

// Height returns the page height
func (p *Page) Height() float64 {
	return p.MediaBox.Height
}

// Resources returns the page resource dictionary
func (p *Page) Resources() core.Dict {
	fonts := make(core.Dict, len(p.Fonts))
	for name, ref := range p.Fonts {
		fonts[name] = ref
	}
	return core.Dict{
		"Font":    fonts,
		"ProcSet": core.Array{core.Name("PDF"), core.Name("Text")},
	}
}

// Dict returns the /Page dictionary
func (p *Page) Dict() core.Dict {
	box := p.MediaBox
	return core.Dict{
		"Type":      core.Name("Page"),
		"Parent":    p.Parent,
		"MediaBox":  core.RealArray(box.Left(), box.Bottom(), box.Right(), box.Top()),
		"Contents":  p.Contents,
		"Resources": p.Resources(),
	}
}
