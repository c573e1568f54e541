package pages

import (
	"fmt"
	"strings"

	"github.com/tsawler/haikupuzzle/model"
)

// PageSize is a named page size in points
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Standard page sizes, portrait
var (
	A3     = PageSize{Name: "A3", Width: 297 * model.Mm, Height: 420 * model.Mm}
	A4     = PageSize{Name: "A4", Width: 210 * model.Mm, Height: 297 * model.Mm}
	A5     = PageSize{Name: "A5", Width: 148 * model.Mm, Height: 210 * model.Mm}
	Letter = PageSize{Name: "Letter", Width: 8.5 * model.Inch, Height: 11 * model.Inch}
	Legal  = PageSize{Name: "Legal", Width: 8.5 * model.Inch, Height: 14 * model.Inch}
)

var namedSizes = map[string]PageSize{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
	"legal":  Legal,
}

// Landscape returns the size with the long side horizontal
func (s PageSize) Landscape() PageSize {
	if s.Width < s.Height {
		s.Width, s.Height = s.Height, s.Width
	}
	return s
}

// Portrait returns the size with the long side vertical
func (s PageSize) Portrait() PageSize {
	if s.Width > s.Height {
		s.Width, s.Height = s.Height, s.Width
	}
	return s
}

// IsLandscape reports whether the page is wider than it is tall
func (s PageSize) IsLandscape() bool {
	return s.Width > s.Height
}

// MediaBox returns the page rectangle with its origin at (0, 0)
func (s PageSize) MediaBox() model.BBox {
	return model.NewBBox(0, 0, s.Width, s.Height)
}

// String returns e.g. "A4 landscape (841.89 x 595.28 pt)"
func (s PageSize) String() string {
	orientation := "portrait"
	if s.IsLandscape() {
		orientation = "landscape"
	}
	return fmt.Sprintf("%s %s (%.2f x %.2f pt)", s.Name, orientation, s.Width, s.Height)
}

// ParsePageSize parses a size name optionally followed by an orientation,
// e.g. "A4", "a4 landscape", "Letter portrait". Names are case-insensitive.
func ParsePageSize(s string) (PageSize, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 || len(fields) > 2 {
		return PageSize{}, model.NewConfigError("page_size", "invalid page size %q", s)
	}

	size, ok := namedSizes[fields[0]]
	if !ok {
		return PageSize{}, model.NewConfigError("page_size", "unknown page size %q", fields[0])
	}

	if len(fields) == 2 {
		switch fields[1] {
		case "landscape":
			size = size.Landscape()
		case "portrait":
			size = size.Portrait()
		default:
			return PageSize{}, model.NewConfigError("page_size", "unknown orientation %q", fields[1])
		}
	}
	return size, nil
}
