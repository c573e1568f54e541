package font

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/haikupuzzle/model"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// PDF font descriptor flags
const (
	flagFixedPitch  = 1 << 0
	flagNonsymbolic = 1 << 5
	flagItalic      = 1 << 6
)

// DefaultWidth is used when a glyph advance cannot be read
const DefaultWidth = 500.0

// FontDescriptor holds the metrics written to a PDF FontDescriptor
// dictionary. All values are in 1000ths of an em.
type FontDescriptor struct {
	FontName    string
	FontFamily  string // Display family, e.g. "Go"
	Flags       int
	FontBBox    [4]float64 // [llx lly urx ury]
	ItalicAngle float64
	Ascent      float64
	Descent     float64 // Negative, below the baseline
	CapHeight   float64
	StemV       float64
	AvgWidth    float64
	MaxWidth    float64
}

// TrueTypeFont is a parsed TrueType font program ready to be embedded
type TrueTypeFont struct {
	// BaseFont is the PostScript name written as /BaseFont
	BaseFont string
	Encoding string

	// FontProgram is the raw .ttf data written as FontFile2
	FontProgram []byte

	FontDescriptor *FontDescriptor

	// Widths for codes FirstChar..LastChar, in 1000ths of an em
	widths [LastChar - FirstChar + 1]float64
}

// LoadFile reads and parses a TrueType font file
func LoadFile(path string) (*TrueTypeFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.ResourceError{Op: "load font", Path: path, Err: err}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, &model.ResourceError{Op: "parse font", Path: path, Err: err}
	}
	return f, nil
}

// GoBold returns the built-in Go Bold face
func GoBold() (*TrueTypeFont, error) {
	return Parse(gobold.TTF)
}

// Parse parses a TrueType font program
func Parse(data []byte) (*TrueTypeFont, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TrueType font: %w", err)
	}

	tt := &TrueTypeFont{
		Encoding:    Encoding,
		FontProgram: data,
	}

	var buf sfnt.Buffer
	tt.BaseFont = postScriptName(sf, &buf)

	if err := tt.loadWidths(sf, &buf); err != nil {
		return nil, err
	}
	desc, err := tt.buildDescriptor(sf, &buf)
	if err != nil {
		return nil, err
	}
	tt.FontDescriptor = desc

	return tt, nil
}

// postScriptName returns the font's PostScript name, falling back to the
// full name with spaces removed
func postScriptName(sf *sfnt.Font, buf *sfnt.Buffer) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDPostScript, sfnt.NameIDFull, sfnt.NameIDFamily} {
		name, err := sf.Name(buf, id)
		if err != nil || name == "" {
			continue
		}
		name = strings.Map(func(r rune) rune {
			if r <= ' ' || r > '~' || strings.ContainsRune("()<>[]{}/%#", r) {
				return -1
			}
			return r
		}, name)
		if name != "" {
			return name
		}
	}
	return "EmbeddedFont"
}

// unitsPPEM scales metrics to 1000 units per em
var unitsPPEM = fixed.I(1000)

func toUnits(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// loadWidths reads the advance of the glyph behind every WinAnsi code
func (tt *TrueTypeFont) loadWidths(sf *sfnt.Font, buf *sfnt.Buffer) error {
	for code := FirstChar; code <= LastChar; code++ {
		r := DecodeWinAnsi(byte(code))
		gi, err := sf.GlyphIndex(buf, r)
		if err != nil {
			return fmt.Errorf("glyph index for %q: %w", r, err)
		}
		adv, err := sf.GlyphAdvance(buf, gi, unitsPPEM, xfont.HintingNone)
		if err != nil {
			tt.widths[code-FirstChar] = DefaultWidth
			continue
		}
		tt.widths[code-FirstChar] = toUnits(adv)
	}
	return nil
}

// buildDescriptor reads the font-wide metrics
func (tt *TrueTypeFont) buildDescriptor(sf *sfnt.Font, buf *sfnt.Buffer) (*FontDescriptor, error) {
	m, err := sf.Metrics(buf, unitsPPEM, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read font metrics: %w", err)
	}
	bounds, err := sf.Bounds(buf, unitsPPEM, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read font bounds: %w", err)
	}

	desc := &FontDescriptor{
		FontName: tt.BaseFont,
		Flags:    flagNonsymbolic,
		// Bounds are y-down; PDF boxes are y-up.
		FontBBox: [4]float64{
			toUnits(bounds.Min.X), -toUnits(bounds.Max.Y),
			toUnits(bounds.Max.X), -toUnits(bounds.Min.Y),
		},
		Ascent:    toUnits(m.Ascent),
		Descent:   -toUnits(m.Descent),
		CapHeight: toUnits(m.CapHeight),
		StemV:     80,
	}
	if family, err := sf.Name(buf, sfnt.NameIDFamily); err == nil {
		desc.FontFamily = family
	}
	if desc.CapHeight == 0 {
		desc.CapHeight = desc.Ascent
	}
	if strings.Contains(strings.ToLower(tt.BaseFont), "bold") {
		desc.StemV = 120
	}

	if post := sf.PostTable(); post != nil {
		desc.ItalicAngle = post.ItalicAngle
		if post.IsFixedPitch {
			desc.Flags |= flagFixedPitch
		}
		if post.ItalicAngle != 0 {
			desc.Flags |= flagItalic
		}
	}

	total := 0.0
	for _, w := range tt.widths {
		total += w
		if w > desc.MaxWidth {
			desc.MaxWidth = w
		}
	}
	desc.AvgWidth = total / float64(len(tt.widths))

	return desc, nil
}

// WithFamily returns a copy of tt whose descriptor names family as the
// display family. The font program and widths are shared.
func (tt *TrueTypeFont) WithFamily(family string) *TrueTypeFont {
	out := *tt
	if tt.FontDescriptor != nil {
		desc := *tt.FontDescriptor
		desc.FontFamily = family
		out.FontDescriptor = &desc
	}
	return &out
}

// Widths returns the widths of codes FirstChar..LastChar
func (tt *TrueTypeFont) Widths() []float64 {
	out := make([]float64, len(tt.widths))
	copy(out, tt.widths[:])
	return out
}

// GetCodeWidth returns the width of a WinAnsi character code
func (tt *TrueTypeFont) GetCodeWidth(code byte) float64 {
	if code < FirstChar {
		return 0
	}
	return tt.widths[int(code)-FirstChar]
}

// GetWidth returns the width of a character (in 1000ths of em). Characters
// outside WinAnsi get DefaultWidth.
func (tt *TrueTypeFont) GetWidth(r rune) float64 {
	data, err := EncodeWinAnsi(string(r))
	if err != nil || len(data) != 1 {
		return DefaultWidth
	}
	return tt.GetCodeWidth(data[0])
}

// Encode converts text to the bytes written in a Tj operand
func (tt *TrueTypeFont) Encode(s string) ([]byte, error) {
	return EncodeWinAnsi(s)
}

// EncodedWidth returns the width in points of already encoded text at size
func (tt *TrueTypeFont) EncodedWidth(data []byte, size float64) float64 {
	total := 0.0
	for _, c := range data {
		total += tt.GetCodeWidth(c)
	}
	return total * size / 1000
}

// StringWidth returns the width in points of s set at size
func (tt *TrueTypeFont) StringWidth(s string, size float64) (float64, error) {
	data, err := tt.Encode(s)
	if err != nil {
		return 0, err
	}
	return tt.EncodedWidth(data, size), nil
}
