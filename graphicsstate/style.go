package graphicsstate

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a colour with components in [0, 1]
type RGB [3]float64

// Black and white.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
)

// ParseHexColor parses "#rrggbb" or "rrggbb" into an RGB colour
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid colour %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return RGB{
		float64(v>>16&0xff) / 255,
		float64(v>>8&0xff) / 255,
		float64(v&0xff) / 255,
	}, nil
}

// Valid reports whether every component lies in [0, 1]
func (c RGB) Valid() bool {
	for _, v := range c {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// RenderStyle describes how paths are stroked and text is filled. It is a
// value type: changing a style means building a new one.
type RenderStyle struct {
	StrokeColor RGB
	FillColor   RGB
	LineWidth   float64
}

// DefaultStyle strokes and fills in black with a one point line.
func DefaultStyle() RenderStyle {
	return RenderStyle{
		StrokeColor: Black,
		FillColor:   Black,
		LineWidth:   1.0,
	}
}

// WithStrokeColor returns a copy of s with a different stroke colour
func (s RenderStyle) WithStrokeColor(c RGB) RenderStyle {
	s.StrokeColor = c
	return s
}

// WithLineWidth returns a copy of s with a different line width
func (s RenderStyle) WithLineWidth(w float64) RenderStyle {
	s.LineWidth = w
	return s
}

// Validate checks colour ranges and line width
func (s RenderStyle) Validate() error {
	if !s.StrokeColor.Valid() {
		return fmt.Errorf("stroke colour out of range: %v", s.StrokeColor)
	}
	if !s.FillColor.Valid() {
		return fmt.Errorf("fill colour out of range: %v", s.FillColor)
	}
	if s.LineWidth < 0 {
		return fmt.Errorf("negative line width: %v", s.LineWidth)
	}
	return nil
}
