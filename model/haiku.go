package model

import (
	"fmt"
	"strings"
)

// Line count bounds for a haiku row.
const (
	MinHaikuLines = 2
	MaxHaikuLines = 3
)

// Haiku is one input row: an ordered sequence of two or three text lines.
type Haiku struct {
	Lines []string

	// Row is the 1-indexed source row, zero when the haiku was built in code.
	Row int
}

// NewHaiku creates a haiku from its lines, validating the line count.
func NewHaiku(lines ...string) (Haiku, error) {
	h := Haiku{Lines: append([]string(nil), lines...)}
	if err := h.Validate(); err != nil {
		return Haiku{}, err
	}
	return h, nil
}

// Validate checks that the haiku has an acceptable number of lines.
func (h Haiku) Validate() error {
	if n := len(h.Lines); n < MinHaikuLines || n > MaxHaikuLines {
		return &RowError{
			Row:    h.Row,
			Reason: fmt.Sprintf("expected %d or %d lines, got %d", MinHaikuLines, MaxHaikuLines, n),
		}
	}
	return nil
}

// Line returns line i, or the empty string when the haiku is shorter.
func (h Haiku) Line(i int) string {
	if i < 0 || i >= len(h.Lines) {
		return ""
	}
	return h.Lines[i]
}

// String joins the lines with " / ".
func (h Haiku) String() string {
	return strings.Join(h.Lines, " / ")
}
