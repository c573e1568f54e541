package graphicsstate

import (
	"fmt"
)

// GraphicsState represents the part of the PDF graphics state a content
// builder has set so far
type GraphicsState struct {
	// Style in effect; nil until a style has been applied on the page
	Style *RenderStyle

	// Text state
	FontName string
	FontSize float64

	// Graphics state stack (for q/Q operators)
	stack []GraphicsState
}

// NewGraphicsState creates a new graphics state with nothing applied
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{}
}

// Clone creates a copy of the graphics state without its stack
func (gs *GraphicsState) Clone() GraphicsState {
	clone := GraphicsState{
		FontName: gs.FontName,
		FontSize: gs.FontSize,
	}
	if gs.Style != nil {
		s := *gs.Style
		clone.Style = &s
	}
	return clone
}

// Save pushes the current graphics state onto the stack (q operator)
func (gs *GraphicsState) Save() {
	gs.stack = append(gs.stack, gs.Clone())
}

// Restore pops a graphics state from the stack (Q operator)
func (gs *GraphicsState) Restore() error {
	if len(gs.stack) == 0 {
		return fmt.Errorf("graphics state stack underflow")
	}

	// Pop from stack
	saved := gs.stack[len(gs.stack)-1]
	gs.stack = gs.stack[:len(gs.stack)-1]

	// Restore state
	gs.Style = saved.Style
	gs.FontName = saved.FontName
	gs.FontSize = saved.FontSize

	return nil
}

// Depth returns the number of unmatched saves
func (gs *GraphicsState) Depth() int {
	return len(gs.stack)
}

// SetStyle records s as the style in effect
func (gs *GraphicsState) SetStyle(s RenderStyle) {
	gs.Style = &s
}

// HasStyle reports whether exactly s is already in effect
func (gs *GraphicsState) HasStyle(s RenderStyle) bool {
	return gs.Style != nil && *gs.Style == s
}

// SetFont sets the current font (Tf operator)
func (gs *GraphicsState) SetFont(name string, size float64) {
	gs.FontName = name
	gs.FontSize = size
}

// HasFont reports whether the font and size are already selected
func (gs *GraphicsState) HasFont(name string, size float64) bool {
	return gs.FontName == name && gs.FontSize == size
}
