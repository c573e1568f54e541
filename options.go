package haikupuzzle

import (
	"github.com/tsawler/haikupuzzle/config"
	"github.com/tsawler/haikupuzzle/font"
	"github.com/tsawler/haikupuzzle/puzzle"
	"go.uber.org/zap"
)

// RenderOptions holds configuration for rendering.
type RenderOptions struct {
	// Settings; never nil
	cfg *config.Config

	// Overrides cfg.Layout when set
	layout string

	// Overrides cfg.Font.Path when set
	font *font.TrueTypeFont

	logger       *zap.Logger
	compress     bool
	heartSamples int
}

// defaultOptions returns the default render options.
func defaultOptions() RenderOptions {
	return RenderOptions{
		cfg:          config.DefaultConfig(),
		logger:       zap.NewNop(),
		compress:     true,
		heartSamples: puzzle.DefaultHeartSamples,
	}
}

// clone creates a deep copy of RenderOptions. The font is shared; it is
// never modified after loading.
func (o RenderOptions) clone() RenderOptions {
	newOpts := o
	cfg := *o.cfg
	newOpts.cfg = &cfg
	return newOpts
}

// layoutName returns the layout in effect.
func (o RenderOptions) layoutName() string {
	if o.layout != "" {
		return o.layout
	}
	return o.cfg.Layout
}

// loadFont returns the explicit font, the configured file, or the built-in
// Go Bold face when no path is configured.
func (o RenderOptions) loadFont() (*font.TrueTypeFont, error) {
	if o.font != nil {
		return o.font, nil
	}
	if o.cfg.Font.Path == "" {
		return font.GoBold()
	}
	return font.LoadFile(o.cfg.Font.Path)
}
