package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/haikupuzzle/graphicsstate"
	"github.com/tsawler/haikupuzzle/layout"
	"github.com/tsawler/haikupuzzle/model"
	"github.com/tsawler/haikupuzzle/pages"
	"github.com/tsawler/haikupuzzle/source"
	"gopkg.in/yaml.v3"
)

// Layout names
const (
	LayoutTriplet = "triplet"
	LayoutTag     = "tag"
	LayoutPuzzle  = "puzzle"
)

// ValidLayouts lists all supported layouts.
var ValidLayouts = []string{LayoutTriplet, LayoutTag, LayoutPuzzle}

// Config holds all haikupuzzle configuration.
type Config struct {
	// Layout selects how each haiku is drawn
	Layout string `yaml:"layout"`

	Page   PageConfig   `yaml:"page"`
	Object ObjectConfig `yaml:"object"`
	Font   FontConfig   `yaml:"font"`
	Style  StyleConfig  `yaml:"style"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// PageConfig configures the page.
type PageConfig struct {
	// Size is a page size name with optional orientation, e.g. "A4 landscape"
	Size string `yaml:"size"`

	// Width and Height, when both set, replace Size
	Width  Length `yaml:"width,omitempty"`
	Height Length `yaml:"height,omitempty"`

	PaddingX Length `yaml:"padding_x"`
	PaddingY Length `yaml:"padding_y"`
}

// ObjectConfig configures one drawn object (a card or a piece).
type ObjectConfig struct {
	Width    Length `yaml:"width"`
	Height   Length `yaml:"height"`
	PaddingX Length `yaml:"padding_x"`
	PaddingY Length `yaml:"padding_y"`
}

// FontConfig configures the text font.
type FontConfig struct {
	// Path to a TrueType file; empty selects the built-in Go Bold face
	Path string  `yaml:"path"`
	Name string  `yaml:"name"`
	Size float64 `yaml:"size"`
}

// StyleConfig configures stroke and text colours.
type StyleConfig struct {
	StrokeColor string  `yaml:"stroke_color"` // #rrggbb
	TextColor   string  `yaml:"text_color"`   // #rrggbb
	LineWidth   float64 `yaml:"line_width"`
}

// InputConfig configures how the haiku table is read.
type InputConfig struct {
	Delimiter string `yaml:"delimiter"`
	Header    bool   `yaml:"header"`
	Encoding  string `yaml:"encoding"`
}

// OutputConfig configures the generated document.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutTriplet,

		Page: PageConfig{
			Size:     "A4 landscape",
			PaddingX: Length(1 * model.Cm),
			PaddingY: Length(0.8 * model.Cm),
		},

		Object: ObjectConfig{
			Width:    Length(7 * model.Cm),
			Height:   Length(2.5 * model.Cm),
			PaddingX: Length(0.5 * model.Cm),
			PaddingY: Length(0.2 * model.Cm),
		},

		Font: FontConfig{
			Path: "./QuicksandBold700.ttf",
			Name: "Quicksand Bold",
			Size: 16,
		},

		Style: StyleConfig{
			StrokeColor: "#000000",
			TextColor:   "#000000",
			LineWidth:   1,
		},

		Input: InputConfig{
			Delimiter: ";",
			Header:    true,
			Encoding:  "utf-8",
		},

		Output: OutputConfig{
			Path:  "./haiku_puzzles.pdf",
			Title: "Haiku puzzles",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, &model.ResourceError{Op: "read config", Path: path, Err: err}
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &model.ConfigError{Field: path, Reason: fmt.Sprintf("failed to parse config: %v", err)}
		}
	}

	// Override with environment variables
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &model.ResourceError{Op: "write config", Path: path, Err: err}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if path, ok := os.LookupEnv("HAIKU_FONT_PATH"); ok {
		c.Font.Path = path
	}
	if size := os.Getenv("HAIKU_FONT_SIZE"); size != "" {
		v, err := strconv.ParseFloat(size, 64)
		if err != nil {
			return model.NewConfigError("HAIKU_FONT_SIZE", "invalid font size %q", size)
		}
		c.Font.Size = v
	}
	if size := os.Getenv("HAIKU_PAGE_SIZE"); size != "" {
		c.Page.Size = size
		c.Page.Width, c.Page.Height = 0, 0
	}
	if name := os.Getenv("HAIKU_LAYOUT"); name != "" {
		c.Layout = name
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !IsValidLayout(c.Layout) {
		return model.NewConfigError("layout", "invalid layout %q (valid: %v)", c.Layout, ValidLayouts)
	}

	pc, err := c.PageConfig()
	if err != nil {
		return err
	}
	if err := pc.Validate(); err != nil {
		return err
	}

	if !(c.Font.Size > 0) {
		return model.NewConfigError("font.size", "must be positive, got %v", c.Font.Size)
	}
	if _, err := c.RenderStyle(); err != nil {
		return err
	}
	if _, err := c.SourceOptions(); err != nil {
		return err
	}
	return nil
}

// IsValidLayout reports whether name is a supported layout.
func IsValidLayout(name string) bool {
	for _, l := range ValidLayouts {
		if name == l {
			return true
		}
	}
	return false
}

// PageSize returns the configured page size. Explicit dimensions win over
// the named size.
func (c *Config) PageSize() (pages.PageSize, error) {
	if c.Page.Width != 0 || c.Page.Height != 0 {
		if !(c.Page.Width > 0) || !(c.Page.Height > 0) {
			return pages.PageSize{}, model.NewConfigError("page", "width and height must both be positive, got %v x %v", c.Page.Width, c.Page.Height)
		}
		return pages.PageSize{Name: "Custom", Width: c.Page.Width.Points(), Height: c.Page.Height.Points()}, nil
	}
	return pages.ParsePageSize(c.Page.Size)
}

// PageConfig returns the grid dimensions in points.
func (c *Config) PageConfig() (layout.PageConfig, error) {
	size, err := c.PageSize()
	if err != nil {
		return layout.PageConfig{}, err
	}
	return layout.PageConfig{
		PageWidth:      size.Width,
		PageHeight:     size.Height,
		PagePaddingX:   c.Page.PaddingX.Points(),
		PagePaddingY:   c.Page.PaddingY.Points(),
		ObjectWidth:    c.Object.Width.Points(),
		ObjectHeight:   c.Object.Height.Points(),
		ObjectPaddingX: c.Object.PaddingX.Points(),
		ObjectPaddingY: c.Object.PaddingY.Points(),
	}, nil
}

// RenderStyle returns the stroke and text style.
func (c *Config) RenderStyle() (graphicsstate.RenderStyle, error) {
	stroke, err := graphicsstate.ParseHexColor(c.Style.StrokeColor)
	if err != nil {
		return graphicsstate.RenderStyle{}, model.NewConfigError("style.stroke_color", "%v", err)
	}
	text, err := graphicsstate.ParseHexColor(c.Style.TextColor)
	if err != nil {
		return graphicsstate.RenderStyle{}, model.NewConfigError("style.text_color", "%v", err)
	}
	style := graphicsstate.RenderStyle{StrokeColor: stroke, FillColor: text, LineWidth: c.Style.LineWidth}
	if err := style.Validate(); err != nil {
		return graphicsstate.RenderStyle{}, model.NewConfigError("style", "%v", err)
	}
	return style, nil
}

// SourceOptions returns the input reader options.
func (c *Config) SourceOptions() (source.Options, error) {
	delim := c.Input.Delimiter
	if strings.EqualFold(delim, "tab") || delim == `\t` {
		delim = "\t"
	}
	if utf8.RuneCountInString(delim) != 1 {
		return source.Options{}, model.NewConfigError("input.delimiter", "must be a single character, got %q", c.Input.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(delim)
	return source.Options{
		Delimiter: r,
		HasHeader: c.Input.Header,
		Encoding:  c.Input.Encoding,
	}, nil
}

// Metadata returns the document information for the output file.
func (c *Config) Metadata() model.Metadata {
	return model.Metadata{
		Title:   c.Output.Title,
		Author:  c.Output.Author,
		Creator: "haikupuzzle",
	}
}
