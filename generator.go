package haikupuzzle

import (
	"fmt"
	"io"

	"github.com/tsawler/haikupuzzle/config"
	"github.com/tsawler/haikupuzzle/font"
	"github.com/tsawler/haikupuzzle/model"
	"github.com/tsawler/haikupuzzle/source"
	"github.com/tsawler/haikupuzzle/writer"
	"go.uber.org/zap"
)

// Result summarises a finished render.
type Result struct {
	// Items is the number of haikus (or jigsaw pieces) drawn
	Items int

	// Pages is the number of pages written
	Pages int

	// Layout is the layout used
	Layout string

	// Path is the output file, empty for Render
	Path string
}

// Generator provides a fluent interface for rendering haiku sheets.
// Each configuration method returns a new Generator instance, making it
// safe to branch a chain into several renders.
type Generator struct {
	// Source
	filename string
	haikus   []model.Haiku
	jigsaw   *jigsawSheet

	// true once haikus holds the input
	loaded bool

	// Configuration
	options RenderOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Generator with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (g *Generator) clone() *Generator {
	return &Generator{
		filename: g.filename,
		haikus:   g.haikus,
		jigsaw:   g.jigsaw,
		loaded:   g.loaded,
		options:  g.options.clone(),
		err:      g.err,
	}
}

// ============================================================================
// Configuration Methods (return new Generator instance)
// ============================================================================

// WithConfig replaces the settings. A nil config restores the defaults.
//
// Example:
//
//	cfg, err := config.Load("haikupuzzle.yaml")
//	res, err := haikupuzzle.Open("haikus.csv").WithConfig(cfg).WriteFile("out.pdf")
func (g *Generator) WithConfig(cfg *config.Config) *Generator {
	newGen := g.clone()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := *cfg
	newGen.options.cfg = &c
	return newGen
}

// Layout selects how each haiku is drawn: "triplet", "tag" or "puzzle".
//
// Example:
//
//	res, err := haikupuzzle.Open("haikus.csv").Layout("tag").WriteFile("out.pdf")
func (g *Generator) Layout(name string) *Generator {
	newGen := g.clone()
	if !config.IsValidLayout(name) {
		newGen.err = model.NewConfigError("layout", "invalid layout %q (valid: %v)", name, config.ValidLayouts)
		return newGen
	}
	newGen.options.layout = name
	return newGen
}

// Font sets the text font, overriding the configured font file.
func (g *Generator) Font(f *font.TrueTypeFont) *Generator {
	newGen := g.clone()
	newGen.options.font = f
	return newGen
}

// HeartSamples sets the number of points used to draw each heart connector
// of the triplet layout. It must be at least 3.
func (g *Generator) HeartSamples(n int) *Generator {
	newGen := g.clone()
	if n < 3 {
		newGen.err = model.NewConfigError("heart_samples", "must be at least 3, got %d", n)
		return newGen
	}
	newGen.options.heartSamples = n
	return newGen
}

// Logger sets the logger. Page breaks are logged at debug level and the run
// summary at info level. A nil logger discards everything.
func (g *Generator) Logger(l *zap.Logger) *Generator {
	newGen := g.clone()
	if l == nil {
		l = zap.NewNop()
	}
	newGen.options.logger = l
	return newGen
}

// Compress turns Flate compression of content and font streams on or off.
// It is on by default.
func (g *Generator) Compress(on bool) *Generator {
	newGen := g.clone()
	newGen.options.compress = on
	return newGen
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Haikus returns the input haikus, reading the table on every call when
// the Generator was created with Open.
func (g *Generator) Haikus() ([]model.Haiku, error) {
	if g.err != nil {
		return nil, g.err
	}
	if g.loaded {
		return g.haikus, nil
	}
	if g.filename == "" {
		return nil, fmt.Errorf("no input file specified")
	}

	opts, err := g.options.cfg.SourceOptions()
	if err != nil {
		return nil, err
	}
	return source.ReadFile(g.filename, opts)
}

// WriteFile renders the sheet into a new PDF file at path. Every
// configuration and input error is reported before the file is created.
//
// Example:
//
//	res, err := haikupuzzle.Open("haikus.csv").WriteFile("out.pdf")
func (g *Generator) WriteFile(path string) (*Result, error) {
	j, err := g.prepare()
	if err != nil {
		return nil, err
	}

	w, err := writer.Create(path)
	if err != nil {
		return nil, err
	}
	res, err := g.run(j, w)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Render writes the sheet as a PDF onto out.
//
// Example:
//
//	var buf bytes.Buffer
//	res, err := haikupuzzle.FromHaikus(items).Render(&buf)
func (g *Generator) Render(out io.Writer) (*Result, error) {
	j, err := g.prepare()
	if err != nil {
		return nil, err
	}

	w, err := writer.New(out)
	if err != nil {
		return nil, err
	}
	return g.run(j, w)
}

// run renders j and closes w exactly once.
func (g *Generator) run(j *job, w *writer.Writer) (res *Result, err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			res, err = nil, cerr
		}
	}()

	w.SetCompression(g.options.compress)
	w.SetMetadata(g.options.cfg.Metadata())

	res, err = j.render(w)
	if err != nil {
		return nil, err
	}

	// Close writes the trailer; the page count is final before it.
	res.Pages = w.PageCount()
	g.options.logger.Info("rendered sheet",
		zap.String("layout", res.Layout),
		zap.Int("items", res.Items),
		zap.Int("pages", res.Pages),
	)
	return res, nil
}
