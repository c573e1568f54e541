package haikupuzzle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/tsawler/haikupuzzle/config"
	"github.com/tsawler/haikupuzzle/core"
	"github.com/tsawler/haikupuzzle/layout"
	"github.com/tsawler/haikupuzzle/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

// smallConfig returns a 300 x 200 pt page without padding holding 3 x 4
// cells of 100 x 50 pt, so four triplets fit on a page
func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Page.Width = 300
	cfg.Page.Height = 200
	cfg.Page.PaddingX = 0
	cfg.Page.PaddingY = 0
	cfg.Object.Width = 100
	cfg.Object.Height = 50
	cfg.Object.PaddingX = 0
	cfg.Object.PaddingY = 0
	cfg.Font.Path = ""
	cfg.Font.Size = 8
	return cfg
}

func testHaikus(t *testing.T, n int) []model.Haiku {
	t.Helper()
	out := make([]model.Haiku, n)
	for i := range out {
		h, err := model.NewHaiku("an old silent pond", "a frog jumps in", "splash! silence")
		if err != nil {
			t.Fatalf("NewHaiku: %v", err)
		}
		h.Row = i + 2
		out[i] = h
	}
	return out
}

func render(t *testing.T, g *Generator) (*Result, []byte) {
	t.Helper()
	var buf bytes.Buffer
	res, err := g.Render(&buf)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return res, buf.Bytes()
}

func TestPageBreaks(t *testing.T) {
	tests := []struct {
		items int
		pages int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
	}

	for _, tt := range tests {
		res, data := render(t, FromHaikus(testHaikus(t, tt.items)).WithConfig(smallConfig()))

		if res.Pages != tt.pages {
			t.Errorf("%d items: Pages = %d, want %d", tt.items, res.Pages, tt.pages)
		}
		if got := len(pageObject.FindAll(data, -1)); got != tt.pages {
			t.Errorf("%d items: found %d page objects, want %d", tt.items, got, tt.pages)
		}
		if res.Items != tt.items {
			t.Errorf("Items = %d, want %d", res.Items, tt.items)
		}
		if res.Layout != config.LayoutTriplet {
			t.Errorf("Layout = %q, want triplet", res.Layout)
		}
	}
}

func TestLastItemAloneOnNewPage(t *testing.T) {
	// Record the page of every item through the debug log
	observed, logs := observer.New(zapcore.DebugLevel)
	_, _ = render(t, FromHaikus(testHaikus(t, 5)).WithConfig(smallConfig()).Logger(zap.New(observed)))

	starts := logs.FilterMessage("starting page").All()
	if len(starts) != 2 {
		t.Fatalf("expected 2 page starts, got %d", len(starts))
	}
	if item := starts[1].ContextMap()["item"]; item != int64(5) {
		t.Errorf("second page starts with item %v, want 5", item)
	}

	summary := logs.FilterMessage("rendered sheet").All()
	if len(summary) != 1 {
		t.Fatalf("expected one summary entry, got %d", len(summary))
	}
	if summary[0].Level != zapcore.InfoLevel {
		t.Errorf("summary logged at %v, want info", summary[0].Level)
	}
	if pages := summary[0].ContextMap()["pages"]; pages != int64(2) {
		t.Errorf("summary pages = %v, want 2", pages)
	}
}

func TestLayouts(t *testing.T) {
	for _, name := range config.ValidLayouts {
		t.Run(name, func(t *testing.T) {
			res, data := render(t, FromHaikus(testHaikus(t, 3)).
				WithConfig(smallConfig()).
				Layout(name).
				Compress(false))

			if res.Layout != name {
				t.Errorf("Layout = %q, want %q", res.Layout, name)
			}
			if !bytes.Contains(data, []byte("(an old silent pond) Tj")) {
				t.Error("expected first line to be shown")
			}
			// Every layout strokes something
			if !bytes.Contains(data, []byte("\nS\n")) {
				t.Error("expected stroke operators")
			}
		})
	}
}

func TestTripletDrawsHearts(t *testing.T) {
	_, data := render(t, FromHaikus(testHaikus(t, 1)).WithConfig(smallConfig()).Compress(false))

	// Three boxes per triplet
	if got := bytes.Count(data, []byte(" re\n")); got != 3 {
		t.Errorf("expected 3 rectangles, got %d", got)
	}
	// Two heart polylines, each a closed path
	if got := bytes.Count(data, []byte("\nh\n")); got != 2 {
		t.Errorf("expected 2 closed hearts, got %d", got)
	}
}

func TestPuzzleLayoutDrawsPieces(t *testing.T) {
	_, data := render(t, FromHaikus(testHaikus(t, 2)).WithConfig(smallConfig()).Layout("puzzle").Compress(false))

	// Corner and notch arcs become curves
	if !bytes.Contains(data, []byte(" c\n")) {
		t.Error("expected curve operators from the piece outline")
	}
	if bytes.Contains(data, []byte(" re\n")) {
		t.Error("puzzle layout should not draw rectangles")
	}
}

var contentStream = regexp.MustCompile(`(?s)stream\n(.*?)\nendstream`)

func TestStyleAppliedOnEveryPage(t *testing.T) {
	cfg := smallConfig()
	cfg.Style.StrokeColor = "#ff0000"
	cfg.Style.LineWidth = 0.5

	res, data := render(t, FromHaikus(testHaikus(t, 5)).WithConfig(cfg).Compress(false))
	if res.Pages != 2 {
		t.Fatalf("Pages = %d, want 2", res.Pages)
	}

	var pages []string
	for _, m := range contentStream.FindAllSubmatch(data, -1) {
		// Page content shows text; the font program does not
		if bytes.Contains(m[1], []byte(" Tj\n")) {
			pages = append(pages, string(m[1]))
		}
	}
	if len(pages) != 2 {
		t.Fatalf("found %d page content streams, want 2", len(pages))
	}

	const style = "0.5 w\n1 0 0 RG\n0 0 0 rg\n"
	for i, content := range pages {
		if !strings.HasPrefix(content, style) {
			t.Errorf("page %d does not start with the style, got %q", i+1, content[:min(len(content), 40)])
		}
		for _, op := range []string{" w\n", " RG\n", " rg\n"} {
			if n := strings.Count(content, op); n != 1 {
				t.Errorf("page %d has %d %q operators, want 1", i+1, n, strings.TrimSpace(op))
			}
		}
	}
}

func TestHeartSamples(t *testing.T) {
	_, data := render(t, FromHaikus(testHaikus(t, 1)).WithConfig(smallConfig()).HeartSamples(10).Compress(false))

	// Two hearts of 10 points: one move and nine lines each
	if got := bytes.Count(data, []byte(" l\n")); got != 18 {
		t.Errorf("expected 18 line segments, got %d", got)
	}

	_, err := FromHaikus(testHaikus(t, 1)).HeartSamples(2).Render(&bytes.Buffer{})
	if !errors.Is(err, model.ErrConfig) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestFontFamilyName(t *testing.T) {
	cfg := smallConfig()
	cfg.Font.Name = "Quicksand Bold"

	_, data := render(t, FromHaikus(testHaikus(t, 1)).WithConfig(cfg).Compress(false))
	if !bytes.Contains(data, []byte("/FontFamily (Quicksand Bold)")) {
		t.Error("expected the configured font name in the font descriptor")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")

	res, err := FromHaikus(testHaikus(t, 2)).WithConfig(smallConfig()).WriteFile(path)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Error("missing PDF header")
	}
	if _, err := core.FindXRef(bytes.NewReader(data)); err != nil {
		t.Errorf("FindXRef: %v", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "haikus.csv")
	table := "line1;line2;line3\n" +
		"an old silent pond;a frog jumps in;splash! silence\n" +
		"\n" +
		"autumn moonlight;a worm digs silently;\n"
	if err := os.WriteFile(input, []byte(table), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := Open(input).WithConfig(smallConfig()).Layout("tag").WriteFile(filepath.Join(dir, "out.pdf"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if res.Items != 2 {
		t.Errorf("Items = %d, want 2", res.Items)
	}
}

func TestHaikusDoesNotModifyGenerator(t *testing.T) {
	input := filepath.Join(t.TempDir(), "haikus.csv")
	if err := os.WriteFile(input, []byte("h\na;b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	g := Open(input)
	first, err := g.Haikus()
	if err != nil {
		t.Fatalf("Haikus failed: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 haiku, got %d", len(first))
	}
	if g.loaded || g.haikus != nil {
		t.Error("Haikus must not store the input on the Generator")
	}

	// A later call sees the current file
	if err := os.WriteFile(input, []byte("h\na;b\nc;d\n"), 0644); err != nil {
		t.Fatal(err)
	}
	second, err := g.Haikus()
	if err != nil {
		t.Fatalf("Haikus failed: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("expected 2 haikus, got %d", len(second))
	}
}

func TestOpenMissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")

	_, err := Open("nonexistent.csv").WithConfig(smallConfig()).WriteFile(out)
	if !errors.Is(err, model.ErrResource) {
		t.Fatalf("expected resource error, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output must not be created when the input is missing")
	}
}

func TestMissingFont(t *testing.T) {
	cfg := smallConfig()
	cfg.Font.Path = filepath.Join(t.TempDir(), "missing.ttf")

	_, err := FromHaikus(testHaikus(t, 1)).WithConfig(cfg).Render(&bytes.Buffer{})
	if !errors.Is(err, model.ErrResource) {
		t.Fatalf("expected resource error, got %v", err)
	}
}

func TestZeroCapacity(t *testing.T) {
	cfg := smallConfig()
	cfg.Object.Width = 400
	out := filepath.Join(t.TempDir(), "out.pdf")

	_, err := FromHaikus(testHaikus(t, 1)).WithConfig(cfg).WriteFile(out)
	if !errors.Is(err, model.ErrConfig) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if !errors.Is(err, layout.ErrZeroCapacity) {
		t.Errorf("expected ErrZeroCapacity, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output must not be created for an invalid configuration")
	}
}

func TestTripletWiderThanPage(t *testing.T) {
	cfg := smallConfig()
	cfg.Object.Width = 120 // Only two columns fit

	_, err := FromHaikus(testHaikus(t, 1)).WithConfig(cfg).Render(&bytes.Buffer{})
	if !errors.Is(err, model.ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestUnencodableText(t *testing.T) {
	h, err := model.NewHaiku("古池や", "蛙飛び込む", "水の音")
	if err != nil {
		t.Fatal(err)
	}
	h.Row = 7

	_, err = FromHaikus([]model.Haiku{h}).WithConfig(smallConfig()).Render(&bytes.Buffer{})
	if !errors.Is(err, model.ErrMalformedRow) {
		t.Fatalf("expected malformed row error, got %v", err)
	}
	var rowErr *model.RowError
	if !errors.As(err, &rowErr) || rowErr.Row != 7 {
		t.Errorf("expected error for row 7, got %v", err)
	}
}

func TestInvalidLayout(t *testing.T) {
	_, err := FromHaikus(testHaikus(t, 1)).Layout("spiral").Render(&bytes.Buffer{})
	if !errors.Is(err, model.ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	res, data := render(t, FromHaikus(nil).WithConfig(smallConfig()))

	if res.Items != 0 {
		t.Errorf("Items = %d, want 0", res.Items)
	}
	if res.Pages != 1 || len(pageObject.FindAll(data, -1)) != 1 {
		t.Errorf("expected one blank page, got %d", res.Pages)
	}
}

func TestJigsaw(t *testing.T) {
	// 55 pt pitch on 300 x 200: 3 rows x 5 cols of cells
	tests := []struct {
		rows, cols int
		pages      int
	}{
		{2, 2, 1},
		{6, 2, 1}, // Two sheet rows share each grid row
		{7, 2, 2},
		{4, 5, 2},
	}
	for _, tt := range tests {
		res, data := render(t, Jigsaw(tt.rows, tt.cols, 50).WithConfig(smallConfig()).Compress(false))

		if res.Pages != tt.pages {
			t.Errorf("%dx%d: Pages = %d, want %d", tt.rows, tt.cols, res.Pages, tt.pages)
		}
		if res.Items != tt.rows*tt.cols {
			t.Errorf("%dx%d: Items = %d, want %d", tt.rows, tt.cols, res.Items, tt.rows*tt.cols)
		}
		if res.Layout != "jigsaw" {
			t.Errorf("Layout = %q, want jigsaw", res.Layout)
		}
		// One outline per piece
		if got := bytes.Count(data, []byte("\nh\n")); got != tt.rows*tt.cols {
			t.Errorf("%dx%d: %d closed outlines, want %d", tt.rows, tt.cols, got, tt.rows*tt.cols)
		}
	}
}

func TestJigsawInvalid(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		size       float64
	}{
		{"no rows", 0, 3, 50},
		{"negative size", 2, 2, -1},
		{"too wide", 1, 6, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Jigsaw(tt.rows, tt.cols, tt.size).WithConfig(smallConfig()).Render(&bytes.Buffer{})
			if !errors.Is(err, model.ErrConfig) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestChainImmutability(t *testing.T) {
	base := FromHaikus(testHaikus(t, 1))

	tag := base.Layout("tag")
	cfg := smallConfig()
	withCfg := base.WithConfig(cfg)
	cfg.Layout = "puzzle"

	if base.options.layoutName() != config.LayoutTriplet {
		t.Errorf("base layout changed to %q", base.options.layoutName())
	}
	if tag.options.layoutName() != config.LayoutTag {
		t.Errorf("tag layout = %q", tag.options.layoutName())
	}
	if withCfg.options.cfg.Layout != config.LayoutTriplet {
		t.Error("WithConfig must copy the config")
	}
	if base.options.cfg.Page.Width != 0 {
		t.Error("base config must keep its page size")
	}
}

func TestMust(t *testing.T) {
	// Test Must with successful result
	result := Must("hello", nil)
	if result != "hello" {
		t.Errorf("expected 'hello', got %q", result)
	}

	// Test Must with error (should panic)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must("", os.ErrNotExist)
}

func TestMetadata(t *testing.T) {
	cfg := smallConfig()
	cfg.Output.Title = "Spring haikus"
	cfg.Output.Author = "Issa"

	_, data := render(t, FromHaikus(testHaikus(t, 1)).WithConfig(cfg))

	for _, want := range []string{"/Title (Spring haikus)", "/Author (Issa)", "/Creator (haikupuzzle)"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in output", want)
		}
	}
}
