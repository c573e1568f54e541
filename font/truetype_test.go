package font

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/haikupuzzle/model"
	"golang.org/x/image/font/gofont/goregular"
)

func TestGoBold(t *testing.T) {
	f, err := GoBold()
	if err != nil {
		t.Fatalf("GoBold failed: %v", err)
	}

	if !strings.HasPrefix(f.BaseFont, "Go") || strings.Contains(f.BaseFont, " ") {
		t.Errorf("Expected a Go PostScript name without spaces, got '%s'", f.BaseFont)
	}
	if f.Encoding != "WinAnsiEncoding" {
		t.Errorf("Expected encoding 'WinAnsiEncoding', got '%s'", f.Encoding)
	}
	if len(f.FontProgram) == 0 {
		t.Error("Expected font program data")
	}
	if f.FontDescriptor.StemV != 120 {
		t.Errorf("Expected bold StemV 120, got %v", f.FontDescriptor.StemV)
	}
}

func TestWithFamily(t *testing.T) {
	f, err := GoBold()
	if err != nil {
		t.Fatalf("GoBold failed: %v", err)
	}
	if !strings.HasPrefix(f.FontDescriptor.FontFamily, "Go") {
		t.Errorf("Expected the Go family, got '%s'", f.FontDescriptor.FontFamily)
	}

	named := f.WithFamily("Quicksand Bold")
	if named.FontDescriptor.FontFamily != "Quicksand Bold" {
		t.Errorf("Expected family 'Quicksand Bold', got '%s'", named.FontDescriptor.FontFamily)
	}
	if strings.HasPrefix(f.FontDescriptor.FontFamily, "Quicksand") {
		t.Error("WithFamily must not modify the original font")
	}
	if named.BaseFont != f.BaseFont {
		t.Errorf("Expected BaseFont to be kept, got '%s'", named.BaseFont)
	}
}

func TestParse_Regular(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	desc := f.FontDescriptor
	if desc == nil {
		t.Fatal("Expected font descriptor")
	}
	if desc.FontName != f.BaseFont {
		t.Errorf("FontName = %q, want %q", desc.FontName, f.BaseFont)
	}
	if desc.Ascent <= 0 {
		t.Errorf("Expected positive ascent, got %v", desc.Ascent)
	}
	if desc.Descent >= 0 {
		t.Errorf("Expected negative descent, got %v", desc.Descent)
	}
	if desc.FontBBox[0] >= desc.FontBBox[2] || desc.FontBBox[1] >= desc.FontBBox[3] {
		t.Errorf("Expected a valid font bbox, got %v", desc.FontBBox)
	}
	if desc.Flags&flagNonsymbolic == 0 {
		t.Errorf("Expected nonsymbolic flag, got %d", desc.Flags)
	}
	if desc.Flags&flagFixedPitch != 0 {
		t.Errorf("Go Regular is proportional, got flags %d", desc.Flags)
	}
	if desc.StemV != 80 {
		t.Errorf("Expected StemV 80, got %v", desc.StemV)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("Expected error for invalid font data")
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.ttf"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
		if !errors.Is(err, model.ErrResource) {
			t.Errorf("Expected resource error, got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Expected wrapped not-exist error, got %v", err)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.ttf")
		if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		if !errors.Is(err, model.ErrResource) {
			t.Errorf("Expected resource error, got %v", err)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "regular.ttf")
		if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
			t.Fatal(err)
		}
		f, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if !strings.HasPrefix(f.BaseFont, "Go") {
			t.Errorf("Expected a Go PostScript name, got '%s'", f.BaseFont)
		}
	})
}

func TestWidths(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	widths := f.Widths()
	if len(widths) != LastChar-FirstChar+1 {
		t.Fatalf("Expected %d widths, got %d", LastChar-FirstChar+1, len(widths))
	}

	space := f.GetWidth(' ')
	if space <= 0 || space >= 1000 {
		t.Errorf("Expected space width in (0, 1000), got %v", space)
	}
	if widths[0] != space {
		t.Errorf("Widths()[0] = %v, want space width %v", widths[0], space)
	}
	if f.GetWidth('W') <= f.GetWidth('i') {
		t.Errorf("Expected 'W' wider than 'i', got %v and %v", f.GetWidth('W'), f.GetWidth('i'))
	}
	if f.GetWidth('é') <= 0 {
		t.Errorf("Expected a width for 'é', got %v", f.GetWidth('é'))
	}
	if f.GetWidth('雪') != DefaultWidth {
		t.Errorf("Expected DefaultWidth for non-WinAnsi character, got %v", f.GetWidth('雪'))
	}

	// Widths returns a copy.
	widths[0] = -1
	if f.GetWidth(' ') == -1 {
		t.Error("Widths() must not expose internal storage")
	}
}

func TestStringWidth(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	one, err := f.StringWidth("a", 10)
	if err != nil {
		t.Fatalf("StringWidth failed: %v", err)
	}
	three, err := f.StringWidth("aaa", 10)
	if err != nil {
		t.Fatalf("StringWidth failed: %v", err)
	}
	if diff := three - 3*one; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected width to add up, got %v and %v", one, three)
	}

	doubled, _ := f.StringWidth("aaa", 20)
	if diff := doubled - 2*three; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected width to scale with size, got %v and %v", three, doubled)
	}

	empty, err := f.StringWidth("", 16)
	if err != nil || empty != 0 {
		t.Errorf("StringWidth(\"\") = %v, %v; want 0, nil", empty, err)
	}

	if _, err := f.StringWidth("snow 雪", 16); !errors.Is(err, ErrUnencodable) {
		t.Errorf("Expected ErrUnencodable, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{"ascii", "old pond", []byte("old pond"), false},
		{"latin1", "café", []byte("caf\xe9"), false},
		{"decomposed accent", "cafe\u0301", []byte("caf\xe9"), false},
		{"em dash", "a—b", []byte("a\x97b"), false},
		{"euro", "€", []byte{0x80}, false},
		{"curly quotes", "“x”", []byte("\x93x\x94"), false},
		{"cjk", "古池や", nil, true},
		{"control", "a\tb", nil, true},
		{"empty", "", []byte{}, false},
	}

	f, err := GoBold()
	if err != nil {
		t.Fatalf("GoBold failed: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Encode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Encode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnencodable) {
					t.Errorf("Expected ErrUnencodable, got %v", err)
				}
				return
			}
			if string(got) != string(tt.want) {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeError(t *testing.T) {
	_, err := EncodeWinAnsi("ab雪")
	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("Expected *EncodeError, got %T", err)
	}
	if encErr.Rune != '雪' || encErr.Pos != 2 {
		t.Errorf("EncodeError = %+v, want rune 雪 at 2", encErr)
	}
	if !strings.Contains(err.Error(), "U+96EA") {
		t.Errorf("Expected code point in message, got %q", err.Error())
	}
}

func TestDecodeWinAnsi(t *testing.T) {
	tests := []struct {
		code byte
		want rune
	}{
		{'A', 'A'},
		{0xe9, 'é'},
		{0x80, '€'},
		{0x97, '—'},
	}
	for _, tt := range tests {
		if got := DecodeWinAnsi(tt.code); got != tt.want {
			t.Errorf("DecodeWinAnsi(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
