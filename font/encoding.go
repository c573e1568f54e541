package font

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Encoding names the single byte encoding used for every embedded font
const Encoding = "WinAnsiEncoding"

// FirstChar and LastChar bound the character codes a font describes
const (
	FirstChar = 32
	LastChar  = 255
)

// ErrUnencodable is returned when text contains a character outside WinAnsi
var ErrUnencodable = errors.New("character not encodable in WinAnsi")

// EncodeError reports the first character of a string that could not be
// encoded
type EncodeError struct {
	Rune rune
	Pos  int // Character position in the normalised text
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at position %d not encodable in WinAnsi", e.Rune, e.Rune, e.Pos)
}

// Is makes EncodeError match ErrUnencodable
func (e *EncodeError) Is(target error) bool {
	return target == ErrUnencodable
}

// NormalizeUnicode applies NFC normalization to text
// This ensures combining characters are composed into single code points
// (e.g. "e" followed by a combining acute accent becomes "é")
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// EncodeWinAnsi normalises s and converts it to WinAnsi bytes. Control
// characters are rejected along with characters Windows-1252 cannot represent.
func EncodeWinAnsi(s string) ([]byte, error) {
	s = NormalizeUnicode(s)
	out := make([]byte, 0, len(s))
	pos := 0
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok || b < FirstChar || b == 0x7f {
			return nil, &EncodeError{Rune: r, Pos: pos}
		}
		out = append(out, b)
		pos++
	}
	return out, nil
}

// DecodeWinAnsi converts a WinAnsi character code back to its rune
func DecodeWinAnsi(code byte) rune {
	return charmap.Windows1252.DecodeByte(code)
}
