// Package font provides the TrueType fonts embedded in generated PDFs.
//
// A font is loaded from a .ttf file or taken from the built-in Go Bold
// face, then used for three things: encoding text into the single byte
// WinAnsi encoding written in content streams, measuring text for
// centring, and describing itself to the PDF writer.
//
// # Font Creation
//
//	f, err := font.LoadFile("./QuicksandBold700.ttf")
//	f, err := font.GoBold()
//
// # Text Encoding
//
// Text is normalised to NFC and mapped to Windows-1252. Characters with no
// WinAnsi code fail with an error matching [ErrUnencodable]:
//
//	data, err := f.Encode("Autumn moonlight")
//
// # Character Widths
//
// Widths are in 1000ths of an em, as PDF expects them:
//
//	w := f.GetWidth('A')                    // Single character
//	w, err := f.StringWidth("haiku", 16)   // Whole string in points
package font
