// Package contentstream builds PDF content streams.
//
// Content streams contain the instructions for rendering page content,
// including text display and path painting. A Builder records operations
// in order and serializes them with Bytes:
//
//	b := contentstream.NewBuilder()
//	b.ApplyStyle(graphicsstate.DefaultStyle())
//	if err := b.StrokePath(path); err != nil {
//	    return err
//	}
//	b.ShowText("F1", 16, 72, 700, []byte("hello"))
//	data := b.Bytes()
//
// # Operators
//
// Graphics state operators:
//   - q, Q - Save/restore graphics state
//   - w - Set line width
//   - RG, rg - Set stroke and fill colour
//
// Path operators:
//   - m, l, c, h - Move to, line to, curve to, close
//   - re - Rectangle
//   - S - Stroke
//
// Text operators:
//   - BT, ET - Begin/end text object
//   - Tf - Set font and size
//   - Td - Move text position
//   - Tj - Show text
//
// Elliptical arcs have no PDF operator of their own; AppendPath converts them
// to cubic curves.
package contentstream
