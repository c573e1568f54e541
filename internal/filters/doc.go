// Package filters provides the PDF stream compression filter used for
// content streams and embedded font programs.
//
// FlateDecode (zlib/deflate):
//
//	encoded, err := filters.FlateEncode(data)
//	decoded, err := filters.FlateDecode(encoded)
package filters
