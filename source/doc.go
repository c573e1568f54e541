// Package source reads haiku rows from delimited text files.
//
// Each row holds two or three haiku lines separated by a delimiter
// (semicolon by default). Trailing empty fields are ignored, so a three
// column file may contain two line haiku. Any other field count is an
// error; rows are never skipped silently.
//
//	haikus, err := source.ReadFile("haikus_input.csv", source.DefaultOptions())
//
// Input in a legacy encoding is decoded by its WHATWG label, e.g.
// "windows-1252" or "iso-8859-1". Every field is normalised to NFC and
// trimmed.
package source
