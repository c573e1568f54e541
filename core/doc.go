// Package core provides the PDF object model and its serialization.
//
// This package implements the building blocks needed to write PDF files:
// all eight PDF object types (null, boolean, integer, real, string, name,
// array, and dictionary), streams, indirect references and the
// cross-reference table.
//
// # Object Types
//
// PDF defines eight basic object types, all implemented as types satisfying the
// Object interface:
//
//   - [Null] - represents the PDF null object
//   - [Bool] - represents PDF boolean values (true/false)
//   - [Int] - represents PDF integers
//   - [Real] - represents PDF real numbers (floating point)
//   - [String] - represents PDF literal string objects
//   - [Name] - represents PDF name objects (e.g., /Type, /Font)
//   - [Array] - represents PDF arrays
//   - [Dict] - represents PDF dictionaries
//
// Additionally, [Stream] represents a PDF stream (dictionary + binary data),
// and [IndirectRef] represents a reference to an indirect object.
//
// # Serialization
//
// Every object's String method returns its PDF syntax. Dictionaries are
// written with sorted keys so output is reproducible. [WriteIndirect] writes
// a numbered "obj ... endobj" block, including stream bodies.
//
// # Cross-Reference Tables
//
// The [XRefTable] type records the byte offset of every indirect object and
// writes the classic xref section and trailer. [FindXRef] locates the
// startxref offset at the end of finished output.
//
// # Stream Encoding
//
// [Stream.Encode] compresses stream data with FlateDecode; [Stream.Decode]
// reverses it.
package core
