// Package model provides the shared value types used while laying out and
// rendering haiku sheets.
//
// # Geometry
//
// Geometric primitives are expressed in PDF user space (points, y axis up):
//
//   - [Point] - 2D point with distance and vector helpers
//   - [BBox] - bounding box anchored at its lower-left corner
//   - [Matrix] - 2D affine transformation matrix
//
// Length constants [Cm], [Mm] and [Inch] convert physical units to points.
//
// # Content
//
// A [Haiku] is an ordered, read-only sequence of two or three text lines.
// [Metadata] carries the document information written to the output file.
//
// # Errors
//
// Failures are classified with [ConfigError], [ResourceError] and [RowError].
// Each matches its sentinel ([ErrConfig], [ErrResource], [ErrMalformedRow])
// through errors.Is:
//
//	if errors.Is(err, model.ErrConfig) {
//	    // bad dimensions, zero grid capacity, unknown layout...
//	}
package model
