// Package graphicsstate provides the vector path model and drawing state used
// when producing PDF content streams.
//
// # Paths
//
// A [Path] is an ordered list of [PathSegment] values. Segments are one of
// MoveTo, LineTo, CurveTo, Arc or ClosePath:
//
//	p := graphicsstate.NewPath()
//	p.MoveTo(10, 10)
//	p.LineTo(90, 10)
//	p.Arc(80, 10, 100, 30, -90, 90) // quarter ellipse inscribed in the box
//
// Arcs are recorded by their bounding box, start angle and extent (degrees,
// counter-clockwise from the positive x axis; negative extents sweep
// clockwise). [ArcCurves] converts an arc into cubic Bézier curves, since PDF
// has no arc operator.
//
// # Render Style
//
// [RenderStyle] is an immutable description of stroke colour, fill colour and
// line width. It is applied explicitly at the start of every page rather than
// being carried over in the output device.
//
// # Graphics State
//
// [GraphicsState] tracks the style currently in effect together with the
// q/Q save stack so content builders can keep saves and restores balanced.
package graphicsstate
