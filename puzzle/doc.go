// Package puzzle draws jigsaw puzzle pieces and the heart curves used to
// link haiku cards.
//
// A piece is a rounded square with four notch strokes, one per edge, each
// running from the edge midpoint into the exact centre of the piece. The
// notch is a short straight stub, a 240 degree bump that bulges to one
// side, and a straight run into the centre:
//
//	path, err := puzzle.BuildPiece(model.Point{X: 72, Y: 72}, 100)
//
// Every edge is derived from the top edge by rotating about the centre in
// quarter turns, so the four notches are identical up to rotation.
//
// Paths are meant to be stroked. The outline is one closed subpath; each
// notch is an open subpath.
package puzzle
