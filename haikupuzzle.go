// Package haikupuzzle provides a fluent API for rendering haiku puzzle
// sheets to PDF.
//
// Basic usage:
//
//	res, err := haikupuzzle.Open("haikus.csv").WriteFile("haiku_puzzles.pdf")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("Processed %d haikus\n", res.Items)
//
// With options:
//
//	res, err := haikupuzzle.Open("haikus.csv").
//	    WithConfig(cfg).
//	    Layout(config.LayoutPuzzle).
//	    Logger(logger).
//	    WriteFile("out.pdf")
//
// A sheet of blank pieces:
//
//	res, err := haikupuzzle.Jigsaw(4, 6, 80).WriteFile("jigsaw.pdf")
//
// The lower-level packages (puzzle, layout, writer) are also available.
package haikupuzzle

import "github.com/tsawler/haikupuzzle/model"

// Open returns a Generator that reads haikus from the table at filename.
// The file is read when a terminal operation like WriteFile runs.
//
// Example:
//
//	res, err := haikupuzzle.Open("haikus.csv").WriteFile("out.pdf")
func Open(filename string) *Generator {
	return &Generator{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromHaikus returns a Generator over haikus that are already in memory.
//
// Example:
//
//	h, _ := model.NewHaiku("an old silent pond", "a frog jumps into the pond", "splash! silence again")
//	res, err := haikupuzzle.FromHaikus([]model.Haiku{h}).WriteFile("out.pdf")
func FromHaikus(items []model.Haiku) *Generator {
	return &Generator{
		haikus:  append([]model.Haiku(nil), items...),
		loaded:  true,
		options: defaultOptions(),
	}
}

// Jigsaw returns a Generator for a sheet of rows x cols blank puzzle pieces
// of the given side, spaced 1.1 x size apart.
//
// Example:
//
//	res, err := haikupuzzle.Jigsaw(3, 5, 100).WriteFile("jigsaw.pdf")
func Jigsaw(rows, cols int, size float64) *Generator {
	return &Generator{
		jigsaw:  &jigsawSheet{rows: rows, cols: cols, size: size},
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := haikupuzzle.Must(haikupuzzle.Open("haikus.csv").WriteFile("out.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
