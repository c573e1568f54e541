// Package pages provides page sizes and the PDF page tree structures a
// document writer emits.
//
// # Page Sizes
//
// Named ISO and North American sizes, in points, portrait by default:
//
//	size, err := pages.ParsePageSize("A4 landscape")
//	size = pages.A4.Landscape()
//
// # Page Tree
//
// Generated documents use a flat page tree: one /Pages node whose kids are
// every page, in order. The [Catalog], [PageTree] and [Page] types build
// the dictionaries for those objects:
//
//	tree := pages.NewPageTree()
//	tree.Add(pageRef)
//	dict := tree.Dict()
package pages
