// Package writer writes PDF 1.4 documents.
//
// A [Writer] owns one output. Fonts are embedded once and shared by every
// page; each page is built with a [contentstream.Builder] between
// BeginPage and EndPage. Close writes the page tree, the catalog, the
// document information dictionary and the cross-reference table:
//
//	w, err := writer.Create("out.pdf")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	name, err := w.AddFont(f)
//	page, err := w.BeginPage(595.28, 841.89)
//	page.ShowText(name, 16, 72, 700, data)
//	err = w.EndPage()
//
// Object 1 is always the catalog and object 2 the page tree root, so pages
// can refer to their parent before the tree is written.
package writer
