package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tsawler/haikupuzzle/contentstream"
	"github.com/tsawler/haikupuzzle/core"
	"github.com/tsawler/haikupuzzle/font"
	"github.com/tsawler/haikupuzzle/model"
	"github.com/tsawler/haikupuzzle/pages"
	"golang.org/x/text/encoding/unicode"
)

// PDFVersion represents a PDF version
type PDFVersion struct {
	Major int
	Minor int
}

// String returns the version as a string (e.g., "1.4")
func (v PDFVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Version is the PDF version written in the header
var Version = PDFVersion{Major: 1, Minor: 4}

// Reserved object numbers
const (
	catalogNum = 1
	pagesNum   = 2
	firstFree  = 3
)

// countingWriter tracks the byte offset of everything written
type countingWriter struct {
	w      io.Writer
	offset int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.offset += int64(n)
	return n, err
}

// Writer writes a PDF document
type Writer struct {
	out    *countingWriter
	buf    *bufio.Writer
	closer io.Closer
	path   string

	xref    *core.XRefTable
	nextNum int
	tree    *pages.PageTree

	fonts map[string]core.IndirectRef // Resource name -> font object

	page     *contentstream.Builder // Open page, nil between pages
	pageSize model.BBox

	info     model.Metadata
	compress bool
	closed   bool
	err      error // First write error; every later call returns it
}

// New creates a writer on w and writes the file header
func New(w io.Writer) (*Writer, error) {
	buf := bufio.NewWriter(w)
	pw := &Writer{
		out:      &countingWriter{w: buf},
		buf:      buf,
		xref:     core.NewXRefTable(),
		nextNum:  firstFree,
		tree:     pages.NewPageTree(),
		fonts:    make(map[string]core.IndirectRef),
		compress: true,
		info: model.Metadata{
			Producer:     "haikupuzzle",
			CreationDate: time.Now(),
		},
	}

	// The comment line with high bytes marks the file as binary.
	if _, err := fmt.Fprintf(pw.out, "%%PDF-%s\n%%\xE2\xE3\xCF\xD3\n", Version); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return pw, nil
}

// Create creates the file at path and returns a writer for it
func Create(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &model.ResourceError{Op: "create", Path: path, Err: err}
	}

	w, err := New(file)
	if err != nil {
		file.Close()
		return nil, &model.ResourceError{Op: "write", Path: path, Err: err}
	}
	w.closer = file
	w.path = path
	return w, nil
}

// SetMetadata sets the document information dictionary. An empty Producer
// or zero CreationDate keeps the defaults.
func (w *Writer) SetMetadata(m model.Metadata) {
	if m.Producer == "" {
		m.Producer = w.info.Producer
	}
	if m.CreationDate.IsZero() {
		m.CreationDate = w.info.CreationDate
	}
	w.info = m
}

// SetCompression turns Flate compression of streams on or off
func (w *Writer) SetCompression(on bool) {
	w.compress = on
}

// PageCount returns the number of finished pages
func (w *Writer) PageCount() int {
	return w.tree.Count()
}

func (w *Writer) allocate() int {
	num := w.nextNum
	w.nextNum++
	return num
}

// writeObject writes obj as object num and records its offset
func (w *Writer) writeObject(num int, obj core.Object) error {
	if w.err != nil {
		return w.err
	}
	w.xref.Set(num, &core.XRefEntry{Offset: w.out.offset, InUse: true})
	if _, err := core.WriteIndirect(w.out, num, obj); err != nil {
		w.err = w.wrapErr(fmt.Errorf("object %d: %w", num, err))
		return w.err
	}
	return nil
}

func (w *Writer) wrapErr(err error) error {
	if w.path == "" {
		return err
	}
	return &model.ResourceError{Op: "write", Path: w.path, Err: err}
}

func (w *Writer) stream(dict core.Dict, data []byte) (*core.Stream, error) {
	s := core.NewStream(dict, data)
	if w.compress {
		if err := s.Encode(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddFont embeds f and returns its resource name ("F1", "F2", ...)
func (w *Writer) AddFont(f *font.TrueTypeFont) (string, error) {
	if w.closed {
		return "", fmt.Errorf("writer is closed")
	}
	if f == nil || f.FontDescriptor == nil {
		return "", fmt.Errorf("font has no descriptor")
	}

	fileNum := w.allocate()
	descNum := w.allocate()
	fontNum := w.allocate()

	program, err := w.stream(core.Dict{"Length1": core.Int(len(f.FontProgram))}, f.FontProgram)
	if err != nil {
		return "", fmt.Errorf("failed to encode font program: %w", err)
	}
	if err := w.writeObject(fileNum, program); err != nil {
		return "", err
	}

	d := f.FontDescriptor
	descriptor := core.Dict{
		"Type":        core.Name("FontDescriptor"),
		"FontName":    core.Name(d.FontName),
		"Flags":       core.Int(d.Flags),
		"FontBBox":    core.RealArray(d.FontBBox[:]...),
		"ItalicAngle": core.Real(d.ItalicAngle),
		"Ascent":      core.Real(d.Ascent),
		"Descent":     core.Real(d.Descent),
		"CapHeight":   core.Real(d.CapHeight),
		"StemV":       core.Real(d.StemV),
		"AvgWidth":    core.Real(d.AvgWidth),
		"MaxWidth":    core.Real(d.MaxWidth),
		"FontFile2":   core.IndirectRef{Number: fileNum},
	}
	if d.FontFamily != "" {
		descriptor.Set("FontFamily", textString(d.FontFamily))
	}
	if err := w.writeObject(descNum, descriptor); err != nil {
		return "", err
	}

	fontDict := core.Dict{
		"Type":           core.Name("Font"),
		"Subtype":        core.Name("TrueType"),
		"BaseFont":       core.Name(f.BaseFont),
		"FirstChar":      core.Int(font.FirstChar),
		"LastChar":       core.Int(font.LastChar),
		"Widths":         core.RealArray(f.Widths()...),
		"FontDescriptor": core.IndirectRef{Number: descNum},
		"Encoding":       core.Name(f.Encoding),
	}
	if err := w.writeObject(fontNum, fontDict); err != nil {
		return "", err
	}

	name := fmt.Sprintf("F%d", len(w.fonts)+1)
	w.fonts[name] = core.IndirectRef{Number: fontNum}
	return name, nil
}

// BeginPage opens a new page of the given size and returns the builder for
// its content
func (w *Writer) BeginPage(width, height float64) (*contentstream.Builder, error) {
	if w.closed {
		return nil, fmt.Errorf("writer is closed")
	}
	if w.page != nil {
		return nil, fmt.Errorf("page %d is still open", w.tree.Count()+1)
	}
	if !(width > 0) || !(height > 0) {
		return nil, model.NewConfigError("page_size", "invalid page size %vx%v", width, height)
	}
	w.page = contentstream.NewBuilder()
	w.pageSize = model.NewBBox(0, 0, width, height)
	return w.page, nil
}

// CurrentPage returns the open page's builder, or nil
func (w *Writer) CurrentPage() *contentstream.Builder {
	return w.page
}

// EndPage writes the open page's content stream and page object
func (w *Writer) EndPage() error {
	if w.page == nil {
		return fmt.Errorf("no open page")
	}
	builder := w.page
	w.page = nil

	contentNum := w.allocate()
	pageNum := w.allocate()

	content, err := w.stream(nil, builder.Bytes())
	if err != nil {
		return fmt.Errorf("failed to encode page content: %w", err)
	}
	if err := w.writeObject(contentNum, content); err != nil {
		return err
	}

	page := &pages.Page{
		Parent:   core.IndirectRef{Number: pagesNum},
		MediaBox: w.pageSize,
		Contents: core.IndirectRef{Number: contentNum},
		Fonts:    w.fonts,
	}
	if err := w.writeObject(pageNum, page.Dict()); err != nil {
		return err
	}

	w.tree.Add(core.IndirectRef{Number: pageNum})
	return nil
}

// Close finishes an open page, writes the document trailer and closes the
// output if the writer created it. Calling Close more than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	var err error
	if w.page != nil {
		err = w.EndPage()
	}
	if err == nil {
		err = w.finish()
	}
	w.closed = true

	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = &model.ResourceError{Op: "close", Path: w.path, Err: cerr}
		}
	}
	return err
}

func (w *Writer) finish() error {
	infoNum := w.allocate()
	if err := w.writeObject(infoNum, infoDict(w.info)); err != nil {
		return err
	}
	if err := w.writeObject(pagesNum, w.tree.Dict()); err != nil {
		return err
	}
	catalog := &pages.Catalog{Pages: core.IndirectRef{Number: pagesNum}}
	if err := w.writeObject(catalogNum, catalog.Dict()); err != nil {
		return err
	}

	xrefOffset := w.out.offset
	w.xref.Trailer.Set("Root", core.IndirectRef{Number: catalogNum})
	w.xref.Trailer.Set("Info", core.IndirectRef{Number: infoNum})
	if _, err := w.xref.WriteTo(w.out); err != nil {
		return w.wrapErr(fmt.Errorf("failed to write xref: %w", err))
	}
	if _, err := fmt.Fprintf(w.out, "startxref\n%d\n%%%%EOF\n", xrefOffset); err != nil {
		return w.wrapErr(fmt.Errorf("failed to write trailer: %w", err))
	}
	if err := w.buf.Flush(); err != nil {
		return w.wrapErr(fmt.Errorf("failed to flush output: %w", err))
	}
	return nil
}

// infoDict builds the document information dictionary. Empty fields are
// left out.
func infoDict(m model.Metadata) core.Dict {
	fields := map[string]string{
		"Title":    m.Title,
		"Author":   m.Author,
		"Subject":  m.Subject,
		"Keywords": strings.Join(m.Keywords, ", "),
		"Creator":  m.Creator,
		"Producer": m.Producer,
	}
	dict := make(core.Dict)
	for k, v := range fields {
		if v != "" {
			dict.Set(k, textString(v))
		}
	}
	if !m.CreationDate.IsZero() {
		dict.Set("CreationDate", core.String(m.CreationDate.UTC().Format("D:20060102150405Z")))
	}
	return dict
}

// textString encodes a PDF text string: plain bytes when the text is
// printable ASCII, UTF-16BE with a byte order mark otherwise
func textString(s string) core.String {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			ascii = false
			break
		}
	}
	if ascii {
		return core.String(s)
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		return core.String(s)
	}
	return core.String(out)
}
