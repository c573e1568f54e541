package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/haikupuzzle/model"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options controls how input is read
type Options struct {
	// Delimiter separates fields
	Delimiter rune

	// HasHeader skips the first row
	HasHeader bool

	// Encoding is a WHATWG encoding label; empty means UTF-8
	Encoding string
}

// DefaultOptions returns semicolon separated UTF-8 input with a header row
func DefaultOptions() Options {
	return Options{
		Delimiter: ';',
		HasHeader: true,
		Encoding:  "utf-8",
	}
}

// Reader reads haiku rows one at a time
type Reader struct {
	csv    *csv.Reader
	opts   Options
	header []string
	read   bool // Header handled
}

// NewReader creates a reader over r
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	if opts.Delimiter == '"' || opts.Delimiter == '\r' || opts.Delimiter == '\n' {
		return nil, model.NewConfigError("delimiter", "invalid delimiter %q", opts.Delimiter)
	}

	if label := strings.TrimSpace(opts.Encoding); label != "" && !strings.EqualFold(label, "utf-8") && !strings.EqualFold(label, "utf8") {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, model.NewConfigError("encoding", "unknown encoding %q", label)
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return &Reader{csv: cr, opts: opts}, nil
}

// Header returns the header row, once the first row has been read
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next haiku, or io.EOF after the last one
func (r *Reader) Next() (model.Haiku, error) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return model.Haiku{}, io.EOF
		}
		line, _ := r.csv.FieldPos(0)
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.StartLine
			}
			return model.Haiku{}, &model.RowError{Row: line, Reason: "unreadable row", Err: err}
		}

		fields := cleanFields(record)

		if r.opts.HasHeader && !r.read {
			r.read = true
			r.header = fields
			continue
		}
		r.read = true

		if len(fields) == 0 {
			continue
		}

		h := model.Haiku{Lines: fields, Row: line}
		if err := h.Validate(); err != nil {
			return model.Haiku{}, err
		}
		return h, nil
	}
}

// cleanFields normalises and trims every field and drops trailing empty
// ones
func cleanFields(record []string) []string {
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(norm.NFC.String(f))
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// ReadAll reads every haiku from r
func ReadAll(r io.Reader, opts Options) ([]model.Haiku, error) {
	reader, err := NewReader(r, opts)
	if err != nil {
		return nil, err
	}

	var haikus []model.Haiku
	for {
		h, err := reader.Next()
		if err == io.EOF {
			return haikus, nil
		}
		if err != nil {
			return nil, err
		}
		haikus = append(haikus, h)
	}
}

// ReadFile reads every haiku from the file at path
func ReadFile(path string, opts Options) ([]model.Haiku, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &model.ResourceError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	haikus, err := ReadAll(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return haikus, nil
}
