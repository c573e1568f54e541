package core

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// XRefEntry represents a single cross-reference table entry
type XRefEntry struct {
	Offset     int64 // Byte offset in file (for in-use objects) or next free object number (for free objects)
	Generation int   // Generation number
	InUse      bool  // true if object is in use, false if free
}

// XRefTable represents a PDF cross-reference table
type XRefTable struct {
	Entries map[int]*XRefEntry // Map from object number to XRef entry
	Trailer Dict               // Trailer dictionary
}

// NewXRefTable creates a new empty XRef table
func NewXRefTable() *XRefTable {
	return &XRefTable{
		Entries: make(map[int]*XRefEntry),
		Trailer: make(Dict),
	}
}

// Get retrieves an XRef entry by object number
func (x *XRefTable) Get(objNum int) (*XRefEntry, bool) {
	entry, ok := x.Entries[objNum]
	return entry, ok
}

// Set adds or updates an XRef entry
func (x *XRefTable) Set(objNum int, entry *XRefEntry) {
	x.Entries[objNum] = entry
}

// Size returns the number of entries in the table
func (x *XRefTable) Size() int {
	return len(x.Entries)
}

// WriteTo writes the xref section followed by the trailer dictionary. The
// table is written as one subsection from object 0 through the highest
// object number; gaps are written as free entries. Size is set in the
// trailer.
func (x *XRefTable) WriteTo(w io.Writer) (int64, error) {
	maxNum := 0
	for num := range x.Entries {
		if num > maxNum {
			maxNum = num
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "xref\n0 %d\n", maxNum+1)
	for num := 0; num <= maxNum; num++ {
		entry, ok := x.Entries[num]
		switch {
		case num == 0:
			b.WriteString("0000000000 65535 f \n")
		case !ok || !entry.InUse:
			b.WriteString("0000000000 00000 f \n")
		default:
			fmt.Fprintf(&b, "%010d %05d n \n", entry.Offset, entry.Generation)
		}
	}

	x.Trailer.Set("Size", Int(maxNum+1))
	b.WriteString("trailer\n")
	b.WriteString(x.Trailer.String())
	b.WriteString("\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// InUseNumbers returns the numbers of in-use objects in ascending order
func (x *XRefTable) InUseNumbers() []int {
	nums := make([]int, 0, len(x.Entries))
	for num, entry := range x.Entries {
		if entry.InUse {
			nums = append(nums, num)
		}
	}
	sort.Ints(nums)
	return nums
}

// FindXRef finds the byte offset of the XRef table by scanning from EOF
// PDFs end with "startxref\n<offset>\n%%EOF"
func FindXRef(r io.ReadSeeker) (int64, error) {
	// Seek to end to get file size
	fileSize, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to seek to end: %w", err)
	}

	// Read last 1024 bytes (should be enough for startxref section)
	readSize := int64(1024)
	if fileSize < readSize {
		readSize = fileSize
	}

	_, err = r.Seek(fileSize-readSize, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("failed to seek to startxref area: %w", err)
	}

	buf := make([]byte, readSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("failed to read startxref area: %w", err)
	}
	buf = buf[:n]

	// Find "startxref" keyword
	content := string(buf)
	idx := strings.LastIndex(content, "startxref")
	if idx == -1 {
		return 0, fmt.Errorf("startxref not found in PDF")
	}

	// Parse the offset after startxref
	afterStartXRef := content[idx+len("startxref"):]
	lines := strings.Split(afterStartXRef, "\n")
	if len(lines) < 2 {
		return 0, fmt.Errorf("invalid startxref format")
	}

	// The offset should be on the next line
	offsetStr := strings.TrimSpace(lines[1])
	offset, err := strconv.ParseInt(offsetStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid xref offset: %w", err)
	}

	return offset, nil
}
