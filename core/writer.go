package core

import (
	"fmt"
	"io"
)

// WriteIndirect writes obj as indirect object num ("num 0 obj ... endobj").
// Streams have their Length entry set from the data before writing.
func WriteIndirect(w io.Writer, num int, obj Object) (int64, error) {
	var written int64

	n, err := fmt.Fprintf(w, "%d 0 obj\n", num)
	written += int64(n)
	if err != nil {
		return written, err
	}

	if s, ok := obj.(*Stream); ok {
		s.Dict.Set("Length", Int(len(s.Data)))
		n, err = fmt.Fprintf(w, "%s\nstream\n", s.Dict.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
		n, err = w.Write(s.Data)
		written += int64(n)
		if err != nil {
			return written, err
		}
		n, err = io.WriteString(w, "\nendstream")
	} else {
		n, err = io.WriteString(w, obj.String())
	}
	written += int64(n)
	if err != nil {
		return written, err
	}

	n, err = io.WriteString(w, "\nendobj\n")
	written += int64(n)
	return written, err
}
