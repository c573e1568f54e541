package core

import (
	"bytes"
	"testing"
)

func TestWriteIndirect(t *testing.T) {
	t.Run("dictionary", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := WriteIndirect(&buf, 1, Dict{"Type": Name("Catalog"), "Pages": IndirectRef{2, 0}})
		if err != nil {
			t.Fatalf("WriteIndirect failed: %v", err)
		}
		want := "1 0 obj\n<</Pages 2 0 R /Type /Catalog>>\nendobj\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
		if n != int64(len(want)) {
			t.Errorf("reported %d bytes, want %d", n, len(want))
		}
	})

	t.Run("stream sets length", func(t *testing.T) {
		var buf bytes.Buffer
		s := NewStream(nil, []byte("0 0 m 10 10 l S"))
		if _, err := WriteIndirect(&buf, 7, s); err != nil {
			t.Fatalf("WriteIndirect failed: %v", err)
		}
		want := "7 0 obj\n<</Length 15>>\nstream\n0 0 m 10 10 l S\nendstream\nendobj\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})
}
