package core

import (
	"fmt"

	"github.com/tsawler/haikupuzzle/internal/filters"
)

// Encode compresses the stream data with FlateDecode and records the filter
// in the stream dictionary. Streams that already carry a filter are left as
// they are.
func (s *Stream) Encode() error {
	if s.Dict.Has("Filter") {
		return nil
	}
	encoded, err := filters.FlateEncode(s.Data)
	if err != nil {
		return fmt.Errorf("flate encode failed: %w", err)
	}
	s.Data = encoded
	s.Dict.Set("Filter", Name("FlateDecode"))
	return nil
}

// Decode decodes the stream data according to the Filter specified in the
// stream dictionary. Only FlateDecode, the filter this package writes, is
// supported.
func (s *Stream) Decode() ([]byte, error) {
	filterObj := s.Dict.Get("Filter")
	if filterObj == nil {
		// No filter - return raw data
		return s.Data, nil
	}

	filterName, ok := filterObj.(Name)
	if !ok {
		return nil, fmt.Errorf("invalid Filter type: %T", filterObj)
	}

	switch filterName {
	case "FlateDecode", "Fl":
		return filters.FlateDecode(s.Data)
	default:
		return nil, fmt.Errorf("unsupported filter: %s", filterName)
	}
}
