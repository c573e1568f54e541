package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/haikupuzzle/model"
	"gopkg.in/yaml.v3"
)

// Length is a distance in PDF points. In YAML it is written as a number of
// points or a number with a unit: "7cm", "20mm", "1in", "12pt".
type Length float64

// Points returns the length in points
func (l Length) Points() float64 {
	return float64(l)
}

var units = []struct {
	suffix string
	scale  float64
}{
	{"cm", model.Cm},
	{"mm", model.Mm},
	{"in", model.Inch},
	{"pt", model.Pt},
}

// ParseLength parses a length with an optional unit suffix
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	scale := model.Pt
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			scale = u.scale
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return Length(v * scale), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (l *Length) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: length must be a scalar", value.Line)
	}
	parsed, err := ParseLength(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*l = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (l Length) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// String returns the length in points, e.g. "198.4252pt"
func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "pt"
}
