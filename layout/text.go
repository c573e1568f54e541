package layout

import "github.com/tsawler/haikupuzzle/model"

// Measurer measures the width of text set in a font
type Measurer interface {
	StringWidth(s string, size float64) (float64, error)
}

// CenterText returns the text origin that centres a run of measuredWidth
// points on (centerX, centerY). The baseline sits half a font size below
// the centre.
func CenterText(measuredWidth, centerX, centerY, fontSize float64) model.Point {
	return model.Point{
		X: centerX - measuredWidth/2,
		Y: centerY - fontSize/2,
	}
}

// CenterLine measures text and centres it on center
func CenterLine(m Measurer, text string, fontSize float64, center model.Point) (model.Point, error) {
	w, err := m.StringWidth(text, fontSize)
	if err != nil {
		return model.Point{}, err
	}
	return CenterText(w, center.X, center.Y, fontSize), nil
}

// StackLines returns the centre of each of n lines spaced leading apart so
// the block is centred on center. The first line is the top one.
func StackLines(center model.Point, n int, leading float64) []model.Point {
	if n <= 0 {
		return nil
	}
	out := make([]model.Point, n)
	top := center.Y + float64(n-1)*leading/2
	for i := range out {
		out[i] = model.Point{X: center.X, Y: top - float64(i)*leading}
	}
	return out
}
