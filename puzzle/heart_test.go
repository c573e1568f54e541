package puzzle

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tsawler/haikupuzzle/model"
)

func TestHeartPoints(t *testing.T) {
	points := HeartPoints(DefaultHeartSamples)
	if len(points) != DefaultHeartSamples {
		t.Fatalf("Expected %d points, got %d", DefaultHeartSamples, len(points))
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	got := []float64{minX, minY, maxX, maxY}
	if diff := cmp.Diff([]float64{0, 0, 1, 1}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("heart is not normalised to the unit square (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(points[0], points[len(points)-1], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("heart curve is not closed (-want +got):\n%s", diff)
	}

	// The curve is symmetric about x = 0.5.
	for i, p := range points {
		mirror := points[len(points)-1-i]
		if math.Abs(p.X+mirror.X-1) > 1e-9 || math.Abs(p.Y-mirror.Y) > 1e-9 {
			t.Fatalf("point %d %v is not mirrored by %v", i, p, mirror)
		}
	}
}

func TestHeartPointsMinimumSamples(t *testing.T) {
	if n := len(HeartPoints(0)); n != 2 {
		t.Errorf("Expected at least 2 samples, got %d", n)
	}
}

func TestHeart(t *testing.T) {
	box := model.NewBBox(100, 50, 20, 16)
	path, err := Heart(box, DefaultHeartSamples)
	if err != nil {
		t.Fatalf("Heart failed: %v", err)
	}
	if diff := cmp.Diff(box, path.Bounds(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("heart bounds mismatch (-want +got):\n%s", diff)
	}
	if len(path.Subpaths()) != 1 {
		t.Errorf("Expected one subpath, got %d", len(path.Subpaths()))
	}
}

func TestHeartInvalidBox(t *testing.T) {
	_, err := Heart(model.NewBBox(0, 0, 0, 10), DefaultHeartSamples)
	if !errors.Is(err, model.ErrConfig) {
		t.Errorf("Expected config error, got %v", err)
	}
}
