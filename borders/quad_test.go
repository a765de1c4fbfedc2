package borders

import (
	"math"
	"testing"

	"github.com/tsawler/gridmark/model"
)

const eps = 1e-9

func assertBBox(t *testing.T, got, want model.BBox, tol float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > tol ||
		math.Abs(got.Y-want.Y) > tol ||
		math.Abs(got.Width-want.Width) > tol ||
		math.Abs(got.Height-want.Height) > tol {
		t.Errorf("bbox = %+v, want %+v (tol %v)", got, want, tol)
	}
}

// rotate rotates a point around a center by angle (radians).
func rotate(p, center model.Point, angle float64) model.Point {
	sin, cos := math.Sin(angle), math.Cos(angle)
	dx, dy := p.X-center.X, p.Y-center.Y
	return model.Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

func TestReconstructSquare(t *testing.T) {
	ring := []model.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
	got, ok := Reconstruct(ring)
	if !ok {
		t.Fatal("Reconstruct() failed for axis-aligned square")
	}
	assertBBox(t, got, model.NewBBox(10, 10, 80, 80), eps)
}

// Reconstruction must be invariant to the ring's starting corner and
// winding direction.
func TestReconstructPointOrderInvariance(t *testing.T) {
	base := []model.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
	want := model.NewBBox(10, 10, 80, 80)

	// All cyclic rotations.
	for shift := 0; shift < 4; shift++ {
		ring := make([]model.Point, 4)
		for i := range ring {
			ring[i] = base[(i+shift)%4]
		}
		got, ok := Reconstruct(ring)
		if !ok {
			t.Fatalf("Reconstruct() failed for rotation %d", shift)
		}
		assertBBox(t, got, want, eps)
	}

	// Reversed (opposite winding), all cyclic rotations.
	reversed := []model.Point{base[3], base[2], base[1], base[0]}
	for shift := 0; shift < 4; shift++ {
		ring := make([]model.Point, 4)
		for i := range ring {
			ring[i] = reversed[(i+shift)%4]
		}
		got, ok := Reconstruct(ring)
		if !ok {
			t.Fatalf("Reconstruct() failed for reversed rotation %d", shift)
		}
		assertBBox(t, got, want, eps)
	}
}

func TestReconstructWrongPointCount(t *testing.T) {
	rings := [][]model.Point{
		nil,
		{{X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
	}
	for _, ring := range rings {
		if _, ok := Reconstruct(ring); ok {
			t.Errorf("Reconstruct() succeeded for %d points, want failure", len(ring))
		}
	}
}

func TestReconstructRotationTolerance(t *testing.T) {
	base := []model.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
	center := model.Point{X: 50, Y: 50}

	tests := []struct {
		name    string
		degrees float64
		wantOK  bool
	}{
		{"exact", 0, true},
		{"quarter degree", 0.25, true},
		{"half degree", 0.5, true},
		{"one degree", 1, true},
		{"five degrees", 5, false},
		{"ten degrees", 10, false},
		{"forty-five degrees", 45, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ring := make([]model.Point, 4)
			for i, p := range base {
				ring[i] = rotate(p, center, tt.degrees*math.Pi/180)
			}
			_, ok := Reconstruct(ring)
			if ok != tt.wantOK {
				t.Errorf("Reconstruct() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

// A slightly rotated rectangle reconstructs to averaged coordinates close
// to, but not exactly at, the unrotated shape. Lossy by design.
func TestReconstructAveragedCoordinates(t *testing.T) {
	base := []model.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}
	center := model.Point{X: 50, Y: 50}
	ring := make([]model.Point, 4)
	for i, p := range base {
		ring[i] = rotate(p, center, 0.5*math.Pi/180)
	}

	got, ok := Reconstruct(ring)
	if !ok {
		t.Fatal("Reconstruct() failed for half-degree rotation")
	}
	// Averaging the opposing corners cancels the rotation about the center.
	assertBBox(t, got, model.NewBBox(10, 10, 80, 80), 0.5)
	if got.Width < 0 || got.Height < 0 {
		t.Errorf("reconstructed dimensions must be non-negative: %+v", got)
	}
}

func TestReconstructNonRectangles(t *testing.T) {
	tests := []struct {
		name string
		ring []model.Point
	}{
		{"diamond", []model.Point{{X: 50, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 0, Y: 50}}},
		{"trapezoid", []model.Point{{X: 20, Y: 10}, {X: 80, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}}},
		{"collinear", []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}},
		{"coincident", []model.Point{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Reconstruct(tt.ring); ok {
				t.Error("Reconstruct() succeeded, want failure")
			}
		})
	}
}

func TestReconstructElongatedBar(t *testing.T) {
	// A thin border bar, the shape this package exists to find.
	ring := []model.Point{{X: 10, Y: 8}, {X: 90, Y: 8}, {X: 90, Y: 10}, {X: 10, Y: 10}}
	got, ok := Reconstruct(ring)
	if !ok {
		t.Fatal("Reconstruct() failed for border bar")
	}
	assertBBox(t, got, model.NewBBox(10, 8, 80, 2), eps)
}
