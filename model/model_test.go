package model

import (
	"math"
	"testing"
)

// ============================================================================
// Point and Segment Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSegmentDistanceTo(t *testing.T) {
	seg := Segment{Start: Point{10, 10}, End: Point{90, 10}}

	tests := []struct {
		name     string
		p        Point
		expected float64
	}{
		{"on segment", Point{50, 10}, 0},
		{"above midpoint", Point{50, 5}, 5},
		{"below midpoint", Point{50, 15}, 5},
		{"beyond start clamps to endpoint", Point{0, 10}, 10},
		{"beyond end clamps to endpoint", Point{100, 10}, 10},
		{"beyond end diagonal", Point{93, 14}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := seg.DistanceTo(tt.p)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("DistanceTo(%v) = %v, want %v", tt.p, result, tt.expected)
			}
		})
	}
}

func TestSegmentDistanceToDegenerate(t *testing.T) {
	seg := Segment{Start: Point{5, 5}, End: Point{5, 5}}
	result := seg.DistanceTo(Point{8, 9})
	if math.Abs(result-5) > 0.0001 {
		t.Errorf("DistanceTo() = %v, want 5", result)
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   BBox
	}{
		{"normal", Point{10, 20}, Point{50, 70}, BBox{10, 20, 40, 50}},
		{"reversed", Point{50, 70}, Point{10, 20}, BBox{10, 20, 40, 50}},
		{"same point", Point{10, 10}, Point{10, 10}, BBox{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromPoints(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("NewBBoxFromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxAccessors(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)
	if b.Left() != 10 {
		t.Errorf("Left() = %v, want 10", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right() = %v, want 110", b.Right())
	}
	if b.Top() != 20 {
		t.Errorf("Top() = %v, want 20", b.Top())
	}
	if b.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", b.Bottom())
	}
	center := b.Center()
	if center.X != 60 || center.Y != 45 {
		t.Errorf("Center() = %+v, want {60, 45}", center)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(10, 10, 80, 80)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{50, 50}, true},
		{"on left edge", Point{10, 50}, true},
		{"on corner", Point{90, 90}, true},
		{"outside left", Point{9, 50}, false},
		{"outside below", Point{50, 91}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBBoxElongation(t *testing.T) {
	tests := []struct {
		name string
		b    BBox
		want float64
	}{
		{"square", NewBBox(0, 0, 10, 10), 1},
		{"wide bar", NewBBox(0, 0, 80, 2), 40},
		{"tall bar", NewBBox(0, 0, 2, 80), 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.b.Elongation()
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("Elongation() = %v, want %v", got, tt.want)
			}
		})
	}

	if !math.IsInf(NewBBox(0, 0, 10, 0).Elongation(), 1) {
		t.Error("Elongation() of degenerate box should be +Inf")
	}
}

// ============================================================================
// Edge Tests
// ============================================================================

func TestEdgeSegment(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want Segment
	}{
		{
			"top edge spans width",
			Edge{Kind: EdgeTop, X: 10, Y: 20, Width: 80},
			Segment{Point{10, 20}, Point{90, 20}},
		},
		{
			"bottom edge spans width",
			Edge{Kind: EdgeBottom, X: 10, Y: 90, Width: 80},
			Segment{Point{10, 90}, Point{90, 90}},
		},
		{
			"left edge spans height",
			Edge{Kind: EdgeLeft, X: 10, Y: 20, Height: 70},
			Segment{Point{10, 20}, Point{10, 90}},
		},
		{
			"right edge spans height",
			Edge{Kind: EdgeRight, X: 90, Y: 20, Height: 70},
			Segment{Point{90, 20}, Point{90, 90}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.Segment(); got != tt.want {
				t.Errorf("Segment() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEdgeKindString(t *testing.T) {
	kinds := map[EdgeKind]string{
		EdgeTop:    "top",
		EdgeRight:  "right",
		EdgeBottom: "bottom",
		EdgeLeft:   "left",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Errorf("EdgeKind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

// ============================================================================
// CellPosition Tests
// ============================================================================

func TestParseCellPosition(t *testing.T) {
	tests := []struct {
		label   string
		want    CellPosition
		wantErr bool
	}{
		{"a1", CellPosition{'a', 1}, false},
		{"h99", CellPosition{'h', 99}, false},
		{"c12", CellPosition{'c', 12}, false},
		{"", CellPosition{}, true},
		{"z9", CellPosition{}, true},  // column out of range
		{"A1", CellPosition{}, true},  // uppercase not accepted
		{"a", CellPosition{}, true},   // missing row
		{"a0", CellPosition{}, true},  // row must be positive
		{"a-1", CellPosition{}, true}, // negative row
		{"a+1", CellPosition{}, true}, // explicit sign not canonical
		{"a01", CellPosition{}, true}, // leading zero not canonical
		{"a 1", CellPosition{}, true}, // embedded space
		{"ab1", CellPosition{}, true}, // multi-letter column
		{"1a", CellPosition{}, true},  // row before column
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseCellPosition(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCellPosition(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCellPosition(%q) = %+v, want %+v", tt.label, got, tt.want)
			}
		})
	}
}

func TestCellPositionString(t *testing.T) {
	p := CellPosition{Column: 'b', Row: 7}
	if p.String() != "b7" {
		t.Errorf("String() = %q, want %q", p.String(), "b7")
	}
}

func TestCellPositionLess(t *testing.T) {
	tests := []struct {
		name string
		a, b CellPosition
		want bool
	}{
		{"column before row", CellPosition{'a', 9}, CellPosition{'b', 1}, true},
		{"same column by row", CellPosition{'a', 1}, CellPosition{'a', 2}, true},
		{"equal", CellPosition{'c', 3}, CellPosition{'c', 3}, false},
		{"reversed", CellPosition{'b', 1}, CellPosition{'a', 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}
