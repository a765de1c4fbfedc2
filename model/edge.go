package model

// EdgeKind identifies which side of a border mark an edge represents.
type EdgeKind int

const (
	// EdgeTop is the upper horizontal edge of a border mark.
	EdgeTop EdgeKind = iota
	// EdgeRight is the right vertical edge of a border mark.
	EdgeRight
	// EdgeBottom is the lower horizontal edge of a border mark.
	EdgeBottom
	// EdgeLeft is the left vertical edge of a border mark.
	EdgeLeft
)

// String returns the string representation of the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the kind is a top or bottom edge.
func (k EdgeKind) Horizontal() bool {
	return k == EdgeTop || k == EdgeBottom
}

// Edge is one directional border edge derived from a detected border mark.
// It is a kind-discriminated value: top and bottom edges carry Width and
// have zero Height, left and right edges carry Height and have zero Width.
// (X, Y) is the edge's starting corner: the left end for horizontal edges
// and the upper end for vertical ones. Edges are immutable once produced.
type Edge struct {
	Kind   EdgeKind
	X      float64
	Y      float64
	Width  float64 // set for top/bottom edges
	Height float64 // set for left/right edges
}

// Segment returns the line segment the edge occupies.
func (e Edge) Segment() Segment {
	if e.Kind.Horizontal() {
		return Segment{
			Start: Point{X: e.X, Y: e.Y},
			End:   Point{X: e.X + e.Width, Y: e.Y},
		}
	}
	return Segment{
		Start: Point{X: e.X, Y: e.Y},
		End:   Point{X: e.X, Y: e.Y + e.Height},
	}
}
