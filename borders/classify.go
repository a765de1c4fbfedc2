package borders

import (
	"github.com/tsawler/gridmark/model"
)

// MinElongation is the minimum longer-side to shorter-side ratio for a
// rectangle to be treated as a border mark. Squarer shapes are ordinary
// content (real table cells, decoration) and produce no edges.
const MinElongation = 11.0

// Classify reduces candidate rectangles to directional border edges.
// Rectangles with elongation below [MinElongation] are discarded. Each
// surviving rectangle contributes exactly four edges positioned on its own
// bounding box: full-width top and bottom edges carrying the rectangle's X
// and Width, and full-height left and right edges carrying its Y and Height.
// A drawn border mark conceptually offers all four of its sides as
// selectable edges; which one the user means is decided per interaction.
func Classify(rects []model.BBox) []model.Edge {
	var edges []model.Edge
	for _, r := range rects {
		if r.Elongation() < MinElongation {
			continue
		}
		edges = append(edges, EdgesOf(r)...)
	}
	return edges
}

// EdgesOf returns the four directional edges of a rectangle's bounding box.
func EdgesOf(r model.BBox) []model.Edge {
	return []model.Edge{
		{Kind: model.EdgeTop, X: r.X, Y: r.Top(), Width: r.Width},
		{Kind: model.EdgeBottom, X: r.X, Y: r.Bottom(), Width: r.Width},
		{Kind: model.EdgeLeft, X: r.Left(), Y: r.Y, Height: r.Height},
		{Kind: model.EdgeRight, X: r.Right(), Y: r.Y, Height: r.Height},
	}
}
