package borders

import (
	"math"
	"sort"

	"github.com/tsawler/gridmark/model"
)

// axisCosine is the minimum cosine similarity between a side's direction
// and the expected axis direction for the side to count as axis-aligned.
// 0.999 admits rotations of roughly 2.5 degrees.
const axisCosine = 0.999

// Reconstruct normalizes a closed 4-point ring into an axis-aligned
// rectangle. It returns ok=false when the ring does not have exactly four
// points or when any side deviates from its expected axis direction beyond
// tolerance (rotated shapes, non-rectangular quadrilaterals, degenerate
// rings).
//
// The ring may start at any corner and wind in either direction: the four
// points are first put into canonical order by sorting them by angle around
// their centroid, which yields top-left, top-right, bottom-right,
// bottom-left in that order for any axis-aligned input. The resulting
// rectangle's coordinates average the two measurements available for each
// side, so corners of slightly skewed (but in-tolerance) input are smoothed
// rather than picked from any single point. Width and height are always
// non-negative.
func Reconstruct(ring []model.Point) (model.BBox, bool) {
	if len(ring) != 4 {
		return model.BBox{}, false
	}

	var cx, cy float64
	for _, p := range ring {
		cx += p.X
		cy += p.Y
	}
	cx /= 4
	cy /= 4

	corners := make([]model.Point, 4)
	copy(corners, ring)
	sort.Slice(corners, func(i, j int) bool {
		return math.Atan2(corners[i].Y-cy, corners[i].X-cx) <
			math.Atan2(corners[j].Y-cy, corners[j].X-cx)
	})

	tl, tr, br, bl := corners[0], corners[1], corners[2], corners[3]

	// Each side must run along its axis: top rightward, right downward,
	// bottom leftward, left upward (Y grows downward).
	if !alongAxis(tl, tr, 1, 0) ||
		!alongAxis(tr, br, 0, 1) ||
		!alongAxis(br, bl, -1, 0) ||
		!alongAxis(bl, tl, 0, -1) {
		return model.BBox{}, false
	}

	left := (tl.X + bl.X) / 2
	right := (tr.X + br.X) / 2
	top := (tl.Y + tr.Y) / 2
	bottom := (bl.Y + br.Y) / 2

	return model.BBox{
		X:      left,
		Y:      top,
		Width:  math.Abs(right - left),
		Height: math.Abs(bottom - top),
	}, true
}

// alongAxis reports whether the normalized direction from a to b is within
// tolerance of the unit axis direction (ax, ay).
func alongAxis(a, b model.Point, ax, ay float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return false
	}
	cos := (dx*ax + dy*ay) / length
	return cos >= axisCosine
}
