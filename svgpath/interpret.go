package svgpath

import (
	"github.com/tsawler/gridmark/model"
)

// Interpret replays parsed path commands and collects each closed subpath
// as a ring of points, in the order the subpaths were closed.
//
// A moveto discards any in-progress (unclosed) ring and starts a new one at
// its target point. Line commands advance the current point and append it to
// the ring. A closepath emits the ring and resets the current point to the
// ring's first point. The first curve command stops interpretation of the
// whole path; rings already emitted are returned as-is. An unclosed trailing
// ring is never emitted.
func Interpret(cmds []Command) [][]model.Point {
	var (
		cur   model.Point
		ring  []model.Point
		rings [][]model.Point
	)

	for _, c := range cmds {
		if isCurve(c.Op) {
			return rings
		}

		switch c.Op {
		case 'M':
			cur = model.Point{X: c.Args[0], Y: c.Args[1]}
			ring = []model.Point{cur}
		case 'm':
			cur = model.Point{X: cur.X + c.Args[0], Y: cur.Y + c.Args[1]}
			ring = []model.Point{cur}
		case 'L':
			cur = model.Point{X: c.Args[0], Y: c.Args[1]}
			ring = append(ring, cur)
		case 'l':
			cur = model.Point{X: cur.X + c.Args[0], Y: cur.Y + c.Args[1]}
			ring = append(ring, cur)
		case 'H':
			cur.X = c.Args[0]
			ring = append(ring, cur)
		case 'h':
			cur.X += c.Args[0]
			ring = append(ring, cur)
		case 'V':
			cur.Y = c.Args[0]
			ring = append(ring, cur)
		case 'v':
			cur.Y += c.Args[0]
			ring = append(ring, cur)
		case 'Z', 'z':
			if len(ring) > 0 {
				rings = append(rings, ring)
				cur = ring[0]
				ring = nil
			}
		}
	}

	return rings
}

// InterpretString parses and interprets a path data string in one call.
func InterpretString(d string) ([][]model.Point, error) {
	cmds, err := ParseCommands(d)
	if err != nil {
		return nil, err
	}
	return Interpret(cmds), nil
}
