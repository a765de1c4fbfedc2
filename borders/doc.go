// Package borders turns closed point rings into axis-aligned rectangles and
// classifies elongated rectangles into directional border edges.
//
// [Reconstruct] accepts a 4-point ring in any winding order or starting
// corner and produces a normalized rectangle, rejecting rings that are not
// axis-aligned quadrilaterals within tolerance. [Classify] keeps only
// rectangles elongated enough to be border marks (rather than content) and
// reduces each survivor to its four directional edges.
package borders
