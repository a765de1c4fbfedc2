// Package svgpath parses SVG path data strings and interprets them into
// closed point sequences.
//
// Parsing and interpretation are two separate stages:
//
//  1. [ParseCommands] turns a path's d-attribute string into a sequence of
//     drawing commands, validating syntax and per-command argument counts.
//  2. [Interpret] replays the commands, tracking the current point, and
//     collects each closed subpath as a ring of points.
//
// Interpretation handles straight-line drawing only. The moment a curve
// command (C, S, Q, T, A or their relative forms) is encountered,
// interpretation of the entire path stops and the rings closed so far are
// returned. Curved borders are not supported; callers should expect paths
// containing curves to yield only the shapes emitted before the first curve.
package svgpath
