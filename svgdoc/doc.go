// Package svgdoc reads SVG documents and extracts candidate border
// geometry from them.
//
// The reader walks the document tree depth-first, collecting the path data
// of every path element, and runs the svgpath interpreter and the borders
// reconstructor over each. Non-rectangular shapes are skipped silently;
// most document content is expected to be ordinary artwork. A path data
// string that fails to parse, or a missing, malformed, or non-zero-origin
// viewBox, fails the whole extraction: loading is all-or-nothing.
package svgdoc
