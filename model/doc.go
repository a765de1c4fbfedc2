// Package model defines the shared data model for gridmark: geometric
// primitives (Point, Segment, BBox), classified border edges, and grid
// cells with their parsed labels.
//
// All coordinates use the SVG convention: the origin is the top-left
// corner of the document and Y grows downward.
package model
