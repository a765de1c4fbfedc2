// Package gridmark provides a fluent API for extracting table-grid border
// geometry from SVG documents and assembling it into labeled cells.
//
// Basic usage:
//
//	doc, err := gridmark.Open("grid.svg").Document()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(len(doc.Edges), "selectable edges")
//
// Interactive assembly:
//
//	ed, err := gridmark.Open("grid.svg").
//	    ViewScale(2).
//	    KeepVerticalSelection().
//	    Editor()
//
// For advanced use cases, the lower-level svgdoc, borders, and editor
// packages are also available.
package gridmark

import (
	"io"

	"github.com/tsawler/gridmark/editor"
	"github.com/tsawler/gridmark/svgdoc"
)

// Source is a fluent handle over one SVG document to be loaded.
type Source struct {
	filename string
	reader   io.Reader
	options  Options
}

// Open prepares an SVG file for extraction.
//
// Example:
//
//	doc, err := gridmark.Open("grid.svg").Document()
func Open(filename string) *Source {
	return &Source{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader prepares an SVG document read from r.
func FromReader(r io.Reader) *Source {
	return &Source{
		reader:  r,
		options: defaultOptions(),
	}
}

// ViewScale sets the view scale factor (>= 1).
func (s *Source) ViewScale(scale float64) *Source {
	s.options.viewScale = scale
	return s
}

// Brightness sets the display brightness (0-1).
func (s *Source) Brightness(b float64) *Source {
	s.options.brightness = b
	return s
}

// KeepVerticalSelection makes completed cells keep their left/right edge
// selection, so consecutive cells can reuse the same side borders.
func (s *Source) KeepVerticalSelection() *Source {
	s.options.keepVerticalSelection = true
	return s
}

// Document loads and extracts the document: coordinate extent, candidate
// rectangles, and classified border edges. Extraction is all-or-nothing;
// any malformation fails the load.
func (s *Source) Document() (*svgdoc.Document, error) {
	if err := s.options.validate(); err != nil {
		return nil, err
	}
	if s.reader != nil {
		return svgdoc.Parse(s.reader)
	}
	return svgdoc.Open(s.filename)
}

// Editor loads the document and wraps it in an interactive cell-assembly
// editor configured from the source's options.
func (s *Source) Editor() (*editor.Editor, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	cfg := editor.DefaultConfig()
	cfg.SelectDistance = editor.DefaultSelectDistance / s.options.viewScale
	cfg.KeepVerticalSelection = s.options.keepVerticalSelection
	return editor.New(doc, cfg), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := gridmark.Must(gridmark.Open("grid.svg").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
