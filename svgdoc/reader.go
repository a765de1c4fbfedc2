package svgdoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/gridmark/borders"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/svgpath"
)

// ErrMalformed wraps all document-malformed failures: unparsable markup,
// unparsable path data, or a missing or unusable viewBox. Callers surface
// any error wrapping it as a single "failed to load" outcome.
var ErrMalformed = errors.New("malformed document")

// Document holds everything extracted from one SVG document. The extracted
// data is static: it is computed once per load and only read afterwards.
type Document struct {
	// ViewBox is the document's declared coordinate extent, origin (0, 0).
	ViewBox model.BBox

	// Rects are all candidate rectangles reconstructed from path data,
	// in document order.
	Rects []model.BBox

	// Edges are the directional border edges classified from Rects.
	Edges []model.Edge
}

// Open reads and extracts an SVG file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads and extracts an SVG document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing markup: %v", ErrMalformed, err)
	}

	viewBox, ok := findViewBox(root)
	if !ok {
		return nil, fmt.Errorf("%w: no svg element with a viewBox attribute", ErrMalformed)
	}
	extent, err := ParseViewBox(viewBox)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var pathData []string
	collectPathData(root, &pathData)

	doc := &Document{ViewBox: extent}
	for _, d := range pathData {
		rings, err := svgpath.InterpretString(d)
		if err != nil {
			// Unparsable path data means the document is corrupt.
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		for _, ring := range rings {
			if rect, ok := borders.Reconstruct(ring); ok {
				doc.Rects = append(doc.Rects, rect)
			}
		}
	}

	doc.Edges = borders.Classify(doc.Rects)
	return doc, nil
}

// findViewBox locates the first svg element carrying a viewBox attribute.
// The html parser lowercases attribute keys, so the attribute appears as
// "viewbox".
func findViewBox(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "svg") {
		for _, attr := range n.Attr {
			if strings.EqualFold(attr.Key, "viewbox") {
				return attr.Val, true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := findViewBox(c); ok {
			return v, true
		}
	}
	return "", false
}

// collectPathData gathers the d attribute of every path element,
// depth-first. A path element terminates its branch: a path is taken as a
// leaf and its children, if any, are not searched. Container elements are
// recursed into.
func collectPathData(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "path") {
		for _, attr := range n.Attr {
			if attr.Key == "d" {
				*out = append(*out, attr.Val)
				break
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectPathData(c, out)
	}
}
