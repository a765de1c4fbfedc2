// Package render rasterizes extracted grid geometry and editor state into
// preview images. It exists for debugging and for thin display layers; the
// geometry engine itself never depends on it.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/gridmark/editor"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/svgdoc"
)

// Options controls preview rendering.
type Options struct {
	// Scale is the view scale factor, >= 1.
	Scale float64

	// Brightness dims the backdrop, 0 (black) to 1 (white).
	Brightness float64
}

// DefaultOptions returns full brightness at scale 1.
func DefaultOptions() Options {
	return Options{Scale: 1, Brightness: 1}
}

var (
	markColor      = color.RGBA{64, 64, 64, 255}
	highlightColor = color.RGBA{255, 128, 0, 255}
	selectedColor  = color.RGBA{0, 128, 255, 255}
	cellFillColor  = color.RGBA{0, 128, 255, 48}
)

// Preview renders the document's border marks, plus the editor's
// highlight, selection, and cells when ed is non-nil, into an RGBA image
// scaled by the view scale.
func Preview(doc *svgdoc.Document, ed *editor.Editor, opts Options) (*image.RGBA, error) {
	if opts.Scale < 1 {
		return nil, fmt.Errorf("render scale %g out of range: must be >= 1", opts.Scale)
	}
	if opts.Brightness < 0 || opts.Brightness > 1 {
		return nil, fmt.Errorf("render brightness %g out of range: must be in [0, 1]", opts.Brightness)
	}

	w := int(math.Ceil(doc.ViewBox.Width))
	h := int(math.Ceil(doc.ViewBox.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("degenerate view box %gx%g", doc.ViewBox.Width, doc.ViewBox.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	level := uint8(math.Round(255 * opts.Brightness))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{level, level, level, 255}}, image.Point{}, draw.Src)

	for _, r := range doc.Rects {
		fillBox(img, r, markColor)
	}

	if ed != nil {
		for _, cell := range ed.Cells() {
			fillBox(img, cell.BBox, cellFillColor)
		}
		for _, e := range ed.Selected() {
			fillBox(img, edgeBox(e), selectedColor)
		}
		if hl := ed.Highlighted(); hl != nil {
			fillBox(img, edgeBox(*hl), highlightColor)
		}
	}

	if opts.Scale == 1 {
		return img, nil
	}

	sw := int(math.Ceil(float64(w) * opts.Scale))
	sh := int(math.Ceil(float64(h) * opts.Scale))
	scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return scaled, nil
}

// edgeBox widens an edge's segment into a 1-unit-thick box so thin edges
// stay visible.
func edgeBox(e model.Edge) model.BBox {
	if e.Kind.Horizontal() {
		return model.NewBBox(e.X, e.Y-0.5, e.Width, 1)
	}
	return model.NewBBox(e.X-0.5, e.Y, 1, e.Height)
}

func fillBox(img *image.RGBA, b model.BBox, c color.Color) {
	r := image.Rect(
		int(math.Floor(b.Left())),
		int(math.Floor(b.Top())),
		int(math.Ceil(b.Right())),
		int(math.Ceil(b.Bottom())),
	)
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{c}, image.Point{}, draw.Over)
}
