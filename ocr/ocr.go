//go:build ocr

// Package ocr suggests grid-position labels for cells by running OCR over
// their region of a rasterized page image.
//
// This implementation wraps the Tesseract engine via gosseract and is only
// compiled with the "ocr" build tag. It requires Tesseract to be installed
// on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/gridmark/model"
)

// Client wraps Tesseract for label recognition.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_WORD); err != nil {
		client.Close()
		return nil, fmt.Errorf("configuring page segmentation: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SuggestLabel crops a cell's region out of a rendered page image, runs
// recognition over it, and validates the result as a grid position.
func (c *Client) SuggestLabel(img image.Image, region model.BBox) (model.CellPosition, error) {
	crop := image.Rect(
		int(math.Floor(region.Left())),
		int(math.Floor(region.Top())),
		int(math.Ceil(region.Right())),
		int(math.Ceil(region.Bottom())),
	).Intersect(img.Bounds())
	if crop.Empty() {
		return model.CellPosition{}, fmt.Errorf("cell region %+v is outside the image", region)
	}

	sub := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(sub, sub.Bounds(), img, crop.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, sub); err != nil {
		return model.CellPosition{}, fmt.Errorf("encoding cell region: %w", err)
	}
	if err := c.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return model.CellPosition{}, fmt.Errorf("setting image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return model.CellPosition{}, fmt.Errorf("recognition failed: %w", err)
	}

	label := strings.ToLower(strings.TrimSpace(text))
	pos, err := model.ParseCellPosition(label)
	if err != nil {
		return model.CellPosition{}, fmt.Errorf("recognized text %q is not a grid position", label)
	}
	return pos, nil
}
