//go:build !ocr

// Package ocr suggests grid-position labels for cells by running OCR over
// their region of a rasterized page image.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"
	"image"

	"github.com/tsawler/gridmark/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a placeholder for the Tesseract-backed client.
type Client struct{}

// New returns ErrOCRNotEnabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op on the stub.
func (c *Client) Close() error {
	return nil
}

// SuggestLabel returns ErrOCRNotEnabled.
func (c *Client) SuggestLabel(img image.Image, region model.BBox) (model.CellPosition, error) {
	return model.CellPosition{}, ErrOCRNotEnabled
}
