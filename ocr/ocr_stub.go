//go:build !ocr

// Package ocr produces and parses OCR results for packaging images.
//
// This is the stub implementation used when the "ocr" build tag is not set:
// parsing stored Cloud Vision responses works as usual, but the live
// Tesseract backend is unavailable and New returns ErrOCRNotEnabled.
//
// To enable live recognition, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract and its French language pack:
//
//	apt-get install tesseract-ocr tesseract-ocr-fra
package ocr

import "errors"

// ErrOCRNotEnabled is returned when live OCR is requested but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Recognize returns an error indicating OCR support is not enabled.
func (c *Client) Recognize(imageData []byte) (*Result, error) {
	return nil, ErrOCRNotEnabled
}
