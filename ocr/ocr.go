//go:build ocr

// Package ocr produces and parses OCR results for packaging images.
//
// A [Result] is the unit the extraction pipeline consumes: an ordered list of
// text annotations whose first element carries the full description and the
// detected locale. Results come either from stored Cloud Vision responses
// (ParseJSON) or from a live Tesseract run ([Client]).
//
// The Tesseract backend wraps gosseract and requires Tesseract to be
// installed, with the French language pack for packaging shots:
//
//	apt-get install tesseract-ocr tesseract-ocr-fra
//
// Rebuild with the "ocr" build tag to enable it; without the tag a stub is
// compiled in and New returns ErrOCRNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for recognizing packaging images.
type Client struct {
	client   *gosseract.Client
	language string
}

// New creates an OCR client configured for French. The client should be
// closed when no longer needed to release Tesseract resources.
func New() (*Client, error) {
	c := &Client{client: gosseract.NewClient(), language: "fra"}
	if err := c.client.SetLanguage(c.language); err != nil {
		c.client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the Tesseract language(s), "+"-separated (e.g. "fra+eng").
// The first language determines the locale tag of recognized results.
func (c *Client) SetLanguage(lang string) error {
	if err := c.client.SetLanguage(lang); err != nil {
		return err
	}
	c.language = lang
	return nil
}

// Recognize performs OCR on image data (PNG, JPEG, TIFF, ...) and returns a
// Result whose first annotation is the full recognized text tagged with the
// locale derived from the configured language, followed by one annotation
// per recognized word.
func (c *Client) Recognize(imageData []byte) (*Result, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	res := NewResult(strings.TrimSpace(text), localeForLanguage(c.language))

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Word boxes are supplementary; the full description alone is a
		// usable result.
		return res, nil
	}
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		res.Annotations = append(res.Annotations, Annotation{Text: word})
	}
	return res, nil
}

// localeForLanguage maps the first configured Tesseract language code to a
// two-character locale tag.
func localeForLanguage(lang string) string {
	if i := strings.Index(lang, "+"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "fra":
		return "fr"
	case "eng":
		return "en"
	case "deu":
		return "de"
	case "spa":
		return "es"
	case "ita":
		return "it"
	case "nld":
		return "nl"
	case "por":
		return "pt"
	}
	if len(lang) >= 2 {
		return lang[:2]
	}
	return lang
}
