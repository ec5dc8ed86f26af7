package ocr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Separator joins annotation texts in the flattened string representation.
// The first segment is the full description; everything after the first
// separator is per-word annotation text.
const Separator = "||"

// ErrNoResponses is returned by ParseJSON when the document contains no OCR
// responses.
var ErrNoResponses = errors.New("ocr: document contains no responses")

// Annotation is one text annotation of an OCR result. The first annotation
// of a result is the full description and carries the detected locale; the
// rest are word or line boxes.
type Annotation struct {
	Locale string `json:"locale,omitempty"`
	Text   string `json:"description"`
}

// Result is the outcome of recognizing one image. Construct it from stored
// Cloud Vision JSON with ParseJSON, from a live Tesseract run with
// Client.Recognize, or directly with NewResult.
type Result struct {
	Annotations []Annotation `json:"textAnnotations"`
}

// NewResult builds a Result with a single full-description annotation.
func NewResult(text, locale string) *Result {
	return &Result{Annotations: []Annotation{{Locale: locale, Text: text}}}
}

// visionDocument mirrors the stored Cloud Vision response shape:
// {"responses": [{"textAnnotations": [...]}]}.
type visionDocument struct {
	Responses []Result `json:"responses"`
}

// ParseJSON decodes a stored Cloud Vision OCR response document and returns
// its first response. A document with an empty response list yields
// ErrNoResponses.
func ParseJSON(data []byte) (*Result, error) {
	var doc visionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ocr: invalid response document: %w", err)
	}
	if len(doc.Responses) == 0 {
		return nil, ErrNoResponses
	}
	res := doc.Responses[0]
	return &res, nil
}

// Locale returns the two-character locale tag of the first annotation, or ""
// when the result has no annotations or no detected locale.
func (r *Result) Locale() string {
	if len(r.Annotations) == 0 {
		return ""
	}
	return r.Annotations[0].Locale
}

// AnnotationText returns all annotation texts lowercased and joined with
// Separator: the full description first, then each per-word annotation.
func (r *Result) AnnotationText() string {
	texts := make([]string, len(r.Annotations))
	for i, a := range r.Annotations {
		texts[i] = a.Text
	}
	return strings.ToLower(strings.Join(texts, Separator))
}
