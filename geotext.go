// Package geotext extracts candidate postal addresses (city name, postal
// code, and a surrounding text snippet) from OCR results of French product
// packaging.
//
// Basic usage:
//
//	ext, err := geotext.Open("laposte_hexasmal.json.gz")
//	if err != nil {
//	    // handle error
//	}
//	result := ext.ExtractLocation(ocrResult)
//	for _, addr := range result.Addresses {
//	    fmt.Println(addr)
//	}
//
// With options:
//
//	ext := geotext.FromGazetteer(gz,
//	    geotext.PostalCodeRadius(20),
//	    geotext.SnippetMargin(40),
//	)
//
// The gazetteer is loaded and compiled into a matcher exactly once; the
// returned Extractor is immutable and safe to share across concurrent
// ExtractLocation calls.
package geotext

import (
	"github.com/tsawler/geotext/address"
	"github.com/tsawler/geotext/gazetteer"
	"github.com/tsawler/geotext/match"
	"github.com/tsawler/geotext/normalize"
	"github.com/tsawler/geotext/ocr"
)

// CityMention is one city-name occurrence in the prepared text.
type CityMention struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// PostalCodeMention is one postal-code occurrence in the prepared text.
type PostalCodeMention struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// LinkedCity is a city mention with the postal code found near it.
type LinkedCity struct {
	PostalCode PostalCodeMention `json:"postal_code"`
	City       CityMention       `json:"city"`
}

// Result is the outcome of one extraction pass. Cities holds every city
// mention; FullCities and Addresses hold only the mentions that were linked
// to a nearby postal code. All offsets index into the prepared text.
type Result struct {
	Cities     []CityMention `json:"cities"`
	FullCities []LinkedCity  `json:"full_cities"`
	Addresses  []string      `json:"addresses"`
}

// emptyResult is what a gated (non-French) extraction returns.
func emptyResult() Result {
	return Result{
		Cities:     []CityMention{},
		FullCities: []LinkedCity{},
		Addresses:  []string{},
	}
}

// Extractor is the address-extraction engine. Build one with Open or
// FromGazetteer and reuse it; construction compiles the city-name automaton.
type Extractor struct {
	matcher *match.Matcher
	options ExtractOptions
}

// Open loads a gzip-compressed JSON gazetteer from path and builds an
// Extractor over it.
func Open(path string, opts ...Option) (*Extractor, error) {
	gz, err := gazetteer.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return FromGazetteer(gz, opts...), nil
}

// FromGazetteer builds an Extractor over an already-loaded gazetteer.
func FromGazetteer(gz gazetteer.Gazetteer, opts ...Option) *Extractor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Extractor{matcher: match.New(gz), options: options}
}

// ExtractLocation runs one extraction pass over res.
//
// Extraction is gated on the document locale: unless the first annotation's
// locale equals the configured tag ("fr" by default), the empty result is
// returned immediately. The gazetteer only covers French communes, so
// matching other locales would trade precision for nothing.
func (e *Extractor) ExtractLocation(res *ocr.Result) Result {
	if res == nil || res.Locale() != e.options.locale {
		return emptyResult()
	}

	text := normalize.Prepare(res.AnnotationText())
	matches := e.matcher.Extract(text)

	result := emptyResult()
	for _, m := range matches {
		result.Cities = append(result.Cities, CityMention{
			Name:  m.Name,
			Start: m.Start,
			End:   m.End,
		})

		pc, ok := e.linkPostalCode(text, m)
		if !ok {
			continue
		}
		result.FullCities = append(result.FullCities, LinkedCity{
			PostalCode: PostalCodeMention{Text: pc.Text, Start: pc.Start, End: pc.End},
			City:       CityMention{Name: m.Name, Start: m.Start, End: m.End},
		})
		result.Addresses = append(result.Addresses,
			address.Snippet(text, m.Span, pc.Span, e.options.snippetMargin))
	}
	return result
}

// linkPostalCode tries each gazetteer record behind a matched name, in
// gazetteer order, and keeps the first whose postal code occurs near the
// match. At most one postal code is linked per city mention.
func (e *Extractor) linkPostalCode(text string, m match.Match) (address.PostalCode, bool) {
	for _, city := range m.Cities {
		pc, ok := address.FindNearbyPostalCode(text, m.Span, city.PostalCode, e.options.postalCodeRadius)
		if ok {
			return pc, true
		}
	}
	return address.PostalCode{}, false
}
