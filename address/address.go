// Package address links a matched city name to a nearby postal code and cuts
// the surrounding address snippet out of the text.
package address

import (
	"strings"

	"github.com/tsawler/geotext/match"
)

// DefaultSearchRadius is how many characters around a city span are searched
// for its postal code.
const DefaultSearchRadius = 10

// DefaultSnippetMargin is how many characters of context are kept on each
// side of a linked (city, postal code) pair.
const DefaultSnippetMargin = 30

// PostalCode is one occurrence of a postal code in the text.
type PostalCode struct {
	Text string
	match.Span
}

// FindNearbyPostalCode searches text for code as a literal digit sequence
// beginning inside the window [span.Start-radius, span.End+radius], clipped
// to the text. An occurrence only counts when it is not immediately adjacent
// to another digit, so "75001" never matches inside "975001". The first
// qualifying occurrence is returned with offsets into text; ok is false when
// the window holds none.
func FindNearbyPostalCode(text string, span match.Span, code string, radius int) (PostalCode, bool) {
	if code == "" {
		return PostalCode{}, false
	}
	lo := clip(span.Start-radius, len(text))
	hi := clip(span.End+radius, len(text))

	for from := lo; from <= hi; {
		i := strings.Index(text[from:], code)
		if i < 0 {
			return PostalCode{}, false
		}
		start := from + i
		if start > hi {
			return PostalCode{}, false
		}
		end := start + len(code)
		if boundedByNonDigits(text, start, end) {
			return PostalCode{
				Text: code,
				Span: match.Span{Start: start, End: end},
			}, true
		}
		from = start + 1
	}
	return PostalCode{}, false
}

// boundedByNonDigits reports whether text[start:end] has no digit directly
// before or after it. The text edges count as boundaries.
func boundedByNonDigits(text string, start, end int) bool {
	if start > 0 && isDigit(text[start-1]) {
		return false
	}
	if end < len(text) && isDigit(text[end]) {
		return false
	}
	return true
}

// Snippet returns the address snippet for a linked pair: the text from margin
// characters before the earlier span to margin characters after the later
// one, clipped to the text bounds.
func Snippet(text string, citySpan, postalSpan match.Span, margin int) string {
	start := min(citySpan.Start, postalSpan.Start) - margin
	end := max(citySpan.End, postalSpan.End) + margin
	return text[clip(start, len(text)):clip(end, len(text))]
}

func clip(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
