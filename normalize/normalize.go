// Package normalize prepares raw OCR text for gazetteer matching.
//
// Every step is offset-preserving for the character ranges that matter in
// practice (basic Latin plus accented French letters): spans found in the
// prepared text index directly into it, and all downstream slicing happens
// against the prepared text only.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator is the two-character marker that splits the full OCR description
// from the per-word annotations that follow it.
const Separator = "||"

// Prepare turns a raw lowercase OCR string into matchable text:
//
//  1. Truncate at the first Separator, keeping only the full description.
//  2. Strip accents: NFKD-decompose and drop combining marks, so "é" becomes
//     "e". For French accented letters this maps one character to one
//     character. A few compatibility characters expand instead (the "ﬁ"
//     ligature becomes "fi"); see the package tests.
//  3. Replace each apostrophe and hyphen with a single space.
//
// Prepare is idempotent: Prepare(Prepare(s)) == Prepare(s).
func Prepare(raw string) string {
	text := raw
	if i := strings.Index(text, Separator); i >= 0 {
		text = text[:i]
	}

	// The transformer carries per-run state, so it is built per call rather
	// than shared; Prepare stays safe for concurrent use.
	stripAccents := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if stripped, _, err := transform.String(stripAccents, text); err == nil {
		text = stripped
	}

	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '-' {
			return ' '
		}
		return r
	}, text)
}
