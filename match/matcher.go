// Package match finds gazetteer city names in prepared OCR text.
//
// The matcher compiles every distinct city name into a single Aho-Corasick
// automaton, so one scan of the text finds all occurrences regardless of how
// many names the gazetteer holds. Matching cost is linear in the text length,
// independent of gazetteer size.
package match

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/tsawler/geotext/gazetteer"
)

// Span is a half-open character interval [Start, End) into the text a match
// was found in.
type Span struct {
	Start int
	End   int
}

// Match is one non-overlapping occurrence of a city name. Cities holds every
// gazetteer record sharing that name, in gazetteer order: a name like "bio"
// can belong to several communes with different postal codes, and this
// package does not pick a winner among them.
type Match struct {
	Name   string
	Cities []gazetteer.City
	Span
}

// Matcher is an immutable multi-pattern automaton over gazetteer city names.
// Build it once with New and share it freely across concurrent Extract calls.
type Matcher struct {
	automaton ahocorasick.AhoCorasick
	names     []string
	cities    [][]gazetteer.City // parallel to names
	empty     bool
}

// New builds a Matcher from gz. Names are matched whole-word, scanning left
// to right; when several names could match at the same position the longest
// wins, and matches never overlap.
func New(gz gazetteer.Gazetteer) *Matcher {
	names := make([]string, 0, len(gz))
	cities := make([][]gazetteer.City, 0, len(gz))
	index := make(map[string]int, len(gz))
	for _, city := range gz {
		i, ok := index[city.Name]
		if !ok {
			i = len(names)
			index[city.Name] = i
			names = append(names, city.Name)
			cities = append(cities, nil)
		}
		cities[i] = append(cities[i], city)
	}

	m := &Matcher{names: names, cities: cities, empty: len(names) == 0}
	if m.empty {
		return m
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchOnlyWholeWords: true,
		MatchKind:           ahocorasick.LeftMostLongestMatch,
		DFA:                 true,
	})
	m.automaton = builder.Build(names)
	return m
}

// Extract returns every city-name occurrence in text, in left-to-right order.
// No occurrence is not an error: the result is simply empty.
func (m *Matcher) Extract(text string) []Match {
	if m.empty || text == "" {
		return nil
	}

	found := m.automaton.FindAll(text)
	if len(found) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(found))
	for _, f := range found {
		i := f.Pattern()
		matches = append(matches, Match{
			Name:   m.names[i],
			Cities: m.cities[i],
			Span:   Span{Start: f.Start(), End: f.End()},
		})
	}
	return matches
}
