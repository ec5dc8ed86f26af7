// Package gazetteer loads the reference dataset of French communes used for
// city-name matching.
//
// The dataset is the La Poste "hexasmal" export: a gzip-compressed JSON array
// in which each element carries a nested "fields" object with the commune
// name, its postal code, and optionally a GPS coordinate pair. The loader
// projects each record onto [City] and removes duplicates by value, so the
// resulting [Gazetteer] contains each (name, postal code, coordinates) triple
// exactly once. Multiple cities may still share a name (different postal
// codes) or a postal code (different names).
package gazetteer

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrDataFormat is returned when the gazetteer source is not a valid
// gzip-compressed JSON array, or when a record is missing a required field.
// Load failures wrap this error; check with errors.Is.
var ErrDataFormat = errors.New("gazetteer: malformed source data")

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// City is a single gazetteer entry. Name is stored lowercase. PostalCode is
// kept as a string because leading zeros are significant ("01000" for
// Bourg-en-Bresse). Coordinates is nil when the source record has none.
type City struct {
	Name        string
	PostalCode  string
	Coordinates *Coordinates
}

// Gazetteer is a deduplicated list of cities in source order.
type Gazetteer []City

// cityKey is the value identity of a City, used for deduplication.
// A nil and a zero Coordinates compare as different entries.
type cityKey struct {
	name       string
	postalCode string
	hasCoords  bool
	coords     Coordinates
}

func (c City) key() cityKey {
	k := cityKey{name: c.Name, postalCode: c.PostalCode}
	if c.Coordinates != nil {
		k.hasCoords = true
		k.coords = *c.Coordinates
	}
	return k
}

// record mirrors one element of the hexasmal JSON array. Fields outside the
// City projection are ignored by the decoder.
type record struct {
	Fields struct {
		Name        string     `json:"nom_de_la_commune"`
		PostalCode  string     `json:"code_postal"`
		Coordinates *[]float64 `json:"coordonnees_gps"`
	} `json:"fields"`
}

// Load reads a gzip-compressed JSON gazetteer from r and returns the
// deduplicated city list. Any decompression, JSON, or schema problem is fatal
// to the call and reported as an error wrapping [ErrDataFormat]; no partial
// gazetteer is returned.
func Load(r io.Reader) (Gazetteer, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid gzip stream: %v", ErrDataFormat, err)
	}
	defer zr.Close()

	var records []record
	if err := json.NewDecoder(zr).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrDataFormat, err)
	}

	gz := make(Gazetteer, 0, len(records))
	seen := make(map[cityKey]struct{}, len(records))
	for i, rec := range records {
		city, err := rec.city()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDataFormat, i, err)
		}
		k := city.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		gz = append(gz, city)
	}
	return gz, nil
}

// LoadFile opens path and loads it via [Load].
func LoadFile(path string) (Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: load %s: %w", path, err)
	}
	return gz, nil
}

// city projects a source record onto City, lowercasing the commune name.
func (r record) city() (City, error) {
	if r.Fields.Name == "" {
		return City{}, errors.New("missing commune name")
	}
	if r.Fields.PostalCode == "" {
		return City{}, errors.New("missing postal code")
	}
	city := City{
		Name:       strings.ToLower(r.Fields.Name),
		PostalCode: r.Fields.PostalCode,
	}
	if r.Fields.Coordinates != nil {
		coords := *r.Fields.Coordinates
		if len(coords) != 2 {
			return City{}, fmt.Errorf("coordinate pair has %d elements", len(coords))
		}
		city.Coordinates = &Coordinates{Latitude: coords[0], Longitude: coords[1]}
	}
	return city, nil
}
