package gazetteer

import (
	"bytes"
	"compress/gzip"
	"errors"
	"strings"
	"testing"
)

// gzipJSON compresses a JSON document for use as a Load source.
func gzipJSON(t *testing.T, doc string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(doc)); err != nil {
		t.Fatalf("compressing fixture: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing gzip writer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestLoad(t *testing.T) {
	doc := `[
		{"fields": {"nom_de_la_commune": "PARIS", "code_postal": "75000", "coordonnees_gps": [48.866667, 2.333333]}},
		{"fields": {"nom_de_la_commune": "POYA", "code_postal": "98827"}}
	]`

	gz, err := Load(gzipJSON(t, doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(gz) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(gz))
	}

	paris := gz[0]
	if paris.Name != "paris" {
		t.Errorf("Expected lowercased name 'paris', got %q", paris.Name)
	}
	if paris.PostalCode != "75000" {
		t.Errorf("Expected postal code '75000', got %q", paris.PostalCode)
	}
	if paris.Coordinates == nil {
		t.Fatal("Expected coordinates for paris")
	}
	if paris.Coordinates.Latitude != 48.866667 || paris.Coordinates.Longitude != 2.333333 {
		t.Errorf("Wrong coordinates: %+v", *paris.Coordinates)
	}

	poya := gz[1]
	if poya.Name != "poya" || poya.PostalCode != "98827" {
		t.Errorf("Unexpected second city: %+v", poya)
	}
	if poya.Coordinates != nil {
		t.Errorf("Expected nil coordinates for poya, got %+v", *poya.Coordinates)
	}
}

func TestLoad_DeduplicatesIdenticalRecords(t *testing.T) {
	doc := `[
		{"fields": {"nom_de_la_commune": "PARIS", "code_postal": "75000", "coordonnees_gps": [48.866667, 2.333333]}},
		{"fields": {"nom_de_la_commune": "PARIS", "code_postal": "75000", "coordonnees_gps": [48.866667, 2.333333]}}
	]`

	gz, err := Load(gzipJSON(t, doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(gz) != 1 {
		t.Errorf("Expected 1 city after dedup, got %d", len(gz))
	}
}

func TestLoad_DeduplicatesAfterProjection(t *testing.T) {
	// The records differ only in a field outside the City projection.
	doc := `[
		{"fields": {"nom_de_la_commune": "POYA", "code_postal": "98827", "ligne_5": "NEPOUI"}},
		{"fields": {"nom_de_la_commune": "POYA", "code_postal": "98827"}}
	]`

	gz, err := Load(gzipJSON(t, doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(gz) != 1 {
		t.Errorf("Expected 1 city after projection dedup, got %d", len(gz))
	}
}

func TestLoad_KeepsDistinctPostalCodes(t *testing.T) {
	// Same name, different postal codes: both survive.
	doc := `[
		{"fields": {"nom_de_la_commune": "BIO", "code_postal": "46500"}},
		{"fields": {"nom_de_la_commune": "BIO", "code_postal": "69000"}}
	]`

	gz, err := Load(gzipJSON(t, doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(gz) != 2 {
		t.Errorf("Expected 2 cities, got %d", len(gz))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source func(t *testing.T) *bytes.Reader
	}{
		{
			name: "not gzip",
			source: func(t *testing.T) *bytes.Reader {
				return bytes.NewReader([]byte(`[{"fields": {}}]`))
			},
		},
		{
			name: "invalid JSON",
			source: func(t *testing.T) *bytes.Reader {
				return gzipJSON(t, `[{"fields":`)
			},
		},
		{
			name: "missing commune name",
			source: func(t *testing.T) *bytes.Reader {
				return gzipJSON(t, `[{"fields": {"code_postal": "75000"}}]`)
			},
		},
		{
			name: "missing postal code",
			source: func(t *testing.T) *bytes.Reader {
				return gzipJSON(t, `[{"fields": {"nom_de_la_commune": "PARIS"}}]`)
			},
		},
		{
			name: "malformed coordinate pair",
			source: func(t *testing.T) *bytes.Reader {
				return gzipJSON(t, `[{"fields": {"nom_de_la_commune": "PARIS", "code_postal": "75000", "coordonnees_gps": [48.8]}}]`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gz, err := Load(tt.source(t))
			if !errors.Is(err, ErrDataFormat) {
				t.Errorf("Expected ErrDataFormat, got %v", err)
			}
			if gz != nil {
				t.Errorf("Expected no partial gazetteer, got %d cities", len(gz))
			}
		})
	}
}

func TestLoad_ErrorMentionsRecordIndex(t *testing.T) {
	doc := `[
		{"fields": {"nom_de_la_commune": "PARIS", "code_postal": "75000"}},
		{"fields": {"code_postal": "98827"}}
	]`

	_, err := Load(gzipJSON(t, doc))
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Errorf("Expected error to name the offending record, got %q", err.Error())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("testdata/does-not-exist.json.gz"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
