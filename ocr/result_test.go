package ocr

import (
	"errors"
	"testing"
)

func TestParseJSON(t *testing.T) {
	doc := `{
		"responses": [
			{
				"textAnnotations": [
					{"locale": "fr", "description": "Fabriqué à PARIS\n75001"},
					{"description": "Fabriqué"},
					{"description": "à"},
					{"description": "PARIS"}
				]
			}
		]
	}`

	res, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(res.Annotations) != 4 {
		t.Fatalf("Expected 4 annotations, got %d", len(res.Annotations))
	}
	if res.Locale() != "fr" {
		t.Errorf("Expected locale 'fr', got %q", res.Locale())
	}
	if res.Annotations[0].Text != "Fabriqué à PARIS\n75001" {
		t.Errorf("Wrong full description: %q", res.Annotations[0].Text)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		if _, err := ParseJSON([]byte(`{"responses": [`)); err == nil {
			t.Error("Expected an error for truncated JSON")
		}
	})

	t.Run("no responses", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"responses": []}`))
		if !errors.Is(err, ErrNoResponses) {
			t.Errorf("Expected ErrNoResponses, got %v", err)
		}
	})
}

func TestResult_Locale(t *testing.T) {
	tests := []struct {
		name string
		res  *Result
		want string
	}{
		{"with locale", NewResult("text", "fr"), "fr"},
		{"no locale", NewResult("text", ""), ""},
		{"no annotations", &Result{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Locale(); got != tt.want {
				t.Errorf("Locale() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_AnnotationText(t *testing.T) {
	res := &Result{Annotations: []Annotation{
		{Locale: "fr", Text: "Fabriqué à PARIS"},
		{Text: "Fabriqué"},
		{Text: "à"},
		{Text: "PARIS"},
	}}

	want := "fabriqué à paris||fabriqué||à||paris"
	if got := res.AnnotationText(); got != want {
		t.Errorf("AnnotationText() = %q, want %q", got, want)
	}
}

func TestResult_AnnotationText_SingleAnnotation(t *testing.T) {
	res := NewResult("Plain TEXT", "en")
	if got := res.AnnotationText(); got != "plain text" {
		t.Errorf("Expected no separator for a single annotation, got %q", got)
	}
}
