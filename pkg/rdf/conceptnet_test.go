package rdf

import (
	"errors"
	"strings"
	"testing"
)

func TestFullConceptNetURL(t *testing.T) {
	got, err := FullConceptNetURL("/c/en/dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "http://conceptnet5.media.mit.edu/data/5.2/c/en/dog"
	if got != expected {
		t.Errorf("FullConceptNetURL(/c/en/dog) = %q, want %q", got, expected)
	}
}

func TestFullConceptNetURL_InvalidURI(t *testing.T) {
	for _, uri := range []string{"c/en/dog", "", "http://example.org/"} {
		if _, err := FullConceptNetURL(uri); !errors.Is(err, ErrInvalidURI) {
			t.Errorf("FullConceptNetURL(%q): expected ErrInvalidURI, got %v", uri, err)
		}
	}
}

func TestFullConceptNetURL_SafeOutput(t *testing.T) {
	uris := []string{
		"/c/en/dog",
		"/c/en/dog house",
		"/c/es/Núria",
		"/c/en/<odd>",
	}
	for _, uri := range uris {
		got, err := FullConceptNetURL(uri)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", uri, err)
		}
		if !strings.HasPrefix(got, RootURL) {
			t.Errorf("FullConceptNetURL(%q) = %q does not start with root", uri, got)
		}
		if strings.ContainsAny(got, " <>") {
			t.Errorf("FullConceptNetURL(%q) = %q contains unsafe characters", uri, got)
		}
	}
}
