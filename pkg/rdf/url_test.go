package rdf

import (
	"strings"
	"testing"
)

func TestDecodeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bracketed percent-encoded URL",
			input:    "<http://dbpedia.org/resource/N%C3%BAria_Espert>",
			expected: "http://dbpedia.org/resource/Núria_Espert",
		},
		{
			name:     "no brackets",
			input:    "http://example.org/a%20b",
			expected: "http://example.org/a b",
		},
		{
			name:     "already minimal",
			input:    "http://example.org/plain",
			expected: "http://example.org/plain",
		},
		{
			name:     "leading bracket only",
			input:    "<http://example.org/x",
			expected: "http://example.org/x",
		},
		{
			name:     "trailing bracket only",
			input:    "http://example.org/x>",
			expected: "http://example.org/x",
		},
		{
			name:     "invalid escape passes through",
			input:    "http://example.org/%ZZ",
			expected: "http://example.org/%ZZ",
		},
		{
			name:     "truncated escape passes through",
			input:    "http://example.org/%4",
			expected: "http://example.org/%4",
		},
		{
			name:     "invalid UTF-8 byte becomes replacement char",
			input:    "http://example.org/%FF",
			expected: "http://example.org/�",
		},
		{
			name:     "each invalid byte replaced separately",
			input:    "%FF%FE",
			expected: "��",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeURL(tt.input); got != tt.expected {
				t.Errorf("DecodeURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeURLComponent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "safe characters preserved",
			input:    "/c/en/dog_A.b-c~0",
			expected: "/c/en/dog_A.b-c~0",
		},
		{
			name:     "space escaped",
			input:    "/c/en/dog house",
			expected: "/c/en/dog%20house",
		},
		{
			name:     "slash preserved in hierarchical path",
			input:    "a/b/c",
			expected: "a/b/c",
		},
		{
			name:     "non-ASCII escaped byte by byte",
			input:    "Núria",
			expected: "N%C3%BAria",
		},
		{
			name:     "reserved punctuation escaped",
			input:    "a:b?c#d",
			expected: "a%3Ab%3Fc%23d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeURLComponent(tt.input); got != tt.expected {
				t.Errorf("EncodeURLComponent(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{
		"/c/en/dog",
		"/c/es/Núria Espert",
		"/d/wordnet/3.0",
		"plain",
	}
	for _, input := range inputs {
		encoded := EncodeURLComponent(input)
		if strings.ContainsAny(encoded, " <>") {
			t.Errorf("EncodeURLComponent(%q) = %q contains unsafe characters", input, encoded)
		}
		if got := DecodeURL(encoded); got != input {
			t.Errorf("DecodeURL(EncodeURLComponent(%q)) = %q", input, got)
		}
	}
}
