package rdf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterDedup(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	triple := Triple{
		Subject:  "http://example.org/a",
		Relation: "http://example.org/rel",
		Object:   "http://example.org/b",
	}

	if err := w.Write(triple); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Write(triple); err != nil {
		t.Fatalf("unexpected error on duplicate: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after duplicate write, got %d: %q", len(lines), lines)
	}
	expected := "<http://example.org/a> <http://example.org/rel> <http://example.org/b> ."
	if lines[0] != expected {
		t.Errorf("line = %q, want %q", lines[0], expected)
	}
}

func TestWriterDistinctTriples(t *testing.T) {
	base := Triple{
		Subject:  "http://example.org/a",
		Relation: "http://example.org/rel",
		Object:   "http://example.org/b",
	}
	variants := []Triple{
		{Subject: "http://example.org/x", Relation: base.Relation, Object: base.Object},
		{Subject: base.Subject, Relation: "http://example.org/other", Object: base.Object},
		{Subject: base.Subject, Relation: base.Relation, Object: "http://example.org/y"},
	}

	for _, variant := range variants {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		if err := w.Write(base); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Write(variant); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("unexpected error on close: %v", err)
		}
		if lines := nonEmptyLines(buf.String()); len(lines) != 2 {
			t.Errorf("expected 2 lines for distinct triples, got %d", len(lines))
		}
	}
}

func TestWriterSameAs(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteSameAs("http://example.org/a", "http://example.org/b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	expected := "<http://example.org/a> <http://www.w3.org/2002/07/owl#sameAs> <http://example.org/b> .\n"
	if buf.String() != expected {
		t.Errorf("output = %q, want %q", buf.String(), expected)
	}
}

func TestWriterNonASCII(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	bad := Triple{
		Subject:  "http://example.org/Núria",
		Relation: "http://example.org/rel",
		Object:   "http://example.org/b",
	}
	if err := w.Write(bad); !errors.Is(err, ErrNonASCII) {
		t.Fatalf("expected ErrNonASCII, got %v", err)
	}
	// A rejected triple must not be marked seen.
	if err := w.Write(bad); !errors.Is(err, ErrNonASCII) {
		t.Errorf("expected ErrNonASCII on retry, got %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.nt")

	w, err := CreateFileWriter(path)
	if err != nil {
		t.Fatalf("failed to create writer: %v", err)
	}
	if err := w.Write(Triple{
		Subject:  "http://example.org/a",
		Relation: "http://example.org/rel",
		Object:   "http://example.org/b",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	expected := "<http://example.org/a> <http://example.org/rel> <http://example.org/b> .\n"
	if string(data) != expected {
		t.Errorf("file content = %q, want %q", string(data), expected)
	}
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
