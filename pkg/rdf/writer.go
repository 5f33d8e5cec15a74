package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNonASCII reports an output line containing a byte outside 7-bit
// ASCII. N-Triples output carries non-ASCII characters as percent
// escapes, so a raw non-ASCII byte means the caller failed to encode a
// URL before writing it.
var ErrNonASCII = errors.New("output line contains non-ASCII byte")

// Writer emits triples in N-Triples format, suppressing duplicates.
//
// N-Triples is a sequence of lines of the form
//
//	<node1> <relation> <node2> .
//
// The angle brackets are literally present and the things they contain
// are URLs. The suggested file extension is ".nt".
type Writer struct {
	w    *bufio.Writer
	file *os.File // non-nil only when the writer opened the sink itself
	seen map[Triple]struct{}
}

// NewWriter returns a Writer emitting to w. The sink is borrowed: Close
// flushes but does not close it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:    bufio.NewWriter(w),
		seen: make(map[Triple]struct{}),
	}
}

// CreateFileWriter creates or truncates the file at path and returns a
// Writer that owns it; Close closes the file.
func CreateFileWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	w := NewWriter(f)
	w.file = f
	return w, nil
}

// Write emits one triple as an N-Triples line, unless an identical
// triple was already written through this Writer. The three URL strings
// are inserted verbatim; callers are responsible for passing valid
// percent-encoded URL tokens, and a non-ASCII byte fails with
// ErrNonASCII.
func (w *Writer) Write(t Triple) error {
	if _, ok := w.seen[t]; ok {
		return nil
	}
	line := t.String()
	for i := 0; i < len(line); i++ {
		if line[i] > 0x7f {
			return fmt.Errorf("%w: %q", ErrNonASCII, line)
		}
	}
	w.seen[t] = struct{}{}
	if _, err := w.w.WriteString(line); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteSameAs writes a line expressing that a is the same resource as b.
func (w *Writer) WriteSameAs(a, b string) error {
	return w.Write(Triple{Subject: a, Relation: OWLSameAs, Object: b})
}

// Close flushes buffered output and, if the Writer opened its sink
// itself, closes it. Borrowed sinks such as os.Stdout are left open.
func (w *Writer) Close() error {
	err := w.w.Flush()
	if w.file != nil {
		if cerr := w.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
