package rdf

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrMalformedPrefixLine reports an @prefix line that does not have
	// exactly the form "@prefix token: <url> .".
	ErrMalformedPrefixLine = errors.New("malformed @prefix line")

	// ErrMalformedTripleLine reports a statement line that does not have
	// exactly four space-separated fields ending in ".".
	ErrMalformedTripleLine = errors.New("malformed triple line")

	// ErrMalformedLiteral reports a literal token whose quoted segment is
	// not surrounded by double quotes.
	ErrMalformedLiteral = errors.New("malformed literal")
)

// UnknownPrefixError reports a prefixed name whose prefix was never
// declared by an @prefix line seen by this Reader.
type UnknownPrefixError struct {
	Prefix string
}

func (e *UnknownPrefixError) Error() string {
	return fmt.Sprintf("unknown prefix: %q", e.Prefix)
}

// Reader parses files in N-Triples format, keeping track of the prefixes
// they define and expanding them when they appear. The prefix table is
// shared across every file parsed through the same Reader, so prefixes
// declared in one file remain visible in the next.
//
// The supported syntax is the subset this toolkit targets: bracketed
// URLs, prefixed names, and quoted literals with a language tag.
// Backslash escapes inside literals are passed through without
// un-escaping; this is a known limitation of the literal subset.
type Reader struct {
	prefixes map[string]string
}

// NewReader returns a Reader with an empty prefix table.
func NewReader() *Reader {
	return &Reader{prefixes: make(map[string]string)}
}

// ParseFile opens the file at path and returns an iterator over its
// resolved statements. The iterator is single-pass and lazy: a malformed
// line surfaces its error only when reached. The file handle is released
// when iteration ends or on Close.
func (r *Reader) ParseFile(path string) (*FileIterator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &FileIterator{r: r, path: path, file: f, scanner: sc}, nil
}

// ParseAll is an eager convenience over ParseFile, returning every
// statement in the file.
func (r *Reader) ParseAll(path string) ([]Statement, error) {
	it, err := r.ParseFile(path)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var statements []Statement
	for it.Next() {
		statements = append(statements, it.Statement())
	}
	return statements, it.Err()
}

// ParseLine parses one line of N-Triples text. An @prefix line updates
// the prefix table and returns (nil, nil); a blank line returns
// (nil, nil); a statement line returns its resolved statement. Lines are
// split on single spaces into exactly four fields ending in ".".
func (r *Reader) ParseLine(line string) (*Statement, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	// Prefix definitions look like:
	// @prefix wn30: <http://purl.org/vocabularies/princeton/wn30/> .
	if strings.HasPrefix(line, "@prefix") {
		fields := strings.Split(line, " ")
		if len(fields) != 4 || fields[3] != "." {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPrefixLine, line)
		}
		name := strings.TrimRight(fields[1], ":")
		r.prefixes[name] = DecodeURL(fields[2])
		return nil, nil
	}

	fields := strings.Split(line, " ")
	if len(fields) != 4 || fields[3] != "." {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTripleLine, line)
	}

	subject, err := r.ResolveNode(fields[0])
	if err != nil {
		return nil, err
	}
	relation, err := r.ResolveNode(fields[1])
	if err != nil {
		return nil, err
	}
	object, err := r.ResolveNode(fields[2])
	if err != nil {
		return nil, err
	}
	return &Statement{Subject: subject, Relation: relation, Object: object}, nil
}

// ResolveNode expands a node token from N-Triples syntax into either its
// full decoded URL or its natural-language text, whichever applies.
//
//	reader.ResolveNode("wn30:synset-Roman_alphabet-noun-1")
//	// Node{Tag: "URL", Text: "http://purl.org/vocabularies/princeton/wn30/synset-Roman_alphabet-noun-1"}
//	reader.ResolveNode(`"Abelian group"@en-us`)
//	// Node{Tag: "en", Text: "Abelian group"}
func (r *Reader) ResolveNode(token string) (Node, error) {
	if strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		return NewURLNode(DecodeURL(token)), nil
	}

	if strings.HasPrefix(token, `"`) {
		idx := strings.LastIndex(token, "@")
		if idx < 0 {
			return Node{}, fmt.Errorf("%w: missing language tag in %q", ErrMalformedLiteral, token)
		}
		quoted, langTag := token[:idx], token[idx+1:]
		if !strings.HasSuffix(quoted, `"`) {
			return Node{}, fmt.Errorf("%w: %q", ErrMalformedLiteral, token)
		}
		// A lone '"' counts as an empty quoted segment.
		text := ""
		if len(quoted) >= 2 {
			text = quoted[1 : len(quoted)-1]
		}
		lang, _, _ := strings.Cut(langTag, "-")
		return NewLiteralNode(lang, text), nil
	}

	prefix, resource, ok := strings.Cut(token, ":")
	if !ok {
		return Node{}, fmt.Errorf("%w: unrecognized token %q", ErrMalformedTripleLine, token)
	}
	base, ok := r.prefixes[prefix]
	if !ok {
		return Node{}, &UnknownPrefixError{Prefix: prefix}
	}
	// Concatenate before decoding so percent escapes spanning the
	// prefix/resource boundary decode as one sequence.
	return NewURLNode(DecodeURL(base + resource)), nil
}

// FileIterator is a single-pass iterator over the statements of one
// file, in the style of bufio.Scanner: call Next until it returns false,
// then check Err.
type FileIterator struct {
	r       *Reader
	path    string
	file    *os.File
	scanner *bufio.Scanner
	lineno  int
	stmt    Statement
	err     error
	done    bool
}

// Next advances to the next statement. It returns false at end of file
// or on the first error; prefix and blank lines are consumed silently.
func (it *FileIterator) Next() bool {
	if it.done {
		return false
	}
	for it.scanner.Scan() {
		it.lineno++
		line := strings.TrimSpace(it.scanner.Text())
		if line == "" {
			continue
		}
		stmt, err := it.r.ParseLine(line)
		if err != nil {
			it.err = fmt.Errorf("%s:%d: %w", it.path, it.lineno, err)
			it.finish()
			return false
		}
		if stmt == nil {
			continue
		}
		it.stmt = *stmt
		return true
	}
	if err := it.scanner.Err(); err != nil {
		it.err = fmt.Errorf("failed to read %s: %w", it.path, err)
	}
	it.finish()
	return false
}

// Statement returns the statement produced by the last successful Next.
func (it *FileIterator) Statement() Statement {
	return it.stmt
}

// Err returns the first error encountered during iteration.
func (it *FileIterator) Err() error {
	return it.err
}

// Close releases the underlying file. It is safe to call after
// iteration has already finished.
func (it *FileIterator) Close() error {
	if it.done {
		return nil
	}
	return it.finish()
}

func (it *FileIterator) finish() error {
	it.done = true
	err := it.file.Close()
	// A failed release must not vanish when iteration itself succeeded.
	if err != nil && it.err == nil {
		it.err = err
	}
	return err
}
