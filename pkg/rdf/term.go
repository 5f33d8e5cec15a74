// Package rdf implements the N-Triples subset used by ConceptNet-style
// semantic web data: bracketed URLs, prefixed names, and literal strings
// with simple language tags. It provides the URL codec, resource naming,
// URI translation, and a deduplicating writer and streaming reader for
// .nt files.
package rdf

import "fmt"

// TagURL marks a Node whose Text is a decoded URL rather than
// natural-language text.
const TagURL = "URL"

// OWLSameAs is the OWL predicate asserting that two resource identifiers
// denote the same entity.
const OWLSameAs = "http://www.w3.org/2002/07/owl#sameAs"

// Node is one resolved subject/relation/object position. Tag is either
// TagURL or a language code (region suffixes already dropped, so "en"
// rather than "en-us"). Text is the decoded URL or the literal string.
type Node struct {
	Tag  string
	Text string
}

// NewURLNode returns a Node tagged as a URL.
func NewURLNode(url string) Node {
	return Node{Tag: TagURL, Text: url}
}

// NewLiteralNode returns a Node carrying natural-language text.
func NewLiteralNode(lang, text string) Node {
	return Node{Tag: lang, Text: text}
}

// IsURL reports whether the node holds a URL rather than literal text.
func (n Node) IsURL() bool {
	return n.Tag == TagURL
}

func (n Node) String() string {
	if n.IsURL() {
		return fmt.Sprintf("<%s>", n.Text)
	}
	return fmt.Sprintf("%q@%s", n.Text, n.Tag)
}

// Statement is a fully resolved triple as produced by the Reader.
type Statement struct {
	Subject  Node
	Relation Node
	Object   Node
}

func (s Statement) String() string {
	return fmt.Sprintf("%s %s %s .", s.Subject, s.Relation, s.Object)
}

// Triple is a raw, pre-resolution triple of N-Triples URL tokens as
// consumed by the Writer. The fields are inserted into output lines
// verbatim, so callers must supply values that are already valid
// percent-encoded URL tokens.
type Triple struct {
	Subject  string
	Relation string
	Object   string
}

func (t Triple) String() string {
	return fmt.Sprintf("<%s> <%s> <%s> .", t.Subject, t.Relation, t.Object)
}
