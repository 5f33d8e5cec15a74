package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/semweb-go/ntkit/pkg/rdf"
)

// NodeDecoder recovers resolved nodes from their encoded form
type NodeDecoder struct{}

func NewNodeDecoder() *NodeDecoder {
	return &NodeDecoder{}
}

// DecodeNode reconstructs a node from its encoding. For hashed kinds,
// stored must be the id2str string saved alongside the encoding; it is
// ignored for inline kinds.
func (d *NodeDecoder) DecodeNode(encoded EncodedNode, stored string) (rdf.Node, error) {
	switch encoded.Kind() {
	case KindInlineURL:
		text := encoded[1:]
		if idx := bytes.IndexByte(text, 0); idx >= 0 {
			text = text[:idx]
		}
		return rdf.NewURLNode(string(text)), nil

	case KindURL:
		return rdf.NewURLNode(stored), nil

	case KindLangLiteral:
		// Stored as "text@lang"; the language tag itself never
		// contains '@', so split at the last one.
		idx := strings.LastIndex(stored, "@")
		if idx < 0 {
			return rdf.Node{}, fmt.Errorf("stored literal %q has no language tag", stored)
		}
		return rdf.NewLiteralNode(stored[idx+1:], stored[:idx]), nil

	default:
		return rdf.Node{}, fmt.Errorf("unknown node kind: %d", encoded.Kind())
	}
}
