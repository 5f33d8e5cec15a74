// Package encoding packs resolved nodes into fixed-width keys for the
// statement store. Each node becomes a kind byte followed by 16 bytes of
// payload: short URL-node text is inlined, everything else is a 128-bit
// xxh3 hash with the original string kept in the id2str table.
package encoding

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/semweb-go/ntkit/pkg/rdf"
)

const (
	// Maximum size for inline node text (16 bytes of UTF-8)
	MaxInlineTextSize = 16

	// Encoded node size (kind byte + 16 bytes for 128-bit hash or inline data)
	EncodedNodeSize = 17
)

// Node kinds stored in the leading byte.
const (
	KindURL byte = iota + 1
	KindInlineURL
	KindLangLiteral
)

// EncodedNode is a node encoded as a kind byte followed by 16 bytes of data
type EncodedNode [EncodedNodeSize]byte

// Kind returns the kind byte of an encoded node.
func (e EncodedNode) Kind() byte {
	return e[0]
}

// NodeEncoder handles encoding of resolved nodes into store keys
type NodeEncoder struct{}

func NewNodeEncoder() *NodeEncoder {
	return &NodeEncoder{}
}

// Hash128 computes a 128-bit xxh3 hash of the input string
func (e *NodeEncoder) Hash128(s string) [16]byte {
	hash := xxh3.Hash128([]byte(s))
	var result [16]byte
	binary.BigEndian.PutUint64(result[0:8], hash.Hi)
	binary.BigEndian.PutUint64(result[8:16], hash.Lo)
	return result
}

// EncodeNode encodes a resolved node into a fixed-size key segment.
// The second return value, when non-nil, is the string that must be
// stored in the id2str table under this encoding to make the node
// recoverable.
func (e *NodeEncoder) EncodeNode(node rdf.Node) (EncodedNode, *string) {
	var encoded EncodedNode

	if node.IsURL() {
		// Inline payloads are zero-padded, so text containing a NUL
		// byte must take the hashed path to stay recoverable.
		if len(node.Text) <= MaxInlineTextSize && strings.IndexByte(node.Text, 0) < 0 {
			encoded[0] = KindInlineURL
			copy(encoded[1:], node.Text)
			return encoded, nil
		}
		encoded[0] = KindURL
		hash := e.Hash128(node.Text)
		copy(encoded[1:], hash[:])
		return encoded, &node.Text
	}

	// Language-tagged literal: hash text and tag together so literals
	// differing only in language stay distinct.
	encoded[0] = KindLangLiteral
	combined := node.Text + "@" + node.Tag
	hash := e.Hash128(combined)
	copy(encoded[1:], hash[:])
	return encoded, &combined
}

// EncodeStatementKey concatenates encoded nodes into one index key.
// Keys are fixed-width, so permuted indexes sort lexicographically.
func (e *NodeEncoder) EncodeStatementKey(nodes ...EncodedNode) []byte {
	result := make([]byte, 0, len(nodes)*EncodedNodeSize)
	for _, node := range nodes {
		result = append(result, node[:]...)
	}
	return result
}

// SplitStatementKey slices an index key back into its encoded nodes.
func SplitStatementKey(key []byte) ([]EncodedNode, error) {
	if len(key)%EncodedNodeSize != 0 {
		return nil, fmt.Errorf("statement key has invalid length %d", len(key))
	}
	nodes := make([]EncodedNode, 0, len(key)/EncodedNodeSize)
	for i := 0; i < len(key); i += EncodedNodeSize {
		var node EncodedNode
		copy(node[:], key[i:i+EncodedNodeSize])
		nodes = append(nodes, node)
	}
	return nodes, nil
}
