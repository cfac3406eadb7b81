package uuidv6

import (
	"fmt"

	"github.com/viant/uuidv6/internal/entropy"
)

// NodeSize is the width of a node identifier in bytes.
const NodeSize = 6

// Node is a 6-byte value identifying the generating entity. It occupies the
// low 6 bytes of every identifier the generators for it produce. Nodes are
// opaque values with no internal structure; they are copied by value into
// each generator.
type Node struct {
	id [NodeSize]byte
}

// NewNode creates a node identifier from the secure random source.
func NewNode() (Node, error) {
	var node Node
	if err := entropy.Read(node.id[:]); err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return node, nil
}

// NodeFromBytes creates a node identifier from caller-supplied bytes,
// copied verbatim.
func NodeFromBytes(bytes [NodeSize]byte) Node {
	return Node{id: bytes}
}

// Bytes returns a copy of the node's raw bytes.
func (n Node) Bytes() [NodeSize]byte { return n.id }

// Equal reports whether two node identifiers hold the same bytes.
func (n Node) Equal(other Node) bool { return n.id == other.id }

// RawGenerator creates a generator producing raw 16-byte identifiers for
// this node.
func (n Node) RawGenerator() (RawGenerator, error) {
	return NewRawGenerator(n)
}

// StringGenerator creates a generator producing canonical identifier
// strings for this node.
func (n Node) StringGenerator() (StringGenerator, error) {
	return NewStringGenerator(n)
}
