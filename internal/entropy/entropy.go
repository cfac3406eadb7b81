// Package entropy wraps the secure random source so counter seeds and node
// identifiers can be made deterministic in tests. It lives under `internal`
// because callers must treat the byte source as opaque.
package entropy

import (
	"crypto/rand"
	"io"
)

// ReadFunc fills b with random bytes. Override in tests for determinism.
var ReadFunc = func(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}

// Read is a thin wrapper around ReadFunc.
func Read(b []byte) error { return ReadFunc(b) }
