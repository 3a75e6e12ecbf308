package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool keeps unkeyed BLAKE2b-256 instances. Clipboard images and files
// are hashed on every watcher tick, so instances are reused instead of being
// allocated per call.
var hasherPool = sync.Pool{
	New: func() any {
		// blake2b.New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hash computes the BLAKE2b-256 digest of all parts, written in order into
// a single pooled hasher.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(parts ...[]byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)

	hasherPool.Put(h)

	return sum
}

// HashHex is the hex encoding of [Hash]. Payload fingerprints are built on it.
func HashHex(parts ...[]byte) string {
	return hex.EncodeToString(Hash(parts...))
}

// HashString is HashHex for a single string.
func HashString(data string) string {
	return HashHex([]byte(data))
}
