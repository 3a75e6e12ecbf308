// Package codec converts clipboard payloads between their in-memory form
// ([models.Payload]) and the transport-safe wire form ([models.WireClipboard])
// used in relay request and response bodies.
//
// Binary payloads (files and images) travel as standard base64. Every payload
// also has a fingerprint: the hex BLAKE2b-256 digest of its raw bytes, used by
// devices and the relay for equality checks only.
package codec
