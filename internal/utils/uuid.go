package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces identifiers for trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RandomHex returns the first n hex characters of a random UUIDv4.
// n is capped at 32.
func RandomHex(n int) string {
	hexID := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(hexID) {
		n = len(hexID)
	}
	return hexID[:n]
}
