package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string from a cryptographically secure,
// monotonic entropy source.
func NewULID() string {
	return ulid.Make().String()
}

// IsValidULID reports whether s is a canonical 26 character ULID.
func IsValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
