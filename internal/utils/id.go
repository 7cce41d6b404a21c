package utils

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Record IDs are opaque 24-character hex strings (12 random bytes),
// generated here instead of by the database so every resource shares
// one ID shape regardless of storage engine.

var idRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID returns a new 24-character hex identifier.
func NewID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// IsValidID reports whether s has the 24-character hex identifier shape.
// Services call this before any lookup so malformed IDs fail as 400s
// instead of surfacing as opaque datastore errors.
func IsValidID(s string) bool {
	return idRegex.MatchString(s)
}
