// Package link generates the shareable tokens that identify a survey
// publicly without exposing its internal ID.
package link

import (
	"crypto/rand"
	"encoding/hex"
)

// Length is the number of hex characters in a shareable link.
const Length = 12

// Generate returns a random token of 12 hex characters. Collisions are
// not retried here; the unique index on the surveys collection rejects
// the insert in that vanishingly rare case.
func Generate() (string, error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Valid reports whether s has the shape of a shareable link.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
