package auth

import (
	"crypto/sha256"
	"crypto/subtle"
)

// VerifyPassword reports whether submitted equals expected. Both inputs are
// hashed first so the comparison always runs over 32 bytes, regardless of
// where the first mismatch is or whether the lengths differ.
func VerifyPassword(submitted, expected string) bool {
	a := sha256.Sum256([]byte(submitted))
	b := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
