package sanzang

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash, an index
// fingerprint, and a substitution mode. Keying on the fingerprint means
// a cache entry is only ever served for the exact glossary set that
// produced it.
func CacheKey(hash, fingerprint string, mode SubstitutionMode) string {
	return hash + ":" + fingerprint + ":" + mode.String()
}
