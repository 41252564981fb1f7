// Package fingerprint computes content fingerprints for exact-duplicate
// detection.
//
// The canonical normalization rule is fixed: leading and trailing
// whitespace is stripped, everything else (case, internal whitespace,
// punctuation) is preserved. Two texts differing only in surrounding
// whitespace are therefore duplicates; near-duplicate content is
// accepted as distinct.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Normalize applies the canonical normalization used for fingerprinting.
func Normalize(rawText string) string {
	return strings.TrimSpace(rawText)
}

// Hash returns the SHA-256 hex digest of the normalized text.
// Identical input always yields an identical fingerprint.
func Hash(rawText string) string {
	sum := sha256.Sum256([]byte(Normalize(rawText)))
	return hex.EncodeToString(sum[:])
}

// Valid reports whether the text can be ingested: non-empty after
// normalization and valid UTF-8.
func Valid(rawText string) bool {
	return utf8.ValidString(rawText) && Normalize(rawText) != ""
}
