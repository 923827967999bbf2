package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// RowFingerprint identifies a full row by its cell values.
type RowFingerprint Hash

// cellSep is a unit separator; it cannot appear in parsed CSV cell text,
// so joining with it keeps ("ab","c") distinct from ("a","bc").
const cellSep = "\x1f"

// FingerprintRow computes the identity of a row from its raw cells.
func FingerprintRow(cells []string) RowFingerprint {
	joined := strings.Join(cells, cellSep)
	return RowFingerprint(NewHash([]byte(joined)))
}
