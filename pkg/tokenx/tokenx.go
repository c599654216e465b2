// Package tokenx generates the opaque bearer and refresh tokens this service
// issues. Tokens carry no embedded claims; they are random values looked up
// by exact match in storage.
package tokenx

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Token size constants (in bytes before encoding).
const (
	// Size128 provides 128 bits of entropy (22 chars base64url).
	Size128 = 16
	// Size256 provides 256 bits of entropy (43 chars base64url). Recommended
	// for access and refresh tokens.
	Size256 = 32
)

// Generate creates a cryptographically secure random token of the given byte
// length, returned base64url-encoded without padding.
func Generate(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerate is like Generate but panics on error. Use only where failure
// is unrecoverable.
func MustGenerate(size int) string {
	token, err := Generate(size)
	if err != nil {
		panic(fmt.Sprintf("tokenx: %v", err))
	}
	return token
}
