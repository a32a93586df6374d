package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPII normalizes and hashes a personal field the way the ad platform
// conversion APIs require: lowercase, trimmed, SHA-256 hex.
func HashPII(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
