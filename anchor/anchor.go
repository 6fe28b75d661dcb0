// Package anchor converts commit hashes between the formats the
// surrounding version-control tool uses.
//
// An anchor is a unified 64-character lowercase hexadecimal string used as
// the internal storage format. SHA-256 hashes (64 chars) are anchors as-is;
// SHA-1 hashes (40 chars) are zero-padded at the end to 64 characters. The
// original SHA-1 is recovered by taking the first 40 characters of an
// anchor.
package anchor

import (
	"fmt"
	"strings"
)

// Length constants for the two supported hash formats.
const (
	SHA1Len   = 40
	AnchorLen = 64
)

// Normalize converts a commit hash in SHA-1 or SHA-256 format into a
// 64-character lowercase anchor. Surrounding whitespace is trimmed; any
// non-hex character or unsupported length is an error.
func Normalize(commit string) (string, error) {
	v := strings.TrimSpace(commit)

	if !isHex(v) {
		return "", fmt.Errorf("invalid commit hash: contains non-hex characters: %s", v)
	}
	v = strings.ToLower(v)

	switch len(v) {
	case AnchorLen:
		return v, nil
	case SHA1Len:
		return v + strings.Repeat("0", AnchorLen-SHA1Len), nil
	default:
		return "", fmt.Errorf("invalid commit hash length: %d", len(v))
	}
}

// ExtractSHA1 recovers the original 40-character SHA-1 hash from an anchor
// by taking its first 40 characters. The input must be a valid 64-character
// hex string.
func ExtractSHA1(anchor string) (string, error) {
	v := strings.TrimSpace(anchor)

	if len(v) != AnchorLen {
		return "", fmt.Errorf("invalid anchor length: %d", len(v))
	}
	if !isHex(v) {
		return "", fmt.Errorf("invalid anchor: contains non-hex characters: %s", v)
	}

	return v[:SHA1Len], nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
