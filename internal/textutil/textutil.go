package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the classification of a dump value.
type Kind int

const (
	// KindText is natural-language text.
	KindText Kind = iota
	// KindHex is a hex-encoded binary field.
	KindHex
	// KindInteger is a decimal number.
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	case KindInteger:
		return "integer"
	default:
		return "text"
	}
}

// Classify reports whether s, with spaces removed, is hex, an integer or text.
// Hex takes precedence, so "1234" is KindHex and "123" is KindInteger.
func Classify(s string) Kind {
	compact := strings.ReplaceAll(s, " ", "")
	if IsHex(compact) {
		return KindHex
	}
	if IsInteger(compact) {
		return KindInteger
	}
	return KindText
}

// IsHex reports whether s decodes as hex. The empty string decodes to no bytes.
func IsHex(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsInteger reports whether s is a signed base-10 integer of any magnitude.
// Single underscores between digits group them, as in "1_000".
func IsInteger(s string) bool {
	digits, ok := stripDigitGroups(strings.TrimSpace(s))
	if !ok {
		return false
	}
	_, ok = new(big.Int).SetString(digits, 10)
	return ok
}

func stripDigitGroups(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			sb.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return sb.String(), true
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Hash computes a SHA-256 hex hash of a string for cache keys.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
