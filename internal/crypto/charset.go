package crypto

import (
	"strings"

	"github.com/vaultpass/passgen/internal/model"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}|;:<>,.?/~`"

	// AmbiguousChars are visually confusable and dropped by AvoidAmbiguous.
	AmbiguousChars = "0OIl1"
)

// Charset is an ordered set of runes eligible for sampling.
type Charset []rune

// Len returns the number of unique runes in the charset.
func (c Charset) Len() int { return len(c) }

// Contains reports whether r is a member of the charset.
func (c Charset) Contains(r rune) bool {
	for _, ch := range c {
		if ch == r {
			return true
		}
	}
	return false
}

func (c Charset) String() string { return string(c) }

// BuildCharset derives the sampling charset from cfg. Classes are added in
// the order uppercase, lowercase, digits, symbols; with no class enabled it
// falls back to letters and digits. The result may be empty.
func BuildCharset(cfg model.GenerationConfig) Charset {
	var pool strings.Builder
	if cfg.Uppercase {
		pool.WriteString(uppercaseChars)
	}
	if cfg.Lowercase {
		pool.WriteString(lowercaseChars)
	}
	if cfg.Digits {
		pool.WriteString(numberChars)
	}
	if cfg.Symbols {
		pool.WriteString(symbolChars)
	}
	if pool.Len() == 0 {
		pool.WriteString(uppercaseChars + lowercaseChars + numberChars)
	}

	seen := make(map[rune]bool, pool.Len())
	out := make(Charset, 0, pool.Len())
	for _, r := range pool.String() {
		if seen[r] {
			continue
		}
		seen[r] = true
		if cfg.AvoidAmbiguous && strings.ContainsRune(AmbiguousChars, r) {
			continue
		}
		if strings.ContainsRune(cfg.Exclude, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
