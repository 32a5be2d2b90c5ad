package crypto

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/model"
)

// Rate scores password and maps the score to a Rating bucket.
//
// Length earns up to 3 points (at 8, 12 and 16 runes), each character class
// present earns 1, all-distinct runes earn 1, and any ambiguous rune costs 1.
func Rate(password string) model.Rating {
	score := 0

	n := utf8.RuneCountInString(password)
	if n >= 8 {
		score++
	}
	if n >= 12 {
		score++
	}
	if n >= 16 {
		score++
	}

	var lower, upper, digit, symbol, ambiguous bool
	seen := make(map[rune]struct{}, n)
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(symbolChars, r) {
			symbol = true
		}
		if strings.ContainsRune(AmbiguousChars, r) {
			ambiguous = true
		}
		seen[r] = struct{}{}
	}

	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	if len(seen) == n {
		score++
	}
	if ambiguous {
		score--
	}

	switch {
	case score <= 3:
		return model.Weak
	case score <= 5:
		return model.Medium
	case score <= 7:
		return model.Strong
	default:
		return model.VeryStrong
	}
}
