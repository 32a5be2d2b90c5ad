package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaultpass/passgen/internal/model"
)

func TestBuildCharset(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.GenerationConfig
		want string
	}{
		{
			name: "fallback to letters and digits",
			cfg:  model.GenerationConfig{},
			want: uppercaseChars + lowercaseChars + numberChars,
		},
		{
			name: "fixed class order",
			cfg:  model.GenerationConfig{Symbols: true, Digits: true, Lowercase: true},
			want: lowercaseChars + numberChars + symbolChars,
		},
		{
			name: "digits without ambiguous",
			cfg:  model.GenerationConfig{Digits: true, AvoidAmbiguous: true},
			want: "23456789",
		},
		{
			name: "exclude applies after fallback",
			cfg:  model.GenerationConfig{Exclude: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"},
			want: numberChars,
		},
		{
			name: "repeated exclusions",
			cfg:  model.GenerationConfig{Digits: true, Exclude: "1111"},
			want: "023456789",
		},
		{
			name: "everything excluded",
			cfg:  model.GenerationConfig{Digits: true, Exclude: numberChars},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildCharset(tt.cfg).String())
		})
	}
}

func TestBuildCharsetFallbackSize(t *testing.T) {
	assert.Equal(t, 62, BuildCharset(model.GenerationConfig{}).Len())
}

func TestBuildCharsetUppercaseExclude(t *testing.T) {
	cs := BuildCharset(model.GenerationConfig{Uppercase: true, Exclude: "ABC"})
	for _, r := range "ABC" {
		assert.False(t, cs.Contains(r), "charset must not contain %q", r)
	}
	for _, r := range "DEFXYZ" {
		assert.True(t, cs.Contains(r), "charset must contain %q", r)
	}
	assert.Equal(t, 23, cs.Len())
}

func TestBuildCharsetSecure(t *testing.T) {
	cs := BuildCharset(model.GenerationConfig{
		Uppercase: true, Lowercase: true, Digits: true, Symbols: true, AvoidAmbiguous: true,
	})
	assert.Equal(t, 26+26+10+len(symbolChars)-len(AmbiguousChars), cs.Len())
	assert.False(t, strings.ContainsAny(cs.String(), AmbiguousChars))
}

func TestBuildCharsetUnique(t *testing.T) {
	cs := BuildCharset(model.GenerationConfig{Uppercase: true, Lowercase: true, Digits: true, Symbols: true})
	seen := make(map[rune]bool)
	for _, r := range cs {
		assert.False(t, seen[r], "duplicate rune %q", r)
		seen[r] = true
	}
}
