package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaultpass/passgen/internal/model"
)

func TestRate(t *testing.T) {
	tests := []struct {
		password string
		want     model.Rating
	}{
		{"", model.Weak},
		{"abc", model.Weak},
		{"aaaaaaaa", model.Weak},
		{"Ab3!Ab3!", model.Medium},
		{"Tr7!qXz9", model.Strong},
		// ambiguous '1' costs a point
		{"Tr7!qXz1", model.Medium},
		{"Tr7!qXz9#Kp4&Wm2", model.VeryStrong},
		// 12 runes, all classes, repeats
		{"Ab3!Ab3!Ab3!", model.Strong},
		// non-ASCII letters count toward the lower/upper classes
		{"ÉéÉé", model.Weak},
		{"Δδ7!Tr9#", model.Strong},
		// only decimal digits (Nd) count as digits; superscripts do not
		{"Tr\u00b2!qXz\u00b3", model.Medium},
		{"Tr\u0663!qXz\u0664", model.Strong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, Rate(tt.password))
		})
	}
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "Weak", model.Weak.String())
	assert.Equal(t, "Medium", model.Medium.String())
	assert.Equal(t, "Strong", model.Strong.String())
	assert.Equal(t, "Very Strong", model.VeryStrong.String())
}
