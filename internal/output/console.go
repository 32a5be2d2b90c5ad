// Package output renders generated passwords to the console, a file, the
// system clipboard and the terminal as a QR code.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/vaultpass/passgen/internal/model"
)

var (
	weakColor       = color.New(color.FgRed)
	mediumColor     = color.New(color.FgYellow)
	strongColor     = color.New(color.FgGreen)
	veryStrongColor = color.New(color.FgGreen, color.Bold)
	noticeColor     = color.New(color.FgCyan)
	labelColor      = color.New(color.Bold)
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetColor enables or disables ANSI styling for all output.
func SetColor(on bool) {
	color.NoColor = !on
}

func ratingColor(r model.Rating) *color.Color {
	switch r {
	case model.Medium:
		return mediumColor
	case model.Strong:
		return strongColor
	case model.VeryStrong:
		return veryStrongColor
	default:
		return weakColor
	}
}

// WriteResults prints one "[i] <password> (<rating>)" line per result.
func WriteResults(w io.Writer, results []model.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "[%d] %s (%s)\n", res.Index, res.Password, ratingColor(res.Rating).Sprint(res.Rating)); err != nil {
			return err
		}
		if res.Hash != "" {
			if _, err := fmt.Fprintf(w, "    argon2id: %s\n", res.Hash); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON encodes the results as a JSON array.
func WriteJSON(w io.Writer, results []model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// Entropy returns the bits of entropy of the drawn part of a password.
// Without duplicates the draw is a k-permutation of n, log2(n!/(n-k)!).
func Entropy(length, charsetSize int, noDuplicates bool) float64 {
	if length <= 0 || charsetSize <= 1 {
		return 0
	}
	if !noDuplicates {
		return float64(length) * math.Log2(float64(charsetSize))
	}
	if length > charsetSize {
		return 0
	}
	var bits float64
	for i := 0; i < length; i++ {
		bits += math.Log2(float64(charsetSize - i))
	}
	return bits
}

// WriteConfig dumps every resolved option.
func WriteConfig(w io.Writer, cfg model.GenerationConfig, charsetSize int) error {
	seed := "(none)"
	if cfg.Seed != nil {
		seed = fmt.Sprint(*cfg.Seed)
	}

	rows := []struct {
		label string
		value any
	}{
		{"Password length", cfg.Length},
		{"Number of passwords", cfg.Count},
		{"Include digits", cfg.Digits},
		{"Include symbols", cfg.Symbols},
		{"Include uppercase letters", cfg.Uppercase},
		{"Include lowercase letters", cfg.Lowercase},
		{"Avoid ambiguous chars", cfg.AvoidAmbiguous},
		{"No duplicate characters", cfg.NoDuplicates},
		{"Excluded characters", orNone(cfg.Exclude)},
		{"Prefix", orNone(cfg.Prefix)},
		{"Suffix", orNone(cfg.Suffix)},
		{"Seed", seed},
		{"Charset size", charsetSize},
		{"Entropy (bits)", fmt.Sprintf("%.1f", Entropy(cfg.Length, charsetSize, cfg.NoDuplicates))},
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", labelColor.Sprint("[INFO]")); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-25s: %v\n", r.label, r.value); err != nil {
			return err
		}
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func notice(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\n%s\n", noticeColor.Sprintf(format, args...))
}
