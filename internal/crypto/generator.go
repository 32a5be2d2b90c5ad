package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strings"

	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrInvalidLength        = errors.New("password length must be at least 1")
	ErrInvalidCount         = errors.New("password count must be at least 1")
	ErrEmptyCharset         = errors.New("no characters left to generate from after exclusions")
	ErrLengthExceedsCharset = errors.New("password length exceeds the number of unique available characters")
)

// Sampler draws length runes from a charset.
type Sampler interface {
	Sample(charset Charset, length int) ([]rune, error)
}

// CryptoSampler draws with replacement from crypto/rand. It cannot be seeded.
type CryptoSampler struct{}

// Sample picks each rune independently and uniformly from charset.
func (CryptoSampler) Sample(charset Charset, length int) ([]rune, error) {
	out := make([]rune, length)
	for i := range out {
		ch, err := randChar(charset)
		if err != nil {
			return nil, err
		}
		out[i] = ch
	}
	return out, nil
}

// SeededSampler draws without replacement from a math/rand source, so a
// fixed seed yields the same sequence of passwords on every run.
type SeededSampler struct {
	rng *mrand.Rand
}

// NewSeededSampler returns a SeededSampler. A nil seed is replaced by one
// read from crypto/rand.
func NewSeededSampler(seed *int64) (*SeededSampler, error) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			return nil, fmt.Errorf("seeding sampler: %w", err)
		}
		s = int64(binary.BigEndian.Uint64(b[:]))
	}
	return &SeededSampler{rng: mrand.New(mrand.NewSource(s))}, nil
}

// Sample returns the first length runes of a random permutation of charset.
func (s *SeededSampler) Sample(charset Charset, length int) ([]rune, error) {
	if length > charset.Len() {
		return nil, ErrLengthExceedsCharset
	}
	perm := s.rng.Perm(charset.Len())
	out := make([]rune, length)
	for i := range out {
		out[i] = charset[perm[i]]
	}
	return out, nil
}

// NewSampler picks the sampling strategy for cfg.
func NewSampler(cfg model.GenerationConfig) (Sampler, error) {
	if cfg.NoDuplicates {
		return NewSeededSampler(cfg.Seed)
	}
	return CryptoSampler{}, nil
}

// Validate checks that cfg can produce passwords from charset.
func Validate(cfg model.GenerationConfig, charset Charset) error {
	if cfg.Length < 1 {
		return ErrInvalidLength
	}
	if cfg.Count < 1 {
		return ErrInvalidCount
	}
	if charset.Len() == 0 {
		return ErrEmptyCharset
	}
	if cfg.NoDuplicates && cfg.Length > charset.Len() {
		return fmt.Errorf("%w (length %d, available %d)", ErrLengthExceedsCharset, cfg.Length, charset.Len())
	}
	return nil
}

// Generate produces cfg.Count decorated passwords drawn from charset.
// Nothing is returned unless the whole batch succeeds.
func Generate(cfg model.GenerationConfig, charset Charset, sampler Sampler) ([]string, error) {
	if err := Validate(cfg, charset); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		drawn, err := sampler.Sample(charset, cfg.Length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, Decorate(string(drawn), cfg.Prefix, cfg.Suffix))
	}
	return passwords, nil
}

// Decorate wraps a drawn password with prefix and suffix.
func Decorate(drawn, prefix, suffix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(drawn) + len(suffix))
	b.WriteString(prefix)
	b.WriteString(drawn)
	b.WriteString(suffix)
	return b.String()
}

// randChar picks a random rune from charset using crypto/rand.
func randChar(charset Charset) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
