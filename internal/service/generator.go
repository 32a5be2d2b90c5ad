package service

import (
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

const (
	DefaultLength = 12
	DefaultCount  = 1
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaultLength int
	defaultCount  int
	hasher        *crypto.Hasher
	logger        *slog.Logger
}

// Option configures a GeneratorService.
type Option func(*GeneratorService)

// WithDefaults overrides the length and count used when a request leaves
// them unset. Non-positive values are ignored.
func WithDefaults(length, count int) Option {
	return func(s *GeneratorService) {
		if length > 0 {
			s.defaultLength = length
		}
		if count > 0 {
			s.defaultCount = count
		}
	}
}

// WithHasher sets the hasher used for requests that ask for hashes.
func WithHasher(h *crypto.Hasher) Option {
	return func(s *GeneratorService) { s.hasher = h }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *GeneratorService) { s.logger = l }
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(opts ...Option) *GeneratorService {
	s := &GeneratorService{
		defaultLength: DefaultLength,
		defaultCount:  DefaultCount,
		hasher:        crypto.NewHasher(crypto.DefaultHashParams()),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve normalizes a raw request into a GenerationConfig. Secure takes
// precedence over the individual class and ambiguity flags.
func (s *GeneratorService) Resolve(req model.GenerateRequest) model.GenerationConfig {
	cfg := model.GenerationConfig{
		Length:         intOrDefault(req.Length, s.defaultLength),
		Count:          intOrDefault(req.Count, s.defaultCount),
		Digits:         req.Digits,
		Symbols:        req.Symbols,
		Uppercase:      req.Uppercase,
		Lowercase:      req.Lowercase,
		AvoidAmbiguous: req.AvoidAmbiguous,
		Exclude:        req.Exclude,
		NoDuplicates:   req.NoDuplicates,
		Seed:           req.Seed,
		Prefix:         req.Prefix,
		Suffix:         req.Suffix,
	}

	if req.Secure {
		cfg.Uppercase = true
		cfg.Lowercase = true
		cfg.Digits = true
		cfg.Symbols = true
		cfg.AvoidAmbiguous = true
	}

	return cfg
}

// Generate resolves req and produces the rated batch of passwords.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := s.Resolve(req)
	charset := crypto.BuildCharset(cfg)

	sampler, err := crypto.NewSampler(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	s.logger.Debug("generating passwords",
		"length", cfg.Length,
		"count", cfg.Count,
		"charset_size", charset.Len(),
		"sampler", fmt.Sprintf("%T", sampler),
	)

	passwords, err := crypto.Generate(cfg, charset, sampler)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	results := make([]model.Result, 0, len(passwords))
	for i, pw := range passwords {
		res := model.Result{
			Index:    i + 1,
			Password: pw,
			Rating:   crypto.Rate(pw),
		}
		if req.Hash {
			hash, err := s.hasher.Hash(pw)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password %d: %w", i+1, err)
			}
			res.Hash = hash
		}
		results = append(results, res)
	}

	return model.GenerateResponse{
		Config:      cfg,
		CharsetSize: charset.Len(),
		Results:     results,
	}, nil
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
