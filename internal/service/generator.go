package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/strength"
)

var ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", crypto.MinLength, crypto.MaxLength)

// Recorder receives a summary of every successful generation.
type Recorder interface {
	Record(ctx context.Context, opts crypto.GeneratorOptions, label strength.Label)
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source   crypto.Source
	recorder Recorder
}

// NewGeneratorService creates a new GeneratorService drawing randomness from
// src. A nil recorder disables generation statistics.
func NewGeneratorService(src crypto.Source, recorder Recorder) *GeneratorService {
	return &GeneratorService{source: src, recorder: recorder}
}

// Generate produces a password based on the given request and rates it.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := OptionsFromRequest(req)

	if err := ValidateOptions(opts); err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := crypto.Generate(opts, s.source)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	score := strength.Score(password)
	label := strength.LabelFor(score)

	if s.recorder != nil {
		s.recorder.Record(ctx, opts, label)
	}
	slog.Debug("password generated", "length", opts.Length, "strength", label)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: label,
		Score:    score,
		Estimate: strength.EstimateOf(password, nil),
	}, nil
}

// OptionsFromRequest resolves a request into generator options. Missing
// character types default to enabled and a zero length to the default.
func OptionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	return opts
}

// ValidateOptions checks that at least one character type is selected and the
// length is within range.
func ValidateOptions(opts crypto.GeneratorOptions) error {
	if !opts.HasCharacterTypes() {
		return crypto.ErrInvalidOptions
	}
	if opts.Length < crypto.MinLength || opts.Length > crypto.MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// IsValidationError reports whether err is caused by bad generation options.
func IsValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidOptions) ||
		errors.Is(err, ErrLengthOutOfRange)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
