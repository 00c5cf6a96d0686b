package crypto

import (
	"errors"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()+_-=}{[]|:;\"/?.><,`~"

	MinLength     = 6
	MaxLength     = 20
	DefaultLength = 10
)

var ErrInvalidOptions = errors.New("at least one character type must be selected")

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns the default length with every character type enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// HasCharacterTypes reports whether at least one character type is selected.
func (o GeneratorOptions) HasCharacterTypes() bool {
	return o.Uppercase || o.Lowercase || o.Numbers || o.Symbols
}

// charsets returns the enabled character sets in priority order:
// lowercase, uppercase, numbers, symbols.
func (o GeneratorOptions) charsets() []string {
	var sets []string
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// Generate creates a random password of exactly opts.Length characters drawn
// only from the selected character types, with at least one character of each
// selected type. When opts.Length is smaller than the number of selected
// types, only the first opts.Length types in priority order are represented.
//
// Length bounds are the caller's concern; a non-positive length yields an
// empty password.
func Generate(opts GeneratorOptions, src Source) (string, error) {
	requiredSets := opts.charsets()
	if len(requiredSets) == 0 {
		return "", ErrInvalidOptions
	}
	if opts.Length <= 0 {
		return "", nil
	}

	var pool string
	for _, charset := range requiredSets {
		pool += charset
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	reserved := min(len(requiredSets), opts.Length)
	for i := 0; i < reserved; i++ {
		result[i] = randChar(src, requiredSets[i])
	}

	// Fill the remaining positions from the full pool.
	for i := reserved; i < opts.Length; i++ {
		result[i] = randChar(src, pool)
	}

	shuffle(src, result)

	return string(result), nil
}

// randChar picks a random character from charset.
func randChar(src Source, charset string) byte {
	return charset[src.Intn(len(charset))]
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
