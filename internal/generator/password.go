// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Password length bounds.
const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 16
)

// Character sets. The "similar" variants drop glyphs that are easy to
// confuse when read aloud or retyped (I, l, O, 0, 1).
const (
	upperChars        = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars        = "abcdefghijkmnopqrstuvwxyz"
	digitChars        = "23456789"
	upperWithSimilar  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerWithSimilar  = "abcdefghijklmnopqrstuvwxyz"
	digitsWithSimilar = "0123456789"
	symbolChars       = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var (
	ErrNoCharset     = errors.New("select at least one character type")
	ErrInvalidLength = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
)

// PasswordOptions selects the length and alphabet of a generated password.
type PasswordOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
}

// DefaultPasswordOptions enables every character class and drops similar
// glyphs.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:         DefaultLength,
		Uppercase:      true,
		Lowercase:      true,
		Digits:         true,
		Symbols:        true,
		ExcludeSimilar: true,
	}
}

func (o PasswordOptions) alphabet() string {
	var chars string
	if o.Uppercase {
		chars += pick(o.ExcludeSimilar, upperChars, upperWithSimilar)
	}
	if o.Lowercase {
		chars += pick(o.ExcludeSimilar, lowerChars, lowerWithSimilar)
	}
	if o.Digits {
		chars += pick(o.ExcludeSimilar, digitChars, digitsWithSimilar)
	}
	if o.Symbols {
		chars += symbolChars
	}
	return chars
}

func pick(excludeSimilar bool, without, with string) string {
	if excludeSimilar {
		return without
	}
	return with
}

// Password generates a password according to opts. Every character is drawn
// uniformly from the selected alphabet.
func Password(opts PasswordOptions) (string, error) {
	return password(rand.Reader, opts)
}

func password(r io.Reader, opts PasswordOptions) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrInvalidLength
	}

	chars := opts.alphabet()
	if chars == "" {
		return "", ErrNoCharset
	}

	max := big.NewInt(int64(len(chars)))
	out := make([]byte, opts.Length)
	for i := range out {
		n, err := rand.Int(r, max)
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		out[i] = chars[n.Int64()]
	}

	return string(out), nil
}
