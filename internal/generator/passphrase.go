package generator

import (
	"fmt"
	"strings"

	"github.com/sethvargo/go-diceware/diceware"
)

// Passphrase word count bounds.
const (
	MinWords     = 3
	MaxWords     = 12
	DefaultWords = 6
)

var ErrInvalidWordCount = fmt.Errorf("word count must be between %d and %d", MinWords, MaxWords)

// Passphrase returns words Diceware words joined by separator.
func Passphrase(words int, separator string) (string, error) {
	if words < MinWords || words > MaxWords {
		return "", ErrInvalidWordCount
	}

	list, err := diceware.Generate(words)
	if err != nil {
		return "", fmt.Errorf("generate passphrase: %w", err)
	}

	return strings.Join(list, separator), nil
}
