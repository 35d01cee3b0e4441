package shortener

import "github.com/jaevor/go-nanoid"

// CodeLength is the length of generated short codes.
const CodeLength = 8

// Generator produces URL-safe short codes from a crypto-strong source.
// Generators are safe for concurrent use.
type Generator func() string

// NewGenerator returns a nanoid-backed generator producing
// CodeLength-character codes.
func NewGenerator() (Generator, error) {
	gen, err := nanoid.Standard(CodeLength)
	if err != nil {
		return nil, err
	}

	return Generator(gen), nil
}
