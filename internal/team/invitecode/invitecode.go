// Package invitecode generates team invite codes.
package invitecode

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// Alphabet holds the characters an invite code may contain.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Length is the number of characters in an invite code.
	Length = 8

	// Bytes at or above this value are discarded so every character is
	// equally likely.
	maxUnbiased = 256 - 256%len(Alphabet)
)

// Generator produces candidate invite codes. Uniqueness is checked by the caller.
type Generator interface {
	Generate() (string, error)
}

type generator struct {
	source io.Reader
}

// New returns a generator backed by crypto/rand.
func New() Generator {
	return &generator{source: rand.Reader}
}

// NewWithReader returns a generator that draws randomness from r.
func NewWithReader(r io.Reader) Generator {
	return &generator{source: r}
}

// Generate returns a Length-character code over Alphabet.
func (g *generator) Generate() (string, error) {
	code := make([]byte, 0, Length)
	buf := make([]byte, Length*2)

	for len(code) < Length {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			code = append(code, Alphabet[int(b)%len(Alphabet)])
			if len(code) == Length {
				break
			}
		}
	}

	return string(code), nil
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate() (string, error) {
	return f()
}
