// Package cipher implements the algorithms offered by the workbench: classical
// text ciphers, block ciphers in ECB mode, and toy-sized RSA, Diffie-Hellman,
// ECDH and ECIES.
package cipher

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrEmptyInput is returned when the text to encrypt or decrypt is empty.
	ErrEmptyInput = errors.New("input text must not be empty")

	// ErrInvalidKey is returned when a key does not fit the algorithm.
	ErrInvalidKey = errors.New("invalid key")

	// ErrCiphertext is returned when ciphertext cannot be decoded.
	ErrCiphertext = errors.New("invalid ciphertext")

	// ErrPadding is returned when decrypted data does not carry valid PKCS#7 padding.
	ErrPadding = errors.New("invalid padding")

	// ErrNotOnCurve is returned when a point does not satisfy the curve equation.
	ErrNotOnCurve = errors.New("point is not on the curve")

	// ErrPointAtInfinity is returned when a scalar multiplication lands on the identity.
	ErrPointAtInfinity = errors.New("result is the point at infinity")

	// ErrUnknownAlgorithm is returned by Lookup for unregistered names.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	alphaKeyRe = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// TextCipher encrypts and decrypts text under a string key.
type TextCipher interface {
	Name() string
	Encrypt(text, key string) (string, error)
	Decrypt(text, key string) (string, error)
}

var registry = map[string]TextCipher{}

func register(c TextCipher) {
	registry[c.Name()] = c
}

func init() {
	register(RailFence{})
	register(Vigenere{})
	register(Playfair{})
	register(AES{})
	register(DES{})
}

// Lookup returns the text cipher registered under name (case-insensitive).
func Lookup(name string) (TextCipher, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return c, nil
}

// Names lists the registered text ciphers in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// validateAlphaKey checks that key is a non-empty alphabetic keyword.
func validateAlphaKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}
	if !alphaKeyRe.MatchString(key) {
		return fmt.Errorf("%w: must be an alphabetic keyword with no spaces or numbers", ErrInvalidKey)
	}
	return nil
}
