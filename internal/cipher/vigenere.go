package cipher

import "strings"

// Vigenere is the polyalphabetic shift cipher keyed by an alphabetic keyword.
type Vigenere struct{}

func (Vigenere) Name() string { return "vigenere" }

func (Vigenere) Encrypt(text, key string) (string, error) {
	return vigenere(text, key, true)
}

func (Vigenere) Decrypt(text, key string) (string, error) {
	return vigenere(text, key, false)
}

// vigenere shifts ASCII letters by the matching key letter, preserving case.
// Everything else passes through and does not consume a key letter.
func vigenere(text, key string, encrypt bool) (string, error) {
	if err := validateAlphaKey(key); err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyInput
	}
	shifts := []byte(strings.ToUpper(key))

	var b strings.Builder
	b.Grow(len(text))
	ki := 0
	for _, r := range text {
		var base rune
		switch {
		case r >= 'A' && r <= 'Z':
			base = 'A'
		case r >= 'a' && r <= 'z':
			base = 'a'
		default:
			b.WriteRune(r)
			continue
		}
		shift := rune(shifts[ki%len(shifts)] - 'A')
		if !encrypt {
			shift = 26 - shift
		}
		b.WriteRune((r-base+shift)%26 + base)
		ki++
	}
	return b.String(), nil
}
