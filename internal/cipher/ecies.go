package cipher

import (
	"crypto/aes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const eciesInfo = "cryptolab ecies"

// eciesKey derives the AES-128 key from the shared point's x coordinate.
func eciesKey(shared Point) ([]byte, error) {
	secret := big.NewInt(shared.X).Bytes()
	key := make([]byte, 16)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(eciesInfo)), key); err != nil {
		return nil, fmt.Errorf("derive ecies key: %w", err)
	}
	return key, nil
}

// ECIESEncrypt encrypts text to pub. The result is "Rx,Ry,<base64>" where R is
// the ephemeral public point.
func ECIESEncrypt(rng *rand.Rand, text string, pub Point) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}
	k := eccPrivateKey(rng)
	shared, err := sharedPoint(k, pub)
	if err != nil {
		return "", err
	}
	r := ScalarMult(k, G)

	key, err := eciesKey(shared)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	ct := ECBEncrypt(block, []byte(text))
	return fmt.Sprintf("%d,%d,%s", r.X, r.Y, base64.StdEncoding.EncodeToString(ct)), nil
}

// ECIESDecrypt reverses ECIESEncrypt with the recipient's private scalar.
func ECIESDecrypt(ciphertext string, priv int64) (string, error) {
	if strings.TrimSpace(ciphertext) == "" {
		return "", ErrEmptyInput
	}
	parts := strings.SplitN(ciphertext, ",", 3)
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected Rx,Ry,ciphertext", ErrCiphertext)
	}
	rx, errX := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	ry, errY := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if errX != nil || errY != nil {
		return "", fmt.Errorf("%w: ephemeral point must be two integers", ErrCiphertext)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[2]))
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64", ErrCiphertext)
	}

	shared, err := sharedPoint(priv, Point{X: rx, Y: ry})
	if err != nil {
		return "", err
	}
	key, err := eciesKey(shared)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	plain, err := ECBDecrypt(block, data)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
