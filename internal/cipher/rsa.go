package cipher

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"
)

// RSAKey is a toy RSA key pair built from two small primes.
type RSAKey struct {
	N int64 `json:"n"`
	E int64 `json:"e"`
	D int64 `json:"d"`
}

// GenerateRSAKey picks two distinct primes in [50,150) and derives the key.
// e is the smallest integer >= 2 coprime to phi.
func GenerateRSAKey(rng *rand.Rand) RSAKey {
	p := randomPrime(rng, 50, 150)
	q := p
	for q == p {
		q = randomPrime(rng, 50, 150)
	}
	n := p * q
	phi := (p - 1) * (q - 1)

	e := int64(2)
	for ; e < phi; e++ {
		if gcd(e, phi) == 1 {
			break
		}
	}
	d := new(big.Int).ModInverse(big.NewInt(e), big.NewInt(phi)).Int64()
	return RSAKey{N: n, E: e, D: d}
}

func randomPrime(rng *rand.Rand, lo, hi int64) int64 {
	for {
		c := lo + rng.Int64N(hi-lo)
		if big.NewInt(c).ProbablyPrime(20) {
			return c
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func checkModulus(n, exp *big.Int) error {
	if n.Cmp(big.NewInt(255)) <= 0 {
		return fmt.Errorf("%w: modulus n must be greater than 255", ErrInvalidKey)
	}
	if exp.Sign() <= 0 {
		return fmt.Errorf("%w: exponent must be positive", ErrInvalidKey)
	}
	return nil
}

// RSAEncrypt raises each UTF-8 byte of text to e mod n and joins the results
// with commas.
func RSAEncrypt(text string, n, e *big.Int) (string, error) {
	if err := checkModulus(n, e); err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyInput
	}
	parts := make([]string, 0, len(text))
	m := new(big.Int)
	for _, c := range []byte(text) {
		m.SetInt64(int64(c))
		parts = append(parts, new(big.Int).Exp(m, e, n).String())
	}
	return strings.Join(parts, ","), nil
}

// RSADecrypt reverses RSAEncrypt with the private exponent d.
func RSADecrypt(ciphertext string, n, d *big.Int) (string, error) {
	if err := checkModulus(n, d); err != nil {
		return "", err
	}
	if strings.TrimSpace(ciphertext) == "" {
		return "", ErrEmptyInput
	}
	// Every field must parse before any is decrypted.
	fields := strings.Split(ciphertext, ",")
	values := make([]*big.Int, 0, len(fields))
	for _, f := range fields {
		c, ok := new(big.Int).SetString(strings.TrimSpace(f), 10)
		if !ok || c.Sign() < 0 {
			return "", fmt.Errorf("%w: %q is not a non-negative integer", ErrCiphertext, f)
		}
		values = append(values, c)
	}

	out := make([]byte, 0, len(values))
	limit := big.NewInt(255)
	for _, c := range values {
		m := new(big.Int).Exp(c, d, n)
		if m.Cmp(limit) > 0 {
			return "", fmt.Errorf("%w: decrypted value %s is not a byte", ErrInvalidKey, m)
		}
		out = append(out, byte(m.Int64()))
	}
	return string(out), nil
}
