package cipher

import (
	"fmt"
	"math/big"
	"math/rand/v2"
)

// Textbook Diffie-Hellman parameters offered by default.
const (
	DefaultDHPrime     = 23
	DefaultDHGenerator = 5
)

// DHPrivateKey draws a private exponent in [50,250).
func DHPrivateKey(rng *rand.Rand) int64 {
	return 50 + rng.Int64N(200)
}

func checkDHGroup(p *big.Int) error {
	if p.Cmp(big.NewInt(2)) <= 0 || !p.ProbablyPrime(20) {
		return fmt.Errorf("%w: p must be a prime greater than 2", ErrInvalidKey)
	}
	return nil
}

func checkDHPrivate(priv *big.Int) error {
	if priv.Sign() <= 0 {
		return fmt.Errorf("%w: private key must be positive", ErrInvalidKey)
	}
	return nil
}

// DHPublicKey computes g^priv mod p.
func DHPublicKey(g, p, priv *big.Int) (*big.Int, error) {
	if err := checkDHGroup(p); err != nil {
		return nil, err
	}
	if g.Cmp(big.NewInt(2)) < 0 || g.Cmp(new(big.Int).Sub(p, big.NewInt(1))) > 0 {
		return nil, fmt.Errorf("%w: g must be between 2 and p-1", ErrInvalidKey)
	}
	if err := checkDHPrivate(priv); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(g, priv, p), nil
}

// DHSharedSecret computes other^priv mod p.
func DHSharedSecret(other, p, priv *big.Int) (*big.Int, error) {
	if err := checkDHGroup(p); err != nil {
		return nil, err
	}
	if other.Sign() <= 0 || other.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: public key must be between 1 and p-1", ErrInvalidKey)
	}
	if err := checkDHPrivate(priv); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(other, priv, p), nil
}
