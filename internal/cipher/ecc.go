package cipher

import (
	"fmt"
	"math/rand/v2"
)

// The toy curve y^2 = x^3 + 17 over F_3851. The base point G = (2,5) has
// order 3852, so private keys in [50,250) never map to the identity.
const (
	CurveP     int64 = 3851
	CurveA     int64 = 0
	CurveB     int64 = 17
	CurveOrder int64 = 3852
)

// Point is an affine point on the toy curve. The zero value with Inf set is
// the point at infinity.
type Point struct {
	X   int64 `json:"x"`
	Y   int64 `json:"y"`
	Inf bool  `json:"-"`
}

// G is the curve's base point.
var G = Point{X: 2, Y: 5}

var infinity = Point{Inf: true}

func mod(a int64) int64 {
	a %= CurveP
	if a < 0 {
		a += CurveP
	}
	return a
}

// inverse returns a^-1 mod CurveP by the extended Euclidean algorithm.
func inverse(a int64) int64 {
	a = mod(a)
	t, newT := int64(0), int64(1)
	r, newR := CurveP, a
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	return mod(t)
}

// OnCurve reports whether p satisfies the curve equation.
func (p Point) OnCurve() bool {
	if p.Inf {
		return true
	}
	if p.X < 0 || p.X >= CurveP || p.Y < 0 || p.Y >= CurveP {
		return false
	}
	return mod(p.Y*p.Y) == mod(mod(p.X*p.X)*p.X+CurveA*p.X+CurveB)
}

func (p Point) String() string {
	if p.Inf {
		return "O"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p + q.
func Add(p, q Point) Point {
	switch {
	case p.Inf:
		return q
	case q.Inf:
		return p
	case p.X == q.X && mod(p.Y+q.Y) == 0:
		return infinity
	}
	var m int64
	if p == q {
		m = mod(mod(3*p.X*p.X+CurveA) * inverse(2*p.Y))
	} else {
		m = mod(mod(q.Y-p.Y) * inverse(q.X-p.X))
	}
	x := mod(m*m - p.X - q.X)
	y := mod(m*mod(p.X-x) - p.Y)
	return Point{X: x, Y: y}
}

// ScalarMult returns k*p by double-and-add.
func ScalarMult(k int64, p Point) Point {
	res := infinity
	addend := p
	for k > 0 {
		if k&1 == 1 {
			res = Add(res, addend)
		}
		addend = Add(addend, addend)
		k >>= 1
	}
	return res
}

// ECCKey is a toy key pair on the curve.
type ECCKey struct {
	Private int64 `json:"private"`
	Public  Point `json:"public"`
}

func eccPrivateKey(rng *rand.Rand) int64 {
	return 50 + rng.Int64N(200)
}

// GenerateECCKey picks a private scalar in [50,250) and computes priv*G.
func GenerateECCKey(rng *rand.Rand) ECCKey {
	priv := eccPrivateKey(rng)
	return ECCKey{Private: priv, Public: ScalarMult(priv, G)}
}

func checkScalar(k int64) error {
	if k <= 0 {
		return fmt.Errorf("%w: private key must be positive", ErrInvalidKey)
	}
	return nil
}

func checkPublic(p Point) error {
	if p.Inf || !p.OnCurve() {
		return fmt.Errorf("%w: %s", ErrNotOnCurve, p)
	}
	return nil
}

// sharedPoint computes priv*pub after validating both inputs.
func sharedPoint(priv int64, pub Point) (Point, error) {
	if err := checkScalar(priv); err != nil {
		return Point{}, err
	}
	if err := checkPublic(pub); err != nil {
		return Point{}, err
	}
	s := ScalarMult(priv, pub)
	if s.Inf {
		return Point{}, ErrPointAtInfinity
	}
	return s, nil
}

// ECDHSharedSecret returns the x coordinate of priv*pub.
func ECDHSharedSecret(priv int64, pub Point) (int64, error) {
	s, err := sharedPoint(priv, pub)
	if err != nil {
		return 0, err
	}
	return s.X, nil
}
