package group

import (
	"errors"
	"io"
	"math/big"
)

// ErrNegativeInt is returned by [ScalarFromInt] for values below zero.
var ErrNegativeInt = errors.New("group: negative integer has no party scalar")

// Scalar is an element of the prime-order scalar field shared by the
// groups of a pairing-friendly curve. Private keys, polynomial
// coefficients and Lagrange weights are all scalars.
//
// Arithmetic methods set the receiver to the result and return it.
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical big-endian encoding of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from a big-endian byte slice, reducing
	// modulo the field order, and returns it.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Zeroize overwrites the scalar with zero.
	Zeroize()
}

// Point is an element of one of the curve's groups. G1 points carry
// signatures and hashed messages, G2 points carry public keys.
//
// Like [Scalar], arithmetic methods set the receiver to the result.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the compressed encoding of the point.
	Bytes() []byte
	// SetBytes decodes a compressed point into the receiver and returns it.
	// Returns an error if data is not a valid subgroup element.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group is a factory for the scalars and points of one curve group.
//
//	var g group.Group = &bls381.G2{}
//	x, _ := g.RandomScalar(rand.Reader)
//	pub := g.NewPoint().ScalarMult(x, g.Generator())
type Group interface {
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
}

// ScalarFromInt returns n as a scalar of g. Party indices enter the
// field through this function.
func ScalarFromInt(g Group, n int) (Scalar, error) {
	if n < 0 {
		return nil, ErrNegativeInt
	}
	return g.NewScalar().SetBytes(big.NewInt(int64(n)).Bytes())
}

// CloneScalar returns a fresh copy of s.
func CloneScalar(g Group, s Scalar) Scalar {
	return g.NewScalar().Set(s)
}

// ClonePoint returns a fresh copy of p.
func ClonePoint(g Group, p Point) Point {
	return g.NewPoint().Set(p)
}
