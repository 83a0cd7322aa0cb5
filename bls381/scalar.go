package bls381

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/pbls/group"
)

// ErrZeroInverse is returned when inverting the zero scalar.
var ErrZeroInverse = errors.New("bls381: cannot invert zero scalar")

// Scalar is an element of the BLS12-381 scalar field Fr. It implements
// [group.Scalar] and is shared by [G1] and [G2].
type Scalar struct {
	inner fr.Element
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) and returns s. fr.Element.Inverse maps zero to
// zero, so the zero case is rejected here.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.inner.IsZero() {
		return nil, ErrZeroInverse
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a big-endian byte slice of any length, reduced
// modulo r, and returns s.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBigInt(new(big.Int).SetBytes(data))
	return s, nil
}

// Equal reports whether s and b are the same field element.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner)
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites s with zero.
func (s *Scalar) Zeroize() {
	s.inner.SetZero()
}

// BigInt returns the canonical integer value of s.
func (s *Scalar) BigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}
