package bls381

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/pbls/group"
)

func scalarBig(s group.Scalar) *big.Int {
	return s.(*Scalar).BigInt()
}

// G1Point is an element of the BLS12-381 group G1. It implements
// [group.Point]. The zero value is the point at infinity.
type G1Point struct {
	inner bls12381.G1Affine
}

// Add sets p to a + b and returns p.
func (p *G1Point) Add(a, b group.Point) group.Point {
	var j bls12381.G1Jac
	j.FromAffine(&a.(*G1Point).inner)
	j.AddMixed(&b.(*G1Point).inner)
	p.inner.FromJacobian(&j)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1Point) Sub(a, b group.Point) group.Point {
	var neg bls12381.G1Affine
	neg.Neg(&b.(*G1Point).inner)
	var j bls12381.G1Jac
	j.FromAffine(&a.(*G1Point).inner)
	j.AddMixed(&neg)
	p.inner.FromJacobian(&j)
	return p
}

// Negate sets p to -a and returns p.
func (p *G1Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G1Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMultiplication(&q.(*G1Point).inner, scalarBig(s))
	return p
}

// Set copies a into p and returns p.
func (p *G1Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G1Point).inner)
	return p
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes decodes a compressed G1 point into p. Points outside the
// prime-order subgroup are rejected.
func (p *G1Point) SetBytes(data []byte) (group.Point, error) {
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b are the same point.
func (p *G1Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G1Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// G2Point is an element of the BLS12-381 group G2. It implements
// [group.Point]. The zero value is the point at infinity.
type G2Point struct {
	inner bls12381.G2Affine
}

// Add sets p to a + b and returns p.
func (p *G2Point) Add(a, b group.Point) group.Point {
	var j bls12381.G2Jac
	j.FromAffine(&a.(*G2Point).inner)
	j.AddMixed(&b.(*G2Point).inner)
	p.inner.FromJacobian(&j)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2Point) Sub(a, b group.Point) group.Point {
	var neg bls12381.G2Affine
	neg.Neg(&b.(*G2Point).inner)
	var j bls12381.G2Jac
	j.FromAffine(&a.(*G2Point).inner)
	j.AddMixed(&neg)
	p.inner.FromJacobian(&j)
	return p
}

// Negate sets p to -a and returns p.
func (p *G2Point) Negate(a group.Point) group.Point {
	p.inner.Neg(&a.(*G2Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMultiplication(&q.(*G2Point).inner, scalarBig(s))
	return p
}

// Set copies a into p and returns p.
func (p *G2Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*G2Point).inner)
	return p
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *G2Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// SetBytes decodes a compressed G2 point into p. Points outside the
// prime-order subgroup are rejected.
func (p *G2Point) SetBytes(data []byte) (group.Point, error) {
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal reports whether p and b are the same point.
func (p *G2Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*G2Point).inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}
