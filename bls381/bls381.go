package bls381

import (
	"encoding/hex"
	"errors"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/f3rmion/pbls/group"
)

// SignatureDST is the hash-to-curve domain separation tag for messages
// signed in G1 with public keys in G2.
const SignatureDST = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"

var (
	g1Gen bls12381.G1Affine
	g2Gen bls12381.G2Affine
)

func init() {
	_, _, g1Gen, g2Gen = bls12381.Generators()
}

func newScalar() *Scalar {
	return &Scalar{}
}

// scalarFromWide reduces a big-endian byte string of any width modulo r.
func scalarFromWide(data []byte) *Scalar {
	s := newScalar()
	s.inner.SetBigInt(new(big.Int).SetBytes(data))
	return s
}

func randomScalar(r io.Reader) (*Scalar, error) {
	// 64 bytes keep the modular bias below 2^-128.
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return scalarFromWide(buf[:]), nil
}

// G1 implements [group.Group] for the BLS12-381 group G1, where
// messages are hashed and signatures live.
type G1 struct{}

// NewScalar returns a new zero scalar.
func (g *G1) NewScalar() group.Scalar { return newScalar() }

// NewPoint returns a new point at infinity.
func (g *G1) NewPoint() group.Point { return &G1Point{} }

// Generator returns the standard G1 generator.
func (g *G1) Generator() group.Point {
	return &G1Point{inner: g1Gen}
}

// RandomScalar returns a uniformly random scalar read from r.
func (g *G1) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// G2 implements [group.Group] for the BLS12-381 group G2, which carries
// public keys.
type G2 struct{}

// NewScalar returns a new zero scalar.
func (g *G2) NewScalar() group.Scalar { return newScalar() }

// NewPoint returns a new point at infinity.
func (g *G2) NewPoint() group.Point { return &G2Point{} }

// Generator returns the standard G2 generator.
func (g *G2) Generator() group.Point {
	return &G2Point{inner: g2Gen}
}

// RandomScalar returns a uniformly random scalar read from r.
func (g *G2) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// HashToG1 maps msg to G1 under [SignatureDST].
func HashToG1(msg []byte) (*G1Point, error) {
	p, err := bls12381.HashToG1(msg, []byte(SignatureDST))
	if err != nil {
		return nil, err
	}
	return &G1Point{inner: p}, nil
}

// PairingEqual reports whether e(a1, b1) == e(a2, b2).
func PairingEqual(a1 *G1Point, b1 *G2Point, a2 *G1Point, b2 *G2Point) (bool, error) {
	if a1 == nil || b1 == nil || a2 == nil || b2 == nil {
		return false, errors.New("bls381: nil pairing argument")
	}
	lhs, err := bls12381.Pair([]bls12381.G1Affine{a1.inner}, []bls12381.G2Affine{b1.inner})
	if err != nil {
		return false, err
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{a2.inner}, []bls12381.G2Affine{b2.inner})
	if err != nil {
		return false, err
	}
	return lhs.Equal(&rhs), nil
}

// PointHex returns the 0x-prefixed hex of p's compressed encoding.
func PointHex(p group.Point) string {
	return "0x" + hex.EncodeToString(p.Bytes())
}
