package bls

import (
	"errors"
	"fmt"

	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
	"github.com/f3rmion/pbls/lagrange"
)

// ErrInsufficientPartials is returned by [Recover] when fewer partial
// signatures than the threshold are supplied.
var ErrInsufficientPartials = errors.New("bls: not enough partial signatures")

// Signature is a BLS signature, the G1 point H(m)*x.
type Signature struct {
	point *bls381.G1Point
}

// Sign hashes msg to G1 and multiplies the result by the private key x.
func Sign(msg []byte, x group.Scalar) (*Signature, error) {
	if x == nil {
		return nil, ErrZeroKey
	}
	h, err := bls381.HashToG1(msg)
	if err != nil {
		return nil, fmt.Errorf("bls: hash to curve: %w", err)
	}
	sigma := g1.NewPoint().ScalarMult(x, h).(*bls381.G1Point)
	return &Signature{point: sigma}, nil
}

// Verify reports whether sig is a signature on msg under public key pub:
//
//	e(H(m), X) == e(sigma, G2)
//
// A mismatch is reported as false, never as an error.
func Verify(sig *Signature, msg []byte, pub group.Point) bool {
	if sig == nil || sig.point == nil {
		return false
	}
	X, ok := pub.(*bls381.G2Point)
	if !ok || X == nil || X.IsIdentity() {
		return false
	}
	h, err := bls381.HashToG1(msg)
	if err != nil {
		return false
	}
	ok, err = bls381.PairingEqual(h, X, sig.point, g2.Generator().(*bls381.G2Point))
	return err == nil && ok
}

// SignatureFromBytes decodes a compressed G1 signature.
func SignatureFromBytes(data []byte) (*Signature, error) {
	p, err := g1.NewPoint().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: decode signature: %w", err)
	}
	return &Signature{point: p.(*bls381.G1Point)}, nil
}

// Bytes returns the 48-byte compressed encoding of sig.
func (sig *Signature) Bytes() []byte {
	return sig.point.Bytes()
}

// Point returns a copy of the underlying G1 point.
func (sig *Signature) Point() group.Point {
	return group.ClonePoint(g1, sig.point)
}

// Equal reports whether two signatures are the same point.
func (sig *Signature) Equal(other *Signature) bool {
	return other != nil && sig.point.Equal(other.point)
}

func (sig *Signature) String() string {
	return bls381.PointHex(sig.point)
}

// PartialSignature is a signature made with party Index's key share.
type PartialSignature struct {
	Index     int
	Signature *Signature
}

// Recover interpolates at least threshold partial signatures on the same
// message into the signature of the shared secret, which verifies under
// the collective public key.
func Recover(partials []*PartialSignature, threshold int) (*Signature, error) {
	if len(partials) < threshold || len(partials) == 0 {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientPartials, len(partials), threshold)
	}
	samples := make([]lagrange.Sample[group.Point], len(partials))
	for i, p := range partials {
		if p == nil || p.Signature == nil {
			return nil, fmt.Errorf("bls: partial signature %d is nil", i)
		}
		samples[i] = lagrange.Sample[group.Point]{Index: p.Index, Value: p.Signature.point}
	}
	sigma, err := lagrange.InterpolateAtZero(g1, lagrange.Points(g1), samples)
	if err != nil {
		return nil, fmt.Errorf("bls: recover: %w", err)
	}
	return &Signature{point: sigma.(*bls381.G1Point)}, nil
}
