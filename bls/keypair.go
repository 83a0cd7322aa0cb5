package bls

import (
	"errors"
	"io"

	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
)

var (
	g1 = &bls381.G1{}
	g2 = &bls381.G2{}
)

// ErrZeroKey is returned when a private key would be zero.
var ErrZeroKey = errors.New("bls: private key is zero")

// KeyPair is a private scalar x and its public key X = x*G2.
type KeyPair struct {
	private group.Scalar
	public  group.Point
}

// GenerateKey samples a uniformly random nonzero private key from r.
func GenerateKey(r io.Reader) (*KeyPair, error) {
	for {
		x, err := g2.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		if !x.IsZero() {
			return NewKeyPair(x)
		}
	}
}

// NewKeyPair derives the public key for private key x. The key pair
// holds its own copy of x.
func NewKeyPair(x group.Scalar) (*KeyPair, error) {
	if x == nil || x.IsZero() {
		return nil, ErrZeroKey
	}
	return &KeyPair{
		private: group.CloneScalar(g2, x),
		public:  g2.NewPoint().ScalarMult(x, g2.Generator()),
	}, nil
}

// Private returns a copy of the private key.
func (kp *KeyPair) Private() group.Scalar {
	return group.CloneScalar(g2, kp.private)
}

// Public returns a copy of the public key.
func (kp *KeyPair) Public() group.Point {
	return group.ClonePoint(g2, kp.public)
}

// Clone returns an independent copy of kp.
func (kp *KeyPair) Clone() *KeyPair {
	return &KeyPair{private: kp.Private(), public: kp.Public()}
}

// Shift adds delta to the private key and delta*G2 to the public key,
// so X = x*G2 still holds afterwards. The previous private scalar is
// wiped.
func (kp *KeyPair) Shift(delta group.Scalar) {
	old := kp.private
	kp.private = g2.NewScalar().Add(old, delta)
	old.Zeroize()
	kp.public = g2.NewPoint().Add(kp.public, g2.NewPoint().ScalarMult(delta, g2.Generator()))
}

// Consistent reports whether the public key matches the private key.
func (kp *KeyPair) Consistent() bool {
	return g2.NewPoint().ScalarMult(kp.private, g2.Generator()).Equal(kp.public)
}

// Sign signs msg with the key pair's private key.
func (kp *KeyPair) Sign(msg []byte) (*Signature, error) {
	return Sign(msg, kp.private)
}

// Zeroize clears the private key.
func (kp *KeyPair) Zeroize() {
	kp.private.Zeroize()
}

// String returns the hex-encoded public key.
func (kp *KeyPair) String() string {
	return bls381.PointHex(kp.public)
}

// Combine returns the component-wise sum of a and b. The result is a
// valid key pair for x_a + x_b, but summing shares this way is not how
// a threshold key is reconstructed; that path is Lagrange-weighted.
func Combine(a, b *KeyPair) *KeyPair {
	return &KeyPair{
		private: g2.NewScalar().Add(a.private, b.private),
		public:  g2.NewPoint().Add(a.public, b.public),
	}
}
