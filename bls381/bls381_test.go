package bls381

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/f3rmion/pbls/group"
)

func TestScalar(t *testing.T) {
	g := &G2{}

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}
		one, _ := group.ScalarFromInt(g, 1)
		if !g.NewScalar().Mul(a, aInv).Equal(one) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		if _, err := g.NewScalar().Invert(g.NewScalar()); err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)
		if !g.NewScalar().Add(a, negA).IsZero() {
			t.Error("a + (-a) != 0")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		restored, err := g.NewScalar().SetBytes(a.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
		if len(a.Bytes()) != 32 {
			t.Errorf("expected 32-byte encoding, got %d", len(a.Bytes()))
		}
	})

	t.Run("SetBytesReducesModOrder", func(t *testing.T) {
		s, _ := g.NewScalar().SetBytes(fr.Modulus().Bytes())
		if !s.IsZero() {
			t.Error("r mod r should be zero")
		}
	})

	t.Run("Zeroize", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		a.Zeroize()
		if !a.IsZero() {
			t.Error("zeroized scalar should be zero")
		}
	})
}

func TestPoints(t *testing.T) {
	groups := []struct {
		name string
		g    group.Group
		size int
	}{
		{"G1", &G1{}, 48},
		{"G2", &G2{}, 96},
	}

	for _, tc := range groups {
		g := tc.g
		t.Run(tc.name, func(t *testing.T) {
			t.Run("AddSub", func(t *testing.T) {
				s1, _ := g.RandomScalar(rand.Reader)
				s2, _ := g.RandomScalar(rand.Reader)
				P := g.NewPoint().ScalarMult(s1, g.Generator())
				Q := g.NewPoint().ScalarMult(s2, g.Generator())

				diff := g.NewPoint().Sub(g.NewPoint().Add(P, Q), Q)
				if !diff.Equal(P) {
					t.Error("(P+Q)-Q != P")
				}
			})

			t.Run("Distributive", func(t *testing.T) {
				s1, _ := g.RandomScalar(rand.Reader)
				s2, _ := g.RandomScalar(rand.Reader)
				sum := g.NewScalar().Add(s1, s2)

				lhs := g.NewPoint().ScalarMult(sum, g.Generator())
				rhs := g.NewPoint().Add(
					g.NewPoint().ScalarMult(s1, g.Generator()),
					g.NewPoint().ScalarMult(s2, g.Generator()),
				)
				if !lhs.Equal(rhs) {
					t.Error("(a+b)G != aG + bG")
				}
			})

			t.Run("Negate", func(t *testing.T) {
				s, _ := g.RandomScalar(rand.Reader)
				P := g.NewPoint().ScalarMult(s, g.Generator())
				if !g.NewPoint().Add(P, g.NewPoint().Negate(P)).IsIdentity() {
					t.Error("P + (-P) != identity")
				}
			})

			t.Run("IdentityIsNeutral", func(t *testing.T) {
				s, _ := g.RandomScalar(rand.Reader)
				P := g.NewPoint().ScalarMult(s, g.Generator())
				if !g.NewPoint().Add(g.NewPoint(), P).Equal(P) {
					t.Error("O + P != P")
				}
				if !g.NewPoint().ScalarMult(g.NewScalar(), P).IsIdentity() {
					t.Error("0*P != identity")
				}
			})

			t.Run("BytesRoundtrip", func(t *testing.T) {
				s, _ := g.RandomScalar(rand.Reader)
				P := g.NewPoint().ScalarMult(s, g.Generator())

				enc := P.Bytes()
				if len(enc) != tc.size {
					t.Fatalf("expected %d-byte encoding, got %d", tc.size, len(enc))
				}
				restored, err := g.NewPoint().SetBytes(enc)
				if err != nil {
					t.Fatal(err)
				}
				if !restored.Equal(P) {
					t.Error("point bytes roundtrip failed")
				}
			})

			t.Run("SetBytesRejectsGarbage", func(t *testing.T) {
				junk := bytes.Repeat([]byte{0xff}, tc.size)
				if _, err := g.NewPoint().SetBytes(junk); err == nil {
					t.Error("expected error decoding invalid point")
				}
			})

			t.Run("IsIdentity", func(t *testing.T) {
				if !g.NewPoint().IsIdentity() {
					t.Error("new point should be identity")
				}
				if g.Generator().IsIdentity() {
					t.Error("generator should not be identity")
				}
			})
		})
	}
}

func TestPairing(t *testing.T) {
	g1, g2 := &G1{}, &G2{}

	a, _ := g1.RandomScalar(rand.Reader)
	b, _ := g1.RandomScalar(rand.Reader)

	aP := g1.NewPoint().ScalarMult(a, g1.Generator()).(*G1Point)
	bQ := g2.NewPoint().ScalarMult(b, g2.Generator()).(*G2Point)
	ab := g1.NewScalar().Mul(a, b)
	abP := g1.NewPoint().ScalarMult(ab, g1.Generator()).(*G1Point)

	ok, err := PairingEqual(aP, bQ, abP, g2.Generator().(*G2Point))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("e(aP, bQ) != e(abP, Q)")
	}

	ok, err = PairingEqual(aP, bQ, aP, g2.Generator().(*G2Point))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("pairing equality should fail for unrelated exponents")
	}

	if _, err := PairingEqual(nil, bQ, aP, bQ); err == nil {
		t.Error("expected error for nil argument")
	}
}

func TestHashToG1(t *testing.T) {
	p1, err := HashToG1([]byte("message"))
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := HashToG1([]byte("message"))
	p3, _ := HashToG1([]byte("other message"))

	if !p1.Equal(p2) {
		t.Error("hash to curve should be deterministic")
	}
	if p1.Equal(p3) {
		t.Error("different messages should map to different points")
	}
	if p1.IsIdentity() {
		t.Error("hashed point should not be identity")
	}
}

func TestHex(t *testing.T) {
	g := &G2{}
	if got := PointHex(g.Generator()); len(got) != 2+2*96 {
		t.Errorf("unexpected PointHex length %d", len(got))
	}
}
