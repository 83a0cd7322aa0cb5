package poly

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
)

func TestRandom(t *testing.T) {
	g := &bls381.G2{}
	secret, _ := g.RandomScalar(rand.Reader)

	p, err := Random(g, rand.Reader, 3, secret)
	if err != nil {
		t.Fatal(err)
	}
	if p.Degree() != 3 {
		t.Errorf("degree = %d, want 3", p.Degree())
	}
	if !p.Constant().Equal(secret) {
		t.Error("constant term should equal the secret")
	}
	if !p.Evaluate(g.NewScalar()).Equal(secret) {
		t.Error("f(0) should equal the secret")
	}

	// The polynomial keeps its own copy of the constant.
	secret.Zeroize()
	if p.Constant().IsZero() {
		t.Error("zeroizing the caller's scalar changed the polynomial")
	}

	if _, err := Random(g, rand.Reader, -1, secret); !errors.Is(err, ErrNegativeDegree) {
		t.Errorf("expected ErrNegativeDegree, got %v", err)
	}
}

func TestEvaluateMatchesDefinition(t *testing.T) {
	g := &bls381.G2{}
	p, _ := Secret(g, rand.Reader, 2)

	// f(3) = a0 + 3*a1 + 9*a2
	three, _ := group.ScalarFromInt(g, 3)
	nine, _ := group.ScalarFromInt(g, 9)
	want := g.NewScalar().Add(p.coeffs[0], g.NewScalar().Mul(three, p.coeffs[1]))
	want = g.NewScalar().Add(want, g.NewScalar().Mul(nine, p.coeffs[2]))

	got, err := p.EvaluateAt(3)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("Horner evaluation does not match the expanded form")
	}
}

func TestSecretNonZero(t *testing.T) {
	g := &bls381.G2{}
	for i := 0; i < 8; i++ {
		p, err := Secret(g, rand.Reader, 1)
		if err != nil {
			t.Fatal(err)
		}
		if p.Constant().IsZero() {
			t.Fatal("secret polynomial has zero constant")
		}
	}
}

func TestZero(t *testing.T) {
	g := &bls381.G2{}
	p, err := Zero(g, rand.Reader, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Constant().IsZero() {
		t.Error("zero polynomial must have f(0) = 0")
	}
	s, _ := p.EvaluateAt(1)
	if s.IsZero() {
		t.Error("f(1) of a random zero-constant polynomial should not be zero")
	}

	commits := p.Commit(g)
	if !commits[0].IsIdentity() {
		t.Error("commitment to a zero constant should be the identity")
	}
}

func TestVerifyShare(t *testing.T) {
	g := &bls381.G2{}
	p, _ := Secret(g, rand.Reader, 2)
	commits := p.Commit(g)

	for i := 1; i <= 5; i++ {
		share, _ := p.EvaluateAt(i)
		if !VerifyShare(g, commits, i, share) {
			t.Errorf("honest share %d rejected", i)
		}

		one, _ := group.ScalarFromInt(g, 1)
		bad := g.NewScalar().Add(share, one)
		if VerifyShare(g, commits, i, bad) {
			t.Errorf("tampered share %d accepted", i)
		}
		if VerifyShare(g, commits, i+1, share) {
			t.Errorf("share %d accepted at the wrong index", i)
		}
	}

	if VerifyShare(g, nil, 1, g.NewScalar()) {
		t.Error("share accepted without commitments")
	}
}

func TestZeroize(t *testing.T) {
	g := &bls381.G2{}
	p, _ := Secret(g, rand.Reader, 3)
	p.Zeroize()
	for i, c := range p.coeffs {
		if !c.IsZero() {
			t.Errorf("coefficient %d not cleared", i)
		}
	}
}
