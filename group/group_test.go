package group_test

import (
	"errors"
	"testing"

	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
)

func TestScalarFromInt(t *testing.T) {
	g := &bls381.G2{}

	one, err := group.ScalarFromInt(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	three, err := group.ScalarFromInt(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	sum := g.NewScalar().Add(one, g.NewScalar().Add(one, one))
	if !sum.Equal(three) {
		t.Error("1+1+1 != 3")
	}

	zero, err := group.ScalarFromInt(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Error("ScalarFromInt(0) is not zero")
	}

	if _, err := group.ScalarFromInt(g, -1); !errors.Is(err, group.ErrNegativeInt) {
		t.Errorf("expected ErrNegativeInt, got %v", err)
	}
}

func TestClone(t *testing.T) {
	g := &bls381.G1{}

	s, err := group.ScalarFromInt(g, 7)
	if err != nil {
		t.Fatal(err)
	}
	c := group.CloneScalar(g, s)
	s.Zeroize()
	if c.IsZero() {
		t.Error("zeroizing the original cleared the clone")
	}

	p := g.NewPoint().ScalarMult(c, g.Generator())
	q := group.ClonePoint(g, p)
	p.Add(p, g.Generator())
	if !q.Equal(g.NewPoint().ScalarMult(c, g.Generator())) {
		t.Error("mutating the original changed the clone")
	}
}
