package lagrange

import (
	"crypto/rand"
	"errors"
	"fmt"
	"testing"

	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
)

func randomPoly(t *testing.T, g group.Group, degree int) []group.Scalar {
	t.Helper()
	coeffs := make([]group.Scalar, degree+1)
	for i := range coeffs {
		c, err := g.RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		coeffs[i] = c
	}
	return coeffs
}

func eval(g group.Group, coeffs []group.Scalar, x int) group.Scalar {
	xs, _ := group.ScalarFromInt(g, x)
	result := g.NewScalar().Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = g.NewScalar().Mul(result, xs)
		result = g.NewScalar().Add(result, coeffs[i])
	}
	return result
}

func TestCoefficientsSumToOne(t *testing.T) {
	g := &bls381.G2{}
	one, _ := group.ScalarFromInt(g, 1)

	sets := [][]int{
		{1},
		{1, 2},
		{1, 4},
		{2, 3, 7},
		{5, 1, 3, 2},
		{10, 20, 30, 40, 50},
	}

	for _, idx := range sets {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			samples := make([]Sample[group.Scalar], len(idx))
			for i, x := range idx {
				samples[i] = Sample[group.Scalar]{Index: x, Value: one}
			}

			sum := g.NewScalar()
			for j := range samples {
				l, err := CoefficientAtZero(g, samples, j)
				if err != nil {
					t.Fatal(err)
				}
				sum = g.NewScalar().Add(sum, l)
			}
			if !sum.Equal(one) {
				t.Error("lagrange coefficients do not sum to 1")
			}

			// Interpolating the constant function 1 yields 1.
			got, err := InterpolateAtZero(g, Scalars(g), samples)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(one) {
				t.Error("constant function did not interpolate to itself")
			}
		})
	}
}

func TestInterpolateScalars(t *testing.T) {
	g := &bls381.G2{}

	configs := []struct {
		threshold int
		total     int
	}{
		{1, 1},
		{2, 3},
		{2, 5},
		{3, 5},
		{5, 7},
	}

	for _, cfg := range configs {
		t.Run(fmt.Sprintf("%d_of_%d", cfg.threshold, cfg.total), func(t *testing.T) {
			coeffs := randomPoly(t, g, cfg.threshold-1)

			// Any threshold-sized window of parties recovers a0.
			for start := 1; start+cfg.threshold-1 <= cfg.total; start++ {
				samples := make([]Sample[group.Scalar], 0, cfg.threshold)
				for x := start; x < start+cfg.threshold; x++ {
					samples = append(samples, Sample[group.Scalar]{Index: x, Value: eval(g, coeffs, x)})
				}
				secret, err := InterpolateAtZero(g, Scalars(g), samples)
				if err != nil {
					t.Fatal(err)
				}
				if !secret.Equal(coeffs[0]) {
					t.Errorf("window starting at %d did not recover the secret", start)
				}
			}
		})
	}
}

func TestInterpolatePoints(t *testing.T) {
	groups := []group.Group{&bls381.G1{}, &bls381.G2{}}

	for _, g := range groups {
		t.Run(fmt.Sprintf("%T", g), func(t *testing.T) {
			coeffs := randomPoly(t, g, 2)
			want := g.NewPoint().ScalarMult(coeffs[0], g.Generator())

			samples := make([]Sample[group.Point], 0, 3)
			for _, x := range []int{2, 5, 3} {
				share := eval(g, coeffs, x)
				samples = append(samples, Sample[group.Point]{
					Index: x,
					Value: g.NewPoint().ScalarMult(share, g.Generator()),
				})
			}

			got, err := InterpolateAtZero(g, Points(g), samples)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Error("point interpolation did not recover a0*G")
			}
		})
	}
}

func TestTooFewSamplesGiveWrongValue(t *testing.T) {
	g := &bls381.G2{}
	coeffs := randomPoly(t, g, 2)

	samples := []Sample[group.Scalar]{
		{Index: 1, Value: eval(g, coeffs, 1)},
		{Index: 2, Value: eval(g, coeffs, 2)},
	}
	got, err := InterpolateAtZero(g, Scalars(g), samples)
	if err != nil {
		t.Fatal(err)
	}
	if got.Equal(coeffs[0]) {
		t.Error("degree-2 secret should not be recoverable from two samples")
	}
}

func TestValidation(t *testing.T) {
	g := &bls381.G2{}
	one, _ := group.ScalarFromInt(g, 1)

	tests := []struct {
		name    string
		indices []int
		want    error
	}{
		{"Empty", nil, ErrNoSamples},
		{"ZeroIndex", []int{0, 1}, ErrInvalidIndex},
		{"NegativeIndex", []int{1, -2}, ErrInvalidIndex},
		{"Duplicate", []int{1, 3, 1}, ErrDuplicateIndex},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := make([]Sample[group.Scalar], len(tc.indices))
			for i, x := range tc.indices {
				samples[i] = Sample[group.Scalar]{Index: x, Value: one}
			}

			if _, err := InterpolateAtZero(g, Scalars(g), samples); !errors.Is(err, tc.want) {
				t.Errorf("InterpolateAtZero error = %v, want %v", err, tc.want)
			}
			if _, err := CoefficientAtZero(g, samples, 0); !errors.Is(err, tc.want) {
				t.Errorf("CoefficientAtZero error = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run("PositionOutOfRange", func(t *testing.T) {
		samples := []Sample[group.Scalar]{{Index: 1, Value: one}}
		if _, err := CoefficientAtZero(g, samples, 1); err == nil {
			t.Error("expected error for out-of-range position")
		}
	})
}
