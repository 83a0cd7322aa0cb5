package lagrange

import (
	"errors"
	"fmt"

	"github.com/f3rmion/pbls/group"
)

var (
	// ErrNoSamples is returned when interpolating an empty sample set.
	ErrNoSamples = errors.New("lagrange: no samples")
	// ErrInvalidIndex is returned for a sample index that is not positive.
	// Index 0 is reserved for the interpolated value itself.
	ErrInvalidIndex = errors.New("lagrange: sample index must be positive")
	// ErrDuplicateIndex is returned when two samples share an index.
	ErrDuplicateIndex = errors.New("lagrange: duplicate sample index")
	// ErrSingular is returned if a denominator is zero despite distinct
	// indices. It signals a broken invariant and is never expected.
	ErrSingular = errors.New("lagrange: singular denominator")
)

// Sample is one evaluation f(Index) = Value of a polynomial whose values
// are of type T.
type Sample[T any] struct {
	Index int
	Value T
}

// Validate checks that every index is positive and that no index
// repeats.
func Validate[T any](samples []Sample[T]) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	seen := make(map[int]struct{}, len(samples))
	for _, s := range samples {
		if s.Index <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidIndex, s.Index)
		}
		if _, ok := seen[s.Index]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, s.Index)
		}
		seen[s.Index] = struct{}{}
	}
	return nil
}

// CoefficientAtZero returns the Lagrange basis coefficient
//
//	λ_j = Π_{i≠j} x_i / (x_i - x_j)
//
// for samples[j], so that Σ λ_j·v_j = f(0) for any polynomial of degree
// below len(samples).
func CoefficientAtZero[T any](g group.Group, samples []Sample[T], j int) (group.Scalar, error) {
	if err := Validate(samples); err != nil {
		return nil, err
	}
	if j < 0 || j >= len(samples) {
		return nil, fmt.Errorf("lagrange: coefficient position %d out of range", j)
	}
	return coefficient(g, samples, j)
}

func coefficient[T any](g group.Group, samples []Sample[T], j int) (group.Scalar, error) {
	xj, err := group.ScalarFromInt(g, samples[j].Index)
	if err != nil {
		return nil, err
	}
	num, _ := group.ScalarFromInt(g, 1)
	den, _ := group.ScalarFromInt(g, 1)

	for i, s := range samples {
		if i == j {
			continue
		}
		xi, err := group.ScalarFromInt(g, s.Index)
		if err != nil {
			return nil, err
		}
		num = g.NewScalar().Mul(num, xi)
		den = g.NewScalar().Mul(den, g.NewScalar().Sub(xi, xj))
	}

	if den.IsZero() {
		return nil, ErrSingular
	}
	denInv, err := g.NewScalar().Invert(den)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return g.NewScalar().Mul(num, denInv), nil
}

// Coefficients returns λ_j for every sample, in sample order.
func Coefficients[T any](g group.Group, samples []Sample[T]) ([]group.Scalar, error) {
	if err := Validate(samples); err != nil {
		return nil, err
	}
	out := make([]group.Scalar, len(samples))
	for j := range samples {
		l, err := coefficient(g, samples, j)
		if err != nil {
			return nil, err
		}
		out[j] = l
	}
	return out, nil
}

// InterpolateAtZero returns Σ λ_j·v_j, the value at index 0 of the
// polynomial through samples. alg supplies the arithmetic on T; use
// [Scalars] for secret shares and [Points] for public keys or partial
// signatures.
func InterpolateAtZero[T any](g group.Group, alg Combinable[T], samples []Sample[T]) (T, error) {
	var zero T
	lambdas, err := Coefficients(g, samples)
	if err != nil {
		return zero, err
	}
	sum := alg.Zero()
	for j, s := range samples {
		sum = alg.Add(sum, alg.Scale(s.Value, lambdas[j]))
	}
	return sum, nil
}
