package poly

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/pbls/group"
)

// ErrNegativeDegree is returned when a polynomial of degree < 0 is requested.
var ErrNegativeDegree = errors.New("poly: degree must be non-negative")

// Polynomial is f(x) = a0 + a1*x + ... + a_d*x^d over the scalar field
// of a group. Coefficients are ordered from a0 upwards.
type Polynomial struct {
	g      group.Group
	coeffs []group.Scalar
}

// Random returns a polynomial of the given degree with constant term
// constant and uniformly random higher coefficients read from r.
func Random(g group.Group, r io.Reader, degree int, constant group.Scalar) (*Polynomial, error) {
	if degree < 0 {
		return nil, ErrNegativeDegree
	}
	coeffs := make([]group.Scalar, degree+1)
	coeffs[0] = group.CloneScalar(g, constant)
	for i := 1; i <= degree; i++ {
		c, err := g.RandomScalar(r)
		if err != nil {
			return nil, fmt.Errorf("poly: coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return &Polynomial{g: g, coeffs: coeffs}, nil
}

// Secret returns a random polynomial whose constant term is a uniformly
// random nonzero scalar.
func Secret(g group.Group, r io.Reader, degree int) (*Polynomial, error) {
	for {
		a0, err := g.RandomScalar(r)
		if err != nil {
			return nil, fmt.Errorf("poly: constant term: %w", err)
		}
		if !a0.IsZero() {
			return Random(g, r, degree, a0)
		}
	}
}

// Zero returns a random polynomial with f(0) = 0. Shares of such a
// polynomial re-randomize a sharing without moving its secret.
func Zero(g group.Group, r io.Reader, degree int) (*Polynomial, error) {
	return Random(g, r, degree, g.NewScalar())
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Constant returns a copy of a0.
func (p *Polynomial) Constant() group.Scalar {
	return group.CloneScalar(p.g, p.coeffs[0])
}

// Evaluate returns f(x) using Horner's rule.
func (p *Polynomial) Evaluate(x group.Scalar) group.Scalar {
	result := group.CloneScalar(p.g, p.coeffs[len(p.coeffs)-1])
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = p.g.NewScalar().Mul(result, x)
		result = p.g.NewScalar().Add(result, p.coeffs[i])
	}
	return result
}

// EvaluateAt returns f(i) for a party index i.
func (p *Polynomial) EvaluateAt(i int) (group.Scalar, error) {
	x, err := group.ScalarFromInt(p.g, i)
	if err != nil {
		return nil, err
	}
	return p.Evaluate(x), nil
}

// Commit returns the Feldman commitments C_j = a_j*G in the group pg,
// which must share p's scalar field.
func (p *Polynomial) Commit(pg group.Group) []group.Point {
	commits := make([]group.Point, len(p.coeffs))
	for i, c := range p.coeffs {
		commits[i] = pg.NewPoint().ScalarMult(c, pg.Generator())
	}
	return commits
}

// Zeroize clears every coefficient. The polynomial must not be used
// afterwards.
func (p *Polynomial) Zeroize() {
	for _, c := range p.coeffs {
		c.Zeroize()
	}
}

// CommitmentAt returns Σ C_j * i^j, the commitment to f(i) implied by
// Feldman commitments.
func CommitmentAt(g group.Group, commitments []group.Point, i int) (group.Point, error) {
	x, err := group.ScalarFromInt(g, i)
	if err != nil {
		return nil, err
	}
	acc := g.NewPoint()
	xPower, _ := group.ScalarFromInt(g, 1)
	for _, c := range commitments {
		acc = g.NewPoint().Add(acc, g.NewPoint().ScalarMult(xPower, c))
		xPower = g.NewScalar().Mul(xPower, x)
	}
	return acc, nil
}

// VerifyShare reports whether share*G equals the commitment to f(i).
func VerifyShare(g group.Group, commitments []group.Point, i int, share group.Scalar) bool {
	if len(commitments) == 0 || share == nil {
		return false
	}
	for _, c := range commitments {
		if c == nil {
			return false
		}
	}
	want, err := CommitmentAt(g, commitments, i)
	if err != nil {
		return false
	}
	return g.NewPoint().ScalarMult(share, g.Generator()).Equal(want)
}
