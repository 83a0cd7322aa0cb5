package lagrange

import "github.com/f3rmion/pbls/group"

// Combinable is the arithmetic interpolation needs from a value type:
// an additive identity, addition and scaling by a field element.
type Combinable[T any] interface {
	Zero() T
	Add(a, b T) T
	Scale(v T, s group.Scalar) T
}

type scalarAlgebra struct {
	g group.Group
}

// Scalars returns the [Combinable] for field elements of g.
func Scalars(g group.Group) Combinable[group.Scalar] {
	return scalarAlgebra{g: g}
}

func (a scalarAlgebra) Zero() group.Scalar { return a.g.NewScalar() }

func (a scalarAlgebra) Add(x, y group.Scalar) group.Scalar {
	return a.g.NewScalar().Add(x, y)
}

func (a scalarAlgebra) Scale(v group.Scalar, s group.Scalar) group.Scalar {
	return a.g.NewScalar().Mul(v, s)
}

type pointAlgebra struct {
	g group.Group
}

// Points returns the [Combinable] for points of g.
func Points(g group.Group) Combinable[group.Point] {
	return pointAlgebra{g: g}
}

func (a pointAlgebra) Zero() group.Point { return a.g.NewPoint() }

func (a pointAlgebra) Add(x, y group.Point) group.Point {
	return a.g.NewPoint().Add(x, y)
}

func (a pointAlgebra) Scale(v group.Point, s group.Scalar) group.Point {
	return a.g.NewPoint().ScalarMult(s, v)
}
