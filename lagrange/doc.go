// Package lagrange interpolates polynomials at zero from indexed samples.
//
// The same routine recovers a secret from scalar shares and a collective
// public key or threshold signature from point shares. The value type is
// abstracted by [Combinable], implemented once for scalars ([Scalars])
// and once for curve points ([Points]).
//
// Sample indices must be positive and pairwise distinct; index 0 is the
// value being recovered.
package lagrange
