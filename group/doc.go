// Package group defines the abstract algebra consumed by the threshold
// BLS packages.
//
// Three interfaces describe what the protocol needs from a curve:
//
//   - [Scalar]: elements of the prime-order scalar field
//   - [Point]: elements of a curve group (G1 or G2 on a pairing curve)
//   - [Group]: factory methods, the generator and random sampling
//
// # Mutable receivers
//
// Operations like Add, Mul and ScalarMult set the receiver to the result
// and return it, so expressions chain without extra allocations:
//
//	// a + b*c
//	r := g.NewScalar().Mul(b, c)
//	r = g.NewScalar().Add(a, r)
//
// Scalar inversion is the only partial operation; it fails on zero.
//
// # Implementations
//
// The bls381 package implements these interfaces for BLS12-381. Both of
// its groups share a single scalar type, so a private key can scale a G2
// generator to obtain a public key and a G1 hash to obtain a signature.
package group
