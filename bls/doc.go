// Package bls implements BLS key pairs and signatures on BLS12-381 with
// signatures in G1 and public keys in G2.
//
// A signature on m under private key x is sigma = x*H(m), where H hashes
// to G1. It verifies against X = x*G2 when
//
//	e(H(m), X) == e(sigma, G2)
//
// which holds by bilinearity exactly when sigma = x*H(m).
//
// # Threshold signatures
//
// When x is Shamir-shared, each party signs with its share to produce a
// [PartialSignature]. [Recover] interpolates any threshold of partials
// at index zero, giving the signature of the shared secret without any
// party revealing its share.
package bls
