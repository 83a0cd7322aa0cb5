// Package bls381 implements the [group] interfaces for the BLS12-381
// pairing-friendly curve on top of gnark-crypto.
//
// [G1] and [G2] are the two source groups of the optimal ate pairing and
// share the scalar type [Scalar]. Signatures and hashed messages live in
// G1 (48-byte compressed points), public keys in G2 (96 bytes).
//
//	g2 := &bls381.G2{}
//	x, _ := g2.RandomScalar(rand.Reader)
//	pub := g2.NewPoint().ScalarMult(x, g2.Generator())
//
// [HashToG1] follows RFC 9380 with the ciphersuite tag [SignatureDST],
// and [PairingEqual] compares two pairing evaluations in GT.
package bls381
