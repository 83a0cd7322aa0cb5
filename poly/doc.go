// Package poly provides polynomials over a curve's scalar field for
// Shamir sharing, zero-secret resharing and Feldman share verification.
package poly
