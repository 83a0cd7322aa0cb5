// Package threshold manages a t-of-n committee sharing one BLS secret
// key, and refreshes the committee's shares proactively.
//
// # Genesis
//
// [New] samples a polynomial f of degree t-1 with a random secret f(0)
// and gives party i (1 <= i <= n) the key pair (f(i), f(i)*G2). Index 0
// is never a party: it is where the secret and the collective public key
// sit.
//
//	c, err := threshold.New(5, 2)
//	pk, err := c.CollectivePublic([]int{1, 4})
//
// Any quorum of at least t distinct parties interpolates the same
// collective public key. Smaller quorums are rejected with
// [ErrBelowThreshold].
//
// # Proactive refresh
//
// An adversary that compromises parties one at a time eventually holds t
// shares. [Committee.Refresh] defeats this by re-sharing the secret each
// epoch:
//
//  1. Each party i samples a blinding polynomial g_i of degree t-1 with
//     g_i(0) = 0, commits to its coefficients and evaluates g_i(k) for
//     every party k ([Committee.Contributions]).
//  2. Each party k checks every g_i(k) against party i's commitments and
//     sums them into delta_k = Σ_i g_i(k).
//  3. Each party k sets x_k <- x_k + delta_k and X_k <- X_k + delta_k*G2
//     ([Committee.Apply]).
//
// The new shares lie on f + Σ g_i, which still has constant term f(0),
// so the collective key is unchanged while every share is re-randomized.
// Shares stolen before a round are useless when combined with shares
// stolen after it.
//
// A round is all-or-nothing. A missing, duplicated, stale or inconsistent
// contribution aborts it with [ErrRoundAborted] before any share moves,
// and readers never see a half-applied round.
//
// Each applied round is logged with a BLAKE2b-256 digest of its epoch and
// every sender's commitments, so parties can confirm they saw the same
// round.
package threshold
