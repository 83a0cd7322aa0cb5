package threshold

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
	"github.com/f3rmion/pbls/poly"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// Contribution is one party's input to a refresh round: Feldman
// commitments to a degree t-1 blinding polynomial g with g(0) = 0, and
// the evaluation g(k) destined for every party k.
type Contribution struct {
	From        int
	Epoch       uint64
	Commitments []group.Point
	Shares      map[int]group.Scalar
}

func (c *Contribution) zeroize() {
	for _, s := range c.Shares {
		if wellFormedScalar(s) {
			s.Zeroize()
		}
	}
}

func wellFormedScalar(s group.Scalar) bool {
	v, ok := s.(*bls381.Scalar)
	return ok && v != nil
}

func wellFormedPoint(p group.Point) bool {
	v, ok := p.(*bls381.G2Point)
	return ok && v != nil
}

// Refresh runs one proactive refresh round. Every party's share is
// re-randomized while the collective secret and public key stay fixed.
// On error the committee is left exactly as it was.
func (c *Committee) Refresh(ctx context.Context) error {
	start := time.Now()

	contribs, err := c.Contributions(ctx)
	if err != nil {
		c.cfg.log.Warn("refresh round aborted", zap.Error(err))
		return err
	}
	epoch, digest, err := c.apply(ctx, contribs)
	if err != nil {
		c.cfg.log.Warn("refresh round aborted", zap.Error(err))
		return err
	}

	c.cfg.log.Info("refresh round applied",
		zap.Uint64("epoch", epoch),
		zap.String("transcript", hex.EncodeToString(digest)),
		zap.Int("parties", c.n),
		zap.Int("threshold", c.t),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// Contributions has every party sample its blinding polynomial and
// evaluate it for every other party. Parties run concurrently. The
// committee state is not touched.
func (c *Committee) Contributions(ctx context.Context) ([]*Contribution, error) {
	epoch := c.Epoch()
	contribs := make([]*Contribution, c.n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.parallelism)
	for i := 1; i <= c.n; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			contrib, err := c.contribute(i, epoch)
			if err != nil {
				return fmt.Errorf("party %d: %w", i, err)
			}
			contribs[i-1] = contrib
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		for _, contrib := range contribs {
			if contrib != nil {
				contrib.zeroize()
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrRoundAborted, err)
	}
	return contribs, nil
}

func (c *Committee) contribute(from int, epoch uint64) (*Contribution, error) {
	blind, err := poly.Zero(g2, c.cfg.rand, c.t-1)
	if err != nil {
		return nil, err
	}
	defer blind.Zeroize()

	shares := make(map[int]group.Scalar, c.n)
	for k := 1; k <= c.n; k++ {
		s, err := blind.EvaluateAt(k)
		if err != nil {
			return nil, err
		}
		shares[k] = s
	}
	return &Contribution{
		From:        from,
		Epoch:       epoch,
		Commitments: blind.Commit(g2),
		Shares:      shares,
	}, nil
}

// Apply validates a full set of contributions and, only if every one of
// them checks out, adds delta_k = Σ_i g_i(k) to each party k's share.
// Validation happens before the write lock is taken; the update itself
// is all-or-nothing. Contributions are zeroized on return.
func (c *Committee) Apply(ctx context.Context, contribs []*Contribution) error {
	_, _, err := c.apply(ctx, contribs)
	return err
}

// apply returns the epoch the round moved the committee to and the
// round's transcript digest.
func (c *Committee) apply(ctx context.Context, contribs []*Contribution) (uint64, []byte, error) {
	defer func() {
		for _, contrib := range contribs {
			if contrib != nil {
				contrib.zeroize()
			}
		}
	}()

	byParty, err := c.index(contribs)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRoundAborted, err)
	}

	deltas, err := c.deltas(ctx, byParty)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRoundAborted, err)
	}
	defer func() {
		for _, d := range deltas {
			d.Zeroize()
		}
	}()

	// Every contribution is checked against the live epoch below, so the
	// first sender's epoch is the round's.
	digest := transcript(byParty[0].Epoch, byParty)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrRoundAborted, err)
	}
	for _, contrib := range byParty {
		if contrib.Epoch != c.epoch {
			return 0, nil, fmt.Errorf("%w: %w: party %d built for epoch %d, committee at %d",
				ErrRoundAborted, ErrStaleContribution, contrib.From, contrib.Epoch, c.epoch)
		}
	}

	for k, kp := range c.keys {
		kp.Shift(deltas[k])
	}
	c.epoch++
	return c.epoch, digest, nil
}

// transcript is BLAKE2b-256 over the round's epoch and every sender's
// commitments in sender order. Two parties that compute the same digest
// saw the same round.
func transcript(epoch uint64, byParty []*Contribution) []byte {
	h, _ := blake2b.New256(nil)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], epoch)
	h.Write(buf[:])
	for _, contrib := range byParty {
		for _, cm := range contrib.Commitments {
			h.Write(cm.Bytes())
		}
	}
	return h.Sum(nil)
}

// index checks that there is exactly one well-formed contribution per
// party and orders them by sender.
func (c *Committee) index(contribs []*Contribution) ([]*Contribution, error) {
	byParty := make([]*Contribution, c.n)
	for _, contrib := range contribs {
		if contrib == nil {
			return nil, fmt.Errorf("%w: nil contribution", ErrInvalidContribution)
		}
		if err := c.checkIndex(contrib.From); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidContribution, err)
		}
		if byParty[contrib.From-1] != nil {
			return nil, fmt.Errorf("%w: party %d contributed twice", ErrInvalidContribution, contrib.From)
		}
		if len(contrib.Commitments) != c.t {
			return nil, fmt.Errorf("%w: party %d sent %d commitments, want %d",
				ErrInvalidContribution, contrib.From, len(contrib.Commitments), c.t)
		}
		for j, cm := range contrib.Commitments {
			if !wellFormedPoint(cm) {
				return nil, fmt.Errorf("%w: party %d commitment %d is not a G2 point",
					ErrInvalidContribution, contrib.From, j)
			}
		}
		for k, s := range contrib.Shares {
			if err := c.checkIndex(k); err != nil {
				return nil, fmt.Errorf("%w: party %d addressed a share outside the committee: %w",
					ErrInvalidContribution, contrib.From, err)
			}
			if !wellFormedScalar(s) {
				return nil, fmt.Errorf("%w: party %d share for party %d is not a scalar",
					ErrInvalidContribution, contrib.From, k)
			}
		}
		if !contrib.Commitments[0].IsIdentity() {
			return nil, fmt.Errorf("%w: party %d blinding polynomial has nonzero constant term",
				ErrInvalidContribution, contrib.From)
		}
		byParty[contrib.From-1] = contrib
	}
	for i, contrib := range byParty {
		if contrib == nil {
			return nil, fmt.Errorf("%w: party %d", ErrMissingContribution, i+1)
		}
	}
	return byParty, nil
}

// deltas verifies every share against its sender's commitments and sums
// the shares addressed to each party. Receivers are processed in
// parallel; each one waits for all n incoming shares before summing.
func (c *Committee) deltas(ctx context.Context, byParty []*Contribution) ([]group.Scalar, error) {
	deltas := make([]group.Scalar, c.n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.parallelism)
	for k := 1; k <= c.n; k++ {
		k := k
		eg.Go(func() error {
			sum := g2.NewScalar()
			for _, contrib := range byParty {
				if err := ctx.Err(); err != nil {
					return err
				}
				share, ok := contrib.Shares[k]
				if !ok || share == nil {
					return fmt.Errorf("%w: no share from party %d for party %d",
						ErrMissingContribution, contrib.From, k)
				}
				if !poly.VerifyShare(g2, contrib.Commitments, k, share) {
					return fmt.Errorf("%w: from party %d to party %d", ErrInvalidShare, contrib.From, k)
				}
				sum = g2.NewScalar().Add(sum, share)
			}
			deltas[k-1] = sum
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return deltas, nil
}
