package threshold

import (
	"fmt"
	"sync"

	"github.com/f3rmion/pbls/bls"
	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
	"github.com/f3rmion/pbls/lagrange"
	"github.com/f3rmion/pbls/poly"
	"go.uber.org/zap"
)

var g2 = &bls381.G2{}

// Committee is n parties jointly holding a BLS secret key so that any t
// of them can reconstruct the collective public key or sign under it.
//
// The committee owns every party's key pair. Reads take a shared lock
// and a refresh round takes the exclusive lock, so no reader observes a
// partially refreshed committee.
type Committee struct {
	mu    sync.RWMutex
	n     int
	t     int
	keys  []*bls.KeyPair // keys[i-1] belongs to party i
	epoch uint64
	cfg   config
}

// New runs committee genesis: it samples a degree t-1 polynomial with a
// random nonzero secret and gives party i the share f(i).
func New(n, t int, opts ...Option) (*Committee, error) {
	if t < 1 || n < 1 || t > n {
		return nil, fmt.Errorf("%w: n=%d t=%d", ErrInvalidConfig, n, t)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := poly.Secret(g2, cfg.rand, t-1)
	if err != nil {
		return nil, fmt.Errorf("threshold: sample secret polynomial: %w", err)
	}
	defer f.Zeroize()

	keys := make([]*bls.KeyPair, n)
	for i := 1; i <= n; i++ {
		share, err := f.EvaluateAt(i)
		if err != nil {
			return nil, err
		}
		kp, err := bls.NewKeyPair(share)
		share.Zeroize()
		if err != nil {
			return nil, fmt.Errorf("threshold: share for party %d: %w", i, err)
		}
		keys[i-1] = kp
	}

	cfg.log.Debug("committee created", zap.Int("parties", n), zap.Int("threshold", t))

	return &Committee{
		n:    n,
		t:    t,
		keys: keys,
		cfg:  cfg,
	}, nil
}

// Size returns the number of parties n.
func (c *Committee) Size() int { return c.n }

// Threshold returns the reconstruction threshold t.
func (c *Committee) Threshold() int { return c.t }

// Epoch returns the number of refresh rounds applied so far.
func (c *Committee) Epoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Parties returns the party indices 1..n.
func (c *Committee) Parties() []int {
	ids := make([]int, c.n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func (c *Committee) checkIndex(i int) error {
	if i < 1 || i > c.n {
		return fmt.Errorf("%w: %d not in 1..%d", ErrIndexOutOfRange, i, c.n)
	}
	return nil
}

func (c *Committee) checkQuorum(quorum []int) error {
	seen := make(map[int]struct{}, len(quorum))
	for _, i := range quorum {
		if err := c.checkIndex(i); err != nil {
			return err
		}
		if _, ok := seen[i]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateIndex, i)
		}
		seen[i] = struct{}{}
	}
	if len(seen) < c.t {
		return fmt.Errorf("%w: %d parties, need %d", ErrBelowThreshold, len(seen), c.t)
	}
	return nil
}

// QuorumKeys returns copies of the key pairs of the given parties in the
// order requested. It does not enforce the threshold.
func (c *Committee) QuorumKeys(indices []int) ([]*bls.KeyPair, error) {
	for _, i := range indices {
		if err := c.checkIndex(i); err != nil {
			return nil, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*bls.KeyPair, len(indices))
	for j, i := range indices {
		out[j] = c.keys[i-1].Clone()
	}
	return out, nil
}

// PublicShare returns party i's public key.
func (c *Committee) PublicShare(i int) (group.Point, error) {
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys[i-1].Public(), nil
}

// PublicShares returns every party's public key, party 1 first.
func (c *Committee) PublicShares() []group.Point {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]group.Point, c.n)
	for i, kp := range c.keys {
		out[i] = kp.Public()
	}
	return out
}

// CollectivePublic interpolates the public shares of quorum at zero. The
// result is the same for every quorum of at least t parties and does
// not change across refresh rounds.
func (c *Committee) CollectivePublic(quorum []int) (group.Point, error) {
	if err := c.checkQuorum(quorum); err != nil {
		return nil, err
	}

	c.mu.RLock()
	samples := make([]lagrange.Sample[group.Point], len(quorum))
	for j, i := range quorum {
		samples[j] = lagrange.Sample[group.Point]{Index: i, Value: c.keys[i-1].Public()}
	}
	c.mu.RUnlock()

	return lagrange.InterpolateAtZero(g2, lagrange.Points(g2), samples)
}

// CollectivePrivate interpolates the private shares of quorum at zero,
// revealing the committee secret. Only use it where one process is
// trusted with every share, such as tests.
func (c *Committee) CollectivePrivate(quorum []int) (group.Scalar, error) {
	if err := c.checkQuorum(quorum); err != nil {
		return nil, err
	}

	c.mu.RLock()
	samples := make([]lagrange.Sample[group.Scalar], len(quorum))
	for j, i := range quorum {
		samples[j] = lagrange.Sample[group.Scalar]{Index: i, Value: c.keys[i-1].Private()}
	}
	c.mu.RUnlock()

	secret, err := lagrange.InterpolateAtZero(g2, lagrange.Scalars(g2), samples)
	for _, s := range samples {
		s.Value.Zeroize()
	}
	return secret, err
}

// Sign returns party i's partial signature on msg under its current
// share.
func (c *Committee) Sign(i int, msg []byte) (*bls.PartialSignature, error) {
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	sig, err := c.keys[i-1].Sign(msg)
	if err != nil {
		return nil, err
	}
	return &bls.PartialSignature{Index: i, Signature: sig}, nil
}

// VerifyPartial reports whether p is a valid signature on msg under the
// current public share of party p.Index.
func (c *Committee) VerifyPartial(p *bls.PartialSignature, msg []byte) bool {
	if p == nil {
		return false
	}
	pub, err := c.PublicShare(p.Index)
	if err != nil {
		return false
	}
	return bls.Verify(p.Signature, msg, pub)
}

// SignQuorum collects partial signatures on msg from every quorum member
// and recovers the committee signature. All partials are taken under one
// read lock, so they always come from the same epoch.
func (c *Committee) SignQuorum(quorum []int, msg []byte) (*bls.Signature, error) {
	if err := c.checkQuorum(quorum); err != nil {
		return nil, err
	}

	c.mu.RLock()
	partials := make([]*bls.PartialSignature, len(quorum))
	for j, i := range quorum {
		sig, err := c.keys[i-1].Sign(msg)
		if err != nil {
			c.mu.RUnlock()
			return nil, err
		}
		partials[j] = &bls.PartialSignature{Index: i, Signature: sig}
	}
	c.mu.RUnlock()

	return bls.Recover(partials, c.t)
}
