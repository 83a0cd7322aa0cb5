package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/pbls/bls"
	"github.com/f3rmion/pbls/bls381"
	"github.com/f3rmion/pbls/group"
	"github.com/f3rmion/pbls/threshold"
	"go.uber.org/zap"
)

var (
	// ErrKeyDrift is returned if a committee's collective key moves.
	ErrKeyDrift = errors.New("simulation: collective public key changed")
	// ErrSignatureInvalid is returned if a quorum signature stops
	// verifying under the collective key.
	ErrSignatureInvalid = errors.New("simulation: quorum signature invalid")
)

// PartyStatus is one party's public share and whether the adversary
// currently holds a usable copy of its private share.
type PartyStatus struct {
	Key    string `json:"key"`
	Secure bool   `json:"secure"`
}

// Report is the state of one committee at the start of an epoch.
type Report struct {
	Breached     bool          `json:"breached"`
	CollectivePK string        `json:"collective_pk"`
	Parties      []PartyStatus `json:"pks"`
}

// Epoch compares a committee that never refreshes with one that
// refreshes after every epoch.
type Epoch struct {
	Time      int    `json:"time"`
	Static    Report `json:"ats"`
	Proactive Report `json:"ats_pr"`
}

type options struct {
	log       *zap.Logger
	committee []threshold.Option
}

// Option configures [Run].
type Option func(*options)

// WithLogger sets the logger used for per-epoch progress. It is also
// handed to both committees.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCommitteeOptions passes options through to [threshold.New].
func WithCommitteeOptions(opts ...threshold.Option) Option {
	return func(o *options) {
		o.committee = append(o.committee, opts...)
	}
}

type track struct {
	name      string
	committee *threshold.Committee
	genesis   group.Point
	secure    []bool
}

func newTrack(name string, cfg Config, o options) (*track, error) {
	opts := append([]threshold.Option{threshold.WithLogger(o.log.Named(name))}, o.committee...)
	c, err := threshold.New(cfg.N, cfg.T, opts...)
	if err != nil {
		return nil, err
	}
	pk, err := c.CollectivePublic(cfg.Quorum)
	if err != nil {
		return nil, err
	}
	secure := make([]bool, cfg.N)
	for i := range secure {
		secure[i] = true
	}
	return &track{name: name, committee: c, genesis: pk, secure: secure}, nil
}

func (tr *track) compromised() int {
	n := 0
	for _, ok := range tr.secure {
		if !ok {
			n++
		}
	}
	return n
}

// report checks the committee against its genesis key and a fresh
// quorum signature, then describes it.
func (tr *track) report(cfg Config) (Report, error) {
	pk, err := tr.committee.CollectivePublic(cfg.Quorum)
	if err != nil {
		return Report{}, err
	}
	if !pk.Equal(tr.genesis) {
		return Report{}, fmt.Errorf("%w: %s committee", ErrKeyDrift, tr.name)
	}

	msg := []byte(cfg.Message)
	sig, err := tr.committee.SignQuorum(cfg.Quorum, msg)
	if err != nil {
		return Report{}, err
	}
	if !bls.Verify(sig, msg, pk) {
		return Report{}, fmt.Errorf("%w: %s committee", ErrSignatureInvalid, tr.name)
	}

	shares := tr.committee.PublicShares()
	parties := make([]PartyStatus, len(shares))
	for i, p := range shares {
		parties[i] = PartyStatus{Key: bls381.PointHex(p), Secure: tr.secure[i]}
	}
	return Report{
		Breached:     tr.compromised() >= cfg.T,
		CollectivePK: bls381.PointHex(pk),
		Parties:      parties,
	}, nil
}

// Run plays out cfg against two committees with identical breach
// schedules. A breach marks the party compromised in both. The static
// committee never recovers; the proactive committee refreshes at the end
// of every epoch, after which the share stolen that epoch is stale.
func Run(ctx context.Context, cfg Config, opts ...Option) ([]Epoch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	static, err := newTrack("static", cfg, o)
	if err != nil {
		return nil, err
	}
	proactive, err := newTrack("proactive", cfg, o)
	if err != nil {
		return nil, err
	}

	breaches := make(map[int]int, len(cfg.Breaches))
	for _, b := range cfg.Breaches {
		breaches[b.Epoch] = b.Party
	}

	epochs := make([]Epoch, 0, cfg.Epochs)
	for i := 0; i < cfg.Epochs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		party, breached := breaches[i]
		if breached {
			static.secure[party-1] = false
			proactive.secure[party-1] = false
		}

		sr, err := static.report(cfg)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", i, err)
		}
		pr, err := proactive.report(cfg)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", i, err)
		}
		epochs = append(epochs, Epoch{Time: i, Static: sr, Proactive: pr})

		o.log.Info("epoch recorded",
			zap.Int("epoch", i),
			zap.Int("static_compromised", static.compromised()),
			zap.Bool("static_breached", sr.Breached),
			zap.Int("proactive_compromised", proactive.compromised()),
			zap.Bool("proactive_breached", pr.Breached),
		)

		if breached {
			proactive.secure[party-1] = true
		}
		if err := proactive.committee.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("epoch %d: %w", i, err)
		}
	}
	return epochs, nil
}

// WriteReport encodes epochs as an indented JSON array.
func WriteReport(w io.Writer, epochs []Epoch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(epochs)
}
