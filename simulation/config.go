package simulation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned for a simulation configuration that
// cannot run.
var ErrInvalidConfig = errors.New("simulation: invalid config")

// Breach marks Party as compromised from Epoch on.
type Breach struct {
	Epoch int
	Party int
}

// Config describes a simulated attack on a t-of-n committee.
type Config struct {
	N        int
	T        int
	Quorum   []int    // parties used to reconstruct and sign each epoch
	Breaches []Breach // at most one per epoch
	Epochs   int
	Message  string // signed by Quorum every epoch as a liveness check
}

// DefaultConfig is a 5-of-7 committee that loses five parties over 15
// epochs: enough for the static committee to be broken by the end.
func DefaultConfig() Config {
	return Config{
		N:      7,
		T:      5,
		Quorum: []int{1, 2, 3, 4, 5},
		Breaches: []Breach{
			{Epoch: 2, Party: 2},
			{Epoch: 5, Party: 7},
			{Epoch: 7, Party: 6},
			{Epoch: 10, Party: 4},
			{Epoch: 14, Party: 3},
		},
		Epochs:  15,
		Message: "proactive refresh epoch check",
	}
}

// Validate checks the committee shape, the quorum and the breach
// schedule.
func (c Config) Validate() error {
	if c.T < 1 || c.N < c.T {
		return fmt.Errorf("%w: n=%d t=%d", ErrInvalidConfig, c.N, c.T)
	}
	if c.Epochs < 1 {
		return fmt.Errorf("%w: epochs must be positive", ErrInvalidConfig)
	}
	if len(c.Quorum) < c.T {
		return fmt.Errorf("%w: quorum of %d below threshold %d", ErrInvalidConfig, len(c.Quorum), c.T)
	}
	seen := make(map[int]bool, len(c.Quorum))
	for _, i := range c.Quorum {
		if i < 1 || i > c.N || seen[i] {
			return fmt.Errorf("%w: bad quorum member %d", ErrInvalidConfig, i)
		}
		seen[i] = true
	}
	epochs := make(map[int]bool, len(c.Breaches))
	for _, b := range c.Breaches {
		if b.Party < 1 || b.Party > c.N {
			return fmt.Errorf("%w: breach of unknown party %d", ErrInvalidConfig, b.Party)
		}
		if b.Epoch < 0 || b.Epoch >= c.Epochs {
			return fmt.Errorf("%w: breach at epoch %d outside 0..%d", ErrInvalidConfig, b.Epoch, c.Epochs-1)
		}
		if epochs[b.Epoch] {
			return fmt.Errorf("%w: two breaches at epoch %d", ErrInvalidConfig, b.Epoch)
		}
		epochs[b.Epoch] = true
	}
	return nil
}

// ParseQuorum parses a comma-separated list of party indices.
func ParseQuorum(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: quorum member %q: %w", ErrInvalidConfig, f, err)
		}
		out = append(out, i)
	}
	return out, nil
}

// ParseBreaches parses "epoch:party" pairs separated by commas, for
// example "2:2,5:7".
func ParseBreaches(s string) ([]Breach, error) {
	var out []Breach
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		epoch, party, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("%w: breach %q is not epoch:party", ErrInvalidConfig, f)
		}
		e, err := strconv.Atoi(epoch)
		if err != nil {
			return nil, fmt.Errorf("%w: breach epoch %q: %w", ErrInvalidConfig, epoch, err)
		}
		p, err := strconv.Atoi(party)
		if err != nil {
			return nil, fmt.Errorf("%w: breach party %q: %w", ErrInvalidConfig, party, err)
		}
		out = append(out, Breach{Epoch: e, Party: p})
	}
	return out, nil
}
