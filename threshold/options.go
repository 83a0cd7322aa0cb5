package threshold

import (
	"crypto/rand"
	"io"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

type config struct {
	rand        io.Reader
	log         *zap.Logger
	parallelism int
}

func defaultConfig() config {
	return config{
		rand:        rand.Reader,
		log:         zap.NewNop(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// Option configures a [Committee].
type Option func(*config)

// WithRand sets the randomness source for genesis and refresh. Readers
// that are not safe for concurrent use are serialized internally.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		if r != nil {
			c.rand = &lockedReader{r: r}
		}
	}
}

// WithLogger sets the logger. Key material is never logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithParallelism bounds how many parties build or verify refresh
// contributions at once.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
