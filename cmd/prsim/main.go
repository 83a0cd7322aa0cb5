// Command prsim compares a static threshold BLS committee with one that
// refreshes its shares every epoch under the same breach schedule, and
// writes the per-epoch reports as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/f3rmion/pbls/simulation"
	"go.uber.org/zap"
)

var (
	n        = flag.Int("n", 0, "number of parties (default from built-in scenario)")
	t        = flag.Int("t", 0, "signing threshold (default from built-in scenario)")
	epochs   = flag.Int("epochs", 0, "number of epochs to simulate")
	quorum   = flag.String("quorum", "", "comma-separated party indices used for signing, e.g. 1,2,3")
	breaches = flag.String("breaches", "", "comma-separated epoch:party breaches, e.g. 2:2,5:7")
	message  = flag.String("message", "", "message the quorum signs every epoch")
	out      = flag.String("out", "sim.json", "report output file, - for stdout")
	verbose  = flag.Bool("verbose", false, "development logging")
)

func main() {
	flag.Parse()

	var log *zap.Logger
	var err error
	if *verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "prsim: logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config()
	if err != nil {
		log.Fatal("invalid flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("simulation starting",
		zap.Int("parties", cfg.N),
		zap.Int("threshold", cfg.T),
		zap.Int("epochs", cfg.Epochs),
		zap.String("quorum", joinInts(cfg.Quorum)),
	)

	res, err := simulation.Run(ctx, cfg, simulation.WithLogger(log))
	if err != nil {
		log.Fatal("simulation failed", zap.Error(err))
	}

	if err := write(res); err != nil {
		log.Fatal("write report", zap.String("out", *out), zap.Error(err))
	}

	last := res[len(res)-1]
	log.Info("simulation finished",
		zap.String("out", *out),
		zap.Bool("static_breached", last.Static.Breached),
		zap.Bool("proactive_breached", last.Proactive.Breached),
	)
}

// config starts from the built-in scenario and overrides whatever flags
// were set.
func config() (simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if *n > 0 {
		cfg.N = *n
	}
	if *t > 0 {
		cfg.T = *t
	}
	if *epochs > 0 {
		cfg.Epochs = *epochs
	}
	if *message != "" {
		cfg.Message = *message
	}
	if *quorum != "" {
		q, err := simulation.ParseQuorum(*quorum)
		if err != nil {
			return cfg, err
		}
		cfg.Quorum = q
	}
	if *breaches != "" {
		b, err := simulation.ParseBreaches(*breaches)
		if err != nil {
			return cfg, err
		}
		cfg.Breaches = b
	}
	return cfg, cfg.Validate()
}

func write(res []simulation.Epoch) error {
	if *out == "-" {
		return simulation.WriteReport(os.Stdout, res)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := simulation.WriteReport(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func joinInts(xs []int) string {
	s := make([]string, len(xs))
	for i, x := range xs {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}
