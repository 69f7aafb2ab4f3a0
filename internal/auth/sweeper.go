package auth

import (
	"context"
	"time"
)

// Sweeper periodically purges expired records through a Provider.
type Sweeper struct {
	provider *Provider
	interval time.Duration
}

func NewSweeper(provider *Provider, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{provider: provider, interval: interval}
}

// Run sweeps once per interval until ctx is done. It always returns nil so
// it can run in an errgroup next to the HTTP server.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.WithField("interval", s.interval.String()).Info("OAuth record sweeper started")
	for {
		select {
		case <-ctx.Done():
			log.Info("OAuth record sweeper stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.provider.Sweep(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to sweep expired OAuth records")
		return
	}
	if removed > 0 {
		log.WithField("removed", removed).Debug("Expired OAuth records swept")
	}
}
