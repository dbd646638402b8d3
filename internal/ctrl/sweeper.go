package ctrl

import (
	"context"
	"sync/atomic"
	"time"

	metrics "github.com/JMURv/hr-auth/internal/observability/metrics/prometheus"
	"go.uber.org/zap"
)

// Sweeper periodically deletes session rows that have been dead for
// longer than the grace period. One instance runs per process; the
// running flag makes overlapping ticks a no-op rather than a second
// concurrent sweep.
type Sweeper struct {
	repo     AppRepo
	clock    Clock
	interval time.Duration
	grace    time.Duration
	running  atomic.Bool
}

func NewSweeper(repo AppRepo, clock Clock, interval, grace time.Duration) *Sweeper {
	return &Sweeper{
		repo:     repo,
		clock:    clock,
		interval: interval,
		grace:    grace,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	zap.L().Info("Session sweeper has been started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Session sweeper has been stopped")
			return
		case <-t.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	const op = "auth.sweepOnce.ctrl"

	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	deleted, err := s.repo.Sweep(ctx, s.clock.Now().Add(-s.grace))
	if err != nil {
		zap.L().Error("failed to sweep sessions", zap.String("op", op), zap.Error(err))
		return
	}

	if deleted > 0 {
		zap.L().Info("swept dead sessions", zap.String("op", op), zap.Int64("deleted", deleted))
		metrics.AddSwept(deleted)
	}
}
