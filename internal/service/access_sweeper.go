package service

import (
	"context"
	"time"

	"coworka/internal/repository"

	"github.com/sirupsen/logrus"
)

// AccessSweeper finishes deferred access point transitions whose deadline
// has passed: temporary unlocks get relocked and completed restarts return
// to ACTIVE. Reads already normalize points on the fly; the sweeper covers
// points nothing is reading.
type AccessSweeper struct {
	points   repository.AccessPointRepository
	clock    Clock
	logger   *logrus.Logger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewAccessSweeper(points repository.AccessPointRepository, clock Clock, logger *logrus.Logger, interval time.Duration) *AccessSweeper {
	if interval <= 0 {
		interval = time.Second
	}
	return &AccessSweeper{
		points:   points,
		clock:    clock,
		logger:   logger,
		interval: interval,
	}
}

func (s *AccessSweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight sweep to finish.
func (s *AccessSweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *AccessSweeper) sweep(ctx context.Context) {
	now := s.clock.Now()

	relocked, err := s.points.RelockExpired(ctx, now)
	if err != nil {
		s.logger.WithError(err).Error("relock sweep failed")
	} else if relocked > 0 {
		s.logger.WithField("count", relocked).Info("relocked expired unlocks")
	}

	restarted, err := s.points.CompleteRestarts(ctx, now)
	if err != nil {
		s.logger.WithError(err).Error("restart sweep failed")
	} else if restarted > 0 {
		s.logger.WithField("count", restarted).Info("completed access point restarts")
	}
}
