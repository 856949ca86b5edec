package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type controllerEvictor interface {
	EvictIdle(ctx context.Context, ttl time.Duration) []string
}

type Scheduler struct {
	checkinService controllerEvictor
	interval       time.Duration
	idleTTL        time.Duration
	logger         logger.Logger
}

func New(
	checkinService controllerEvictor,
	interval time.Duration,
	idleTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		checkinService: checkinService,
		interval:       interval,
		idleTTL:        idleTTL,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("idle_ttl", s.idleTTL),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	evicted := s.checkinService.EvictIdle(ctx, s.idleTTL)

	for _, classID := range evicted {
		s.logger.Debug("attendance controller evicted",
			logger.String("class_id", classID),
		)
	}
}
