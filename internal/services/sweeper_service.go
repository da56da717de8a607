package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"vivuconnect/internal/config"
)

const sweepTimeout = time.Minute

// SweeperService periodically purges long-expired check-ins.
type SweeperService struct {
	scheduler *gocron.Scheduler
	checkIns  CheckInServiceInterface
	cfg       config.SweepConfig
	logger    *zap.Logger
}

func NewSweeperService(checkIns CheckInServiceInterface, cfg config.SweepConfig, logger *zap.Logger) *SweeperService {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()
	return &SweeperService{
		scheduler: scheduler,
		checkIns:  checkIns,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *SweeperService) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("check-in sweeper disabled")
		return nil
	}
	if _, err := s.scheduler.Every(s.cfg.Interval).Do(s.SweepOnce); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("check-in sweeper started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Duration("retention", s.cfg.Retention))
	return nil
}

func (s *SweeperService) Stop() {
	if s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}

func (s *SweeperService) SweepOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.checkIns.PurgeExpired(ctx, s.cfg.Retention)
	if err != nil {
		s.logger.Error("check-in sweep failed", zap.Error(err))
		return
	}
	s.logger.Info("check-in sweep finished", zap.Int64("deleted", n))
}
