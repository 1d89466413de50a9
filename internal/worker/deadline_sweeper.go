package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/itlabs/orderflow/internal/usecase"
)

// OrderFlowFacade exposes the subset of application functionality required by the sweeper.
type OrderFlowFacade interface {
	CheckDeadlines(ctx context.Context) (usecase.DeadlineReport, error)
}

// DeadlineSweeper periodically runs the deadline check. The sweep itself is
// also exposed over HTTP for deployments that prefer an external scheduler;
// with a non-positive interval the sweeper stays idle and the endpoint is the
// only trigger.
type DeadlineSweeper struct {
	facade   OrderFlowFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDeadlineSweeper constructs the sweeper.
func NewDeadlineSweeper(facade OrderFlowFacade, interval time.Duration, logger *slog.Logger) *DeadlineSweeper {
	return &DeadlineSweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping. A non-positive interval disables it.
func (s *DeadlineSweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the current sweep to finish.
func (s *DeadlineSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *DeadlineSweeper) run(ctx context.Context) {
	defer s.wg.Done()
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
}

func (s *DeadlineSweeper) sweep(ctx context.Context) {
	report, err := s.facade.CheckDeadlines(ctx)
	if err != nil {
		s.logger.Error("deadline sweep failed", slog.String("error", err.Error()))
		return
	}
	if report.NotificationsCreated > 0 {
		s.logger.Info("deadline sweep finished",
			slog.Int("milestones", report.Milestones),
			slog.Int("tasks", report.Tasks),
			slog.Int("notifications", report.NotificationsCreated),
		)
	}
}
