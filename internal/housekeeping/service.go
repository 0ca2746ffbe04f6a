// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"context"
	"fmt"
	"sync"
	"time"

	"payinfo/internal/logging"
	"payinfo/internal/models"
	"payinfo/internal/services"
)

const (
	// DefaultCheckInterval is used when no interval is configured.
	DefaultCheckInterval = 1 * time.Hour
	// MinCheckInterval is the minimum time between checks to prevent busy-looping.
	MinCheckInterval = 1 * time.Minute
)

var _ services.HousekeepingService = (*Service)(nil)

// Service provides the background worker that purges expired payment infos.
type Service struct {
	Store    Store
	Interval time.Duration
	Now      func() time.Time

	mu       sync.Mutex // serializes runs
	timer    *time.Timer
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewService creates a new housekeeping service instance.
func NewService(store Store, interval time.Duration) *Service {
	return &Service{
		Store:    store,
		Interval: interval,
		Now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start kicks off the background housekeeping service.
func (s *Service) Start() {
	logging.Log.Info("Starting background housekeeping service.")
	s.timer = time.NewTimer(0) // Fire immediately on start

	go func() {
		for {
			select {
			case <-s.timer.C:
				if _, err := s.Trigger(context.Background()); err != nil {
					logging.Log.Errorf("Housekeeping run failed: %v", err)
				}
				nextRun := s.nextInterval()
				s.timer.Reset(nextRun)
				logging.Log.Infof("Next housekeeping check scheduled in %v.", nextRun)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background housekeeping service. It is safe to call more than once.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		logging.Log.Info("Stopping background housekeeping service.")
		close(s.stopCh)
	})
}

// Trigger purges expired records now and reports how many were removed.
func (s *Service) Trigger(ctx context.Context) (*models.HousekeepingReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	logging.Log.Debug("Housekeeping service: purging expired payment infos...")
	deleted, err := s.Store.DeleteExpiredPaymentInfos(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to purge expired payment infos: %w", err)
	}

	report := &models.HousekeepingReport{
		Deleted: deleted,
		RanAt:   now.UTC(),
		Message: fmt.Sprintf("Purged %d expired payment info(s).", deleted),
	}
	if deleted > 0 {
		logging.Log.Infof("Housekeeping run finished: %s", report.Message)
	}
	return report, nil
}

// nextInterval clamps the configured interval to sane bounds.
func (s *Service) nextInterval() time.Duration {
	switch {
	case s.Interval <= 0:
		return DefaultCheckInterval
	case s.Interval < MinCheckInterval:
		return MinCheckInterval
	default:
		return s.Interval
	}
}
