package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

//go:generate moq -out mocks/health_monitor.go -pkg mocks -skip-ensure -fmt goimports . HealthMonitor
//go:generate moq -out mocks/suggestion_engine.go -pkg mocks -skip-ensure -fmt goimports . SuggestionEngine
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// HealthMonitor interface for periodic link checks
type HealthMonitor interface {
	SchedulePeriodicChecks(ctx context.Context) error
	GetHealthReport(ctx context.Context) (domain.HealthReport, error)
}

// SuggestionEngine interface for suggestion digests
type SuggestionEngine interface {
	GenerateSuggestions(ctx context.Context) []domain.Suggestion
}

// Notifier is a fire-and-forget user notification sink
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// Scheduler runs the periodic background work: link health sweeps and
// suggestion digests. Only aggregate outcomes reach the notifier.
type Scheduler struct {
	health   HealthMonitor
	engine   SuggestionEngine
	notifier Notifier

	healthInterval time.Duration
	digestInterval time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	HealthInterval time.Duration
	DigestInterval time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(health HealthMonitor, engine SuggestionEngine, notifier Notifier, cfg Config) *Scheduler {
	if cfg.HealthInterval == 0 {
		cfg.HealthInterval = 6 * time.Hour
	}
	if cfg.DigestInterval == 0 {
		cfg.DigestInterval = 24 * time.Hour
	}

	return &Scheduler{
		health:         health,
		engine:         engine,
		notifier:       notifier,
		healthInterval: cfg.HealthInterval,
		digestInterval: cfg.DigestInterval,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.healthWorker(ctx)

	s.wg.Add(1)
	go s.digestWorker(ctx)

	lgr.Printf("[INFO] scheduler started with health interval %v, digest interval %v",
		s.healthInterval, s.digestInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// healthWorker periodically sweeps link health
func (s *Scheduler) healthWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.healthInterval)
	defer ticker.Stop()

	// run immediately on start
	s.runHealthSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runHealthSweep(ctx)
		}
	}
}

// runHealthSweep schedules checks and reports dead links in aggregate
func (s *Scheduler) runHealthSweep(ctx context.Context) {
	if err := s.health.SchedulePeriodicChecks(ctx); err != nil {
		lgr.Printf("[ERROR] failed to schedule link checks: %v", err)
		return
	}

	report, err := s.health.GetHealthReport(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to get health report: %v", err)
		return
	}

	if dead := len(report.DeadItemIDs); dead > 0 {
		s.notifier.Notify(ctx, "Link health", fmt.Sprintf("%d dead links found", dead))
	}
	lgr.Printf("[DEBUG] health sweep done, %d records, %d dead", report.Total, len(report.DeadItemIDs))
}

// digestWorker periodically generates a suggestion digest
func (s *Scheduler) digestWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.digestInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runDigest(ctx)
		}
	}
}

// runDigest notifies the top suggestion when any exist
func (s *Scheduler) runDigest(ctx context.Context) {
	suggestions := s.engine.GenerateSuggestions(ctx)
	if len(suggestions) == 0 {
		return
	}

	top := suggestions[0]
	s.notifier.Notify(ctx, "Suggestions ready",
		fmt.Sprintf("%d suggestions, top: %s", len(suggestions), top.Reasoning))
	lgr.Printf("[DEBUG] digest generated %d suggestions", len(suggestions))
}

// CheckHealthNow triggers an immediate health sweep
func (s *Scheduler) CheckHealthNow(ctx context.Context) error {
	lgr.Printf("[INFO] triggered immediate health sweep")
	if err := s.health.SchedulePeriodicChecks(ctx); err != nil {
		return fmt.Errorf("schedule checks: %w", err)
	}
	return nil
}

// DigestNow triggers an immediate suggestion digest
func (s *Scheduler) DigestNow(ctx context.Context) {
	lgr.Printf("[INFO] triggered immediate digest")
	s.runDigest(ctx)
}
