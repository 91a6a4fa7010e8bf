package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/maveryjr/nestmind/pkg/domain"
)

//go:generate moq -out mocks/item_store.go -pkg mocks -skip-ensure -fmt goimports . ItemStore
//go:generate moq -out mocks/record_store.go -pkg mocks -skip-ensure -fmt goimports . RecordStore
//go:generate moq -out mocks/prober.go -pkg mocks -skip-ensure -fmt goimports . Prober

// ItemStore provides item reads and the annotation write recovery uses
type ItemStore interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) error
}

// RecordStore persists the health record map with whole-map read/replace
// semantics
type RecordStore interface {
	Load(ctx context.Context) (map[string]domain.LinkHealthRecord, error)
	Save(ctx context.Context, records map[string]domain.LinkHealthRecord) error
}

// Prober performs one link existence check
type Prober interface {
	Check(ctx context.Context, itemID, url string) domain.LinkCheckResult
}

// Config holds link health monitor configuration
type Config struct {
	BatchSize       int
	BatchPause      time.Duration
	Stagger         time.Duration
	RecheckInterval time.Duration
	DeadRecheck     time.Duration
	RecoveryGrace   time.Duration
}

// Monitor drives rate-limited link health checks over the item inventory and
// recovers dead links through the archive provider chain. The check queue and
// the in-flight flag are the only mutable shared state, each item's health
// record is independently addressable so out-of-order batch completions are
// harmless.
type Monitor struct {
	items     ItemStore
	records   RecordStore
	prober    Prober
	providers []RecoveryProvider

	batchSize       int
	batchPause      time.Duration
	recheckInterval time.Duration
	deadRecheck     time.Duration
	recoveryGrace   time.Duration
	limiter         *rate.Limiter

	mu           sync.Mutex // guards queue and isProcessing
	queue        []queueEntry
	queued       map[string]bool
	isProcessing bool

	recMu sync.Mutex // serializes record map read-modify-write cycles
	wg    sync.WaitGroup
	nowFn func() time.Time
}

type queueEntry struct {
	itemID string
	url    string
}

// NewMonitor creates a link health monitor
func NewMonitor(items ItemStore, records RecordStore, prober Prober, providers []RecoveryProvider, cfg Config) *Monitor {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 5
	}
	if cfg.BatchPause == 0 {
		cfg.BatchPause = 2 * time.Second
	}
	if cfg.Stagger == 0 {
		cfg.Stagger = 500 * time.Millisecond
	}
	if cfg.RecheckInterval == 0 {
		cfg.RecheckInterval = 24 * time.Hour
	}
	if cfg.DeadRecheck == 0 {
		cfg.DeadRecheck = 7 * 24 * time.Hour
	}
	if cfg.RecoveryGrace == 0 {
		cfg.RecoveryGrace = 5 * time.Second
	}

	return &Monitor{
		items:           items,
		records:         records,
		prober:          prober,
		providers:       providers,
		batchSize:       cfg.BatchSize,
		batchPause:      cfg.BatchPause,
		recheckInterval: cfg.RecheckInterval,
		deadRecheck:     cfg.DeadRecheck,
		recoveryGrace:   cfg.RecoveryGrace,
		limiter:         rate.NewLimiter(rate.Every(cfg.Stagger), 1),
		queued:          map[string]bool{},
		nowFn:           time.Now,
	}
}

// SchedulePeriodicChecks selects items needing a check (never checked, last
// checked over the recheck interval ago, or dead past the dead recheck
// window), enqueues them deduplicated, and starts a queue drain unless one is
// already running. A second trigger while draining only grows the queue.
func (m *Monitor) SchedulePeriodicChecks(ctx context.Context) error {
	items, err := m.items.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	records, err := m.records.Load(ctx)
	if err != nil {
		return fmt.Errorf("load health records: %w", err)
	}

	now := m.nowFn()
	added := 0

	m.mu.Lock()
	for _, item := range items {
		if item.URL == "" || m.queued[item.ID] {
			continue
		}
		if !m.needsCheck(records, item.ID, now) {
			continue
		}
		m.queue = append(m.queue, queueEntry{itemID: item.ID, url: item.URL})
		m.queued[item.ID] = true
		added++
	}
	start := !m.isProcessing && len(m.queue) > 0
	if start {
		m.isProcessing = true
	}
	m.mu.Unlock()

	if added > 0 {
		lgr.Printf("[INFO] scheduled %d link checks", added)
	}
	if start {
		m.wg.Add(1)
		go m.drainQueue(ctx)
	}
	return nil
}

// needsCheck applies the recheck policy for one item
func (m *Monitor) needsCheck(records map[string]domain.LinkHealthRecord, itemID string, now time.Time) bool {
	rec, ok := records[itemID]
	if !ok {
		return true
	}
	if rec.Status == domain.LinkDead {
		return now.Sub(rec.LastChecked) > m.deadRecheck
	}
	return now.Sub(rec.LastChecked) > m.recheckInterval
}

// shouldRecover decides whether a dead probe result warrants the archive
// chain: any fresh dead detection, or a known dead link whose dead recheck
// window elapsed since the last check. A manual check inside the window
// updates the record without re-running recovery.
func (m *Monitor) shouldRecover(prev domain.LinkHealthRecord, existed bool, now time.Time) bool {
	if !existed || prev.Status != domain.LinkDead {
		return true
	}
	return now.Sub(prev.LastChecked) > m.deadRecheck
}

// Stop waits for the running drain and any in-flight recoveries to finish
func (m *Monitor) Stop() {
	m.wg.Wait()
}

// drainQueue pops batches off the queue, probes each batch concurrently with
// staggered starts, folds results into the record map, and pauses between
// batches. Only one drain runs at a time.
func (m *Monitor) drainQueue(ctx context.Context) {
	defer m.wg.Done()
	defer func() {
		m.mu.Lock()
		m.isProcessing = false
		m.mu.Unlock()
	}()

	for {
		m.mu.Lock()
		n := len(m.queue)
		if n > m.batchSize {
			n = m.batchSize
		}
		batch := make([]queueEntry, n)
		copy(batch, m.queue[:n])
		m.queue = m.queue[n:]
		for _, e := range batch {
			delete(m.queued, e.itemID)
		}
		remaining := len(m.queue)
		m.mu.Unlock()

		if len(batch) == 0 {
			return
		}

		prev := m.markChecking(ctx, batch)
		results := m.probeBatch(ctx, batch)
		m.foldResults(ctx, results, prev)

		if remaining == 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.batchPause):
		}
	}
}

// markChecking flags the batch's records as in-flight and returns the
// pre-overwrite records so foldResults can judge dead results against the
// real prior status instead of the transient checking one. Nil on load
// failure, the persisted records then still hold the prior status.
func (m *Monitor) markChecking(ctx context.Context, batch []queueEntry) map[string]domain.LinkHealthRecord {
	m.recMu.Lock()
	defer m.recMu.Unlock()

	records, err := m.records.Load(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to load health records: %v", err)
		return nil
	}
	prev := make(map[string]domain.LinkHealthRecord, len(batch))
	for _, e := range batch {
		rec, ok := records[e.itemID]
		if ok {
			prev[e.itemID] = rec
		}
		rec.ItemID = e.itemID
		rec.URL = e.url
		rec.Status = domain.LinkChecking
		records[e.itemID] = rec
	}
	if err := m.records.Save(ctx, records); err != nil {
		lgr.Printf("[WARN] failed to save health records: %v", err)
	}
	return prev
}

// probeBatch checks a batch concurrently, probe starts staggered by the rate
// limiter so no host sees a burst
func (m *Monitor) probeBatch(ctx context.Context, batch []queueEntry) []domain.LinkCheckResult {
	results := make([]domain.LinkCheckResult, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range batch {
		if err := m.limiter.Wait(ctx); err != nil {
			return results[:i]
		}
		g.Go(func() error {
			results[i] = m.prober.Check(gctx, e.itemID, e.url)
			return nil
		})
	}
	_ = g.Wait() // probes never return errors, they degrade to unreachable
	return results
}

// foldResults merges probe outcomes into the persisted record map and kicks
// off recovery for dead results. preChecked carries the record states from
// before markChecking flagged the batch, nil means the loaded records are the
// prior states (the synchronous path writes no checking flag).
func (m *Monitor) foldResults(ctx context.Context, results []domain.LinkCheckResult, preChecked map[string]domain.LinkHealthRecord) {
	m.recMu.Lock()
	records, err := m.records.Load(ctx)
	if err != nil {
		m.recMu.Unlock()
		lgr.Printf("[WARN] failed to load health records: %v", err)
		return
	}

	now := m.nowFn()
	var toRecover []queueEntry
	for _, res := range results {
		if res.ItemID == "" {
			continue
		}
		rec := records[res.ItemID]
		prev, existed := rec, false
		if preChecked != nil {
			prev, existed = preChecked[res.ItemID]
		} else {
			_, existed = records[res.ItemID]
		}
		rec.ItemID = res.ItemID
		rec.URL = res.URL
		rec.Status = res.Status
		rec.LastChecked = now
		rec.StatusCode = res.StatusCode
		rec.RedirectURL = res.RedirectURL
		rec.Error = res.Error
		rec.ResponseTimeMs = res.ResponseTimeMs

		if res.Status == domain.LinkDead && m.shouldRecover(prev, existed, now) {
			// reset recovery state and try the chain
			rec.RecoveryAttempted = false
			rec.RecoverySuccess = false
			rec.AlternativeURLs = nil
			toRecover = append(toRecover, queueEntry{itemID: res.ItemID, url: res.URL})
		}
		records[res.ItemID] = rec
	}

	if err := m.records.Save(ctx, records); err != nil {
		lgr.Printf("[WARN] failed to save health records: %v", err)
	}
	m.recMu.Unlock()

	for _, e := range toRecover {
		m.wg.Add(1)
		go m.attemptRecovery(ctx, e.itemID, e.url)
	}
}

// attemptRecovery waits out the grace delay (avoids racing the initial record
// write), runs the provider chain, and annotates the item on success. Chain
// exhaustion is a normal outcome, not an error.
func (m *Monitor) attemptRecovery(ctx context.Context, itemID, rawURL string) {
	defer m.wg.Done()

	select {
	case <-ctx.Done():
		return
	case <-time.After(m.recoveryGrace):
	}

	result := RunRecoveryChain(ctx, m.providers, rawURL)

	m.recMu.Lock()
	records, err := m.records.Load(ctx)
	if err == nil {
		rec := records[itemID]
		rec.ItemID = itemID
		rec.URL = rawURL
		rec.RecoveryAttempted = true
		rec.RecoverySuccess = result.Success
		if result.Success {
			rec.AlternativeURLs = []string{result.RecoveredURL}
		}
		records[itemID] = rec
		if err := m.records.Save(ctx, records); err != nil {
			lgr.Printf("[WARN] failed to save recovery outcome for %s: %v", itemID, err)
		}
	} else {
		lgr.Printf("[WARN] failed to load health records for recovery of %s: %v", itemID, err)
	}
	m.recMu.Unlock()

	if !result.Success {
		lgr.Printf("[INFO] no archived copy found for %s", rawURL)
		return
	}

	annotation := fmt.Sprintf("Archived copy (%s): %s", result.Method, result.RecoveredURL)
	if err := m.items.UpdateItem(ctx, itemID, domain.ItemUpdate{AppendAnnotation: annotation}); err != nil {
		lgr.Printf("[WARN] failed to annotate item %s with recovered URL: %v", itemID, err)
	}
	lgr.Printf("[INFO] recovered %s via %s", rawURL, result.Method)
}

// CheckLinksHealth performs synchronous on-demand checks for the given item
// IDs, bypassing the queue. Unknown IDs are skipped.
func (m *Monitor) CheckLinksHealth(ctx context.Context, ids []string) ([]domain.LinkCheckResult, error) {
	items, err := m.items.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	urls := make(map[string]string, len(items))
	for _, item := range items {
		urls[item.ID] = item.URL
	}

	var results []domain.LinkCheckResult
	for _, id := range ids {
		u, ok := urls[id]
		if !ok || u == "" {
			continue
		}
		results = append(results, m.prober.Check(ctx, id, u))
	}

	m.foldResults(ctx, results, nil)
	return results, nil
}

// GetHealthReport aggregates all persisted health records into counts by
// status plus the list of dead item IDs
func (m *Monitor) GetHealthReport(ctx context.Context) (domain.HealthReport, error) {
	records, err := m.records.Load(ctx)
	if err != nil {
		return domain.HealthReport{}, fmt.Errorf("load health records: %w", err)
	}

	report := domain.HealthReport{
		Total:       len(records),
		ByStatus:    map[domain.LinkStatus]int{},
		GeneratedAt: m.nowFn(),
	}
	for id, rec := range records {
		report.ByStatus[rec.Status]++
		if rec.Status == domain.LinkDead {
			report.DeadItemIDs = append(report.DeadItemIDs, id)
		}
	}
	return report, nil
}
