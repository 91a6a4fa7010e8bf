package analyzer

import (
	"context"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

//go:generate moq -out mocks/item_store.go -pkg mocks -skip-ensure -fmt goimports . ItemStore
//go:generate moq -out mocks/activity_log.go -pkg mocks -skip-ensure -fmt goimports . ActivityLog

// ItemStore provides read access to the saved item inventory
type ItemStore interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	GetTagsForItem(ctx context.Context, id string) ([]string, error)
}

// ActivityLog provides read access to the append-only activity log
type ActivityLog interface {
	Query(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error)
}

// session gap: events further apart than this belong to different sessions
const sessionGap = 30 * time.Minute

// Analyzer derives behavioral patterns, staleness signals, and content
// clusters from the activity log and item inventory. All computations are
// pure functions of the snapshots taken at call time, safe to run
// concurrently with reads.
type Analyzer struct {
	items      ItemStore
	activity   ActivityLog
	windowDays int
	nowFn      func() time.Time
}

// Config holds analyzer configuration
type Config struct {
	ActivityWindowDays int
}

// New creates an analyzer over the given stores
func New(items ItemStore, activity ActivityLog, cfg Config) *Analyzer {
	if cfg.ActivityWindowDays == 0 {
		cfg.ActivityWindowDays = 30
	}
	return &Analyzer{
		items:      items,
		activity:   activity,
		windowDays: cfg.ActivityWindowDays,
		nowFn:      time.Now,
	}
}

// AnalyzePatterns computes the behavioral profile from the trailing activity
// window. Any store failure degrades to the documented default pattern, the
// analyzer never blocks downstream consumers on errors.
func (a *Analyzer) AnalyzePatterns(ctx context.Context) domain.ActivityPattern {
	now := a.nowFn()
	since := now.AddDate(0, 0, -a.windowDays)

	events, err := a.activity.Query(ctx, &since, nil, 0)
	if err != nil {
		lgr.Printf("[WARN] activity log unavailable, using default pattern: %v", err)
		return domain.DefaultPattern()
	}
	if len(events) == 0 {
		return domain.DefaultPattern()
	}

	items, err := a.items.ListItems(ctx)
	if err != nil {
		lgr.Printf("[WARN] item store unavailable, using default pattern: %v", err)
		return domain.DefaultPattern()
	}
	itemsByID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		itemsByID[it.ID] = it
	}

	pattern := domain.ActivityPattern{
		PreferredHours:          preferredHours(events),
		AvgSessionMinutes:       avgSessionMinutes(events),
		DomainAffinity:          a.domainAffinity(events, itemsByID),
		StalenessThresholdDays:  domain.DefaultStalenessThresholds(),
		ReadingVelocity:         readingVelocity(events, now),
		OrganizationCadenceDays: organizationCadence(events),
		TagAffinity:             a.tagAffinity(ctx, events),
		CollectionAffinity:      a.collectionAffinity(ctx, events),
	}
	return pattern
}

// preferredHours builds an hour-of-day histogram of read events and keeps the
// hours whose count exceeds the mean
func preferredHours(events []domain.ActivityEvent) []int {
	var counts [24]int
	total := 0
	for _, e := range events {
		if e.Type != domain.EventRead {
			continue
		}
		counts[e.Timestamp.Hour()]++
		total++
	}
	if total == 0 {
		return domain.DefaultPattern().PreferredHours
	}

	mean := float64(total) / 24
	var hours []int
	for h, c := range counts {
		if float64(c) > mean {
			hours = append(hours, h)
		}
	}
	return hours
}

// avgSessionMinutes partitions chronologically sorted events into sessions
// using the inactivity gap and averages the span of sessions with at least
// two events, 15 minutes when no such session exists
func avgSessionMinutes(events []domain.ActivityEvent) float64 {
	if len(events) == 0 {
		return 15
	}

	sorted := make([]domain.ActivityEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })

	var spans []float64
	start, prev := sorted[0].Timestamp, sorted[0].Timestamp
	count := 1
	flush := func() {
		if count >= 2 {
			spans = append(spans, prev.Sub(start).Minutes())
		}
	}
	for _, e := range sorted[1:] {
		if e.Timestamp.Sub(prev) > sessionGap {
			flush()
			start = e.Timestamp
			count = 0
		}
		prev = e.Timestamp
		count++
	}
	flush()

	if len(spans) == 0 {
		return 15
	}
	sum := 0.0
	for _, s := range spans {
		sum += s
	}
	return sum / float64(len(spans))
}

// domainAffinity counts item accesses per domain, normalized to [0,1] by the
// max count. Empty map means no preference signal.
func (a *Analyzer) domainAffinity(events []domain.ActivityEvent, itemsByID map[string]domain.Item) map[string]float64 {
	counts := map[string]int{}
	for _, e := range events {
		if e.Type != domain.EventRead && e.Type != domain.EventHighlight {
			continue
		}
		item, ok := itemsByID[e.ItemID]
		if !ok {
			continue
		}
		if d := item.Domain(); d != "" {
			counts[d]++
		}
	}
	return normalize(counts)
}

// tagAffinity counts accesses per tag of the accessed items
func (a *Analyzer) tagAffinity(ctx context.Context, events []domain.ActivityEvent) map[string]float64 {
	counts := map[string]int{}
	seen := map[string][]string{} // itemID -> tags, avoids repeated store hits
	for _, e := range events {
		if e.Type != domain.EventRead && e.Type != domain.EventHighlight {
			continue
		}
		if e.ItemID == "" {
			continue
		}
		tags, ok := seen[e.ItemID]
		if !ok {
			var err error
			tags, err = a.items.GetTagsForItem(ctx, e.ItemID)
			if err != nil {
				lgr.Printf("[DEBUG] tags unavailable for item %s: %v", e.ItemID, err)
				tags = nil
			}
			seen[e.ItemID] = tags
		}
		for _, t := range tags {
			counts[t]++
		}
	}
	return normalize(counts)
}

// collectionAffinity counts organize events per collection name
func (a *Analyzer) collectionAffinity(ctx context.Context, events []domain.ActivityEvent) map[string]float64 {
	collections, err := a.items.ListCollections(ctx)
	if err != nil {
		lgr.Printf("[DEBUG] collections unavailable: %v", err)
		return map[string]float64{}
	}
	names := make(map[string]string, len(collections))
	for _, c := range collections {
		names[c.ID] = c.Name
	}

	counts := map[string]int{}
	for _, e := range events {
		if e.Type != domain.EventOrganize || e.CollectionID == "" {
			continue
		}
		if name, ok := names[e.CollectionID]; ok {
			counts[name]++
		}
	}
	return normalize(counts)
}

// readingVelocity is read events per day over the observed span, capped at
// the analysis window
func readingVelocity(events []domain.ActivityEvent, now time.Time) float64 {
	reads := 0
	var earliest time.Time
	for _, e := range events {
		if e.Type != domain.EventRead {
			continue
		}
		reads++
		if earliest.IsZero() || e.Timestamp.Before(earliest) {
			earliest = e.Timestamp
		}
	}
	if reads == 0 {
		return domain.DefaultPattern().ReadingVelocity
	}

	days := now.Sub(earliest).Hours() / 24
	if days < 1 {
		days = 1
	}
	return float64(reads) / days
}

// organizationCadence is the mean gap in days between organize events
func organizationCadence(events []domain.ActivityEvent) float64 {
	var organizeTimes []time.Time
	for _, e := range events {
		if e.Type == domain.EventOrganize {
			organizeTimes = append(organizeTimes, e.Timestamp)
		}
	}
	if len(organizeTimes) < 2 {
		return domain.DefaultPattern().OrganizationCadenceDays
	}

	sort.Slice(organizeTimes, func(i, j int) bool { return organizeTimes[i].Before(organizeTimes[j]) })
	totalDays := 0.0
	for i := 1; i < len(organizeTimes); i++ {
		totalDays += organizeTimes[i].Sub(organizeTimes[i-1]).Hours() / 24
	}
	return totalDays / float64(len(organizeTimes)-1)
}

// normalize divides counts by the max count, yielding scores in [0,1]
func normalize(counts map[string]int) map[string]float64 {
	result := make(map[string]float64, len(counts))
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return result
	}
	for k, c := range counts {
		result[k] = float64(c) / float64(maxCount)
	}
	return result
}
