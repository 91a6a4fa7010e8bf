package suggest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/maveryjr/nestmind/pkg/domain"
)

//go:generate moq -out mocks/pattern_analyzer.go -pkg mocks -skip-ensure -fmt goimports . PatternAnalyzer
//go:generate moq -out mocks/item_store.go -pkg mocks -skip-ensure -fmt goimports . ItemStore
//go:generate moq -out mocks/activity_log.go -pkg mocks -skip-ensure -fmt goimports . ActivityLog

// PatternAnalyzer supplies the behavioral signals suggestions are built from
type PatternAnalyzer interface {
	AnalyzePatterns(ctx context.Context) domain.ActivityPattern
	IdentifyStaleContent(ctx context.Context) []domain.StaleContentItem
	DetectClusters(ctx context.Context) []domain.ContentCluster
	RecommendNext(ctx context.Context, n int) []domain.Item
}

// ItemStore provides the item reads and writes batch execution needs
type ItemStore interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	CreateCollection(ctx context.Context, name string) (*domain.Collection, error)
	UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) error
}

// ActivityLog records mutations performed by batch execution and supplies the
// recency signal for productivity suggestions
type ActivityLog interface {
	Append(ctx context.Context, event domain.ActivityEvent) error
	Query(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error)
}

// suggestion trigger thresholds
const (
	inboxClearSize       = 10  // clear_inbox past this many inbox items
	clusterConfidenceMin = 0.7 // create_collection / organize plans need this
	archiveStaleness     = 0.8 // archive suggestion and batch planning cutoff
	focusSessionMinutes  = 20.0
	focusSessionVelocity = 1.0
	neverAccessedMin     = 3 // review_highlights via neglected items
	highlightReviewMin   = 5 // review_highlights via highlight volume
	duplicatesMin        = 2
	organizeClusterMin   = 3 // items a cluster needs to become a batch action
)

// Engine turns analyzer signals into ranked actionable suggestions and plans
// and executes safe batch operations against the item store
type Engine struct {
	analyzer       PatternAnalyzer
	items          ItemStore
	activity       ActivityLog
	maxSuggestions int
	nowFn          func() time.Time
}

// Config holds suggestion engine configuration
type Config struct {
	MaxSuggestions int
}

// New creates a suggestion engine
func New(analyzer PatternAnalyzer, items ItemStore, activity ActivityLog, cfg Config) *Engine {
	if cfg.MaxSuggestions == 0 {
		cfg.MaxSuggestions = 8
	}
	return &Engine{
		analyzer:       analyzer,
		items:          items,
		activity:       activity,
		maxSuggestions: cfg.MaxSuggestions,
		nowFn:          time.Now,
	}
}

// GenerateSuggestions collects suggestions from every source, ranks them by
// priority weight scaled by confidence, and returns at most the configured
// maximum
func (e *Engine) GenerateSuggestions(ctx context.Context) []domain.Suggestion {
	pattern := e.analyzer.AnalyzePatterns(ctx)
	stale := e.analyzer.IdentifyStaleContent(ctx)
	clusters := e.analyzer.DetectClusters(ctx)

	var suggestions []domain.Suggestion
	suggestions = append(suggestions, e.readingSuggestions(ctx, pattern)...)
	suggestions = append(suggestions, e.organizationSuggestions(ctx, clusters)...)
	suggestions = append(suggestions, e.maintenanceSuggestions(stale)...)
	suggestions = append(suggestions, e.productivitySuggestions(ctx, pattern)...)
	suggestions = append(suggestions, e.learningSuggestions(ctx)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score() > suggestions[j].Score()
	})

	if len(suggestions) > e.maxSuggestions {
		suggestions = suggestions[:e.maxSuggestions]
	}
	return suggestions
}

// TimeAwareSuggestions filters the generated set by the hour of day: reading
// suggestions during the user's preferred reading hours, organization
// suggestions otherwise
func (e *Engine) TimeAwareSuggestions(ctx context.Context) []domain.Suggestion {
	pattern := e.analyzer.AnalyzePatterns(ctx)
	hour := e.nowFn().Hour()

	reading := false
	for _, h := range pattern.PreferredHours {
		if h == hour {
			reading = true
			break
		}
	}

	var filtered []domain.Suggestion
	for _, s := range e.GenerateSuggestions(ctx) {
		isReading := s.Type == domain.SuggestReadNext || s.Type == domain.SuggestFocusSession
		isOrganization := s.Category == domain.CategoryOrganization
		if (reading && isReading) || (!reading && isOrganization) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// readingSuggestions proposes the top recommendation and, for engaged
// readers, a focus session
func (e *Engine) readingSuggestions(ctx context.Context, pattern domain.ActivityPattern) []domain.Suggestion {
	var suggestions []domain.Suggestion

	if recommended := e.analyzer.RecommendNext(ctx, 1); len(recommended) > 0 {
		item := recommended[0]
		suggestions = append(suggestions, domain.Suggestion{
			ID:            uuid.NewString(),
			Type:          domain.SuggestReadNext,
			Priority:      domain.PriorityMedium,
			Confidence:    0.7,
			Category:      domain.CategoryProductivity,
			ActionData:    map[string]string{"itemId": item.ID, "url": item.URL},
			Reasoning:     fmt.Sprintf("%q matches your reading habits", item.Title),
			Dismissible:   true,
			EstimatedTime: "5-10 min",
		})
	}

	if pattern.AvgSessionMinutes > focusSessionMinutes && pattern.ReadingVelocity > focusSessionVelocity {
		suggestions = append(suggestions, domain.Suggestion{
			ID:         uuid.NewString(),
			Type:       domain.SuggestFocusSession,
			Priority:   domain.PriorityMedium,
			Confidence: 0.6,
			Category:   domain.CategoryProductivity,
			ActionData: map[string]string{"minutes": fmt.Sprintf("%.0f", pattern.AvgSessionMinutes)},
			Reasoning: fmt.Sprintf("you average %.0f-minute sessions and read %.1f items a day, a focus block would clear your queue faster",
				pattern.AvgSessionMinutes, pattern.ReadingVelocity),
			Dismissible:   true,
			EstimatedTime: fmt.Sprintf("%.0f min", pattern.AvgSessionMinutes),
		})
	}

	return suggestions
}

// organizationSuggestions proposes clearing an overgrown inbox and creating
// collections for confident clusters
func (e *Engine) organizationSuggestions(ctx context.Context, clusters []domain.ContentCluster) []domain.Suggestion {
	var suggestions []domain.Suggestion

	inboxCount := e.inboxCount(ctx)
	if inboxCount > inboxClearSize {
		suggestions = append(suggestions, domain.Suggestion{
			ID:            uuid.NewString(),
			Type:          domain.SuggestClearInbox,
			Priority:      domain.PriorityHigh,
			Confidence:    0.9,
			Category:      domain.CategoryOrganization,
			ActionData:    map[string]string{"count": fmt.Sprintf("%d", inboxCount)},
			Reasoning:     fmt.Sprintf("%d items are sitting in your inbox", inboxCount),
			Dismissible:   false,
			EstimatedTime: estimateTime(inboxCount),
		})
	}

	for _, c := range clusters {
		if c.Confidence <= clusterConfidenceMin {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			ID:            uuid.NewString(),
			Type:          domain.SuggestCreateCollection,
			Priority:      domain.PriorityMedium,
			Confidence:    c.Confidence,
			Category:      domain.CategoryOrganization,
			ActionData:    map[string]string{"name": c.SuggestedCollectionName, "theme": c.Theme},
			Reasoning:     fmt.Sprintf("%d items share the theme %q", len(c.Items), c.Theme),
			Dismissible:   true,
			EstimatedTime: estimateTime(len(c.Items)),
		})
	}

	return suggestions
}

// maintenanceSuggestions proposes archiving badly stale items, reviewing
// never-touched saves, and removing duplicates
func (e *Engine) maintenanceSuggestions(stale []domain.StaleContentItem) []domain.Suggestion {
	var suggestions []domain.Suggestion

	archivable, neverAccessed, duplicates := 0, 0, 0
	for _, s := range stale {
		if s.StalenessScore > archiveStaleness {
			archivable++
		}
		if s.Reason == domain.StaleNeverAccessed {
			neverAccessed++
		}
		if s.Reason == domain.StaleDuplicate {
			duplicates++
		}
	}

	if archivable > 0 {
		suggestions = append(suggestions, domain.Suggestion{
			ID:            uuid.NewString(),
			Type:          domain.SuggestArchive,
			Priority:      domain.PriorityMedium,
			Confidence:    0.8,
			Category:      domain.CategoryMaintenance,
			ActionData:    map[string]string{"count": fmt.Sprintf("%d", archivable)},
			Reasoning:     fmt.Sprintf("%d items look abandoned and can be archived", archivable),
			Dismissible:   true,
			EstimatedTime: estimateTime(archivable),
		})
	}

	if neverAccessed >= neverAccessedMin {
		suggestions = append(suggestions, domain.Suggestion{
			ID:            uuid.NewString(),
			Type:          domain.SuggestReviewHighlights,
			Priority:      domain.PriorityLow,
			Confidence:    0.6,
			Category:      domain.CategoryMaintenance,
			ActionData:    map[string]string{"count": fmt.Sprintf("%d", neverAccessed)},
			Reasoning:     fmt.Sprintf("%d saved items were never opened, a quick review would catch what still matters", neverAccessed),
			Dismissible:   true,
			EstimatedTime: estimateTime(neverAccessed),
		})
	}

	if duplicates >= duplicatesMin {
		suggestions = append(suggestions, domain.Suggestion{
			ID:            uuid.NewString(),
			Type:          domain.SuggestDeleteDuplicates,
			Priority:      domain.PriorityMedium,
			Confidence:    0.75,
			Category:      domain.CategoryMaintenance,
			ActionData:    map[string]string{"count": fmt.Sprintf("%d", duplicates)},
			Reasoning:     fmt.Sprintf("%d items duplicate pages you already saved", duplicates),
			Dismissible:   true,
			EstimatedTime: estimateTime(duplicates),
		})
	}

	return suggestions
}

// productivitySuggestions proposes digesting old saves when the user has gone
// quiet for well past their usual organization cadence
func (e *Engine) productivitySuggestions(ctx context.Context, pattern domain.ActivityPattern) []domain.Suggestion {
	events, err := e.activity.Query(ctx, nil, nil, 0)
	if err != nil || len(events) == 0 {
		return nil
	}

	last := events[len(events)-1].Timestamp
	idleDays := e.nowFn().Sub(last).Hours() / 24
	if idleDays < 1.5*pattern.OrganizationCadenceDays {
		return nil
	}

	return []domain.Suggestion{{
		ID:            uuid.NewString(),
		Type:          domain.SuggestDigestOld,
		Priority:      domain.PriorityLow,
		Confidence:    0.5,
		Category:      domain.CategoryProductivity,
		ActionData:    map[string]string{"idleDays": fmt.Sprintf("%.0f", idleDays)},
		Reasoning:     fmt.Sprintf("no activity for %.0f days, a digest of older saves can restart the habit", idleDays),
		Dismissible:   true,
		EstimatedTime: "5-10 min",
	}}
}

// learningSuggestions proposes reviewing highlights once enough accumulate
func (e *Engine) learningSuggestions(ctx context.Context) []domain.Suggestion {
	items, err := e.items.ListItems(ctx)
	if err != nil {
		return nil
	}

	highlights := 0
	for _, item := range items {
		highlights += item.HighlightCount
	}
	if highlights <= highlightReviewMin {
		return nil
	}

	return []domain.Suggestion{{
		ID:            uuid.NewString(),
		Type:          domain.SuggestReviewHighlights,
		Priority:      domain.PriorityLow,
		Confidence:    0.65,
		Category:      domain.CategoryLearningArea,
		ActionData:    map[string]string{"count": fmt.Sprintf("%d", highlights)},
		Reasoning:     fmt.Sprintf("you collected %d highlights, revisiting them reinforces what you read", highlights),
		Dismissible:   true,
		EstimatedTime: "10-15 min",
	}}
}

func (e *Engine) inboxCount(ctx context.Context) int {
	items, err := e.items.ListItems(ctx)
	if err != nil {
		return 0
	}
	count := 0
	for _, item := range items {
		if item.InInbox() {
			count++
		}
	}
	return count
}
