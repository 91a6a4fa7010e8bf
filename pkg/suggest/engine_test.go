package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maveryjr/nestmind/pkg/domain"
	"github.com/maveryjr/nestmind/pkg/suggest/mocks"
)

// quietAnalyzer returns a pattern analyzer mock with no signals
func quietAnalyzer() *mocks.PatternAnalyzerMock {
	return &mocks.PatternAnalyzerMock{
		AnalyzePatternsFunc:      func(ctx context.Context) domain.ActivityPattern { return domain.DefaultPattern() },
		IdentifyStaleContentFunc: func(ctx context.Context) []domain.StaleContentItem { return nil },
		DetectClustersFunc:       func(ctx context.Context) []domain.ContentCluster { return nil },
		RecommendNextFunc:        func(ctx context.Context, n int) []domain.Item { return nil },
	}
}

func emptyStore() *mocks.ItemStoreMock {
	return &mocks.ItemStoreMock{
		ListItemsFunc:       func(ctx context.Context) ([]domain.Item, error) { return nil, nil },
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
	}
}

func emptyLog() *mocks.ActivityLogMock {
	return &mocks.ActivityLogMock{
		AppendFunc: func(ctx context.Context, event domain.ActivityEvent) error { return nil },
		QueryFunc: func(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error) {
			return nil, nil
		},
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New(quietAnalyzer(), emptyStore(), emptyLog(), Config{})
	assert.NotNil(t, e)
	assert.Equal(t, 8, e.maxSuggestions)
}

func TestGenerateSuggestions_QuietState(t *testing.T) {
	e := New(quietAnalyzer(), emptyStore(), emptyLog(), Config{})
	assert.Empty(t, e.GenerateSuggestions(context.Background()), "nothing to suggest for an empty library")
}

func TestGenerateSuggestions_ClearInboxHighAndNonDismissible(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 15 inbox items, well past the clear threshold
	var storeItems []domain.Item
	for i := 0; i < 15; i++ {
		storeItems = append(storeItems, domain.Item{
			ID:        string(rune('a' + i)),
			URL:       "https://example.com/" + string(rune('a'+i)),
			Category:  domain.CategoryGeneral,
			CreatedAt: now.AddDate(0, 0, -40),
		})
	}

	store := &mocks.ItemStoreMock{
		ListItemsFunc:       func(ctx context.Context) ([]domain.Item, error) { return storeItems, nil },
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
	}

	e := New(quietAnalyzer(), store, emptyLog(), Config{})
	e.nowFn = func() time.Time { return now }

	suggestions := e.GenerateSuggestions(context.Background())
	require.NotEmpty(t, suggestions)

	var clearInbox *domain.Suggestion
	for i := range suggestions {
		if suggestions[i].Type == domain.SuggestClearInbox {
			clearInbox = &suggestions[i]
			break
		}
	}
	require.NotNil(t, clearInbox, "overgrown inbox must produce a clear_inbox suggestion")
	assert.Equal(t, domain.PriorityHigh, clearInbox.Priority)
	assert.False(t, clearInbox.Dismissible)
	assert.Equal(t, "15", clearInbox.ActionData["count"])
	assert.Equal(t, suggestions[0].Type, domain.SuggestClearInbox, "highest score ranks first")
}

func TestGenerateSuggestions_RankedAndCapped(t *testing.T) {
	analyzer := quietAnalyzer()
	analyzer.RecommendNextFunc = func(ctx context.Context, n int) []domain.Item {
		return []domain.Item{{ID: "rec", Title: "Worth reading", URL: "https://example.com/rec"}}
	}
	analyzer.DetectClustersFunc = func(ctx context.Context) []domain.ContentCluster {
		return []domain.ContentCluster{
			{Theme: "go", Confidence: 0.9, SuggestedCollectionName: "Go", Items: []domain.Item{{ID: "1"}, {ID: "2"}, {ID: "3"}}},
			{Theme: "react", Confidence: 0.8, SuggestedCollectionName: "React", Items: []domain.Item{{ID: "4"}, {ID: "5"}, {ID: "6"}}},
		}
	}

	e := New(analyzer, emptyStore(), emptyLog(), Config{MaxSuggestions: 2})
	suggestions := e.GenerateSuggestions(context.Background())

	require.Len(t, suggestions, 2, "capped at the configured maximum")
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score(), suggestions[i].Score())
	}
}

func TestGenerateSuggestions_MaintenanceFromStaleSignals(t *testing.T) {
	analyzer := quietAnalyzer()
	analyzer.IdentifyStaleContentFunc = func(ctx context.Context) []domain.StaleContentItem {
		return []domain.StaleContentItem{
			{Item: domain.Item{ID: "s1"}, StalenessScore: 0.95, Reason: domain.StaleTimeBased},
			{Item: domain.Item{ID: "s2"}, StalenessScore: 0.85, Reason: domain.StaleDuplicate},
			{Item: domain.Item{ID: "s3"}, StalenessScore: 0.5, Reason: domain.StaleDuplicate},
			{Item: domain.Item{ID: "s4"}, StalenessScore: 0.4, Reason: domain.StaleNeverAccessed},
		}
	}

	e := New(analyzer, emptyStore(), emptyLog(), Config{})
	suggestions := e.GenerateSuggestions(context.Background())

	types := map[domain.SuggestionType]domain.Suggestion{}
	for _, s := range suggestions {
		types[s.Type] = s
	}

	archive, ok := types[domain.SuggestArchive]
	require.True(t, ok, "two items over the archive cutoff")
	assert.Equal(t, "2", archive.ActionData["count"])

	dups, ok := types[domain.SuggestDeleteDuplicates]
	require.True(t, ok, "two duplicates trigger the cleanup suggestion")
	assert.Equal(t, "2", dups.ActionData["count"])

	_, ok = types[domain.SuggestReviewHighlights]
	assert.False(t, ok, "one never-accessed item is below the review threshold")
}

func TestGenerateSuggestions_FocusSession(t *testing.T) {
	analyzer := quietAnalyzer()
	analyzer.AnalyzePatternsFunc = func(ctx context.Context) domain.ActivityPattern {
		p := domain.DefaultPattern()
		p.AvgSessionMinutes = 25
		p.ReadingVelocity = 2.5
		return p
	}

	e := New(analyzer, emptyStore(), emptyLog(), Config{})
	suggestions := e.GenerateSuggestions(context.Background())

	require.Len(t, suggestions, 1)
	assert.Equal(t, domain.SuggestFocusSession, suggestions[0].Type)
	assert.Equal(t, "25", suggestions[0].ActionData["minutes"])
	assert.Equal(t, "25 min", suggestions[0].EstimatedTime)
}

func TestTimeAwareSuggestions(t *testing.T) {
	analyzer := quietAnalyzer()
	analyzer.AnalyzePatternsFunc = func(ctx context.Context) domain.ActivityPattern {
		p := domain.DefaultPattern()
		p.PreferredHours = []int{9}
		p.AvgSessionMinutes = 25
		p.ReadingVelocity = 2
		return p
	}
	analyzer.RecommendNextFunc = func(ctx context.Context, n int) []domain.Item {
		return []domain.Item{{ID: "rec", Title: "Read me", URL: "https://example.com/rec"}}
	}
	analyzer.DetectClustersFunc = func(ctx context.Context) []domain.ContentCluster {
		return []domain.ContentCluster{
			{Theme: "go", Confidence: 0.9, SuggestedCollectionName: "Go", Items: []domain.Item{{ID: "1"}, {ID: "2"}}},
		}
	}

	e := New(analyzer, emptyStore(), emptyLog(), Config{})

	// during a preferred reading hour only reading suggestions survive
	e.nowFn = func() time.Time { return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC) }
	reading := e.TimeAwareSuggestions(context.Background())
	require.NotEmpty(t, reading)
	for _, s := range reading {
		assert.Contains(t, []domain.SuggestionType{domain.SuggestReadNext, domain.SuggestFocusSession}, s.Type)
	}

	// outside reading hours only organization suggestions survive
	e.nowFn = func() time.Time { return time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC) }
	organizing := e.TimeAwareSuggestions(context.Background())
	require.NotEmpty(t, organizing)
	for _, s := range organizing {
		assert.Equal(t, domain.CategoryOrganization, s.Category)
	}
}
