package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maveryjr/nestmind/pkg/analyzer/mocks"
	"github.com/maveryjr/nestmind/pkg/domain"
)

func TestStalenessScore_FreshItemScoresZero(t *testing.T) {
	accessed := 2.0
	score := stalenessScore(5, &accessed, 30, 0.9)
	assert.Zero(t, score, "fresh and recently accessed item is not stale")
}

func TestStalenessScore_FreshLowAffinityStillZero(t *testing.T) {
	accessed := 1.0
	score := stalenessScore(3, &accessed, 30, 0.0)
	assert.Zero(t, score, "affinity penalty applies only to items already drifting")
}

func TestStalenessScore_MonotonicInAge(t *testing.T) {
	prev := 0.0
	for age := 10.0; age <= 120; age += 10 {
		score := stalenessScore(age, nil, 30, 0.5)
		assert.GreaterOrEqual(t, score, prev, "score never decreases with age (age %v)", age)
		prev = score
	}
}

func TestStalenessScore_NeverAccessedOverThreshold(t *testing.T) {
	// 40 days old, threshold 30, never accessed, no affinity:
	// 0.4*(40/30) + 0.3 + 0.2 = 1.033... clamped to 1
	score := stalenessScore(40, nil, 30, 0)
	assert.InEpsilon(t, 1.0, score, 0.001)
}

func TestStalenessScore_Clamped(t *testing.T) {
	score := stalenessScore(500, nil, 14, 0)
	assert.LessOrEqual(t, score, 1.0)
	assert.InEpsilon(t, 1.0, score, 0.001)
}

func TestStaleReason_Precedence(t *testing.T) {
	accessed := 20.0

	tests := []struct {
		name        string
		ageDays     float64
		sinceAccess *float64
		affinity    float64
		isDuplicate bool
		want        domain.StaleReason
	}{
		{name: "duplicate wins outright", ageDays: 50, sinceAccess: nil, isDuplicate: true, want: domain.StaleDuplicate},
		{name: "never accessed", ageDays: 50, sinceAccess: nil, affinity: 0.5, want: domain.StaleNeverAccessed},
		{name: "clear age overrun", ageDays: 50, sinceAccess: &accessed, affinity: 0.5, want: domain.StaleTimeBased},
		{name: "topic shift", ageDays: 35, sinceAccess: &accessed, affinity: 0.05, want: domain.StaleTopicShift},
		{name: "plain time based", ageDays: 35, sinceAccess: &accessed, affinity: 0.5, want: domain.StaleTimeBased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := staleReason(tt.ageDays, tt.sinceAccess, 30, tt.affinity, tt.isDuplicate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestedAction(t *testing.T) {
	assert.Equal(t, domain.ActionDelete, suggestedAction(0.9, domain.StaleDuplicate))
	assert.Equal(t, domain.ActionArchive, suggestedAction(0.9, domain.StaleTimeBased))
	assert.Equal(t, domain.ActionArchive, suggestedAction(0.7, domain.StaleTimeBased))
	assert.Equal(t, domain.ActionReview, suggestedAction(0.4, domain.StaleNeverAccessed))
	assert.Equal(t, domain.ActionOrganize, suggestedAction(0.4, domain.StaleTimeBased))
}

func TestIdentifyStaleContent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	recentAccess := now.AddDate(0, 0, -2)

	storeItems := []domain.Item{
		// 40 days old, never accessed, over the general 30-day threshold
		{ID: "stale", URL: "https://old.example.com/post", Category: domain.CategoryGeneral, CreatedAt: now.AddDate(0, 0, -40)},
		// fresh and recently read
		{ID: "fresh", URL: "https://new.example.com/post", Category: domain.CategoryGeneral, CreatedAt: now.AddDate(0, 0, -3), LastAccessedAt: &recentAccess},
		// filed items are ignored
		{ID: "filed", URL: "https://filed.example.com/post", CollectionID: "c1", CreatedAt: now.AddDate(0, 0, -100)},
	}

	items := &mocks.ItemStoreMock{
		ListItemsFunc:       func(ctx context.Context) ([]domain.Item, error) { return storeItems, nil },
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
		GetTagsForItemFunc:  func(ctx context.Context, id string) ([]string, error) { return nil, nil },
	}
	activity := &mocks.ActivityLogMock{
		QueryFunc: func(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error) {
			return nil, nil
		},
	}

	a := New(items, activity, Config{})
	a.nowFn = func() time.Time { return now }

	stale := a.IdentifyStaleContent(context.Background())

	require.Len(t, stale, 1)
	assert.Equal(t, "stale", stale[0].Item.ID)
	assert.Equal(t, domain.StaleNeverAccessed, stale[0].Reason)
	assert.InEpsilon(t, 1.0, stale[0].StalenessScore, 0.001)
	assert.Equal(t, domain.ActionArchive, stale[0].SuggestedAction)
	assert.Nil(t, stale[0].DaysSinceLastAccess)
}

func TestIdentifyStaleContent_SortedMostStaleFirst(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	accessed := now.AddDate(0, 0, -10)

	storeItems := []domain.Item{
		{ID: "mild", URL: "https://a.example.com/1", Category: domain.CategoryGeneral, CreatedAt: now.AddDate(0, 0, -32), LastAccessedAt: &accessed},
		{ID: "severe", URL: "https://b.example.com/2", Category: domain.CategoryGeneral, CreatedAt: now.AddDate(0, 0, -90)},
	}

	items := &mocks.ItemStoreMock{
		ListItemsFunc:       func(ctx context.Context) ([]domain.Item, error) { return storeItems, nil },
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
		GetTagsForItemFunc:  func(ctx context.Context, id string) ([]string, error) { return nil, nil },
	}
	activity := &mocks.ActivityLogMock{
		QueryFunc: func(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error) {
			return nil, nil
		},
	}

	a := New(items, activity, Config{})
	a.nowFn = func() time.Time { return now }

	stale := a.IdentifyStaleContent(context.Background())
	require.Len(t, stale, 2)
	assert.Equal(t, "severe", stale[0].Item.ID)
	assert.GreaterOrEqual(t, stale[0].StalenessScore, stale[1].StalenessScore)
}

func TestIdentifyStaleContent_StoreFailure(t *testing.T) {
	items := &mocks.ItemStoreMock{
		ListItemsFunc: func(ctx context.Context) ([]domain.Item, error) { return nil, errors.New("boom") },
	}
	a := New(items, &mocks.ActivityLogMock{}, Config{})

	assert.Empty(t, a.IdentifyStaleContent(context.Background()))
}

func TestFindDuplicates(t *testing.T) {
	items := []domain.Item{
		{ID: "a", URL: "https://www.example.com/post/"},
		{ID: "b", URL: "http://example.com/post?utm=1"},
		{ID: "c", URL: "https://example.com/other"},
		{ID: "d", URL: "not a url"},
	}

	dups := findDuplicates(items)
	assert.False(t, dups["a"], "first occurrence is canonical")
	assert.True(t, dups["b"], "same page modulo scheme/www/query")
	assert.False(t, dups["c"])
	assert.False(t, dups["d"])
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "example.com/post", normalizeURL("https://www.Example.com/post/"))
	assert.Equal(t, "example.com/post", normalizeURL("http://example.com/post?q=1#frag"))
	assert.Empty(t, normalizeURL("://bad"))
}
