package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maveryjr/nestmind/pkg/analyzer/mocks"
	"github.com/maveryjr/nestmind/pkg/domain"
)

func clusterAnalyzer(t *testing.T, items []domain.Item) *Analyzer {
	t.Helper()
	store := &mocks.ItemStoreMock{
		ListItemsFunc:       func(ctx context.Context) ([]domain.Item, error) { return items, nil },
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
		GetTagsForItemFunc:  func(ctx context.Context, id string) ([]string, error) { return nil, nil },
	}
	activity := &mocks.ActivityLogMock{
		QueryFunc: func(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error) {
			return nil, nil
		},
	}
	return New(store, activity, Config{})
}

func TestDetectClusters_TooFewItems(t *testing.T) {
	a := clusterAnalyzer(t, []domain.Item{
		{ID: "only", URL: "https://example.com/1", CreatedAt: time.Now()},
	})
	assert.Empty(t, a.DetectClusters(context.Background()))
}

func TestDetectClusters_TagClusterWins(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// two react-tagged items saved far apart so no temporal cluster competes
	items := []domain.Item{
		{ID: "r1", URL: "https://a.example.com/1", Tags: []string{"react"}, CreatedAt: base},
		{ID: "r2", URL: "https://b.example.com/2", Tags: []string{"react"}, CreatedAt: base.AddDate(0, 0, 20)},
	}

	a := clusterAnalyzer(t, items)
	clusters := a.DetectClusters(context.Background())

	require.Len(t, clusters, 1)
	assert.Equal(t, "react", clusters[0].Theme)
	assert.Len(t, clusters[0].Items, 2)
	assert.InEpsilon(t, 0.5, clusters[0].Confidence, 0.001, "two of four needed for full confidence")
	assert.Equal(t, "React", clusters[0].SuggestedCollectionName)
	assert.Equal(t, []string{"react"}, clusters[0].SuggestedTags)
}

func TestDetectClusters_DomainCluster(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := []domain.Item{
		{ID: "g1", URL: "https://github.com/a/b", CreatedAt: base},
		{ID: "g2", URL: "https://github.com/c/d", CreatedAt: base.AddDate(0, 0, 10)},
		{ID: "g3", URL: "https://github.com/e/f", CreatedAt: base.AddDate(0, 0, 20)},
	}

	a := clusterAnalyzer(t, items)
	clusters := a.DetectClusters(context.Background())

	require.Len(t, clusters, 1)
	assert.Equal(t, "github.com", clusters[0].Theme)
	assert.InEpsilon(t, 0.6, clusters[0].Confidence, 0.001)
	assert.Equal(t, "Github", clusters[0].SuggestedCollectionName)
}

func TestDetectClusters_TemporalGrouping(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := []domain.Item{
		{ID: "t1", URL: "https://a.example.com/1", CreatedAt: base},
		{ID: "t2", URL: "https://b.example.com/2", CreatedAt: base.Add(24 * time.Hour)},
		{ID: "t3", URL: "https://c.example.com/3", CreatedAt: base.Add(48 * time.Hour)},
	}

	a := clusterAnalyzer(t, items)
	clusters := a.DetectClusters(context.Background())

	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Items, 3)
	assert.InEpsilon(t, temporalConfidence, clusters[0].Confidence, 0.001)
	assert.Contains(t, clusters[0].Theme, "Saved around")
	assert.Equal(t, []string{"batch-save"}, clusters[0].SuggestedTags)
}

func TestDetectClusters_SkipsFiledAndArchived(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := []domain.Item{
		{ID: "in1", URL: "https://github.com/a/b", CreatedAt: base},
		{ID: "filed", URL: "https://github.com/c/d", CollectionID: "c1", CreatedAt: base},
		{ID: "archived", URL: "https://github.com/e/f", Archived: true, CreatedAt: base},
	}

	a := clusterAnalyzer(t, items)
	assert.Empty(t, a.DetectClusters(context.Background()), "only one inbox item left")
}

func TestDedupeClusters_OverlapLimit(t *testing.T) {
	mk := func(conf float64, ids ...string) domain.ContentCluster {
		c := domain.ContentCluster{Confidence: conf}
		for _, id := range ids {
			c.Items = append(c.Items, domain.Item{ID: id})
		}
		return c
	}

	// winner claims a,b,c,d; full-overlap candidate dropped, half-overlap kept
	candidates := []domain.ContentCluster{
		mk(0.9, "a", "b", "c", "d"),
		mk(0.8, "a", "b", "c"),      // 3/3 claimed, dropped
		mk(0.7, "a", "b", "x", "y"), // 2/4 claimed, exactly at the limit, kept
	}

	accepted := dedupeClusters(candidates)
	require.Len(t, accepted, 2)
	assert.Len(t, accepted[0].Items, 4)
	assert.Len(t, accepted[1].Items, 4)
}

func TestDomainBase(t *testing.T) {
	assert.Equal(t, "github", domainBase("github.com"))
	assert.Equal(t, "blog", domainBase("blog.golang.org"))
	assert.Equal(t, "localhost", domainBase("localhost"))
}
