package analyzer

import (
	"context"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// recencyDecayDays is the span over which the recency component decays to zero
const recencyDecayDays = 30.0

// recentReadDays excludes items already read this recently
const recentReadDays = 7.0

// categoryWeights bias recommendations toward purposeful reading
var categoryWeights = map[domain.Category]float64{
	domain.CategoryWork:     0.8,
	domain.CategoryLearning: 0.9,
	domain.CategoryPersonal: 0.7,
	domain.CategoryGeneral:  0.6,
}

// RecommendNext returns up to n items worth reading next, scored by domain
// affinity, category weight, and save recency. Items read within the last
// week are excluded. Store failures yield an empty result.
func (a *Analyzer) RecommendNext(ctx context.Context, n int) []domain.Item {
	if n <= 0 {
		return nil
	}

	items, err := a.items.ListItems(ctx)
	if err != nil {
		lgr.Printf("[WARN] item store unavailable, skipping recommendations: %v", err)
		return nil
	}

	pattern := a.AnalyzePatterns(ctx)
	now := a.nowFn()

	type scored struct {
		item  domain.Item
		score float64
	}
	var candidates []scored

	for _, item := range items {
		if item.Archived {
			continue
		}
		if item.LastAccessedAt != nil && now.Sub(*item.LastAccessedAt).Hours()/24 < recentReadDays {
			continue
		}

		ageDays := now.Sub(item.CreatedAt).Hours() / 24
		recency := 1 - ageDays/recencyDecayDays
		if recency < 0 {
			recency = 0
		}

		score := 0.4*pattern.DomainAffinity[item.Domain()] +
			0.3*categoryWeights[item.Category] +
			0.3*recency
		candidates = append(candidates, scored{item: item, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	result := make([]domain.Item, len(candidates))
	for i, c := range candidates {
		result[i] = c.item
	}
	return result
}
