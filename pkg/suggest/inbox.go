package suggest

import (
	"context"
	"fmt"
	"math"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// SummarizeAndPlanClear snapshots the inbox, plans the batch actions that
// would clear it, and estimates the manual effort. Store failures yield an
// empty summary and no plan.
func (e *Engine) SummarizeAndPlanClear(ctx context.Context) (domain.InboxSummary, []domain.BatchAction, string) {
	items, err := e.items.ListItems(ctx)
	if err != nil {
		return domain.InboxSummary{ItemsByCategory: map[domain.Category]int{}}, nil, estimateTime(0)
	}

	var inbox []domain.Item
	for _, item := range items {
		if item.InInbox() {
			inbox = append(inbox, item)
		}
	}

	summary := e.summarize(inbox)
	actions := e.planClear(ctx)

	total := 0
	for _, a := range actions {
		total += len(a.ItemIDs)
	}
	return summary, actions, estimateTime(total)
}

// summarize computes the inbox snapshot
func (e *Engine) summarize(inbox []domain.Item) domain.InboxSummary {
	summary := domain.InboxSummary{
		TotalItems:      len(inbox),
		ItemsByCategory: map[domain.Category]int{},
	}
	if len(inbox) == 0 {
		return summary
	}

	now := e.nowFn()
	totalDays := 0.0
	for i := range inbox {
		item := inbox[i]
		summary.ItemsByCategory[item.Category]++
		totalDays += now.Sub(item.CreatedAt).Hours() / 24

		if summary.StalestItem == nil || item.CreatedAt.Before(summary.StalestItem.CreatedAt) {
			summary.StalestItem = &inbox[i]
		}
		if summary.NewestItem == nil || item.CreatedAt.After(summary.NewestItem.CreatedAt) {
			summary.NewestItem = &inbox[i]
		}
	}
	summary.AvgDaysInInbox = totalDays / float64(len(inbox))

	if summary.TotalItems > inboxClearSize {
		summary.RecommendedActions = append(summary.RecommendedActions, "clear stale items")
	}
	if summary.AvgDaysInInbox > 14 {
		summary.RecommendedActions = append(summary.RecommendedActions, "organize older saves into collections")
	}
	return summary
}

// planClear turns staleness and cluster signals into concrete batch actions:
// one archive action for badly stale items, one organize action per confident
// cluster of three or more
func (e *Engine) planClear(ctx context.Context) []domain.BatchAction {
	var actions []domain.BatchAction

	var archiveIDs []string
	for _, s := range e.analyzer.IdentifyStaleContent(ctx) {
		if s.StalenessScore > archiveStaleness {
			archiveIDs = append(archiveIDs, s.Item.ID)
		}
	}
	if len(archiveIDs) > 0 {
		actions = append(actions, domain.BatchAction{
			Action:  domain.BatchArchive,
			ItemIDs: archiveIDs,
			Reason:  fmt.Sprintf("%d items untouched well past their staleness threshold", len(archiveIDs)),
		})
	}

	planned := map[string]bool{}
	for _, id := range archiveIDs {
		planned[id] = true
	}

	for _, c := range e.analyzer.DetectClusters(ctx) {
		if c.Confidence <= clusterConfidenceMin || len(c.Items) < organizeClusterMin {
			continue
		}
		var ids []string
		for _, item := range c.Items {
			if !planned[item.ID] {
				ids = append(ids, item.ID)
			}
		}
		if len(ids) < organizeClusterMin {
			continue
		}
		for _, id := range ids {
			planned[id] = true
		}
		actions = append(actions, domain.BatchAction{
			Action:         domain.BatchOrganize,
			ItemIDs:        ids,
			Reason:         fmt.Sprintf("%d items share the theme %q (confidence %.0f%%)", len(ids), c.Theme, c.Confidence*100),
			CollectionName: c.SuggestedCollectionName,
		})
	}

	return actions
}

// estimateTime renders the manual-effort estimate: max(2, ceil(n/5)) minutes,
// shown as a short range below 15 minutes and "15+ min" past that
func estimateTime(totalItems int) string {
	est := int(math.Ceil(float64(totalItems) / 5))
	if est < 2 {
		est = 2
	}
	if est >= 15 {
		return "15+ min"
	}
	return fmt.Sprintf("%d-%d min", est, est+3)
}
