package analyzer

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// minReportedStaleness filters out items that are only marginally neglected
const minReportedStaleness = 0.3

// IdentifyStaleContent scores every inbox item for neglect and returns the
// ones above the reporting floor, most stale first. Store failures yield an
// empty result, never an error.
func (a *Analyzer) IdentifyStaleContent(ctx context.Context) []domain.StaleContentItem {
	items, err := a.items.ListItems(ctx)
	if err != nil {
		lgr.Printf("[WARN] item store unavailable, skipping staleness analysis: %v", err)
		return nil
	}

	pattern := a.AnalyzePatterns(ctx)
	now := a.nowFn()
	duplicates := findDuplicates(items)

	var stale []domain.StaleContentItem
	for _, item := range items {
		if !item.InInbox() {
			continue
		}

		threshold := pattern.StalenessThresholdDays[item.Category]
		if threshold == 0 {
			threshold = pattern.StalenessThresholdDays[domain.CategoryGeneral]
		}
		if threshold == 0 {
			threshold = 30
		}

		ageDays := now.Sub(item.CreatedAt).Hours() / 24
		var sinceAccess *float64
		if item.LastAccessedAt != nil {
			d := now.Sub(*item.LastAccessedAt).Hours() / 24
			sinceAccess = &d
		}

		affinity := pattern.DomainAffinity[item.Domain()]
		score := stalenessScore(ageDays, sinceAccess, float64(threshold), affinity)
		if score < minReportedStaleness {
			continue
		}

		reason := staleReason(ageDays, sinceAccess, float64(threshold), affinity, duplicates[item.ID])
		stale = append(stale, domain.StaleContentItem{
			Item:                item,
			StalenessScore:      score,
			Reason:              reason,
			DaysSinceCreated:    ageDays,
			DaysSinceLastAccess: sinceAccess,
			SuggestedAction:     suggestedAction(score, reason),
		})
	}

	sort.Slice(stale, func(i, j int) bool { return stale[i].StalenessScore > stale[j].StalenessScore })
	return stale
}

// stalenessScore is the weighted neglect estimate in [0,1]. Ratio terms kick
// in only past their thresholds so a fresh, recently accessed item scores
// exactly zero. The low-affinity penalty applies only to items already
// drifting stale.
func stalenessScore(ageDays float64, sinceAccess *float64, threshold, affinity float64) float64 {
	score := 0.0

	if ageRatio := ageDays / threshold; ageRatio > 1 {
		score += 0.4 * minF(ageRatio, 2)
	}

	if sinceAccess != nil {
		if accessRatio := *sinceAccess / (threshold / 2); accessRatio > 1 {
			score += 0.3 * minF(accessRatio, 2)
		}
	} else if ageDays > 7 {
		score += 0.3
	}

	if score > 0 && affinity < 0.2 {
		score += 0.2
	}

	if score > 1 {
		score = 1
	}
	return score
}

// staleReason picks the dominant explanation. Duplicates win outright, then
// never-accessed, then clear age overrun, then topical drift.
func staleReason(ageDays float64, sinceAccess *float64, threshold, affinity float64, isDuplicate bool) domain.StaleReason {
	switch {
	case isDuplicate:
		return domain.StaleDuplicate
	case sinceAccess == nil:
		return domain.StaleNeverAccessed
	case ageDays > 1.5*threshold:
		return domain.StaleTimeBased
	case affinity < 0.1:
		return domain.StaleTopicShift
	default:
		return domain.StaleTimeBased
	}
}

// suggestedAction maps score and reason to the recommended disposition
func suggestedAction(score float64, reason domain.StaleReason) domain.StaleAction {
	switch {
	case score > 0.8 && reason == domain.StaleDuplicate:
		return domain.ActionDelete
	case score > 0.8:
		return domain.ActionArchive
	case score > 0.6:
		return domain.ActionArchive
	case reason == domain.StaleNeverAccessed:
		return domain.ActionReview
	default:
		return domain.ActionOrganize
	}
}

// findDuplicates marks every item whose normalized URL was already seen on an
// earlier item
func findDuplicates(items []domain.Item) map[string]bool {
	duplicates := map[string]bool{}
	seen := map[string]string{}
	for _, item := range items {
		key := normalizeURL(item.URL)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			duplicates[item.ID] = true
			continue
		}
		seen[key] = item.ID
	}
	return duplicates
}

// normalizeURL strips scheme, www prefix, query, fragment, and trailing slash
// so trivially different saves of the same page compare equal
func normalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.TrimSuffix(u.Path, "/")
	return host + path
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
