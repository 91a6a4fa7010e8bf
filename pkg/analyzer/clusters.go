package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// clustering constants
const (
	temporalWindow     = 3 * 24 * time.Hour // items saved this close belong together
	temporalLookAhead  = 10                 // candidates examined past each seed item
	temporalConfidence = 0.6
	overlapLimit       = 0.5 // candidate dropped when more of its items are already claimed
)

// DetectClusters groups inbox items in three independent passes (shared
// domain, shared tag, temporal proximity of saves) and deduplicates the
// results: clusters are accepted in descending confidence×size order, a
// candidate is dropped when over half its items already belong to an
// accepted cluster. Store failures yield an empty result.
func (a *Analyzer) DetectClusters(ctx context.Context) []domain.ContentCluster {
	items, err := a.items.ListItems(ctx)
	if err != nil {
		lgr.Printf("[WARN] item store unavailable, skipping cluster detection: %v", err)
		return nil
	}

	var inbox []domain.Item
	for _, item := range items {
		if item.InInbox() {
			inbox = append(inbox, item)
		}
	}
	if len(inbox) < 2 {
		return nil
	}

	var candidates []domain.ContentCluster
	candidates = append(candidates, domainClusters(inbox)...)
	candidates = append(candidates, tagClusters(inbox)...)
	candidates = append(candidates, temporalClusters(inbox)...)

	return dedupeClusters(candidates)
}

// domainClusters groups by item domain, two items minimum
func domainClusters(items []domain.Item) []domain.ContentCluster {
	byDomain := map[string][]domain.Item{}
	for _, item := range items {
		if d := item.Domain(); d != "" {
			byDomain[d] = append(byDomain[d], item)
		}
	}

	var clusters []domain.ContentCluster
	for d, group := range byDomain {
		if len(group) < 2 {
			continue
		}
		clusters = append(clusters, domain.ContentCluster{
			Theme:                   d,
			Items:                   group,
			Confidence:              minF(0.8, float64(len(group))/5),
			SuggestedCollectionName: titleCase(domainBase(d)),
			SuggestedTags:           []string{domainBase(d)},
		})
	}
	return clusters
}

// tagClusters groups by shared tag, two items minimum
func tagClusters(items []domain.Item) []domain.ContentCluster {
	byTag := map[string][]domain.Item{}
	for _, item := range items {
		for _, tag := range item.Tags {
			byTag[tag] = append(byTag[tag], item)
		}
	}

	var clusters []domain.ContentCluster
	for tag, group := range byTag {
		if len(group) < 2 {
			continue
		}
		clusters = append(clusters, domain.ContentCluster{
			Theme:                   tag,
			Items:                   group,
			Confidence:              minF(0.9, float64(len(group))/4),
			SuggestedCollectionName: titleCase(tag),
			SuggestedTags:           []string{tag},
		})
	}
	return clusters
}

// temporalClusters groups items saved within the temporal window, scanning up
// to the look-ahead limit past each unconsumed seed
func temporalClusters(items []domain.Item) []domain.ContentCluster {
	sorted := make([]domain.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	consumed := map[string]bool{}
	var clusters []domain.ContentCluster

	for i, seed := range sorted {
		if consumed[seed.ID] {
			continue
		}
		group := []domain.Item{seed}
		for j := i + 1; j < len(sorted) && j <= i+temporalLookAhead; j++ {
			if consumed[sorted[j].ID] {
				continue
			}
			if sorted[j].CreatedAt.Sub(seed.CreatedAt) > temporalWindow {
				break
			}
			group = append(group, sorted[j])
		}
		if len(group) < 2 {
			continue
		}
		for _, it := range group {
			consumed[it.ID] = true
		}
		theme := fmt.Sprintf("Saved around %s", seed.CreatedAt.Format("Jan 2"))
		clusters = append(clusters, domain.ContentCluster{
			Theme:                   theme,
			Items:                   group,
			Confidence:              temporalConfidence,
			SuggestedCollectionName: theme,
			SuggestedTags:           []string{"batch-save"},
		})
	}
	return clusters
}

// dedupeClusters keeps clusters in descending confidence×size order and drops
// a candidate when more than half its items are already claimed
func dedupeClusters(candidates []domain.ContentCluster) []domain.ContentCluster {
	sort.SliceStable(candidates, func(i, j int) bool {
		si := candidates[i].Confidence * float64(len(candidates[i].Items))
		sj := candidates[j].Confidence * float64(len(candidates[j].Items))
		return si > sj
	})

	claimed := map[string]bool{}
	var accepted []domain.ContentCluster
	for _, c := range candidates {
		overlap := 0
		for _, it := range c.Items {
			if claimed[it.ID] {
				overlap++
			}
		}
		if float64(overlap) > overlapLimit*float64(len(c.Items)) {
			continue
		}
		for _, it := range c.Items {
			claimed[it.ID] = true
		}
		accepted = append(accepted, c)
	}
	return accepted
}

// domainBase returns the leftmost label of a domain, "example.com" -> "example"
func domainBase(d string) string {
	if idx := strings.IndexByte(d, '.'); idx > 0 {
		return d[:idx]
	}
	return d
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
