package suggest

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// ExecuteBatchActions runs a batch plan against the item store with a
// continue-on-error policy: each item's outcome is independent, failures are
// collected and partial progress still counts. Deletes are downgraded to
// archives, nothing is hard-deleted. Every successful mutation is appended to
// the activity log as an organize event tagged as a batch operation.
func (e *Engine) ExecuteBatchActions(ctx context.Context, actions []domain.BatchAction) domain.BatchActionResult {
	result := domain.BatchActionResult{Success: true, CompletedAt: e.nowFn()}

	for _, action := range actions {
		collectionID := ""
		if action.Action == domain.BatchOrganize && action.CollectionName != "" {
			collection, created, err := e.ensureCollection(ctx, action.CollectionName)
			if err != nil {
				result.Success = false
				result.Errors = append(result.Errors, fmt.Sprintf("collection %q: %v", action.CollectionName, err))
				continue
			}
			collectionID = collection.ID
			if created {
				result.CollectionsCreated++
			}
		}

		for _, itemID := range action.ItemIDs {
			if err := e.applyAction(ctx, action.Action, itemID, collectionID); err != nil {
				lgr.Printf("[WARN] batch %s failed for item %s: %v", action.Action, itemID, err)
				result.Success = false
				result.Errors = append(result.Errors, fmt.Sprintf("item %s: %v", itemID, err))
				continue
			}
			result.ItemsProcessed++
			if action.Action == domain.BatchArchive || action.Action == domain.BatchDelete {
				result.ItemsArchived++
			}

			event := domain.ActivityEvent{
				Type:         domain.EventOrganize,
				ItemID:       itemID,
				CollectionID: collectionID,
				Metadata:     map[string]string{"batchOperation": "true", "action": string(action.Action)},
				Timestamp:    e.nowFn(),
			}
			if err := e.activity.Append(ctx, event); err != nil {
				// the mutation already landed, log and keep going
				lgr.Printf("[WARN] failed to log batch mutation for item %s: %v", itemID, err)
			}
		}
	}

	result.Summary = fmt.Sprintf("%d items processed, %d archived, %d collections created, %d errors",
		result.ItemsProcessed, result.ItemsArchived, result.CollectionsCreated, len(result.Errors))
	return result
}

// applyAction performs one item mutation. Archive and delete both move the
// item out of the inbox by archiving, organize files it into the target
// collection.
func (e *Engine) applyAction(ctx context.Context, action domain.BatchActionType, itemID, collectionID string) error {
	switch action {
	case domain.BatchArchive, domain.BatchDelete:
		archived := true
		return e.items.UpdateItem(ctx, itemID, domain.ItemUpdate{Archived: &archived})
	case domain.BatchOrganize:
		upd := domain.ItemUpdate{}
		if collectionID != "" {
			upd.CollectionID = &collectionID
		} else {
			archived := true
			upd.Archived = &archived
		}
		return e.items.UpdateItem(ctx, itemID, upd)
	default:
		return fmt.Errorf("unknown batch action %q", action)
	}
}

// ensureCollection returns the collection with the given name, creating it
// when missing. The created flag reports whether a new collection appeared.
func (e *Engine) ensureCollection(ctx context.Context, name string) (*domain.Collection, bool, error) {
	existing, err := e.items.ListCollections(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range existing {
		if existing[i].Name == name {
			return &existing[i], false, nil
		}
	}

	collection, err := e.items.CreateCollection(ctx, name)
	if err != nil {
		return nil, false, err
	}
	return collection, true, nil
}
