package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maveryjr/nestmind/pkg/domain"
	"github.com/maveryjr/nestmind/pkg/suggest/mocks"
)

func TestExecuteBatchActions_ArchiveAndOrganize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	store := &mocks.ItemStoreMock{
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
		CreateCollectionFunc: func(ctx context.Context, name string) (*domain.Collection, error) {
			return &domain.Collection{ID: "col-1", Name: name, CreatedAt: now}, nil
		},
		UpdateItemFunc: func(ctx context.Context, id string, upd domain.ItemUpdate) error { return nil },
	}
	log := emptyLog()

	e := New(quietAnalyzer(), store, log, Config{})
	e.nowFn = func() time.Time { return now }

	actions := []domain.BatchAction{
		{Action: domain.BatchArchive, ItemIDs: []string{"a", "b"}},
		{Action: domain.BatchOrganize, ItemIDs: []string{"c", "d", "e"}, CollectionName: "Go"},
	}
	result := e.ExecuteBatchActions(context.Background(), actions)

	assert.True(t, result.Success)
	assert.Equal(t, 5, result.ItemsProcessed)
	assert.Equal(t, 2, result.ItemsArchived)
	assert.Equal(t, 1, result.CollectionsCreated)
	assert.Empty(t, result.Errors)
	assert.Equal(t, now, result.CompletedAt)
	assert.Equal(t, "5 items processed, 2 archived, 1 collections created, 0 errors", result.Summary)

	// archive sets the flag, organize files into the created collection
	updates := store.UpdateItemCalls()
	require.Len(t, updates, 5)
	require.NotNil(t, updates[0].Upd.Archived)
	assert.True(t, *updates[0].Upd.Archived)
	require.NotNil(t, updates[2].Upd.CollectionID)
	assert.Equal(t, "col-1", *updates[2].Upd.CollectionID)

	// every mutation logged as a batch organize event
	appended := log.AppendCalls()
	require.Len(t, appended, 5)
	assert.Equal(t, domain.EventOrganize, appended[0].Event.Type)
	assert.Equal(t, "true", appended[0].Event.Metadata["batchOperation"])
	assert.Equal(t, "archive", appended[0].Event.Metadata["action"])
}

func TestExecuteBatchActions_DeleteDowngradedToArchive(t *testing.T) {
	store := &mocks.ItemStoreMock{
		UpdateItemFunc: func(ctx context.Context, id string, upd domain.ItemUpdate) error { return nil },
	}

	e := New(quietAnalyzer(), store, emptyLog(), Config{})
	result := e.ExecuteBatchActions(context.Background(), []domain.BatchAction{
		{Action: domain.BatchDelete, ItemIDs: []string{"dup"}},
	})

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ItemsArchived, "delete archives instead of removing")

	updates := store.UpdateItemCalls()
	require.Len(t, updates, 1)
	require.NotNil(t, updates[0].Upd.Archived)
	assert.True(t, *updates[0].Upd.Archived)
	assert.Nil(t, updates[0].Upd.CollectionID)
}

func TestExecuteBatchActions_ContinueOnError(t *testing.T) {
	store := &mocks.ItemStoreMock{
		UpdateItemFunc: func(ctx context.Context, id string, upd domain.ItemUpdate) error {
			if id == "bad" {
				return errors.New("no such item")
			}
			return nil
		},
	}
	log := emptyLog()

	e := New(quietAnalyzer(), store, log, Config{})
	result := e.ExecuteBatchActions(context.Background(), []domain.BatchAction{
		{Action: domain.BatchArchive, ItemIDs: []string{"good", "bad", "also-good"}},
	})

	assert.False(t, result.Success, "any per-item failure flips the success flag")
	assert.Equal(t, 2, result.ItemsProcessed, "partial progress still counts")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "bad")
	assert.Len(t, log.AppendCalls(), 2, "failed mutation is not logged")
}

func TestExecuteBatchActions_ReusesExistingCollection(t *testing.T) {
	store := &mocks.ItemStoreMock{
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) {
			return []domain.Collection{{ID: "col-9", Name: "Go"}}, nil
		},
		UpdateItemFunc: func(ctx context.Context, id string, upd domain.ItemUpdate) error { return nil },
	}

	e := New(quietAnalyzer(), store, emptyLog(), Config{})
	result := e.ExecuteBatchActions(context.Background(), []domain.BatchAction{
		{Action: domain.BatchOrganize, ItemIDs: []string{"x"}, CollectionName: "Go"},
	})

	assert.True(t, result.Success)
	assert.Zero(t, result.CollectionsCreated)
	assert.Empty(t, store.CreateCollectionCalls())

	updates := store.UpdateItemCalls()
	require.Len(t, updates, 1)
	require.NotNil(t, updates[0].Upd.CollectionID)
	assert.Equal(t, "col-9", *updates[0].Upd.CollectionID)
}

func TestExecuteBatchActions_CollectionFailureSkipsAction(t *testing.T) {
	store := &mocks.ItemStoreMock{
		ListCollectionsFunc: func(ctx context.Context) ([]domain.Collection, error) { return nil, nil },
		CreateCollectionFunc: func(ctx context.Context, name string) (*domain.Collection, error) {
			return nil, errors.New("disk full")
		},
		UpdateItemFunc: func(ctx context.Context, id string, upd domain.ItemUpdate) error { return nil },
	}

	e := New(quietAnalyzer(), store, emptyLog(), Config{})
	result := e.ExecuteBatchActions(context.Background(), []domain.BatchAction{
		{Action: domain.BatchOrganize, ItemIDs: []string{"x", "y"}, CollectionName: "Go"},
		{Action: domain.BatchArchive, ItemIDs: []string{"z"}},
	})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Go")
	assert.Equal(t, 1, result.ItemsProcessed, "second action still executes")
}

func TestExecuteBatchActions_RerunOnArchivedItems(t *testing.T) {
	archived := map[string]bool{}
	store := &mocks.ItemStoreMock{
		UpdateItemFunc: func(ctx context.Context, id string, upd domain.ItemUpdate) error {
			if upd.Archived != nil {
				archived[id] = *upd.Archived
			}
			return nil
		},
	}

	e := New(quietAnalyzer(), store, emptyLog(), Config{})
	plan := []domain.BatchAction{
		{Action: domain.BatchArchive, ItemIDs: []string{"a", "b", "c"}},
	}

	first := e.ExecuteBatchActions(context.Background(), plan)
	assert.True(t, first.Success)
	assert.Equal(t, 3, first.ItemsProcessed)

	// re-running the same plan against already-archived items must not raise
	second := e.ExecuteBatchActions(context.Background(), plan)
	assert.True(t, second.Success)
	assert.Equal(t, 3, second.ItemsProcessed, "already-archived items still count as processed")
	assert.Empty(t, second.Errors)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, archived)
}

func TestExecuteBatchActions_Empty(t *testing.T) {
	e := New(quietAnalyzer(), emptyStore(), emptyLog(), Config{})
	result := e.ExecuteBatchActions(context.Background(), nil)

	assert.True(t, result.Success)
	assert.Zero(t, result.ItemsProcessed)
	assert.Equal(t, "0 items processed, 0 archived, 0 collections created, 0 errors", result.Summary)
}
