package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maveryjr/nestmind/pkg/domain"
	"github.com/maveryjr/nestmind/server/mocks"
)

func testServer(t *testing.T, suggest Suggester, health HealthService) *httptest.Server {
	t.Helper()
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
	srv := New(cfg, suggest, health, "test-version", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func emptySuggester() *mocks.SuggesterMock {
	return &mocks.SuggesterMock{
		GenerateSuggestionsFunc:  func(ctx context.Context) []domain.Suggestion { return nil },
		TimeAwareSuggestionsFunc: func(ctx context.Context) []domain.Suggestion { return nil },
		SummarizeAndPlanClearFunc: func(ctx context.Context) (domain.InboxSummary, []domain.BatchAction, string) {
			return domain.InboxSummary{}, nil, "2-5 min"
		},
		ExecuteBatchActionsFunc: func(ctx context.Context, actions []domain.BatchAction) domain.BatchActionResult {
			return domain.BatchActionResult{Success: true}
		},
	}
}

func emptyHealthService() *mocks.HealthServiceMock {
	return &mocks.HealthServiceMock{
		GetHealthReportFunc: func(ctx context.Context) (domain.HealthReport, error) {
			return domain.HealthReport{}, nil
		},
		CheckLinksHealthFunc: func(ctx context.Context, itemIDs []string) ([]domain.LinkCheckResult, error) {
			return nil, nil
		},
	}
}

func TestServer_Status(t *testing.T) {
	ts := testServer(t, emptySuggester(), emptyHealthService())

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test-version", status["version"])
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, emptySuggester(), emptyHealthService())

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Suggestions(t *testing.T) {
	suggest := emptySuggester()
	suggest.GenerateSuggestionsFunc = func(ctx context.Context) []domain.Suggestion {
		return []domain.Suggestion{
			{ID: "s1", Type: domain.SuggestClearInbox, Priority: domain.PriorityHigh, Confidence: 0.9},
			{ID: "s2", Type: domain.SuggestArchive, Priority: domain.PriorityLow, Confidence: 0.5},
		}
	}
	ts := testServer(t, suggest, emptyHealthService())

	resp, err := http.Get(ts.URL + "/api/v1/suggestions")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Suggestions []domain.Suggestion `json:"suggestions"`
		Count       int                 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 2, payload.Count)
	require.Len(t, payload.Suggestions, 2)
	assert.Equal(t, "s1", payload.Suggestions[0].ID)
}

func TestServer_TimelySuggestions(t *testing.T) {
	suggest := emptySuggester()
	suggest.TimeAwareSuggestionsFunc = func(ctx context.Context) []domain.Suggestion {
		return []domain.Suggestion{{ID: "t1", Type: domain.SuggestReadNext}}
	}
	ts := testServer(t, suggest, emptyHealthService())

	resp, err := http.Get(ts.URL + "/api/v1/suggestions/timely")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 1, payload.Count)
	assert.Len(t, suggest.TimeAwareSuggestionsCalls(), 1)
	assert.Empty(t, suggest.GenerateSuggestionsCalls())
}

func TestServer_InboxSummary(t *testing.T) {
	suggest := emptySuggester()
	suggest.SummarizeAndPlanClearFunc = func(ctx context.Context) (domain.InboxSummary, []domain.BatchAction, string) {
		summary := domain.InboxSummary{TotalItems: 4, AvgDaysInInbox: 16}
		actions := []domain.BatchAction{{Action: domain.BatchArchive, ItemIDs: []string{"old"}}}
		return summary, actions, "2-5 min"
	}
	ts := testServer(t, suggest, emptyHealthService())

	resp, err := http.Get(ts.URL + "/api/v1/inbox/summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Summary       domain.InboxSummary `json:"summary"`
		Actions       []domain.BatchAction `json:"actions"`
		EstimatedTime string              `json:"estimated_time"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 4, payload.Summary.TotalItems)
	require.Len(t, payload.Actions, 1)
	assert.Equal(t, domain.BatchArchive, payload.Actions[0].Action)
	assert.Equal(t, "2-5 min", payload.EstimatedTime)
}

func TestServer_InboxClear(t *testing.T) {
	suggest := emptySuggester()
	planned := []domain.BatchAction{{Action: domain.BatchArchive, ItemIDs: []string{"a", "b"}}}
	suggest.SummarizeAndPlanClearFunc = func(ctx context.Context) (domain.InboxSummary, []domain.BatchAction, string) {
		return domain.InboxSummary{TotalItems: 2}, planned, "2-5 min"
	}
	suggest.ExecuteBatchActionsFunc = func(ctx context.Context, actions []domain.BatchAction) domain.BatchActionResult {
		return domain.BatchActionResult{Success: true, ItemsProcessed: 2, ItemsArchived: 2, Summary: "Archived 2 items"}
	}
	ts := testServer(t, suggest, emptyHealthService())

	resp, err := http.Post(ts.URL+"/api/v1/inbox/clear", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.BatchActionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ItemsArchived)

	require.Len(t, suggest.ExecuteBatchActionsCalls(), 1)
	assert.Equal(t, planned, suggest.ExecuteBatchActionsCalls()[0].Actions)
}

func TestServer_HealthReport(t *testing.T) {
	health := emptyHealthService()
	health.GetHealthReportFunc = func(ctx context.Context) (domain.HealthReport, error) {
		return domain.HealthReport{
			Total:       10,
			ByStatus:    map[domain.LinkStatus]int{domain.LinkHealthy: 8, domain.LinkDead: 2},
			DeadItemIDs: []string{"d1", "d2"},
		}, nil
	}
	ts := testServer(t, emptySuggester(), health)

	resp, err := http.Get(ts.URL + "/api/v1/health/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report domain.HealthReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 10, report.Total)
	assert.Equal(t, []string{"d1", "d2"}, report.DeadItemIDs)
}

func TestServer_HealthReport_Error(t *testing.T) {
	health := emptyHealthService()
	health.GetHealthReportFunc = func(ctx context.Context) (domain.HealthReport, error) {
		return domain.HealthReport{}, errors.New("store down")
	}
	ts := testServer(t, emptySuggester(), health)

	resp, err := http.Get(ts.URL + "/api/v1/health/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "failed to get health report", errResp["error"])
}

func TestServer_HealthCheck(t *testing.T) {
	health := emptyHealthService()
	health.CheckLinksHealthFunc = func(ctx context.Context, itemIDs []string) ([]domain.LinkCheckResult, error) {
		results := make([]domain.LinkCheckResult, 0, len(itemIDs))
		for _, id := range itemIDs {
			results = append(results, domain.LinkCheckResult{ItemID: id, Status: domain.LinkHealthy, StatusCode: 200})
		}
		return results, nil
	}
	ts := testServer(t, emptySuggester(), health)

	resp, err := http.Post(ts.URL+"/api/v1/health/check", "application/json",
		strings.NewReader(`{"item_ids":["i1","i2"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Results []domain.LinkCheckResult `json:"results"`
		Count   int                      `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, 2, payload.Count)
	require.Len(t, health.CheckLinksHealthCalls(), 1)
	assert.Equal(t, []string{"i1", "i2"}, health.CheckLinksHealthCalls()[0].ItemIDs)
}

func TestServer_HealthCheck_BadRequest(t *testing.T) {
	health := emptyHealthService()
	ts := testServer(t, emptySuggester(), health)

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/health/check", "application/json", strings.NewReader("not json"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("no item ids", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/health/check", "application/json", strings.NewReader(`{"item_ids":[]}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "no item ids provided", errResp["error"])
	})

	assert.Empty(t, health.CheckLinksHealthCalls())
}

func TestServer_HealthCheck_ServiceError(t *testing.T) {
	health := emptyHealthService()
	health.CheckLinksHealthFunc = func(ctx context.Context, itemIDs []string) ([]domain.LinkCheckResult, error) {
		return nil, errors.New("probe failed")
	}
	ts := testServer(t, emptySuggester(), health)

	resp, err := http.Post(ts.URL+"/api/v1/health/check", "application/json", strings.NewReader(`{"item_ids":["i1"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
	}
	srv := New(cfg, emptySuggester(), emptyHealthService(), "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
