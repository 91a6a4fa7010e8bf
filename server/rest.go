package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// Suggester provides suggestion generation and inbox clearing
type Suggester interface {
	GenerateSuggestions(ctx context.Context) []domain.Suggestion
	TimeAwareSuggestions(ctx context.Context) []domain.Suggestion
	SummarizeAndPlanClear(ctx context.Context) (domain.InboxSummary, []domain.BatchAction, string)
	ExecuteBatchActions(ctx context.Context, actions []domain.BatchAction) domain.BatchActionResult
}

// HealthService provides link health reporting and on-demand checks
type HealthService interface {
	GetHealthReport(ctx context.Context) (domain.HealthReport, error)
	CheckLinksHealth(ctx context.Context, itemIDs []string) ([]domain.LinkCheckResult, error)
}

// suggestionsHandler returns the current ranked suggestions
func (s *Server) suggestionsHandler(w http.ResponseWriter, r *http.Request) {
	suggestions := s.suggest.GenerateSuggestions(r.Context())
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// timelySuggestionsHandler returns suggestions filtered by time of day
func (s *Server) timelySuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	suggestions := s.suggest.TimeAwareSuggestions(r.Context())
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// inboxSummaryHandler returns the inbox summary with a clearing plan
func (s *Server) inboxSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, actions, estimate := s.suggest.SummarizeAndPlanClear(r.Context())
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"summary":        summary,
		"actions":        actions,
		"estimated_time": estimate,
	})
}

// inboxClearHandler plans and executes the inbox clearing actions
func (s *Server) inboxClearHandler(w http.ResponseWriter, r *http.Request) {
	_, actions, _ := s.suggest.SummarizeAndPlanClear(r.Context())
	result := s.suggest.ExecuteBatchActions(r.Context(), actions)
	renderJSON(w, r, http.StatusOK, result)
}

// healthReportHandler returns the aggregate link health report
func (s *Server) healthReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.health.GetHealthReport(r.Context())
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err, "failed to get health report")
		return
	}
	renderJSON(w, r, http.StatusOK, report)
}

// healthCheckHandler runs synchronous checks for the requested items
func (s *Server) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemIDs []string `json:"item_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, err, "failed to decode request")
		return
	}
	if len(req.ItemIDs) == 0 {
		renderError(w, r, http.StatusBadRequest, nil, "no item ids provided")
		return
	}

	results, err := s.health.CheckLinksHealth(r.Context(), req.ItemIDs)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, err, "failed to check links")
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// renderJSON renders json response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		lgr.Printf("[ERROR] failed to encode response: %v", err)
	}
}

// renderError renders error response
func renderError(w http.ResponseWriter, r *http.Request, code int, err error, msg string) {
	errMsg := msg
	if err != nil {
		lgr.Printf("[WARN] %s: %v", msg, err)
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
