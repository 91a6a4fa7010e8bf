package domain

import "time"

// LinkStatus is the health state of a saved URL
type LinkStatus string

// link health statuses
const (
	LinkHealthy     LinkStatus = "healthy"
	LinkRedirected  LinkStatus = "redirected"
	LinkDead        LinkStatus = "dead"
	LinkUnreachable LinkStatus = "unreachable"
	LinkChecking    LinkStatus = "checking"
)

// LinkHealthRecord is the per-item health state. Created on first check,
// updated in place on every recheck, never deleted while the item exists.
type LinkHealthRecord struct {
	ItemID            string     `json:"item_id"`
	URL               string     `json:"url"`
	Status            LinkStatus `json:"status"`
	LastChecked       time.Time  `json:"last_checked"`
	StatusCode        int        `json:"status_code,omitempty"`
	RedirectURL       string     `json:"redirect_url,omitempty"`
	Error             string     `json:"error,omitempty"`
	ResponseTimeMs    int64      `json:"response_time_ms,omitempty"`
	RecoveryAttempted bool       `json:"recovery_attempted"`
	RecoverySuccess   bool       `json:"recovery_success"`
	AlternativeURLs   []string   `json:"alternative_urls,omitempty"`
}

// LinkCheckResult is the transient outcome of one probe, folded into a
// LinkHealthRecord by the monitor.
type LinkCheckResult struct {
	ItemID         string
	URL            string
	Success        bool
	Status         LinkStatus
	StatusCode     int
	RedirectURL    string
	Error          string
	ResponseTimeMs int64
}

// RecoveryMethod identifies the archive provider that produced a snapshot
type RecoveryMethod string

// archive recovery methods, tried in this order
const (
	RecoveryWayback      RecoveryMethod = "wayback"
	RecoveryGoogleCache  RecoveryMethod = "google_cache"
	RecoveryArchiveToday RecoveryMethod = "archive_today"
)

// RecoveryResult is the transient outcome of one archive-provider attempt
type RecoveryResult struct {
	Success      bool
	RecoveredURL string
	Method       RecoveryMethod
	Timestamp    time.Time
	Error        string
}

// HealthReport aggregates all persisted health records
type HealthReport struct {
	Total       int                `json:"total"`
	ByStatus    map[LinkStatus]int `json:"by_status"`
	DeadItemIDs []string           `json:"dead_item_ids"`
	GeneratedAt time.Time          `json:"generated_at"`
}
