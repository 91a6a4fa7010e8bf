package domain

import "time"

// SuggestionType identifies the kind of actionable recommendation
type SuggestionType string

// suggestion types
const (
	SuggestReadNext         SuggestionType = "read_next"
	SuggestFocusSession     SuggestionType = "focus_session"
	SuggestClearInbox       SuggestionType = "clear_inbox"
	SuggestCreateCollection SuggestionType = "create_collection"
	SuggestArchive          SuggestionType = "archive"
	SuggestOrganize         SuggestionType = "organize"
	SuggestReviewHighlights SuggestionType = "review_highlights"
	SuggestDigestOld        SuggestionType = "digest_old"
	SuggestDeleteDuplicates SuggestionType = "delete_duplicates"
)

// Priority ranks how urgent a suggestion is
type Priority string

// suggestion priorities
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Weight returns the numeric ranking weight of a priority
func (p Priority) Weight() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// SuggestionCategory groups suggestions by theme
type SuggestionCategory string

// suggestion categories
const (
	CategoryProductivity SuggestionCategory = "productivity"
	CategoryOrganization SuggestionCategory = "organization"
	CategoryLearningArea SuggestionCategory = "learning"
	CategoryMaintenance  SuggestionCategory = "maintenance"
)

// Suggestion is one actionable recommendation. Generated per call, the caller
// decides persistence.
type Suggestion struct {
	ID            string
	Type          SuggestionType
	Priority      Priority
	Confidence    float64 // 0..1
	Category      SuggestionCategory
	ActionData    map[string]string
	Reasoning     string
	Dismissible   bool
	EstimatedTime string
}

// Score is the ranking key: priority weight scaled by confidence
func (s Suggestion) Score() float64 {
	return float64(s.Priority.Weight()) * s.Confidence
}

// InboxSummary is a snapshot of inbox state computed on demand
type InboxSummary struct {
	TotalItems         int
	ItemsByCategory    map[Category]int
	StalestItem        *Item
	NewestItem         *Item
	AvgDaysInInbox     float64
	RecommendedActions []string
}

// BatchActionType is the kind of bulk mutation
type BatchActionType string

// batch action types
const (
	BatchArchive  BatchActionType = "archive"
	BatchOrganize BatchActionType = "organize"
	BatchDelete   BatchActionType = "delete"
)

// BatchAction is a planned bulk operation over a list of items
type BatchAction struct {
	Action         BatchActionType
	ItemIDs        []string
	Reason         string
	CollectionName string // target for organize actions
}

// BatchActionResult reports the outcome of executing a batch plan.
// Per-item failures are collected, partial progress still counts.
type BatchActionResult struct {
	Success            bool
	ItemsProcessed     int
	ItemsArchived      int
	CollectionsCreated int
	Errors             []string
	Summary            string
	CompletedAt        time.Time
}
