package domain

import "time"

// EventType represents the kind of user action recorded in the activity log
type EventType string

// activity event types
const (
	EventSave      EventType = "save"
	EventRead      EventType = "read"
	EventHighlight EventType = "highlight"
	EventOrganize  EventType = "organize"
	EventSearch    EventType = "search"
)

// ActivityEvent is one immutable user action. Events are append-only,
// the intelligence core never mutates them.
type ActivityEvent struct {
	ID           string
	Type         EventType
	ItemID       string
	CollectionID string
	Metadata     map[string]string
	Timestamp    time.Time
}
