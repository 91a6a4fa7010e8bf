package domain

// ActivityPattern is a derived behavioral profile. It is recomputed on demand
// as a pure function of the activity log and item inventory and is never
// persisted as a source of truth.
type ActivityPattern struct {
	PreferredHours          []int
	AvgSessionMinutes       float64
	DomainAffinity          map[string]float64
	StalenessThresholdDays  map[Category]int
	ReadingVelocity         float64 // items read per day
	OrganizationCadenceDays float64
	TagAffinity             map[string]float64
	CollectionAffinity      map[string]float64
}

// DefaultPattern returns the neutral pattern used when the activity log is
// empty or unreadable: mid-morning/afternoon/evening reading hours, 15-minute
// sessions, two reads a day, weekly organization.
func DefaultPattern() ActivityPattern {
	return ActivityPattern{
		PreferredHours:          []int{9, 10, 14, 15, 20, 21},
		AvgSessionMinutes:       15,
		DomainAffinity:          map[string]float64{},
		StalenessThresholdDays:  DefaultStalenessThresholds(),
		ReadingVelocity:         2,
		OrganizationCadenceDays: 7,
		TagAffinity:             map[string]float64{},
		CollectionAffinity:      map[string]float64{},
	}
}

// DefaultStalenessThresholds returns per-category staleness thresholds in days
func DefaultStalenessThresholds() map[Category]int {
	return map[Category]int{
		CategoryWork:     14,
		CategoryLearning: 21,
		CategoryPersonal: 30,
		CategoryGeneral:  30,
	}
}

// StaleReason explains why an item was flagged as neglected
type StaleReason string

// staleness reasons
const (
	StaleTimeBased     StaleReason = "time_based"
	StaleTopicShift    StaleReason = "topic_shift"
	StaleNeverAccessed StaleReason = "never_accessed"
	StaleDuplicate     StaleReason = "duplicate_content"
)

// StaleAction is the action suggested for a stale item
type StaleAction string

// suggested actions for stale items
const (
	ActionArchive  StaleAction = "archive"
	ActionReview   StaleAction = "review"
	ActionDelete   StaleAction = "delete"
	ActionOrganize StaleAction = "organize"
)

// StaleContentItem is an inbox item flagged as neglected. Computed fresh per
// call, never stored.
type StaleContentItem struct {
	Item                Item
	StalenessScore      float64 // 0..1
	Reason              StaleReason
	DaysSinceCreated    float64
	DaysSinceLastAccess *float64 // nil when never accessed
	SuggestedAction     StaleAction
}

// ContentCluster is an ephemeral grouping of related inbox items
type ContentCluster struct {
	Theme                   string
	Items                   []Item
	Confidence              float64 // 0..1
	SuggestedCollectionName string
	SuggestedTags           []string
}
