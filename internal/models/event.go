package models

// Resource names used in events and cache keys.
const (
	ResourceCategory = "category"
	ResourceLink     = "link"
)

// Actions recorded for resource events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ResourceEvent describes a successful mutation of a category or link.
type ResourceEvent struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	UserID     string `json:"user_id"`     // UserID is the owner of the resource.
	Resource   string `json:"resource"`    // Resource is "category" or "link".
	Action     string `json:"action"`      // Action is "created", "updated" or "deleted".
	ResourceID string `json:"resource_id"` // ResourceID is the id of the mutated row.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix time (seconds) of the mutation.
}
