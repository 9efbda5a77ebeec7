package events

import (
	"strings"
	"time"
)

// Event is anything published on the event bus.
type Event interface {
	// EventType is the subject suffix, e.g. "CONTENT_UPDATED".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionExpired Action = "expired"
)

// ContentChanged describes a create, update or delete of a content record.
type ContentChanged struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Slug string `json:"slug,omitempty"`
	// PreviousSlug is set when an update changed the slug.
	PreviousSlug string    `json:"previous_slug,omitempty"`
	Action       Action    `json:"action"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewContentChanged(kind, id, slug string, action Action) ContentChanged {
	return ContentChanged{Kind: kind, ID: id, Slug: slug, Action: action, OccurredAt: time.Now().UTC()}
}

func (e ContentChanged) EventType() string {
	return "CONTENT_" + strings.ToUpper(string(e.Action))
}

func (e ContentChanged) Payload() map[string]interface{} {
	return map[string]interface{}{
		"kind":          e.Kind,
		"id":            e.ID,
		"slug":          e.Slug,
		"previous_slug": e.PreviousSlug,
		"action":        string(e.Action),
		"occurred_at":   e.OccurredAt.Format(time.RFC3339),
	}
}

func (e ContentChanged) Timestamp() time.Time {
	return e.OccurredAt
}

// BaseEvent wraps an event received from the bus.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
