// Package events publishes resource lifecycle events for other services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event is the payload written to the events topic. Type is
// "<resource>.<action>", for example "comment.created".
type Event struct {
	Type       string          `json:"type"`
	Resource   string          `json:"resource"`
	Action     Action          `json:"action"`
	ID         string          `json:"id"`
	Hard       bool            `json:"hard,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// New builds an event for the resource row id with data JSON encoded.
func New(resource string, action Action, id string, data any) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s event data: %w", resource, err)
	}

	return Event{
		Type:       Type(resource, action),
		Resource:   resource,
		Action:     action,
		ID:         id,
		Data:       raw,
		OccurredAt: time.Now().UTC(),
	}, nil
}

func Type(resource string, action Action) string {
	return resource + "." + string(action)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
