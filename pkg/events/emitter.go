package events

import (
	"context"

	"mocms/pkg/logger"
)

// Emitter publishes events on behalf of a service. Failures are logged and
// never returned: the write they describe has already been committed.
type Emitter struct {
	publisher Publisher
	resource  string
	log       *logger.Logger
}

func NewEmitter(publisher Publisher, resource string, log *logger.Logger) *Emitter {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Emitter{publisher: publisher, resource: resource, log: log}
}

func (e *Emitter) Emit(ctx context.Context, action Action, id string, data any) {
	e.emit(ctx, action, id, false, data)
}

// EmitHardDelete marks the deleted event as a permanent removal.
func (e *Emitter) EmitHardDelete(ctx context.Context, id string, data any) {
	e.emit(ctx, ActionDeleted, id, true, data)
}

func (e *Emitter) emit(ctx context.Context, action Action, id string, hard bool, data any) {
	event, err := New(e.resource, action, id, data)
	if err != nil {
		e.log.Error("Failed to build event", "resource", e.resource, "action", action, "id", id, "error", err)
		return
	}
	event.Hard = hard

	if err := e.publisher.Publish(ctx, event); err != nil {
		e.log.Error("Failed to publish event", "type", event.Type, "id", id, "error", err)
	}
}
