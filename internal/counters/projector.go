// Package counters keeps the comments counter of articles and topics in step
// with comment events.
package counters

import (
	"context"
	"encoding/json"
	"errors"

	mongotx "mocms/pkg/db/mongo"
	"mocms/pkg/events"
	"mocms/pkg/kafka"
	"mocms/pkg/logger"
	"mocms/pkg/metrics"
	"mocms/pkg/model"
)

const fieldComments = "comments"

// Incrementer is implemented by the article and topic repositories.
type Incrementer interface {
	IncrementCounter(ctx context.Context, id string, field string, delta int64) error
}

type Projector struct {
	targets map[string]target
	log     *logger.Logger
}

type target struct {
	collection string
	repo       Incrementer
}

func NewProjector(articles, topics Incrementer, log *logger.Logger) *Projector {
	return &Projector{
		targets: map[string]target{
			model.CommentTypeArticle: {collection: "articles", repo: articles},
			model.CommentTypeTopic:   {collection: "topics", repo: topics},
		},
		log: log,
	}
}

// Handle is a kafka.MessageHandler. Events other than comment creation and
// deletion are acknowledged without side effects.
func (p *Projector) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.Event
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("invalid event payload", err)
	}

	var delta int64
	switch event.Type {
	case events.Type("comment", events.ActionCreated):
		delta = 1
	case events.Type("comment", events.ActionDeleted):
		delta = -1
	default:
		return nil
	}

	var comment model.CommentDTO
	if err := json.Unmarshal(event.Data, &comment); err != nil {
		return kafka.NewPermanentError("invalid comment data", err)
	}

	// A hard delete of a comment that was already soft deleted was counted
	// by the earlier event.
	if event.Hard && comment.DeleteTime != nil {
		return nil
	}

	t, ok := p.targets[comment.Type]
	if !ok {
		p.log.Debug("Skipping comment on untracked type", "type", comment.Type, "comment_id", event.ID)
		return nil
	}

	err := t.repo.IncrementCounter(ctx, comment.TypeID, fieldComments, delta)
	switch {
	case err == nil:
		metrics.CounterUpdatesTotal.WithLabelValues(t.collection, fieldComments).Inc()
		p.log.Info("Comment counter updated",
			"collection", t.collection,
			"id", comment.TypeID,
			"delta", delta,
			"event_id", msg.GetEventID(),
		)
		return nil
	case errors.Is(err, mongotx.ErrNotFound):
		p.log.Warn("Comment target no longer exists", "collection", t.collection, "id", comment.TypeID)
		return nil
	case errors.Is(err, mongotx.ErrInvalidID):
		return kafka.NewPermanentError("invalid comment target id", err)
	default:
		return kafka.NewTransientError("update comment counter", err)
	}
}
