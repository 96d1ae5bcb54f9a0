package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
	"mocms/pkg/sanitizer"
)

const defaultState = false

func sanitizeCreate(in *model.CreateTopic) {
	in.UID = strings.TrimSpace(in.UID)
	in.Title = sanitizer.TrimAndNormalize(in.Title)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Tags = sanitizer.NormalizeTags(in.Tags)
}

func sanitizeUpdate(in *model.UpdateTopic) {
	if in.UID != nil {
		*in.UID = strings.TrimSpace(*in.UID)
	}
	if in.Title != nil {
		*in.Title = sanitizer.TrimAndNormalize(*in.Title)
	}
	if in.Summary != nil {
		*in.Summary = strings.TrimSpace(*in.Summary)
	}
	if in.Tags != nil {
		*in.Tags = sanitizer.NormalizeTags(*in.Tags)
	}
}

func newTopic(in *model.CreateTopic, now time.Time) *model.Topic {
	return &model.Topic{
		UID:         in.UID,
		Title:       in.Title,
		Summary:     in.Summary,
		Tags:        in.Tags,
		Content:     in.Content,
		Views:       valueOr(in.Views),
		Praises:     valueOr(in.Praises),
		Collects:    valueOr(in.Collects),
		Comments:    valueOr(in.Comments),
		State:       normalize.Boolean(in.State, defaultState),
		TopTime:     in.TopTime.Ptr(),
		PublishTime: in.PublishTime.Ptr(),
		Attachments: in.Attachments,
		Timestamps:  model.NewTimestamps(now),
	}
}

func valueOr(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func toDTO(topic *model.Topic) *model.TopicDTO {
	return &model.TopicDTO{
		ID:            topic.ID.Hex(),
		UID:           topic.UID,
		Title:         topic.Title,
		Summary:       topic.Summary,
		Tags:          topic.Tags,
		Content:       topic.Content,
		Views:         topic.Views,
		Praises:       topic.Praises,
		Collects:      topic.Collects,
		Comments:      topic.Comments,
		State:         topic.State,
		TopTime:       topic.TopTime,
		PublishTime:   topic.PublishTime,
		Attachments:   topic.Attachments,
		TimestampsDTO: topic.Timestamps.DTO(),
	}
}

func toDTOs(topics []*model.Topic) []*model.TopicDTO {
	out := make([]*model.TopicDTO, 0, len(topics))
	for _, topic := range topics {
		out = append(out, toDTO(topic))
	}
	return out
}

// updateSet lists the provided fields as a $set document. update_time is
// left to the caller so an empty result means nothing was provided.
func updateSet(in *model.UpdateTopic) bson.M {
	set := bson.M{}
	if in.UID != nil {
		set["uid"] = *in.UID
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Summary != nil {
		set["summary"] = *in.Summary
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Views != nil {
		set["views"] = *in.Views
	}
	if in.Praises != nil {
		set["praises"] = *in.Praises
	}
	if in.Collects != nil {
		set["collects"] = *in.Collects
	}
	if in.Comments != nil {
		set["comments"] = *in.Comments
	}
	if state := normalize.OptionalBoolean(in.State); state != nil {
		set["state"] = *state
	}
	if in.TopTime.Set {
		set["top_time"] = in.TopTime.Ptr()
	}
	if in.PublishTime.Set {
		set["publish_time"] = in.PublishTime.Ptr()
	}
	if in.Attachments != nil {
		set["attachments"] = *in.Attachments
	}
	return set
}
