package service

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
	"mocms/pkg/sanitizer"
)

const defaultIsTop = false

func sanitizeCreate(in *model.CreateTag) {
	in.Title = sanitizer.TrimAndNormalize(in.Title)
}

func sanitizeUpdate(in *model.UpdateTag) {
	if in.Title != nil {
		*in.Title = sanitizer.TrimAndNormalize(*in.Title)
	}
}

func newTag(in *model.CreateTag, now time.Time) *model.Tag {
	return &model.Tag{
		Title:      in.Title,
		IsTop:      normalize.Boolean(in.IsTop, defaultIsTop),
		Timestamps: model.NewTimestamps(now),
	}
}

func toDTO(tag *model.Tag) *model.TagDTO {
	return &model.TagDTO{
		ID:            tag.ID.Hex(),
		Title:         tag.Title,
		IsTop:         tag.IsTop,
		TimestampsDTO: tag.Timestamps.DTO(),
	}
}

func toDTOs(tags []*model.Tag) []*model.TagDTO {
	out := make([]*model.TagDTO, 0, len(tags))
	for _, tag := range tags {
		out = append(out, toDTO(tag))
	}
	return out
}

func updateSet(in *model.UpdateTag) bson.M {
	set := bson.M{}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if isTop := normalize.OptionalBoolean(in.IsTop); isTop != nil {
		set["is_top"] = *isTop
	}
	return set
}
