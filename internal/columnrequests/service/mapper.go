package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
	"mocms/pkg/sanitizer"
)

func sanitizeCreate(in *model.CreateColumnRequest) {
	in.UID = strings.TrimSpace(in.UID)
	in.Title = sanitizer.TrimAndNormalize(in.Title)
	in.Thumbnail = strings.TrimSpace(in.Thumbnail)
	in.Summary = strings.TrimSpace(in.Summary)
}

func sanitizeUpdate(in *model.UpdateColumnRequest) {
	if in.UID != nil {
		*in.UID = strings.TrimSpace(*in.UID)
	}
	if in.Title != nil {
		*in.Title = sanitizer.TrimAndNormalize(*in.Title)
	}
	if in.Thumbnail != nil {
		*in.Thumbnail = strings.TrimSpace(*in.Thumbnail)
	}
	if in.Summary != nil {
		*in.Summary = strings.TrimSpace(*in.Summary)
	}
}

// newColumnRequest stores the normalized state code. A request submitted
// without a state is pending.
func newColumnRequest(in *model.CreateColumnRequest, now time.Time) *model.ColumnRequest {
	return &model.ColumnRequest{
		UID:        in.UID,
		Title:      in.Title,
		Thumbnail:  in.Thumbnail,
		Summary:    in.Summary,
		State:      normalize.ColumnRequestState.Code(in.State),
		Timestamps: model.NewTimestamps(now),
	}
}

func toDTO(request *model.ColumnRequest) *model.ColumnRequestDTO {
	return &model.ColumnRequestDTO{
		ID:            request.ID.Hex(),
		UID:           request.UID,
		Title:         request.Title,
		Thumbnail:     request.Thumbnail,
		Summary:       request.Summary,
		State:         normalize.ColumnRequestState.FromCode(request.State),
		TimestampsDTO: request.Timestamps.DTO(),
	}
}

func toDTOs(requests []*model.ColumnRequest) []*model.ColumnRequestDTO {
	out := make([]*model.ColumnRequestDTO, 0, len(requests))
	for _, request := range requests {
		out = append(out, toDTO(request))
	}
	return out
}

func updateSet(in *model.UpdateColumnRequest) bson.M {
	set := bson.M{}
	if in.UID != nil {
		set["uid"] = *in.UID
	}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Thumbnail != nil {
		set["thumbnail"] = *in.Thumbnail
	}
	if in.Summary != nil {
		set["summary"] = *in.Summary
	}
	if !in.State.IsAbsent() {
		set["state"] = normalize.ColumnRequestState.Code(in.State)
	}
	return set
}
