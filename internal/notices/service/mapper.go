package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

// Notices start out unread.
const defaultIsNew = true

func sanitizeCreate(in *model.CreateNotice) {
	in.UID = strings.TrimSpace(in.UID)
	in.Category = strings.TrimSpace(in.Category)
	in.Content = strings.TrimSpace(in.Content)
	in.SendUID = strings.TrimSpace(in.SendUID)
}

func sanitizeUpdate(in *model.UpdateNotice) {
	for _, s := range []*string{in.UID, in.Category, in.Content, in.SendUID} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func newNotice(in *model.CreateNotice, now time.Time) *model.Notice {
	return &model.Notice{
		UID:        in.UID,
		Category:   in.Category,
		Content:    in.Content,
		SendUID:    in.SendUID,
		IsNew:      normalize.Boolean(in.IsNew, defaultIsNew),
		Timestamps: model.NewTimestamps(now),
	}
}

func toDTO(notice *model.Notice) *model.NoticeDTO {
	return &model.NoticeDTO{
		ID:            notice.ID.Hex(),
		UID:           notice.UID,
		Category:      notice.Category,
		Content:       notice.Content,
		SendUID:       notice.SendUID,
		IsNew:         notice.IsNew,
		TimestampsDTO: notice.Timestamps.DTO(),
	}
}

func toDTOs(notices []*model.Notice) []*model.NoticeDTO {
	out := make([]*model.NoticeDTO, 0, len(notices))
	for _, notice := range notices {
		out = append(out, toDTO(notice))
	}
	return out
}

func updateSet(in *model.UpdateNotice) bson.M {
	set := bson.M{}
	if in.UID != nil {
		set["uid"] = *in.UID
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.SendUID != nil {
		set["send_uid"] = *in.SendUID
	}
	if isNew := normalize.OptionalBoolean(in.IsNew); isNew != nil {
		set["is_new"] = *isNew
	}
	return set
}
