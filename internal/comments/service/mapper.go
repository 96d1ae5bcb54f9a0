package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/pkg/model"
)

func sanitizeCreate(in *model.CreateComment) {
	in.UID = strings.TrimSpace(in.UID)
	in.Type = strings.TrimSpace(in.Type)
	in.TypeID = strings.TrimSpace(in.TypeID)
	in.CommentID = strings.TrimSpace(in.CommentID)
	in.ReplyUID = strings.TrimSpace(in.ReplyUID)
	in.Content = strings.TrimSpace(in.Content)
	in.IP = strings.TrimSpace(in.IP)
}

func sanitizeUpdate(in *model.UpdateComment) {
	for _, s := range []*string{in.Type, in.TypeID, in.CommentID, in.ReplyUID, in.Content, in.IP} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func newComment(in *model.CreateComment, now time.Time) *model.Comment {
	comment := &model.Comment{
		UID:        in.UID,
		Type:       in.Type,
		TypeID:     in.TypeID,
		CommentID:  in.CommentID,
		ReplyUID:   in.ReplyUID,
		Content:    in.Content,
		IP:         in.IP,
		Timestamps: model.NewTimestamps(now),
	}
	if in.Praises != nil {
		comment.Praises = *in.Praises
	}
	return comment
}

func toDTO(comment *model.Comment) *model.CommentDTO {
	return &model.CommentDTO{
		ID:            comment.ID.Hex(),
		UID:           comment.UID,
		Type:          comment.Type,
		TypeID:        comment.TypeID,
		CommentID:     comment.CommentID,
		ReplyUID:      comment.ReplyUID,
		Content:       comment.Content,
		Praises:       comment.Praises,
		IP:            comment.IP,
		TimestampsDTO: comment.Timestamps.DTO(),
	}
}

func toDTOs(comments []*model.Comment) []*model.CommentDTO {
	out := make([]*model.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toDTO(comment))
	}
	return out
}

func updateSet(in *model.UpdateComment) bson.M {
	set := bson.M{}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.TypeID != nil {
		set["type_id"] = *in.TypeID
	}
	if in.CommentID != nil {
		set["comment_id"] = *in.CommentID
	}
	if in.ReplyUID != nil {
		set["reply_uid"] = *in.ReplyUID
	}
	if in.Content != nil {
		set["content"] = *in.Content
	}
	if in.Praises != nil {
		set["praises"] = *in.Praises
	}
	if in.IP != nil {
		set["ip"] = *in.IP
	}
	return set
}
