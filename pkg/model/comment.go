package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
)

// Comment types that carry a comments counter on their target row.
const (
	CommentTypeArticle = "article"
	CommentTypeTopic   = "topic"
)

type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UID        string             `bson:"uid"`
	Type       string             `bson:"type"`
	TypeID     string             `bson:"type_id"`
	CommentID  string             `bson:"comment_id"`
	ReplyUID   string             `bson:"reply_uid"`
	Content    string             `bson:"content"`
	Praises    int64              `bson:"praises"`
	IP         string             `bson:"ip"`
	Timestamps `bson:",inline"`
}

type CommentDTO struct {
	ID        string `json:"id"`
	UID       string `json:"uid"`
	Type      string `json:"type"`
	TypeID    string `json:"typeId"`
	CommentID string `json:"commentId"`
	ReplyUID  string `json:"replyUid"`
	Content   string `json:"content"`
	Praises   int64  `json:"praises"`
	IP        string `json:"ip"`
	TimestampsDTO
}

type CreateComment struct {
	UID       string `json:"uid" validate:"required,objectid"`
	Type      string `json:"type" validate:"required,max=255"`
	TypeID    string `json:"typeId" validate:"required,objectid"`
	CommentID string `json:"commentId" validate:"omitempty,objectid"`
	ReplyUID  string `json:"replyUid" validate:"omitempty,objectid"`
	Content   string `json:"content" validate:"required"`
	Praises   *int64 `json:"praises" validate:"omitnil,gte=0"`
	IP        string `json:"ip" validate:"max=200"`
}

// UpdateComment cannot move a comment to another author.
type UpdateComment struct {
	Type      *string `json:"type" validate:"omitnil,min=1,max=255"`
	TypeID    *string `json:"typeId" validate:"omitnil,objectid"`
	CommentID *string `json:"commentId" validate:"omitnil,objectid"`
	ReplyUID  *string `json:"replyUid" validate:"omitnil,objectid"`
	Content   *string `json:"content" validate:"omitnil,min=1"`
	Praises   *int64  `json:"praises" validate:"omitnil,gte=0"`
	IP        *string `json:"ip" validate:"omitnil,max=200"`
}

type CommentFilter struct {
	httputil.ListQuery
	UID       string
	Type      string
	TypeID    string
	CommentID string
}
