package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
	"mocms/pkg/normalize"
)

type Topic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UID         string             `bson:"uid"`
	Title       string             `bson:"title"`
	Summary     string             `bson:"summary"`
	Tags        []string           `bson:"tags"`
	Content     string             `bson:"content"`
	Views       int64              `bson:"views"`
	Praises     int64              `bson:"praises"`
	Collects    int64              `bson:"collects"`
	Comments    int64              `bson:"comments"`
	State       bool               `bson:"state"`
	TopTime     *time.Time         `bson:"top_time"`
	PublishTime *time.Time         `bson:"publish_time"`
	Attachments []Attachment       `bson:"attachments"`
	Timestamps  `bson:",inline"`
}

type TopicDTO struct {
	ID          string       `json:"id"`
	UID         string       `json:"uid"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Tags        []string     `json:"tags"`
	Content     string       `json:"content"`
	Views       int64        `json:"views"`
	Praises     int64        `json:"praises"`
	Collects    int64        `json:"collects"`
	Comments    int64        `json:"comments"`
	State       bool         `json:"state"`
	TopTime     *time.Time   `json:"topTime"`
	PublishTime *time.Time   `json:"publishTime"`
	Attachments []Attachment `json:"attachments"`
	TimestampsDTO
}

type CreateTopic struct {
	UID         string          `json:"uid" validate:"omitempty,objectid"`
	Title       string          `json:"title" validate:"required,max=255"`
	Summary     string          `json:"summary" validate:"max=2000"`
	Tags        []string        `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	Content     string          `json:"content" validate:"required"`
	Views       *int64          `json:"views" validate:"omitnil,gte=0"`
	Praises     *int64          `json:"praises" validate:"omitnil,gte=0"`
	Collects    *int64          `json:"collects" validate:"omitnil,gte=0"`
	Comments    *int64          `json:"comments" validate:"omitnil,gte=0"`
	State       normalize.Value `json:"state" validate:"boollike"`
	TopTime     NullableTime    `json:"topTime"`
	PublishTime NullableTime    `json:"publishTime"`
	Attachments []Attachment    `json:"attachments" validate:"omitempty,dive"`
}

type UpdateTopic struct {
	UID         *string         `json:"uid" validate:"omitnil,objectid"`
	Title       *string         `json:"title" validate:"omitnil,min=1,max=255"`
	Summary     *string         `json:"summary" validate:"omitnil,max=2000"`
	Tags        *[]string       `json:"tags" validate:"omitnil,max=20,dive,required,max=50"`
	Content     *string         `json:"content" validate:"omitnil,min=1"`
	Views       *int64          `json:"views" validate:"omitnil,gte=0"`
	Praises     *int64          `json:"praises" validate:"omitnil,gte=0"`
	Collects    *int64          `json:"collects" validate:"omitnil,gte=0"`
	Comments    *int64          `json:"comments" validate:"omitnil,gte=0"`
	State       normalize.Value `json:"state" validate:"boollike"`
	TopTime     NullableTime    `json:"topTime"`
	PublishTime NullableTime    `json:"publishTime"`
	Attachments *[]Attachment   `json:"attachments" validate:"omitnil,dive"`
}

type TopicFilter struct {
	httputil.ListQuery
	UID   string
	State *bool
}
