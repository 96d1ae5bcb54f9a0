package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
	"mocms/pkg/normalize"
)

// Notice is a message delivered to UID on behalf of SendUID. IsNew stays
// true until the recipient reads it.
type Notice struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UID        string             `bson:"uid"`
	Category   string             `bson:"category"`
	Content    string             `bson:"content"`
	SendUID    string             `bson:"send_uid"`
	IsNew      bool               `bson:"is_new"`
	Timestamps `bson:",inline"`
}

type NoticeDTO struct {
	ID       string `json:"id"`
	UID      string `json:"uid"`
	Category string `json:"category"`
	Content  string `json:"content"`
	SendUID  string `json:"sendUid"`
	IsNew    bool   `json:"isNew"`
	TimestampsDTO
}

type CreateNotice struct {
	UID      string          `json:"uid" validate:"required,objectid"`
	Category string          `json:"category" validate:"max=20"`
	Content  string          `json:"content"`
	SendUID  string          `json:"sendUid" validate:"required,objectid"`
	IsNew    normalize.Value `json:"isNew" validate:"boollike"`
}

type UpdateNotice struct {
	UID      *string         `json:"uid" validate:"omitnil,objectid"`
	Category *string         `json:"category" validate:"omitnil,max=20"`
	Content  *string         `json:"content"`
	SendUID  *string         `json:"sendUid" validate:"omitnil,objectid"`
	IsNew    normalize.Value `json:"isNew" validate:"boollike"`
}

type NoticeFilter struct {
	httputil.ListQuery
	UID     string
	SendUID string
	IsNew   *bool
}
