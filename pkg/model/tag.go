package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
	"mocms/pkg/normalize"
)

type Tag struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	IsTop      bool               `bson:"is_top"`
	Timestamps `bson:",inline"`
}

type TagDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	IsTop bool   `json:"isTop"`
	TimestampsDTO
}

type CreateTag struct {
	Title string          `json:"title" validate:"required,max=255"`
	IsTop normalize.Value `json:"isTop" validate:"boollike"`
}

type UpdateTag struct {
	Title *string         `json:"title" validate:"omitnil,min=1,max=255"`
	IsTop normalize.Value `json:"isTop" validate:"boollike"`
}

type TagFilter struct {
	httputil.ListQuery
	IsTop *bool
}
