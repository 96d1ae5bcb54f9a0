package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
)

type Badge struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type BadgeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateBadge struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateBadge struct {
	Name *string `json:"name" validate:"omitnil,min=1,max=255"`
}

type BadgeFilter struct {
	httputil.ListQuery
}
