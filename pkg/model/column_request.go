package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
	"mocms/pkg/normalize"
)

// ColumnRequest is a user's application to open a column. State is stored
// as a ColumnRequestState code.
type ColumnRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UID        string             `bson:"uid"`
	Title      string             `bson:"title"`
	Thumbnail  string             `bson:"thumbnail"`
	Summary    string             `bson:"summary"`
	State      int                `bson:"state"`
	Timestamps `bson:",inline"`
}

type ColumnRequestDTO struct {
	ID        string          `json:"id"`
	UID       string          `json:"uid"`
	Title     string          `json:"title"`
	Thumbnail string          `json:"thumbnail"`
	Summary   string          `json:"summary"`
	State     normalize.State `json:"state"`
	TimestampsDTO
}

type CreateColumnRequest struct {
	UID       string          `json:"uid" validate:"required,objectid"`
	Title     string          `json:"title" validate:"required,max=255"`
	Thumbnail string          `json:"thumbnail" validate:"max=255"`
	Summary   string          `json:"summary" validate:"max=4000"`
	State     normalize.Value `json:"state" validate:"tristate=column_request_state"`
}

type UpdateColumnRequest struct {
	UID       *string         `json:"uid" validate:"omitnil,objectid"`
	Title     *string         `json:"title" validate:"omitnil,min=1,max=255"`
	Thumbnail *string         `json:"thumbnail" validate:"omitnil,max=255"`
	Summary   *string         `json:"summary" validate:"omitnil,max=4000"`
	State     normalize.Value `json:"state" validate:"tristate=column_request_state"`
}

type ColumnRequestFilter struct {
	httputil.ListQuery
	UID   string
	State *int
}
