package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
	"mocms/pkg/normalize"
)

// Report flags a piece of content identified by Type and TypeID. TypeData
// holds a free-form snapshot of the reported content.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UID        string             `bson:"uid"`
	Type       string             `bson:"type"`
	TypeID     string             `bson:"type_id"`
	Category   int64              `bson:"category"`
	Summary    string             `bson:"summary"`
	State      int                `bson:"state"`
	TypeData   any                `bson:"type_data"`
	Timestamps `bson:",inline"`
}

type ReportDTO struct {
	ID       string          `json:"id"`
	UID      string          `json:"uid"`
	Type     string          `json:"type"`
	TypeID   string          `json:"typeId"`
	Category int64           `json:"category"`
	Summary  string          `json:"summary"`
	State    normalize.State `json:"state"`
	TypeData any             `json:"typeData"`
	TimestampsDTO
}

type CreateReport struct {
	UID      string          `json:"uid" validate:"required,objectid"`
	Type     string          `json:"type" validate:"required,max=255"`
	TypeID   string          `json:"typeId" validate:"required,objectid"`
	Category *int64          `json:"category" validate:"omitnil,gte=0"`
	Summary  string          `json:"summary"`
	State    normalize.Value `json:"state" validate:"tristate=report_state"`
	TypeData any             `json:"typeData"`
}

// UpdateReport leaves TypeData untouched when it is nil.
type UpdateReport struct {
	UID      *string         `json:"uid" validate:"omitnil,objectid"`
	Type     *string         `json:"type" validate:"omitnil,min=1,max=255"`
	TypeID   *string         `json:"typeId" validate:"omitnil,objectid"`
	Category *int64          `json:"category" validate:"omitnil,gte=0"`
	Summary  *string         `json:"summary"`
	State    normalize.Value `json:"state" validate:"tristate=report_state"`
	TypeData any             `json:"typeData"`
}

type ReportFilter struct {
	httputil.ListQuery
	UID      string
	Type     string
	TypeID   string
	Category *int64
	State    *int
}
