package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	httputil "mocms/pkg/http"
	"mocms/pkg/normalize"
)

const GenderUnknown = 3

// User is stored with its state as a tri-state code and its password as a
// bcrypt hash.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	PasswordHash   string             `bson:"password"`
	Nickname       string             `bson:"nickname"`
	Mobile         string             `bson:"mobile"`
	Avatar         string             `bson:"avatar"`
	Gender         int                `bson:"gender"`
	OrgType        bool               `bson:"org_type"`
	OrgTitle       string             `bson:"org_title"`
	Summary        string             `bson:"summary"`
	ManagerRoleID  int64              `bson:"manager_role_id"`
	State          int                `bson:"state"`
	Points         int64              `bson:"points"`
	Praises        int64              `bson:"praises"`
	Follows        int64              `bson:"follows"`
	Fans           int64              `bson:"fans"`
	Topics         int64              `bson:"topics"`
	Articles       int64              `bson:"articles"`
	CurrDuration   int64              `bson:"curr_duration"`
	MaxDuration    int64              `bson:"max_duration"`
	LastSignInDate *time.Time         `bson:"last_sign_in_date"`
	Timestamps     `bson:",inline"`
}

type UserDTO struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Nickname       string          `json:"nickname"`
	Mobile         string          `json:"mobile"`
	Avatar         string          `json:"avatar"`
	Gender         int             `json:"gender"`
	OrgType        bool            `json:"orgType"`
	OrgTitle       string          `json:"orgTitle"`
	Summary        string          `json:"summary"`
	ManagerRoleID  int64           `json:"managerRoleId"`
	State          normalize.State `json:"state"`
	Points         int64           `json:"points"`
	Praises        int64           `json:"praises"`
	Follows        int64           `json:"follows"`
	Fans           int64           `json:"fans"`
	Topics         int64           `json:"topics"`
	Articles       int64           `json:"articles"`
	CurrDuration   int64           `json:"currDuration"`
	MaxDuration    int64           `json:"maxDuration"`
	LastSignInDate *time.Time      `json:"lastSignInDate"`
	TimestampsDTO
}

type CreateUser struct {
	Email         string          `json:"email" validate:"required,email"`
	Password      string          `json:"password" validate:"required,min=6"`
	Nickname      string          `json:"nickname" validate:"required,max=255"`
	Mobile        string          `json:"mobile" validate:"max=100"`
	Avatar        string          `json:"avatar" validate:"max=255"`
	Gender        *int            `json:"gender" validate:"omitnil,gte=0,lte=3"`
	OrgType       normalize.Value `json:"orgType" validate:"boolstr"`
	OrgTitle      string          `json:"orgTitle" validate:"max=255"`
	Summary       string          `json:"summary" validate:"max=255"`
	ManagerRoleID *int64          `json:"managerRoleId" validate:"omitnil,gte=0"`
	State         normalize.Value `json:"state" validate:"tristate=user_state"`
	Points        *int64          `json:"points" validate:"omitnil,gte=0"`
}

type UpdateUser struct {
	Email         *string         `json:"email" validate:"omitnil,email"`
	Password      *string         `json:"password" validate:"omitnil,min=6"`
	Nickname      *string         `json:"nickname" validate:"omitnil,min=1,max=255"`
	Mobile        *string         `json:"mobile" validate:"omitnil,max=100"`
	Avatar        *string         `json:"avatar" validate:"omitnil,max=255"`
	Gender        *int            `json:"gender" validate:"omitnil,gte=0,lte=3"`
	OrgType       normalize.Value `json:"orgType" validate:"boolstr"`
	OrgTitle      *string         `json:"orgTitle" validate:"omitnil,max=255"`
	Summary       *string         `json:"summary" validate:"omitnil,max=255"`
	ManagerRoleID *int64          `json:"managerRoleId" validate:"omitnil,gte=0"`
	State         normalize.Value `json:"state" validate:"tristate=user_state"`
	Points        *int64          `json:"points" validate:"omitnil,gte=0"`
}

type UserFilter struct {
	httputil.ListQuery
	Email  string
	Mobile string
	State  *int
}
