package service

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"mocms/pkg/model"
	"mocms/pkg/normalize"
	"mocms/pkg/sanitizer"
)

const defaultOrgType = false

// stateCode maps a user state input to its storage code. New users without
// an explicit state start out active.
func stateCode(v normalize.Value) int {
	if v.IsAbsent() {
		return normalize.CodePositive
	}
	return normalize.UserState.Code(v)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func sanitizeCreate(in *model.CreateUser) {
	in.Email = sanitizer.NormalizeEmail(in.Email)
	in.Nickname = sanitizer.TrimAndNormalize(in.Nickname)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Avatar = strings.TrimSpace(in.Avatar)
	in.OrgTitle = strings.TrimSpace(in.OrgTitle)
	in.Summary = strings.TrimSpace(in.Summary)
}

func sanitizeUpdate(in *model.UpdateUser) {
	if in.Email != nil {
		*in.Email = sanitizer.NormalizeEmail(*in.Email)
	}
	if in.Nickname != nil {
		*in.Nickname = sanitizer.TrimAndNormalize(*in.Nickname)
	}
	for _, s := range []*string{in.Mobile, in.Avatar, in.OrgTitle, in.Summary} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
}

func newUser(in *model.CreateUser, passwordHash string, now time.Time) *model.User {
	user := &model.User{
		Email:        in.Email,
		PasswordHash: passwordHash,
		Nickname:     in.Nickname,
		Mobile:       sanitizer.SanitizePhone(in.Mobile),
		Avatar:       in.Avatar,
		Gender:       model.GenderUnknown,
		OrgType:      normalize.Boolean(in.OrgType, defaultOrgType),
		OrgTitle:     in.OrgTitle,
		Summary:      in.Summary,
		State:        stateCode(in.State),
		Timestamps:   model.NewTimestamps(now),
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.ManagerRoleID != nil {
		user.ManagerRoleID = *in.ManagerRoleID
	}
	if in.Points != nil {
		user.Points = *in.Points
	}
	return user
}

func toDTO(user *model.User) *model.UserDTO {
	return &model.UserDTO{
		ID:             user.ID.Hex(),
		Email:          user.Email,
		Nickname:       user.Nickname,
		Mobile:         user.Mobile,
		Avatar:         user.Avatar,
		Gender:         user.Gender,
		OrgType:        user.OrgType,
		OrgTitle:       user.OrgTitle,
		Summary:        user.Summary,
		ManagerRoleID:  user.ManagerRoleID,
		State:          normalize.UserState.FromCode(user.State),
		Points:         user.Points,
		Praises:        user.Praises,
		Follows:        user.Follows,
		Fans:           user.Fans,
		Topics:         user.Topics,
		Articles:       user.Articles,
		CurrDuration:   user.CurrDuration,
		MaxDuration:    user.MaxDuration,
		LastSignInDate: user.LastSignInDate,
		TimestampsDTO:  user.Timestamps.DTO(),
	}
}

func toDTOs(users []*model.User) []*model.UserDTO {
	out := make([]*model.UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toDTO(user))
	}
	return out
}

// updateSet lists the provided fields as a $set document. The password is
// hashed by the caller and added separately.
func updateSet(in *model.UpdateUser) bson.M {
	set := bson.M{}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Nickname != nil {
		set["nickname"] = *in.Nickname
	}
	if in.Mobile != nil {
		set["mobile"] = sanitizer.SanitizePhone(*in.Mobile)
	}
	if in.Avatar != nil {
		set["avatar"] = *in.Avatar
	}
	if in.Gender != nil {
		set["gender"] = *in.Gender
	}
	if orgType := normalize.OptionalBoolean(in.OrgType); orgType != nil {
		set["org_type"] = *orgType
	}
	if in.OrgTitle != nil {
		set["org_title"] = *in.OrgTitle
	}
	if in.Summary != nil {
		set["summary"] = *in.Summary
	}
	if in.ManagerRoleID != nil {
		set["manager_role_id"] = *in.ManagerRoleID
	}
	if !in.State.IsAbsent() {
		set["state"] = normalize.UserState.Code(in.State)
	}
	if in.Points != nil {
		set["points"] = *in.Points
	}
	return set
}
