package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
	"mocms/pkg/validation"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validation.ValidationErrors
	require.True(t, errors.As(err, &errs), "expected validation errors, got %v", err)
	out := map[string]string{}
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func validUser() model.CreateUser {
	return model.CreateUser{
		Email:    "ada@example.com",
		Password: "secret1",
		Nickname: "ada",
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewUserValidator(logger.Discard())
	gender := 4

	tests := []struct {
		name   string
		mutate func(u *model.CreateUser)
		fields []string
	}{
		{"valid", func(u *model.CreateUser) {}, nil},
		{"state label", func(u *model.CreateUser) { u.State = normalize.Label("disabled") }, nil},
		{"state code", func(u *model.CreateUser) { u.State = normalize.Int(-1) }, nil},
		{"org type string", func(u *model.CreateUser) { u.OrgType = normalize.Label("FALSE") }, nil},
		{"mobile", func(u *model.CreateUser) { u.Mobile = "054-123-4567" }, nil},
		{"bad email", func(u *model.CreateUser) { u.Email = "ada" }, []string{"email"}},
		{"short password", func(u *model.CreateUser) { u.Password = "123" }, []string{"password"}},
		{"gender out of range", func(u *model.CreateUser) { u.Gender = &gender }, []string{"gender"}},
		{"state from another rule", func(u *model.CreateUser) { u.State = normalize.Label("approved") }, []string{"state"}},
		{"state out of domain", func(u *model.CreateUser) { u.State = normalize.Int(7) }, []string{"state"}},
		{"org type label", func(u *model.CreateUser) { u.OrgType = normalize.Label("yes") }, []string{"orgType"}},
		{"bad mobile", func(u *model.CreateUser) { u.Mobile = "12" }, []string{"mobile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			err := v.ValidateCreate(&u)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			got := fieldMessages(t, err)
			assert.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestValidateUpdate_Mobile(t *testing.T) {
	v := NewUserValidator(logger.Discard())
	bad := "not a phone"
	empty := ""

	got := fieldMessages(t, v.ValidateUpdate(&model.UpdateUser{Mobile: &bad}))
	assert.Equal(t, invalidMobile, got["mobile"])

	assert.NoError(t, v.ValidateUpdate(&model.UpdateUser{Mobile: &empty}))
}
