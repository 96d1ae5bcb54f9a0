package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/sanitizer"
	"mocms/pkg/validation"
)

const invalidMobile = "must be a valid phone number"

type UserValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewUserValidator(log *logger.Logger) *UserValidator {
	return &UserValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *UserValidator) ValidateCreate(input *model.CreateUser) error {
	err := v.validate.Struct(input)
	if !validMobile(input.Mobile) {
		err = validation.Append(err, "mobile", invalidMobile)
	}
	return err
}

func (v *UserValidator) ValidateUpdate(input *model.UpdateUser) error {
	err := v.validate.Struct(input)
	if input.Mobile != nil && !validMobile(*input.Mobile) {
		err = validation.Append(err, "mobile", invalidMobile)
	}
	return err
}

// validMobile accepts an empty mobile, which clears the field.
func validMobile(mobile string) bool {
	return mobile == "" || sanitizer.SanitizePhone(mobile) != ""
}
