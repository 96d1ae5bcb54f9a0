package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type BadgeValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewBadgeValidator(log *logger.Logger) *BadgeValidator {
	return &BadgeValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *BadgeValidator) ValidateCreate(input *model.CreateBadge) error {
	return v.validate.Struct(input)
}

func (v *BadgeValidator) ValidateUpdate(input *model.UpdateBadge) error {
	return v.validate.Struct(input)
}
