package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type SettingValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewSettingValidator(log *logger.Logger) *SettingValidator {
	return &SettingValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *SettingValidator) ValidateCreate(input *model.CreateSetting) error {
	return v.validate.Struct(input)
}

func (v *SettingValidator) ValidateUpdate(input *model.UpdateSetting) error {
	return v.validate.Struct(input)
}
