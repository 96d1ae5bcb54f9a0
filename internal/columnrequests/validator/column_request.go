package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type ColumnRequestValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewColumnRequestValidator(log *logger.Logger) *ColumnRequestValidator {
	return &ColumnRequestValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *ColumnRequestValidator) ValidateCreate(input *model.CreateColumnRequest) error {
	return v.validate.Struct(input)
}

func (v *ColumnRequestValidator) ValidateUpdate(input *model.UpdateColumnRequest) error {
	return v.validate.Struct(input)
}
