package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type TagValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewTagValidator(log *logger.Logger) *TagValidator {
	return &TagValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *TagValidator) ValidateCreate(input *model.CreateTag) error {
	return v.validate.Struct(input)
}

func (v *TagValidator) ValidateUpdate(input *model.UpdateTag) error {
	return v.validate.Struct(input)
}
