package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type NoticeValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewNoticeValidator(log *logger.Logger) *NoticeValidator {
	return &NoticeValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *NoticeValidator) ValidateCreate(input *model.CreateNotice) error {
	return v.validate.Struct(input)
}

func (v *NoticeValidator) ValidateUpdate(input *model.UpdateNotice) error {
	return v.validate.Struct(input)
}
