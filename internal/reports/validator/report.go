package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type ReportValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewReportValidator(log *logger.Logger) *ReportValidator {
	return &ReportValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *ReportValidator) ValidateCreate(input *model.CreateReport) error {
	return v.validate.Struct(input)
}

func (v *ReportValidator) ValidateUpdate(input *model.UpdateReport) error {
	return v.validate.Struct(input)
}
