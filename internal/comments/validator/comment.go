package validator

import (
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type CommentValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewCommentValidator(log *logger.Logger) *CommentValidator {
	return &CommentValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *CommentValidator) ValidateCreate(input *model.CreateComment) error {
	return v.validate.Struct(input)
}

func (v *CommentValidator) ValidateUpdate(input *model.UpdateComment) error {
	return v.validate.Struct(input)
}
