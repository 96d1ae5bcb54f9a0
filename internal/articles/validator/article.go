package validator

import (
	"fmt"

	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type ArticleValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewArticleValidator(log *logger.Logger) *ArticleValidator {
	return &ArticleValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *ArticleValidator) ValidateCreate(input *model.CreateArticle) error {
	err := v.validate.Struct(input)
	return checkAttachments(err, input.Attachments)
}

func (v *ArticleValidator) ValidateUpdate(input *model.UpdateArticle) error {
	err := v.validate.Struct(input)
	if input.Attachments != nil {
		err = checkAttachments(err, *input.Attachments)
	}
	return err
}

func checkAttachments(err error, attachments []model.Attachment) error {
	for i, a := range attachments {
		if a.IsEmpty() {
			err = validation.Append(err, fmt.Sprintf("attachments[%d]", i), "must include at least one populated property")
		}
	}
	return err
}
