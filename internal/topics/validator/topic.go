package validator

import (
	"fmt"

	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

type TopicValidator struct {
	validate *validation.Validator
	logger   *logger.Logger
}

func NewTopicValidator(log *logger.Logger) *TopicValidator {
	return &TopicValidator{
		validate: validation.New(),
		logger:   log,
	}
}

func (v *TopicValidator) ValidateCreate(input *model.CreateTopic) error {
	err := v.validate.Struct(input)
	return checkAttachments(err, input.Attachments)
}

func (v *TopicValidator) ValidateUpdate(input *model.UpdateTopic) error {
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
