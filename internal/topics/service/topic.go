package service

import (
	"context"

	"mocms/internal/topics/repository"
	"mocms/internal/topics/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "topic"
	displayName  = "Topic"
)

type TopicService interface {
	Create(ctx context.Context, input *model.CreateTopic) (*model.TopicDTO, error)
	GetByID(ctx context.Context, id string) (*model.TopicDTO, error)
	List(ctx context.Context, filter model.TopicFilter) ([]*model.TopicDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateTopic) (*model.TopicDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.TopicDTO, error)
}

type topicService struct {
	repo      repository.TopicRepository
	validator *validator.TopicValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewTopicService(
	repo repository.TopicRepository,
	validator *validator.TopicValidator,
	publisher events.Publisher,
	cfg *config.Config,
) TopicService {
	return &topicService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *topicService) Create(ctx context.Context, input *model.CreateTopic) (*model.TopicDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Topic validation failed",
			"title", input.Title,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	topic := newTopic(input, model.Now())
	if err := s.repo.Create(ctx, topic); err != nil {
		s.cfg.Log.Error("Failed to create topic",
			"title", topic.Title,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Topic created successfully",
		"id", topic.ID.Hex(),
		"title", topic.Title,
		"state", topic.State,
	)

	dto := toDTO(topic)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *topicService) GetByID(ctx context.Context, id string) (*model.TopicDTO, error) {
	topic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get topic by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(topic), nil
}

func (s *topicService) List(ctx context.Context, filter model.TopicFilter) ([]*model.TopicDTO, int64, error) {
	topics, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list topics",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve topics", err)
	}
	return toDTOs(topics), total, nil
}

func (s *topicService) Update(ctx context.Context, id string, input *model.UpdateTopic) (*model.TopicDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Topic update validation failed",
			"id", id,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	set := updateSet(input)
	if len(set) == 0 {
		return nil, apperrors.NoUpdatableFields()
	}
	set[mongotx.FieldUpdateTime] = model.Now()

	topic, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update topic",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Topic updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(topic)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

// Delete soft deletes the topic and returns it, or removes it for good
// when hard is set, in which case the returned DTO is nil.
func (s *topicService) Delete(ctx context.Context, id string, hard bool) (*model.TopicDTO, error) {
	if hard {
		topic, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete topic",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Topic deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(topic))
		return nil, nil
	}

	topic, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete topic",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Topic deleted", "id", id)

	dto := toDTO(topic)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
