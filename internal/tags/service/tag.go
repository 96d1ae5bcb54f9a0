package service

import (
	"context"

	"mocms/internal/tags/repository"
	"mocms/internal/tags/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "tag"
	displayName  = "Tag"
)

type TagService interface {
	Create(ctx context.Context, input *model.CreateTag) (*model.TagDTO, error)
	GetByID(ctx context.Context, id string) (*model.TagDTO, error)
	List(ctx context.Context, filter model.TagFilter) ([]*model.TagDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateTag) (*model.TagDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.TagDTO, error)
}

type tagService struct {
	repo      repository.TagRepository
	validator *validator.TagValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewTagService(
	repo repository.TagRepository,
	validator *validator.TagValidator,
	publisher events.Publisher,
	cfg *config.Config,
) TagService {
	return &tagService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *tagService) Create(ctx context.Context, input *model.CreateTag) (*model.TagDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Tag validation failed",
			"title", input.Title,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	tag := newTag(input, model.Now())
	if err := s.repo.Create(ctx, tag); err != nil {
		s.cfg.Log.Error("Failed to create tag",
			"title", tag.Title,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Tag created successfully",
		"id", tag.ID.Hex(),
		"title", tag.Title,
		"is_top", tag.IsTop,
	)

	dto := toDTO(tag)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *tagService) GetByID(ctx context.Context, id string) (*model.TagDTO, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get tag by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(tag), nil
}

func (s *tagService) List(ctx context.Context, filter model.TagFilter) ([]*model.TagDTO, int64, error) {
	tags, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list tags",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve tags", err)
	}
	return toDTOs(tags), total, nil
}

func (s *tagService) Update(ctx context.Context, id string, input *model.UpdateTag) (*model.TagDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Tag update validation failed",
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

	tag, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update tag",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Tag updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(tag)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

func (s *tagService) Delete(ctx context.Context, id string, hard bool) (*model.TagDTO, error) {
	if hard {
		tag, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete tag",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Tag deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(tag))
		return nil, nil
	}

	tag, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete tag",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Tag deleted", "id", id)

	dto := toDTO(tag)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
