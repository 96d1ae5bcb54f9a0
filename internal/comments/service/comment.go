package service

import (
	"context"

	"mocms/internal/comments/repository"
	"mocms/internal/comments/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "comment"
	displayName  = "Comment"
)

type CommentService interface {
	Create(ctx context.Context, input *model.CreateComment) (*model.CommentDTO, error)
	GetByID(ctx context.Context, id string) (*model.CommentDTO, error)
	List(ctx context.Context, filter model.CommentFilter) ([]*model.CommentDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateComment) (*model.CommentDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.CommentDTO, error)
}

type commentService struct {
	repo      repository.CommentRepository
	validator *validator.CommentValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewCommentService(
	repo repository.CommentRepository,
	validator *validator.CommentValidator,
	publisher events.Publisher,
	cfg *config.Config,
) CommentService {
	return &commentService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *commentService) Create(ctx context.Context, input *model.CreateComment) (*model.CommentDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Comment validation failed",
			"type", input.Type,
			"type_id", input.TypeID,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	comment := newComment(input, model.Now())
	if err := s.repo.Create(ctx, comment); err != nil {
		s.cfg.Log.Error("Failed to create comment",
			"uid", comment.UID,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Comment created successfully",
		"id", comment.ID.Hex(),
		"type", comment.Type,
		"type_id", comment.TypeID,
	)

	dto := toDTO(comment)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *commentService) GetByID(ctx context.Context, id string) (*model.CommentDTO, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get comment by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(comment), nil
}

func (s *commentService) List(ctx context.Context, filter model.CommentFilter) ([]*model.CommentDTO, int64, error) {
	comments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list comments",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve comments", err)
	}
	return toDTOs(comments), total, nil
}

func (s *commentService) Update(ctx context.Context, id string, input *model.UpdateComment) (*model.CommentDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Comment update validation failed",
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

	comment, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update comment",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Comment updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(comment)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

// Delete soft deletes the comment and returns it, or removes it for good
// when hard is set, in which case the returned DTO is nil.
func (s *commentService) Delete(ctx context.Context, id string, hard bool) (*model.CommentDTO, error) {
	if hard {
		comment, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete comment",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Comment deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(comment))
		return nil, nil
	}

	comment, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete comment",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Comment deleted", "id", id)

	dto := toDTO(comment)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
