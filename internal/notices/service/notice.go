package service

import (
	"context"

	"mocms/internal/notices/repository"
	"mocms/internal/notices/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "notice"
	displayName  = "Notice"
)

type NoticeService interface {
	Create(ctx context.Context, input *model.CreateNotice) (*model.NoticeDTO, error)
	GetByID(ctx context.Context, id string) (*model.NoticeDTO, error)
	List(ctx context.Context, filter model.NoticeFilter) ([]*model.NoticeDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateNotice) (*model.NoticeDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.NoticeDTO, error)
}

type noticeService struct {
	repo      repository.NoticeRepository
	validator *validator.NoticeValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewNoticeService(
	repo repository.NoticeRepository,
	validator *validator.NoticeValidator,
	publisher events.Publisher,
	cfg *config.Config,
) NoticeService {
	return &noticeService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *noticeService) Create(ctx context.Context, input *model.CreateNotice) (*model.NoticeDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Notice validation failed",
			"uid", input.UID,
			"send_uid", input.SendUID,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	notice := newNotice(input, model.Now())
	if err := s.repo.Create(ctx, notice); err != nil {
		s.cfg.Log.Error("Failed to create notice",
			"uid", notice.UID,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Notice created successfully",
		"id", notice.ID.Hex(),
		"uid", notice.UID,
		"category", notice.Category,
	)

	dto := toDTO(notice)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *noticeService) GetByID(ctx context.Context, id string) (*model.NoticeDTO, error) {
	notice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get notice by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(notice), nil
}

func (s *noticeService) List(ctx context.Context, filter model.NoticeFilter) ([]*model.NoticeDTO, int64, error) {
	notices, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list notices",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve notices", err)
	}
	return toDTOs(notices), total, nil
}

func (s *noticeService) Update(ctx context.Context, id string, input *model.UpdateNotice) (*model.NoticeDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Notice update validation failed",
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

	notice, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update notice",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Notice updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(notice)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

func (s *noticeService) Delete(ctx context.Context, id string, hard bool) (*model.NoticeDTO, error) {
	if hard {
		notice, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete notice",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Notice deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(notice))
		return nil, nil
	}

	notice, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete notice",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Notice deleted", "id", id)

	dto := toDTO(notice)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
