package service

import (
	"context"

	"mocms/internal/columnrequests/repository"
	"mocms/internal/columnrequests/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "column_request"
	displayName  = "Column request"
)

type ColumnRequestService interface {
	Create(ctx context.Context, input *model.CreateColumnRequest) (*model.ColumnRequestDTO, error)
	GetByID(ctx context.Context, id string) (*model.ColumnRequestDTO, error)
	List(ctx context.Context, filter model.ColumnRequestFilter) ([]*model.ColumnRequestDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateColumnRequest) (*model.ColumnRequestDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.ColumnRequestDTO, error)
}

type requestService struct {
	repo      repository.ColumnRequestRepository
	validator *validator.ColumnRequestValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewColumnRequestService(
	repo repository.ColumnRequestRepository,
	validator *validator.ColumnRequestValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ColumnRequestService {
	return &requestService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *requestService) Create(ctx context.Context, input *model.CreateColumnRequest) (*model.ColumnRequestDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Column request validation failed",
			"uid", input.UID,
			"title", input.Title,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	request := newColumnRequest(input, model.Now())
	if err := s.repo.Create(ctx, request); err != nil {
		s.cfg.Log.Error("Failed to create column request",
			"uid", request.UID,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Column request created successfully",
		"id", request.ID.Hex(),
		"uid", request.UID,
		"state", request.State,
	)

	dto := toDTO(request)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *requestService) GetByID(ctx context.Context, id string) (*model.ColumnRequestDTO, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get column request by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(request), nil
}

func (s *requestService) List(ctx context.Context, filter model.ColumnRequestFilter) ([]*model.ColumnRequestDTO, int64, error) {
	requests, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list column requests",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve column requests", err)
	}
	return toDTOs(requests), total, nil
}

func (s *requestService) Update(ctx context.Context, id string, input *model.UpdateColumnRequest) (*model.ColumnRequestDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Column request update validation failed",
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

	request, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update column request",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Column request updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(request)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

func (s *requestService) Delete(ctx context.Context, id string, hard bool) (*model.ColumnRequestDTO, error) {
	if hard {
		request, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete column request",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Column request deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(request))
		return nil, nil
	}

	request, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete column request",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Column request deleted", "id", id)

	dto := toDTO(request)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
