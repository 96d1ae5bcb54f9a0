package service

import (
	"context"

	"mocms/internal/settings/repository"
	"mocms/internal/settings/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "setting"
	displayName  = "Setting"
)

type SettingService interface {
	Create(ctx context.Context, input *model.CreateSetting) (*model.SettingDTO, error)
	GetByID(ctx context.Context, id string) (*model.SettingDTO, error)
	List(ctx context.Context, filter model.SettingFilter) ([]*model.SettingDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateSetting) (*model.SettingDTO, error)
	Delete(ctx context.Context, id string) error
}

type settingService struct {
	repo      repository.SettingRepository
	validator *validator.SettingValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewSettingService(
	repo repository.SettingRepository,
	validator *validator.SettingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) SettingService {
	return &settingService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *settingService) Create(ctx context.Context, input *model.CreateSetting) (*model.SettingDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Setting validation failed", "title", input.Title, "error", err)
		return nil, validation.ToAppError(err, resourceName)
	}

	setting := newSetting(input)
	if err := s.repo.Create(ctx, setting); err != nil {
		s.cfg.Log.Error("Failed to create setting", "title", setting.Title, "error", err)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Setting created successfully", "id", setting.ID.Hex())

	dto := toDTO(setting)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *settingService) GetByID(ctx context.Context, id string) (*model.SettingDTO, error) {
	setting, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mongotx.AppError(err, displayName, id, "retrieve")
	}
	return toDTO(setting), nil
}

func (s *settingService) List(ctx context.Context, filter model.SettingFilter) ([]*model.SettingDTO, int64, error) {
	settings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list settings", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve settings", err)
	}

	out := make([]*model.SettingDTO, 0, len(settings))
	for _, setting := range settings {
		out = append(out, toDTO(setting))
	}
	return out, total, nil
}

func (s *settingService) Update(ctx context.Context, id string, input *model.UpdateSetting) (*model.SettingDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Setting update validation failed", "id", id, "error", err)
		return nil, validation.ToAppError(err, resourceName)
	}

	set := updateSet(input)
	if len(set) == 0 {
		return nil, apperrors.NoUpdatableFields()
	}

	setting, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update setting", "id", id, "error", err)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Setting updated successfully", "id", id, "fields", len(set))

	dto := toDTO(setting)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

func (s *settingService) Delete(ctx context.Context, id string) error {
	setting, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to delete setting", "id", id, "error", err)
		return mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Setting deleted", "id", id)
	s.events.EmitHardDelete(ctx, id, toDTO(setting))
	return nil
}
