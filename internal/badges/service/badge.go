package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"mocms/internal/badges/repository"
	"mocms/internal/badges/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/sanitizer"
	"mocms/pkg/validation"
)

const (
	resourceName = "badge"
	displayName  = "Badge"
)

type BadgeService interface {
	Create(ctx context.Context, input *model.CreateBadge) (*model.BadgeDTO, error)
	GetByID(ctx context.Context, id string) (*model.BadgeDTO, error)
	List(ctx context.Context, filter model.BadgeFilter) ([]*model.BadgeDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateBadge) (*model.BadgeDTO, error)
	Delete(ctx context.Context, id string) error
}

type badgeService struct {
	repo      repository.BadgeRepository
	validator *validator.BadgeValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewBadgeService(
	repo repository.BadgeRepository,
	validator *validator.BadgeValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BadgeService {
	return &badgeService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func toDTO(badge *model.Badge) *model.BadgeDTO {
	return &model.BadgeDTO{
		ID:   badge.ID.Hex(),
		Name: badge.Name,
	}
}

func (s *badgeService) Create(ctx context.Context, input *model.CreateBadge) (*model.BadgeDTO, error) {
	input.Name = sanitizer.TrimAndNormalize(input.Name)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Badge validation failed", "name", input.Name, "error", err)
		return nil, validation.ToAppError(err, resourceName)
	}

	badge := &model.Badge{Name: input.Name}
	if err := s.repo.Create(ctx, badge); err != nil {
		s.cfg.Log.Error("Failed to create badge", "name", badge.Name, "error", err)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Badge created successfully", "id", badge.ID.Hex(), "name", badge.Name)

	dto := toDTO(badge)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *badgeService) GetByID(ctx context.Context, id string) (*model.BadgeDTO, error) {
	badge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mongotx.AppError(err, displayName, id, "retrieve")
	}
	return toDTO(badge), nil
}

func (s *badgeService) List(ctx context.Context, filter model.BadgeFilter) ([]*model.BadgeDTO, int64, error) {
	badges, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list badges", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve badges", err)
	}

	out := make([]*model.BadgeDTO, 0, len(badges))
	for _, badge := range badges {
		out = append(out, toDTO(badge))
	}
	return out, total, nil
}

func (s *badgeService) Update(ctx context.Context, id string, input *model.UpdateBadge) (*model.BadgeDTO, error) {
	if input.Name != nil {
		*input.Name = sanitizer.TrimAndNormalize(*input.Name)
	}

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Badge update validation failed", "id", id, "error", err)
		return nil, validation.ToAppError(err, resourceName)
	}

	if input.Name == nil {
		return nil, apperrors.NoUpdatableFields()
	}

	badge, err := s.repo.Update(ctx, id, bson.M{"name": *input.Name})
	if err != nil {
		s.cfg.Log.Error("Failed to update badge", "id", id, "error", err)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Badge updated successfully", "id", id)

	dto := toDTO(badge)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

// Delete removes the badge. Badges have no soft-deleted state.
func (s *badgeService) Delete(ctx context.Context, id string) error {
	badge, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to delete badge", "id", id, "error", err)
		return mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Badge deleted", "id", id)
	s.events.EmitHardDelete(ctx, id, toDTO(badge))
	return nil
}
