package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"mocms/internal/users/repository"
	"mocms/internal/users/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "user"
	displayName  = "User"
)

type UserService interface {
	Create(ctx context.Context, input *model.CreateUser) (*model.UserDTO, error)
	GetByID(ctx context.Context, id string) (*model.UserDTO, error)
	List(ctx context.Context, filter model.UserFilter) ([]*model.UserDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateUser) (*model.UserDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.UserDTO, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	validator *validator.UserValidator,
	publisher events.Publisher,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *userService) Create(ctx context.Context, input *model.CreateUser) (*model.UserDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("User validation failed",
			"email", input.Email,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to create user", err)
	}
	user := newUser(input, hash, model.Now())

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifyEmailAvailable(sessCtx, user.Email, ""); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create user",
			"email", user.Email,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("User created successfully",
		"id", user.ID.Hex(),
		"email", user.Email,
		"state", user.State,
	)

	dto := toDTO(user)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

// verifyEmailAvailable fails with a conflict when a live user other than
// selfID already owns email.
func (s *userService) verifyEmailAvailable(ctx context.Context, email, selfID string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check for duplicates: %w", err)
	}
	if existing != nil && existing.ID.Hex() != selfID {
		return apperrors.Conflict(fmt.Sprintf("User with email %s already exists (id: %s)", email, existing.ID.Hex()))
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get user by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(user), nil
}

func (s *userService) List(ctx context.Context, filter model.UserFilter) ([]*model.UserDTO, int64, error) {
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list users",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve users", err)
	}
	return toDTOs(users), total, nil
}

func (s *userService) Update(ctx context.Context, id string, input *model.UpdateUser) (*model.UserDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("User update validation failed",
			"id", id,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	set := updateSet(input)
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, apperrors.Internal("Failed to update user", err)
		}
		set["password"] = hash
	}
	if len(set) == 0 {
		return nil, apperrors.NoUpdatableFields()
	}
	set[mongotx.FieldUpdateTime] = model.Now()

	var user *model.User
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if input.Email != nil {
			if err := s.verifyEmailAvailable(sessCtx, *input.Email, id); err != nil {
				return err
			}
		}
		updated, err := s.repo.Update(sessCtx, id, set)
		if err != nil {
			return err
		}
		user = updated
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update user",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("User updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(user)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

func (s *userService) Delete(ctx context.Context, id string, hard bool) (*model.UserDTO, error) {
	if hard {
		user, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete user",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("User deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(user))
		return nil, nil
	}

	user, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete user",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("User deleted", "id", id)

	dto := toDTO(user)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
