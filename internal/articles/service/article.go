package service

import (
	"context"

	"mocms/internal/articles/repository"
	"mocms/internal/articles/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "article"
	displayName  = "Article"
)

type ArticleService interface {
	Create(ctx context.Context, input *model.CreateArticle) (*model.ArticleDTO, error)
	GetByID(ctx context.Context, id string) (*model.ArticleDTO, error)
	List(ctx context.Context, filter model.ArticleFilter) ([]*model.ArticleDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateArticle) (*model.ArticleDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.ArticleDTO, error)
}

type articleService struct {
	repo      repository.ArticleRepository
	validator *validator.ArticleValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewArticleService(
	repo repository.ArticleRepository,
	validator *validator.ArticleValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ArticleService {
	return &articleService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *articleService) Create(ctx context.Context, input *model.CreateArticle) (*model.ArticleDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Article validation failed",
			"title", input.Title,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	article := newArticle(input, model.Now())
	if err := s.repo.Create(ctx, article); err != nil {
		s.cfg.Log.Error("Failed to create article",
			"title", article.Title,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Article created successfully",
		"id", article.ID.Hex(),
		"title", article.Title,
		"state", article.State,
	)

	dto := toDTO(article)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *articleService) GetByID(ctx context.Context, id string) (*model.ArticleDTO, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get article by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(article), nil
}

func (s *articleService) List(ctx context.Context, filter model.ArticleFilter) ([]*model.ArticleDTO, int64, error) {
	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list articles",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve articles", err)
	}
	return toDTOs(articles), total, nil
}

func (s *articleService) Update(ctx context.Context, id string, input *model.UpdateArticle) (*model.ArticleDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Article update validation failed",
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

	article, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update article",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Article updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(article)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

// Delete soft deletes the article and returns it, or removes it for good
// when hard is set, in which case the returned DTO is nil.
func (s *articleService) Delete(ctx context.Context, id string, hard bool) (*model.ArticleDTO, error) {
	if hard {
		article, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete article",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Article deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(article))
		return nil, nil
	}

	article, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete article",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Article deleted", "id", id)

	dto := toDTO(article)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
