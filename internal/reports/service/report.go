package service

import (
	"context"

	"mocms/internal/reports/repository"
	"mocms/internal/reports/validator"
	"mocms/pkg/config"
	mongotx "mocms/pkg/db/mongo"
	apperrors "mocms/pkg/errors"
	"mocms/pkg/events"
	"mocms/pkg/model"
	"mocms/pkg/validation"
)

const (
	resourceName = "report"
	displayName  = "Report"
)

type ReportService interface {
	Create(ctx context.Context, input *model.CreateReport) (*model.ReportDTO, error)
	GetByID(ctx context.Context, id string) (*model.ReportDTO, error)
	List(ctx context.Context, filter model.ReportFilter) ([]*model.ReportDTO, int64, error)
	Update(ctx context.Context, id string, input *model.UpdateReport) (*model.ReportDTO, error)
	Delete(ctx context.Context, id string, hard bool) (*model.ReportDTO, error)
}

type reportService struct {
	repo      repository.ReportRepository
	validator *validator.ReportValidator
	events    *events.Emitter
	cfg       *config.Config
}

func NewReportService(
	repo repository.ReportRepository,
	validator *validator.ReportValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ReportService {
	return &reportService{
		repo:      repo,
		validator: validator,
		events:    events.NewEmitter(publisher, resourceName, cfg.Log),
		cfg:       cfg,
	}
}

func (s *reportService) Create(ctx context.Context, input *model.CreateReport) (*model.ReportDTO, error) {
	sanitizeCreate(input)

	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Report validation failed",
			"type", input.Type,
			"type_id", input.TypeID,
			"error", err,
		)
		return nil, validation.ToAppError(err, resourceName)
	}

	report := newReport(input, model.Now())
	if err := s.repo.Create(ctx, report); err != nil {
		s.cfg.Log.Error("Failed to create report",
			"uid", report.UID,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, "", "create")
	}

	s.cfg.Log.Info("Report created successfully",
		"id", report.ID.Hex(),
		"type", report.Type,
		"type_id", report.TypeID,
		"state", report.State,
	)

	dto := toDTO(report)
	s.events.Emit(ctx, events.ActionCreated, dto.ID, dto)
	return dto, nil
}

func (s *reportService) GetByID(ctx context.Context, id string) (*model.ReportDTO, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		appErr := mongotx.AppError(err, displayName, id, "retrieve")
		if appErr.Code == apperrors.CodeInternal {
			s.cfg.Log.Error("Failed to get report by ID",
				"id", id,
				"error", err,
			)
		}
		return nil, appErr
	}
	return toDTO(report), nil
}

func (s *reportService) List(ctx context.Context, filter model.ReportFilter) ([]*model.ReportDTO, int64, error) {
	reports, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.cfg.Log.Error("Failed to list reports",
			"page", filter.Page.Number,
			"page_size", filter.Page.Size,
			"error", err,
		)
		return nil, 0, apperrors.Internal("Failed to retrieve reports", err)
	}
	return toDTOs(reports), total, nil
}

func (s *reportService) Update(ctx context.Context, id string, input *model.UpdateReport) (*model.ReportDTO, error) {
	sanitizeUpdate(input)

	if err := s.validator.ValidateUpdate(input); err != nil {
		s.cfg.Log.Warn("Report update validation failed",
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

	report, err := s.repo.Update(ctx, id, set)
	if err != nil {
		s.cfg.Log.Error("Failed to update report",
			"id", id,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "update")
	}

	s.cfg.Log.Info("Report updated successfully",
		"id", id,
		"fields", len(set),
	)

	dto := toDTO(report)
	s.events.Emit(ctx, events.ActionUpdated, id, dto)
	return dto, nil
}

func (s *reportService) Delete(ctx context.Context, id string, hard bool) (*model.ReportDTO, error) {
	if hard {
		report, err := s.repo.Delete(ctx, id)
		if err != nil {
			s.cfg.Log.Error("Failed to delete report",
				"id", id,
				"hard", true,
				"error", err,
			)
			return nil, mongotx.AppError(err, displayName, id, "delete")
		}

		s.cfg.Log.Info("Report deleted permanently", "id", id)
		s.events.EmitHardDelete(ctx, id, toDTO(report))
		return nil, nil
	}

	report, err := s.repo.SoftDelete(ctx, id, model.Now())
	if err != nil {
		s.cfg.Log.Error("Failed to delete report",
			"id", id,
			"hard", false,
			"error", err,
		)
		return nil, mongotx.AppError(err, displayName, id, "delete")
	}

	s.cfg.Log.Info("Report deleted", "id", id)

	dto := toDTO(report)
	s.events.Emit(ctx, events.ActionDeleted, id, dto)
	return dto, nil
}
