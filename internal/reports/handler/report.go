package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mocms/internal/reports/service"
	apperrors "mocms/pkg/errors"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

const basePath = "/api/v1/reports"

type ReportHandler struct {
	service service.ReportService
	log     *logger.Logger
}

func NewReportHandler(service service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateReport
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	report, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, report); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReportHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	report, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, report); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := extractFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	reports, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, reports, filter.Page, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.UpdateReport
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	report, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, report); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hard, err := httputil.QueryBool(r, "hard")
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	report, err := h.service.Delete(r.Context(), ps.ByName("id"), hard)
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if hard {
		if err := httputil.WriteDeleted(w); err != nil {
			h.log.Error("failed to write deleted response", "handler", "Delete", "operation", "WriteDeleted", "error", err)
		}
		return
	}

	if err := httputil.WriteSuccess(w, report); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReportHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(basePath, h.List)
	router.POST(basePath, h.Create)
	router.GET(basePath+"/:id", h.GetByID)
	router.PUT(basePath+"/:id", h.Update)
	router.PATCH(basePath+"/:id", h.Update)
	router.DELETE(basePath+"/:id", h.Delete)
}

func (h *ReportHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func extractFilter(r *http.Request) (model.ReportFilter, error) {
	query, err := httputil.ExtractListQuery(r)
	if err != nil {
		return model.ReportFilter{}, err
	}

	uid, err := httputil.QueryObjectID(r, "uid")
	if err != nil {
		return model.ReportFilter{}, err
	}

	typeID, err := httputil.QueryObjectID(r, "typeId")
	if err != nil {
		return model.ReportFilter{}, err
	}

	category, err := httputil.QueryInt(r, "category")
	if err != nil {
		return model.ReportFilter{}, err
	}
	if category != nil && *category < 0 {
		return model.ReportFilter{}, apperrors.InvalidInput("category must be a non-negative integer")
	}

	state, err := httputil.QueryState(r, "state", normalize.ReportState)
	if err != nil {
		return model.ReportFilter{}, err
	}

	return model.ReportFilter{
		ListQuery: query,
		UID:       uid,
		Type:      httputil.QueryString(r, "type"),
		TypeID:    typeID,
		Category:  category,
		State:     state,
	}, nil
}
