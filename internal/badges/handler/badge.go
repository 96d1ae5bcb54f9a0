package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mocms/internal/badges/service"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

const basePath = "/api/v1/badges"

type BadgeHandler struct {
	service service.BadgeService
	log     *logger.Logger
}

func NewBadgeHandler(service service.BadgeService, log *logger.Logger) *BadgeHandler {
	return &BadgeHandler{
		service: service,
		log:     log,
	}
}

func (h *BadgeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateBadge
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	badge, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, badge); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BadgeHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	badge, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, badge); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BadgeHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := extractFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	badges, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, badges, filter.Page, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *BadgeHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.UpdateBadge
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	badge, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, badge); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

// Delete always removes the badge; a hard query parameter is ignored.
func (h *BadgeHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteDeleted(w); err != nil {
		h.log.Error("failed to write deleted response", "handler", "Delete", "operation", "WriteDeleted", "error", err)
	}
}

func (h *BadgeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(basePath, h.List)
	router.POST(basePath, h.Create)
	router.GET(basePath+"/:id", h.GetByID)
	router.PUT(basePath+"/:id", h.Update)
	router.PATCH(basePath+"/:id", h.Update)
	router.DELETE(basePath+"/:id", h.Delete)
}

func (h *BadgeHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func extractFilter(r *http.Request) (model.BadgeFilter, error) {
	page, err := httputil.ExtractPage(r)
	if err != nil {
		return model.BadgeFilter{}, err
	}

	return model.BadgeFilter{
		ListQuery: httputil.ListQuery{
			Page:   page,
			Search: httputil.QueryString(r, "search"),
		},
	}, nil
}
