package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mocms/internal/columnrequests/service"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/model"
	"mocms/pkg/normalize"
)

const basePath = "/api/v1/column-requests"

type ColumnRequestHandler struct {
	service service.ColumnRequestService
	log     *logger.Logger
}

func NewColumnRequestHandler(service service.ColumnRequestService, log *logger.Logger) *ColumnRequestHandler {
	return &ColumnRequestHandler{
		service: service,
		log:     log,
	}
}

func (h *ColumnRequestHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateColumnRequest
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	request, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, request); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ColumnRequestHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	request, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, request); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ColumnRequestHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := extractFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	requests, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, requests, filter.Page, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *ColumnRequestHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.UpdateColumnRequest
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	request, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, request); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ColumnRequestHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hard, err := httputil.QueryBool(r, "hard")
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	request, err := h.service.Delete(r.Context(), ps.ByName("id"), hard)
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

	if err := httputil.WriteSuccess(w, request); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ColumnRequestHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(basePath, h.List)
	router.POST(basePath, h.Create)
	router.GET(basePath+"/:id", h.GetByID)
	router.PUT(basePath+"/:id", h.Update)
	router.PATCH(basePath+"/:id", h.Update)
	router.DELETE(basePath+"/:id", h.Delete)
}

func (h *ColumnRequestHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func extractFilter(r *http.Request) (model.ColumnRequestFilter, error) {
	query, err := httputil.ExtractListQuery(r)
	if err != nil {
		return model.ColumnRequestFilter{}, err
	}

	uid, err := httputil.QueryObjectID(r, "uid")
	if err != nil {
		return model.ColumnRequestFilter{}, err
	}

	state, err := httputil.QueryState(r, "state", normalize.ColumnRequestState)
	if err != nil {
		return model.ColumnRequestFilter{}, err
	}

	return model.ColumnRequestFilter{
		ListQuery: query,
		UID:       uid,
		State:     state,
	}, nil
}
