package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mocms/internal/notices/service"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

const basePath = "/api/v1/notices"

type NoticeHandler struct {
	service service.NoticeService
	log     *logger.Logger
}

func NewNoticeHandler(service service.NoticeService, log *logger.Logger) *NoticeHandler {
	return &NoticeHandler{
		service: service,
		log:     log,
	}
}

func (h *NoticeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateNotice
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	notice, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, notice); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *NoticeHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	notice, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, notice); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := extractFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	notices, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, notices, filter.Page, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *NoticeHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.UpdateNotice
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	notice, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, notice); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *NoticeHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hard, err := httputil.QueryBool(r, "hard")
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	notice, err := h.service.Delete(r.Context(), ps.ByName("id"), hard)
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

	if err := httputil.WriteSuccess(w, notice); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *NoticeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(basePath, h.List)
	router.POST(basePath, h.Create)
	router.GET(basePath+"/:id", h.GetByID)
	router.PUT(basePath+"/:id", h.Update)
	router.PATCH(basePath+"/:id", h.Update)
	router.DELETE(basePath+"/:id", h.Delete)
}

func (h *NoticeHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func extractFilter(r *http.Request) (model.NoticeFilter, error) {
	query, err := httputil.ExtractListQuery(r)
	if err != nil {
		return model.NoticeFilter{}, err
	}

	uid, err := httputil.QueryObjectID(r, "uid")
	if err != nil {
		return model.NoticeFilter{}, err
	}

	sendUID, err := httputil.QueryObjectID(r, "sendUid")
	if err != nil {
		return model.NoticeFilter{}, err
	}

	isNew, err := httputil.QueryFlag(r, "isNew")
	if err != nil {
		return model.NoticeFilter{}, err
	}

	return model.NoticeFilter{
		ListQuery: query,
		UID:       uid,
		SendUID:   sendUID,
		IsNew:     isNew,
	}, nil
}
