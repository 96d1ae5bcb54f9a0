package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mocms/internal/comments/service"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

const basePath = "/api/v1/comments"

type CommentHandler struct {
	service service.CommentService
	log     *logger.Logger
}

func NewCommentHandler(service service.CommentService, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log,
	}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateComment
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	comment, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, comment); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *CommentHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	comment, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, comment); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := extractFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	comments, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, comments, filter.Page, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.UpdateComment
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	comment, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, comment); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hard, err := httputil.QueryBool(r, "hard")
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	comment, err := h.service.Delete(r.Context(), ps.ByName("id"), hard)
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

	if err := httputil.WriteSuccess(w, comment); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CommentHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(basePath, h.List)
	router.POST(basePath, h.Create)
	router.GET(basePath+"/:id", h.GetByID)
	router.PUT(basePath+"/:id", h.Update)
	router.PATCH(basePath+"/:id", h.Update)
	router.DELETE(basePath+"/:id", h.Delete)
}

func (h *CommentHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func extractFilter(r *http.Request) (model.CommentFilter, error) {
	query, err := httputil.ExtractListQuery(r)
	if err != nil {
		return model.CommentFilter{}, err
	}

	filter := model.CommentFilter{
		ListQuery: query,
		Type:      httputil.QueryString(r, "type"),
	}
	for name, dst := range map[string]*string{
		"uid":       &filter.UID,
		"typeId":    &filter.TypeID,
		"commentId": &filter.CommentID,
	} {
		if *dst, err = httputil.QueryObjectID(r, name); err != nil {
			return model.CommentFilter{}, err
		}
	}
	return filter, nil
}
