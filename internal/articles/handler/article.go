package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"mocms/internal/articles/service"
	httputil "mocms/pkg/http"
	"mocms/pkg/logger"
	"mocms/pkg/model"
)

const basePath = "/api/v1/articles"

type ArticleHandler struct {
	service service.ArticleService
	log     *logger.Logger
}

func NewArticleHandler(service service.ArticleService, log *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		log:     log,
	}
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CreateArticle
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	article, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, article); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	article, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, article); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := extractFilter(r)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	articles, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, "List", err)
		return
	}

	if err := httputil.WritePaginated(w, articles, filter.Page, total); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "operation", "WritePaginated", "error", err)
	}
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.UpdateArticle
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	article, err := h.service.Update(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, article); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hard, err := httputil.QueryBool(r, "hard")
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	article, err := h.service.Delete(r.Context(), ps.ByName("id"), hard)
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

	if err := httputil.WriteSuccess(w, article); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ArticleHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(basePath, h.List)
	router.POST(basePath, h.Create)
	router.GET(basePath+"/:id", h.GetByID)
	router.PUT(basePath+"/:id", h.Update)
	router.PATCH(basePath+"/:id", h.Update)
	router.DELETE(basePath+"/:id", h.Delete)
}

func (h *ArticleHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func extractFilter(r *http.Request) (model.ArticleFilter, error) {
	query, err := httputil.ExtractListQuery(r)
	if err != nil {
		return model.ArticleFilter{}, err
	}

	columnID, err := httputil.QueryObjectID(r, "columnId")
	if err != nil {
		return model.ArticleFilter{}, err
	}

	state, err := httputil.QueryFlag(r, "state")
	if err != nil {
		return model.ArticleFilter{}, err
	}

	return model.ArticleFilter{
		ListQuery: query,
		ColumnID:  columnID,
		State:     state,
	}, nil
}
