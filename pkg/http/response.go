package http

import (
	"encoding/json"
	"net/http"

	apperrors "mocms/pkg/errors"
)

type SuccessResponse struct {
	Data any `json:"data"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type PaginatedResponse struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPageMeta computes the list metadata. totalPages is never below one so
// an empty collection still reports a single (empty) page.
func NewPageMeta(page Page, total int64) PageMeta {
	pages := int64(1)
	if total > 0 && page.Size > 0 {
		pages = (total + int64(page.Size) - 1) / int64(page.Size)
	}
	return PageMeta{
		Page:       page.Number,
		PageSize:   page.Size,
		Total:      total,
		TotalPages: pages,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), appErr.Response())
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteDeleted(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusOK, DeletedResponse{Success: true})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WritePaginated(w http.ResponseWriter, data any, page Page, total int64) error {
	return WriteJSON(w, http.StatusOK, PaginatedResponse{
		Data: data,
		Meta: NewPageMeta(page, total),
	})
}
