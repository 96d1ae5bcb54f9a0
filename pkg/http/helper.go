package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "mocms/pkg/errors"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Page struct {
	Number int
	Size   int
}

func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Size)
}

func (p Page) Limit() int64 {
	return int64(p.Size)
}

// ExtractPage reads page and pageSize. Missing values fall back to the
// defaults; malformed or out-of-range values are rejected.
func ExtractPage(r *http.Request) (Page, error) {
	query := r.URL.Query()
	page := Page{Number: DefaultPage, Size: DefaultPageSize}

	if s := strings.TrimSpace(query.Get("page")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return Page{}, apperrors.InvalidInput("invalid page parameter: " + s)
		}
		page.Number = v
	}

	if s := strings.TrimSpace(query.Get("pageSize")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > MaxPageSize {
			return Page{}, apperrors.InvalidInput(fmt.Sprintf("pageSize must be between 1 and %d, got: %s", MaxPageSize, s))
		}
		page.Size = v
	}

	return page, nil
}

// QueryBool reads an optional boolean query parameter.
func QueryBool(r *http.Request, name string) (bool, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return v, nil
}

// QueryInt reads an optional integer query parameter; nil means absent.
func QueryInt(r *http.Request, name string) (*int64, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return &v, nil
}

func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// DecodeJSON decodes a request body into v. Any decode failure, including an
// empty body, is reported as invalid input.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.InvalidInput("Request body is required")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperrors.New(apperrors.CodeBadRequest, "Request body too large", http.StatusRequestEntityTooLarge)
		}
		return apperrors.InvalidInput("Invalid request body: " + err.Error())
	}
	return nil
}
