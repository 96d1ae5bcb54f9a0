package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusBadRequest)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.StatusCode())
	}
}

func TestStatusCode_DefaultsToInternal(t *testing.T) {
	err := &AppError{Code: CodeInternal, Message: "boom"}
	if err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusInternalServerError)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without underlying error",
			appErr:   NotFound("Article"),
			expected: "NOT_FOUND: Article not found",
		},
		{
			name:     "with underlying error",
			appErr:   Internal("Failed to update tag", errors.New("connection reset")),
			expected: "INTERNAL_ERROR: Failed to update tag (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appErr := Wrap(cause, CodeInternal, "wrapped", http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Errorf("errors.Is should find the original cause")
	}
}

func TestValidation_IsBadRequest(t *testing.T) {
	err := Validation("Invalid article payload", map[string]any{"fields": []string{"title"}})

	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.StatusCode())
	}
	if err.Details["fields"] == nil {
		t.Errorf("expected details to be kept")
	}
}

func TestNoUpdatableFields(t *testing.T) {
	err := NoUpdatableFields()

	if err.StatusCode() != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.StatusCode())
	}
	if err.Message != "No updatable fields provided" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestNotFoundWithID(t *testing.T) {
	err := NotFoundWithID("Report", "65f1c0ffee00000000000001")

	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.StatusCode())
	}
	if err.Details["id"] != "65f1c0ffee00000000000001" {
		t.Errorf("expected id detail, got %v", err.Details["id"])
	}
}

func TestStatusConstructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{InvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest},
		{Conflict("email taken"), CodeConflict, http.StatusConflict},
		{Timeout("slow"), CodeTimeout, http.StatusGatewayTimeout},
		{Unavailable("MongoDB"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
		}
		if tt.err.StatusCode() != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.code, tt.status, tt.err.StatusCode())
		}
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("User")
	wrapped := fmt.Errorf("service: %w", appErr)

	if !IsAppError(appErr) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError() should see through wrapping")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("User")
	if AsAppError(fmt.Errorf("outer: %w", appErr)) != appErr {
		t.Errorf("AsAppError() should unwrap to the same AppError")
	}

	regularErr := errors.New("regular error")
	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	body := string(NotFoundWithID("Tag", "abc").ToJSON())

	for _, want := range []string{`"error":"Tag not found"`, `"code":"NOT_FOUND"`, `"id":"abc"`} {
		if !strings.Contains(body, want) {
			t.Errorf("ToJSON() = %s, missing %s", body, want)
		}
	}
}
