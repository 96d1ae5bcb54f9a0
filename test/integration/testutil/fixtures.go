package testutil

import (
	"net/http"
	"testing"

	"mocms/pkg/client"
)

const OwnerID = "65f1c0ffee00000000000001"

func Article(title string) map[string]any {
	return map[string]any{
		"title":   title,
		"summary": "integration summary",
		"content": "integration body",
		"tags":    []string{"go", "cms"},
		"state":   1,
	}
}

func User(email string) map[string]any {
	return map[string]any{
		"email":    email,
		"password": "secret123",
		"nickname": "tester",
		"mobile":   "+1 650 253 0000",
	}
}

func ColumnRequest(state any) map[string]any {
	return map[string]any{
		"uid":   OwnerID,
		"title": "My column",
		"state": state,
	}
}

func Setting() map[string]any {
	return map[string]any{
		"title":         "Site",
		"titleEn":       "Site",
		"keywords":      "cms",
		"keywordsEn":    "cms",
		"description":   "desc",
		"descriptionEn": "desc",
		"logo":          "/logo.png",
		"logo2":         "/logo2.png",
		"favicon":       "/favicon.ico",
		"footer":        map[string]any{"links": []string{"/about"}},
	}
}

// MustCreate posts body and returns the created document from the 201
// response envelope.
func MustCreate(t *testing.T, rc *client.ResourceClient, body any) map[string]any {
	t.Helper()
	resp, err := rc.Create(body)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	AssertStatus(t, resp, http.StatusCreated)
	return Data(t, resp)
}

// Data unwraps {"data": {...}} into a generic map.
func Data(t *testing.T, resp *client.Response) map[string]any {
	t.Helper()
	var out struct {
		Data map[string]any `json:"data"`
	}
	if err := resp.DecodeJSON(&out); err != nil {
		t.Fatalf("failed to decode response: %v (body: %s)", err, string(resp.Body))
	}
	return out.Data
}

type ListBody struct {
	Data []map[string]any `json:"data"`
	Meta struct {
		Page       int64 `json:"page"`
		PageSize   int64 `json:"pageSize"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"totalPages"`
	} `json:"meta"`
}

func List(t *testing.T, resp *client.Response) ListBody {
	t.Helper()
	AssertStatus(t, resp, http.StatusOK)
	var out ListBody
	if err := resp.DecodeJSON(&out); err != nil {
		t.Fatalf("failed to decode list: %v (body: %s)", err, string(resp.Body))
	}
	return out
}

type ErrorBody struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

func Error(t *testing.T, resp *client.Response) ErrorBody {
	t.Helper()
	var out ErrorBody
	if err := resp.DecodeJSON(&out); err != nil {
		t.Fatalf("failed to decode error: %v (body: %s)", err, string(resp.Body))
	}
	return out
}

func AssertStatus(t *testing.T, resp *client.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d. Body: %s", expected, resp.StatusCode, string(resp.Body))
	}
}
