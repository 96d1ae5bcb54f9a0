package integration

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mocms/test/integration/testutil"
)

func TestColumnRequests_StateNormalization(t *testing.T) {
	env := testutil.NewTestEnv(t)
	mongo, requests := env.Setup(t, "column-requests")

	tests := []struct {
		name      string
		state     any
		wantLabel string
		wantCode  int
	}{
		{"label approved", "approved", "approved", 1},
		{"code rejected", 0, "rejected", 0},
		{"omitted is pending", nil, "pending", -1},
		{"explicit pending code", -1, "pending", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := testutil.MustCreate(t, requests, testutil.ColumnRequest(tt.state))
			assert.Equal(t, tt.wantLabel, created["state"])
			assert.EqualValues(t, tt.wantCode, mongo.FindRaw(t, "column_requests", created["id"].(string))["state"])
		})
	}

	list := testutil.List(t, mustList(t, requests, url.Values{"state": {"pending"}}))
	assert.EqualValues(t, 2, list.Meta.Total)
}

func TestColumnRequests_RejectsUnknownState(t *testing.T) {
	env := testutil.NewTestEnv(t)
	_, requests := env.Setup(t, "column-requests")

	resp, err := requests.Create(testutil.ColumnRequest("maybe"))
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusBadRequest)

	resp, err = requests.List(0, 0, url.Values{"state": {"maybe"}})
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusBadRequest)
}

func TestReports_DefaultPendingAndApprove(t *testing.T) {
	env := testutil.NewTestEnv(t)
	_, reports := env.Setup(t, "reports")

	created := testutil.MustCreate(t, reports, map[string]any{
		"uid":      testutil.OwnerID,
		"type":     "article",
		"typeId":   "65f1c0ffee00000000000002",
		"summary":  "spam",
		"typeData": map[string]any{"title": "offending"},
	})
	assert.Equal(t, "pending", created["state"])
	assert.EqualValues(t, 0, created["category"])

	resp, err := reports.Patch(created["id"].(string), map[string]any{"state": 1})
	require.NoError(t, err)
	testutil.AssertStatus(t, resp, http.StatusOK)
	assert.Equal(t, "approved", testutil.Data(t, resp)["state"])
}
