package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	httputil "mocms/pkg/http"
	"mocms/pkg/model"
)

func TestBuildFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildFilter(model.SettingFilter{}))

	got := buildFilter(model.SettingFilter{ListQuery: httputil.ListQuery{Search: "docs"}})
	assert.Contains(t, got, "$or")
	assert.NotContains(t, got, "delete_time")
}
