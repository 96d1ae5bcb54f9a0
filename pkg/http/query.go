package http

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "mocms/pkg/errors"
	"mocms/pkg/normalize"
)

// ListQuery holds the parameters every list endpoint accepts.
type ListQuery struct {
	Page           Page
	Search         string
	IncludeDeleted bool
}

func ExtractListQuery(r *http.Request) (ListQuery, error) {
	page, err := ExtractPage(r)
	if err != nil {
		return ListQuery{}, err
	}

	includeDeleted, err := QueryBool(r, "includeDeleted")
	if err != nil {
		return ListQuery{}, err
	}

	return ListQuery{
		Page:           page,
		Search:         QueryString(r, "search"),
		IncludeDeleted: includeDeleted,
	}, nil
}

// QueryObjectID reads an optional ID filter. Empty means absent.
func QueryObjectID(r *http.Request, name string) (string, error) {
	s := QueryString(r, name)
	if s != "" && !primitive.IsValidObjectID(s) {
		return "", apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return s, nil
}

// QueryFlag reads an optional boolean-like filter: true, false, 0 or 1.
func QueryFlag(r *http.Request, name string) (*bool, error) {
	v := normalize.Parse(r.URL.Query().Get(name))

	switch v.Kind() {
	case normalize.KindAbsent:
		return nil, nil
	case normalize.KindBool:
		b, _ := v.AsBool()
		return &b, nil
	case normalize.KindInt:
		if n, _ := v.AsInt(); n == 0 || n == 1 {
			b := normalize.Boolean(v, false)
			return &b, nil
		}
	case normalize.KindLabel:
	}
	return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, v))
}

// QueryState reads an optional tri-state filter as its storage code. Both
// labels and codes are accepted.
func QueryState(r *http.Request, name string, rule normalize.Rule) (*int, error) {
	v := normalize.Parse(r.URL.Query().Get(name))
	if v.IsAbsent() {
		return nil, nil
	}
	if !rule.Accepts(v) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, v))
	}
	code := rule.Code(v)
	return &code, nil
}
