// Copyright (c) 2026 The BGList Authors. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/ctxutil"
	"github.com/tabletoplib/bglist/internal/platform/respond"
)

/*
TestCollection wraps listing results in the envelope with pagination
metadata.
*/
func TestCollection(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "http://api.test/api/v1/boardgames", nil)

	links := []respond.Link{respond.SelfLink(request, "GET")}
	respond.Collection(recorder, []string{"a", "b"}, links, 2, 25, 1234)

	assert.Equal(t, 200, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var envelope struct {
		Links       []respond.Link `json:"links"`
		Data        []string       `json:"data"`
		PageIndex   *int           `json:"pageIndex"`
		PageSize    *int           `json:"pageSize"`
		RecordCount *int           `json:"recordCount"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Equal(t, []string{"a", "b"}, envelope.Data)
	require.NotNil(t, envelope.PageIndex)
	assert.Equal(t, 2, *envelope.PageIndex)
	assert.Equal(t, 25, *envelope.PageSize)
	assert.Equal(t, 1234, *envelope.RecordCount)
	require.Len(t, envelope.Links, 1)
	assert.Equal(t, "http://api.test/api/v1/boardgames", envelope.Links[0].Href)
	assert.Equal(t, "self", envelope.Links[0].Rel)
}

/*
TestResource_NullData renders a nil mutation target as JSON null without
pagination fields.
*/
func TestResource_NullData(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Resource(recorder, 200, nil, nil)

	body := recorder.Body.String()
	assert.Contains(t, body, `"data":null`)
	assert.NotContains(t, body, "pageIndex")
	assert.NotContains(t, body, "recordCount")
}

/*
TestSelfLink_ForwardedProto honours the proxy protocol header.
*/
func TestSelfLink_ForwardedProto(t *testing.T) {
	request := httptest.NewRequest("GET", "http://api.test/api/v1/domains", nil)
	request.Header.Set("X-Forwarded-Proto", "https")

	link := respond.SelfLink(request, "GET")

	assert.Equal(t, "https://api.test/api/v1/domains", link.Href)
	assert.Equal(t, "GET", link.Type)
}

/*
TestError_ValidationProblem renders field errors as the problem-details
errors map and carries the request's trace id.
*/
func TestError_ValidationProblem(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/boardgames?sortColumn=Nope", nil)
	request = request.WithContext(ctxutil.WithRequestID(request.Context(), "trace-42"))

	appError := apperr.ValidationError("One or more validation errors occurred.",
		apperr.FieldError{Field: "sortColumn", Message: "Value must match an existing column"})
	respond.Error(recorder, request, appError)

	assert.Equal(t, 400, recorder.Code)

	var problem respond.ProblemDetails
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &problem))

	assert.Equal(t, "https://tools.ietf.org/html/rfc7231#section-6.5.1", problem.Type)
	assert.Equal(t, 400, problem.Status)
	assert.Equal(t, "trace-42", problem.TraceID)
	require.Contains(t, problem.Errors, "sortColumn")
	assert.Equal(t, []string{"Value must match an existing column"}, problem.Errors["sortColumn"])
}

/*
TestError_UnknownError hides unexpected errors behind a generic 500 problem.
*/
func TestError_UnknownError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/boardgames", nil)

	respond.Error(recorder, request, errors.New("pq: connection refused"))

	assert.Equal(t, 500, recorder.Code)

	var problem respond.ProblemDetails
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &problem))

	assert.Equal(t, "https://tools.ietf.org/html/rfc7231#section-6.6.1", problem.Type)
	assert.Equal(t, "An unexpected error occurred", problem.Detail)
	assert.NotContains(t, problem.Detail, "connection refused")
}

/*
TestError_StatusTypeURIs pins the RFC reference per status code.
*/
func TestError_StatusTypeURIs(t *testing.T) {
	tests := []struct {
		name     string
		err      *apperr.AppError
		wantCode int
		wantType string
	}{
		{"unauthorized", apperr.Unauthorized("Invalid login attempt"), 401, "https://tools.ietf.org/html/rfc7235#section-3.1"},
		{"forbidden", apperr.Forbidden("nope"), 403, "https://tools.ietf.org/html/rfc7231#section-6.5.3"},
		{"not_found", apperr.NotFound("BoardGame"), 404, "https://tools.ietf.org/html/rfc7231#section-6.5.4"},
		{"conflict", apperr.Conflict("dup"), 409, "https://tools.ietf.org/html/rfc7231#section-6.5.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("GET", "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)

			var problem respond.ProblemDetails
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &problem))
			assert.Equal(t, tt.wantType, problem.Type)
		})
	}
}
