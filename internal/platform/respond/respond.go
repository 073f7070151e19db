// Copyright (c) 2026 The BGList Authors. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every successful response is wrapped in the uniform REST envelope (data,
// links, optional pagination metadata) and every error is rendered as an
// RFC 7231-style problem-details document. This consistency is what lets
// clients parse any endpoint with the same code path.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/ctxutil"
)

// Link is a self-referential resource link embedded in the response envelope.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
	Type string `json:"type"`
}

// Envelope is the uniform JSON wrapper for API responses.
//
// The pagination fields are present only on collection responses; mutation
// responses carry links and data alone.
type Envelope struct {
	Links       []Link `json:"links"`
	Data        any    `json:"data"`
	PageIndex   *int   `json:"pageIndex,omitempty"`
	PageSize    *int   `json:"pageSize,omitempty"`
	RecordCount *int   `json:"recordCount,omitempty"`
}

// ProblemDetails is the error payload shape, following the RFC 7807 / ASP.NET
// problem-details convention the API's clients already understand.
type ProblemDetails struct {
	Type    string              `json:"type"`
	Status  int                 `json:"status"`
	Detail  string              `json:"detail"`
	Errors  map[string][]string `json:"errors,omitempty"`
	TraceID string              `json:"traceId,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Collection writes a 200 OK envelope for a listing endpoint, including the
// pagination metadata block.
func Collection(writer http.ResponseWriter, data any, links []Link, pageIndex, pageSize, recordCount int) {
	JSON(writer, http.StatusOK, Envelope{
		Links:       links,
		Data:        data,
		PageIndex:   &pageIndex,
		PageSize:    &pageSize,
		RecordCount: &recordCount,
	})
}

// Resource writes an envelope for a single-entity response. A nil data value
// is rendered as JSON null, which is how absent mutation targets surface.
func Resource(writer http.ResponseWriter, statusCode int, data any, links []Link) {
	JSON(writer, statusCode, Envelope{Links: links, Data: data})
}

// Created writes a 201 Created envelope.
func Created(writer http.ResponseWriter, data any, links []Link) {
	Resource(writer, http.StatusCreated, data, links)
}

// SelfLink builds the canonical self link for the current request.
//
// The scheme honours X-Forwarded-Proto so links survive a TLS-terminating
// proxy in front of the server.
func SelfLink(request *http.Request, method string) Link {
	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	if forwarded := request.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return Link{
		Href: scheme + "://" + request.Host + request.URL.Path,
		Rel:  "self",
		Type: method,
	}
}

// Error converts any Go error into a problem-details response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	problem := ProblemDetails{
		Type:    typeURI(appError.HTTPStatus),
		Status:  appError.HTTPStatus,
		Detail:  appError.Detail,
		TraceID: ctxutil.GetRequestID(request.Context()),
	}

	if len(appError.Fields) > 0 {
		problem.Errors = make(map[string][]string, len(appError.Fields))
		for _, fieldError := range appError.Fields {
			problem.Errors[fieldError.Field] = append(problem.Errors[fieldError.Field], fieldError.Message)
		}
	}

	JSON(writer, appError.HTTPStatus, problem)
}

// typeURI maps an HTTP status to the RFC section reference used as the
// problem-details "type" member.
func typeURI(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	case http.StatusUnauthorized:
		return "https://tools.ietf.org/html/rfc7235#section-3.1"
	case http.StatusForbidden:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.3"
	case http.StatusNotFound:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	case http.StatusConflict:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.8"
	default:
		return "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	}
}
