// Copyright (c) 2026 The BGList Authors. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/ctxutil"
	"github.com/tabletoplib/bglist/internal/platform/sec"
	"github.com/tabletoplib/bglist/internal/platform/validate"
	"github.com/tabletoplib/bglist/pkg/listing"
)

// DecodeJSON reads the request body and decodes it into the target structure.
// It returns validate.ErrInvalidJSON when the payload cannot be decoded.
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Claims extracts the authenticated user claims from the request context.
// It returns nil if the request is not authenticated.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated and returns the user
// claims, or apperr.Unauthorized when no identity is attached.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

// ListingParams parses and validates the paging, sorting, and filtering
// parameters of a list request against an entity's column whitelist.
// Validation failures surface as a single 400 validation error carrying
// every offending parameter.
func ListingParams(request *http.Request, defaultSort string, cols listing.Columns) (listing.Params, error) {
	params := listing.FromRequest(request, defaultSort)

	errs := params.Validate(cols)
	if errs == nil {
		return params, nil
	}

	var fields []apperr.FieldError
	for field, messages := range errs {
		for _, message := range messages {
			fields = append(fields, apperr.FieldError{Field: field, Message: message})
		}
	}
	return listing.Params{}, apperr.ValidationError("One or more validation errors occurred.", fields...)
}
