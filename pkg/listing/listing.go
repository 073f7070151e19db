// Copyright (c) 2026 The BGList Authors. All rights reserved.

// Package listing provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how paging, sorting, and filtering are requested via query
// parameters, and how the resulting Params translate into SQL clause
// fragments. Sort columns are resolved through an explicit per-entity
// whitelist so that client input never reaches the query builder unchecked.
package listing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tabletoplib/bglist/pkg/convert"
)

const (
	// MaxPageSize is the upper bound for items per page to prevent system abuse.
	MaxPageSize = 100
	// DefaultPageIndex is the starting page (0-indexed).
	DefaultPageIndex = 0
	// DefaultPageSize requests an unbounded page when not specified.
	DefaultPageSize = 0
)

// InvalidColumnMessage is the fixed validation detail for a sort column
// that is not part of an entity's whitelist.
const InvalidColumnMessage = "Value must match an existing column"

// Columns maps the field identifiers exposed to API clients onto the SQL
// columns they sort by. Each entity package defines its own table; lookup
// is case-sensitive.
type Columns map[string]string

// Params holds the parsed paging, sorting, and filtering inputs of a
// list request.
type Params struct {
	PageIndex   int
	PageSize    int
	SortColumn  string
	SortOrder   string
	FilterQuery string
}

// FromRequest parses the listing query parameters from an HTTP request.
//
// Missing parameters fall back to their defaults; defaultSort supplies the
// per-entity sort column. Parsing never fails: range and whitelist checks
// are deferred to [Params.Validate].
func FromRequest(r *http.Request, defaultSort string) Params {
	q := r.URL.Query()

	p := Params{
		PageIndex:   convert.ToIntD(q.Get("pageIndex"), DefaultPageIndex),
		PageSize:    convert.ToIntD(q.Get("pageSize"), DefaultPageSize),
		SortColumn:  defaultSort,
		SortOrder:   "asc",
		FilterQuery: q.Get("filterQuery"),
	}

	if q.Has("sortColumn") {
		p.SortColumn = q.Get("sortColumn")
	}
	if v := q.Get("sortOrder"); v != "" {
		p.SortOrder = v
	}

	return p
}

// Validate checks the parsed parameters against their allowed ranges and
// the entity's sort column whitelist.
//
// # Rules
//
//   - PageIndex must be >= 0.
//   - PageSize must be within [0, MaxPageSize].
//   - A non-empty SortColumn must be a whitelist key (case-sensitive).
//   - SortOrder is never rejected; see [Params.NormalizeSortOrder].
//
// The returned map is keyed by parameter name and is nil when everything
// passes.
func (p Params) Validate(cols Columns) map[string][]string {
	errs := map[string][]string{}

	if p.PageIndex < 0 {
		errs["pageIndex"] = append(errs["pageIndex"],
			fmt.Sprintf("The value '%d' must be zero or greater.", p.PageIndex))
	}
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		errs["pageSize"] = append(errs["pageSize"],
			fmt.Sprintf("The value '%d' must be between 0 and %d.", p.PageSize, MaxPageSize))
	}
	if p.SortColumn != "" {
		if _, ok := cols[p.SortColumn]; !ok {
			errs["sortColumn"] = append(errs["sortColumn"],
				fmt.Sprintf("The value '%s' is invalid: %s.", p.SortColumn, InvalidColumnMessage))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NormalizeSortOrder returns the SQL direction keyword for the requested
// order. Anything other than a case-insensitive "desc" sorts ascending.
func (p Params) NormalizeSortOrder() string {
	if strings.EqualFold(p.SortOrder, "desc") {
		return "DESC"
	}
	return "ASC"
}

// OrderClause builds the ORDER BY fragment for the validated parameters.
//
// The sort column is resolved through the whitelist, never interpolated
// from client input. A secondary "id ASC" keeps pagination deterministic
// when the primary column has duplicate values. An empty SortColumn yields
// an empty clause.
func (p Params) OrderClause(cols Columns) string {
	if p.SortColumn == "" {
		return ""
	}

	col, ok := cols[p.SortColumn]
	if !ok {
		return ""
	}

	if col == "id" {
		return fmt.Sprintf("ORDER BY id %s", p.NormalizeSortOrder())
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", col, p.NormalizeSortOrder())
}

// Limit returns the SQL LIMIT value, or 0 when the page is unbounded.
func (p Params) Limit() int {
	if p.PageSize <= 0 {
		return 0
	}
	return p.PageSize
}

// Offset returns the SQL OFFSET value derived from PageIndex and PageSize.
func (p Params) Offset() int {
	if p.PageIndex <= 0 || p.PageSize <= 0 {
		return 0
	}
	return p.PageIndex * p.PageSize
}
