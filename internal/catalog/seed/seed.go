// Package seed implements the catalog import engine for the BGG CSV dataset.
//
// # Dataset
//
// The source file is semicolon-delimited with a header row. Numeric fields
// use a decimal comma, and the Mechanics/Domains columns hold comma-separated
// category lists. The import is idempotent: rows whose id already exists in
// the catalog are skipped, and category names are matched case-insensitively
// against the existing tables.
package seed

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Header labels of the BGG dataset.
const (
	colID                = "ID"
	colName              = "Name"
	colYearPublished     = "Year Published"
	colMinPlayers        = "Min Players"
	colMaxPlayers        = "Max Players"
	colPlayTime          = "Play Time"
	colMinAge            = "Min Age"
	colUsersRated        = "Users Rated"
	colRatingAverage     = "Rating Average"
	colBGGRank           = "BGG Rank"
	colComplexityAverage = "Complexity Average"
	colOwnedUsers        = "Owned Users"
	colMechanics         = "Mechanics"
	colDomains           = "Domains"
)

// Record is one parsed dataset row ready for insertion.
type Record struct {
	ID                int
	Name              string
	Year              int
	MinPlayers        int
	MaxPlayers        int
	PlayTime          int
	MinAge            int
	UsersRated        int
	RatingAverage     float64
	BGGRank           int
	ComplexityAverage float64
	OwnedUsers        int
	Mechanics         []string
	Domains           []string
}

// headerIndex maps the dataset's column labels onto their positions, so the
// importer tolerates column reordering across dataset revisions.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, label := range header {
		index[strings.TrimSpace(label)] = i
	}

	for _, required := range []string{colID, colName} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("dataset header is missing the %q column", required)
		}
	}
	return index, nil
}

// parseRecord converts a raw CSV row into a Record.
//
// It fails only when the row cannot identify a board game: a missing or
// unparsable id, or an empty name. Every other field is optional and
// defaults to zero when absent or malformed.
func parseRecord(index map[string]int, row []string) (*Record, error) {
	field := func(label string) string {
		i, ok := index[label]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	id, err := strconv.Atoi(field(colID))
	if err != nil {
		return nil, fmt.Errorf("unparsable id %q", field(colID))
	}

	name := field(colName)
	if name == "" {
		return nil, fmt.Errorf("row %d has no name", id)
	}

	return &Record{
		ID:                id,
		Name:              name,
		Year:              parseInt(field(colYearPublished)),
		MinPlayers:        parseInt(field(colMinPlayers)),
		MaxPlayers:        parseInt(field(colMaxPlayers)),
		PlayTime:          parseInt(field(colPlayTime)),
		MinAge:            parseInt(field(colMinAge)),
		UsersRated:        parseInt(field(colUsersRated)),
		RatingAverage:     parseDecimal(field(colRatingAverage)),
		BGGRank:           parseInt(field(colBGGRank)),
		ComplexityAverage: parseDecimal(field(colComplexityAverage)),
		OwnedUsers:        parseInt(field(colOwnedUsers)),
		Mechanics:         splitList(field(colMechanics)),
		Domains:           splitList(field(colDomains)),
	}, nil
}

// parseInt reads an optional integer field, defaulting to 0.
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// parseDecimal reads an optional decimal field. The dataset was exported
// with a decimal comma, so "8,79" parses as 8.79.
func parseDecimal(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return v
}

// splitList parses a comma-separated category list, trimming entries and
// dropping case-insensitive duplicates while preserving first-seen casing
// and order.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var names []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := foldKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// foldKey normalizes a category name for case-insensitive matching. Unicode
// case folding handles names beyond ASCII correctly.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
