package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{
	"ID", "Name", "Year Published", "Min Players", "Max Players", "Play Time",
	"Min Age", "Users Rated", "Rating Average", "BGG Rank", "Complexity Average",
	"Owned Users", "Mechanics", "Domains",
}

/*
TestParseRecord covers a full dataset row, including decimal commas and
category lists.
*/
func TestParseRecord(t *testing.T) {
	index, err := headerIndex(testHeader)
	require.NoError(t, err)

	row := []string{
		"174430", "Gloomhaven", "2017", "1", "4", "120",
		"14", "42055", "8,79", "1", "3,86",
		"68323", "Action Queue, Campaign, Cooperative Game", "Strategy Games, Thematic Games",
	}

	rec, err := parseRecord(index, row)
	require.NoError(t, err)

	assert.Equal(t, 174430, rec.ID)
	assert.Equal(t, "Gloomhaven", rec.Name)
	assert.Equal(t, 2017, rec.Year)
	assert.Equal(t, 1, rec.MinPlayers)
	assert.Equal(t, 4, rec.MaxPlayers)
	assert.Equal(t, 120, rec.PlayTime)
	assert.Equal(t, 14, rec.MinAge)
	assert.Equal(t, 42055, rec.UsersRated)
	assert.InDelta(t, 8.79, rec.RatingAverage, 0.0001)
	assert.Equal(t, 1, rec.BGGRank)
	assert.InDelta(t, 3.86, rec.ComplexityAverage, 0.0001)
	assert.Equal(t, 68323, rec.OwnedUsers)
	assert.Equal(t, []string{"Action Queue", "Campaign", "Cooperative Game"}, rec.Mechanics)
	assert.Equal(t, []string{"Strategy Games", "Thematic Games"}, rec.Domains)
}

/*
TestParseRecord_Rejections checks the two conditions that disqualify a row.
*/
func TestParseRecord_Rejections(t *testing.T) {
	index, err := headerIndex(testHeader)
	require.NoError(t, err)

	tests := []struct {
		name string
		row  []string
	}{
		{"missing_id", []string{"", "Gloomhaven"}},
		{"unparsable_id", []string{"not-a-number", "Gloomhaven"}},
		{"empty_name", []string{"174430", "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRecord(index, tt.row)
			assert.Error(t, err)
		})
	}
}

/*
TestParseRecord_DefaultsForMissingFields verifies the short-row behavior:
optional columns beyond the row's length collapse to zero values.
*/
func TestParseRecord_DefaultsForMissingFields(t *testing.T) {
	index, err := headerIndex(testHeader)
	require.NoError(t, err)

	rec, err := parseRecord(index, []string{"99", "Mystery Game"})
	require.NoError(t, err)

	assert.Equal(t, 99, rec.ID)
	assert.Equal(t, "Mystery Game", rec.Name)
	assert.Zero(t, rec.Year)
	assert.Zero(t, rec.RatingAverage)
	assert.Empty(t, rec.Mechanics)
	assert.Empty(t, rec.Domains)
}

/*
TestHeaderIndex_MissingRequiredColumn fails fast on a dataset without the
identifying columns.
*/
func TestHeaderIndex_MissingRequiredColumn(t *testing.T) {
	_, err := headerIndex([]string{"Name", "Year Published"})
	assert.Error(t, err)
}

/*
TestSplitList checks trimming and case-insensitive deduplication.
*/
func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Dice Rolling", []string{"Dice Rolling"}},
		{"trimmed", "  Dice Rolling ,  Set Collection  ", []string{"Dice Rolling", "Set Collection"}},
		{"case_insensitive_dedup", "Dice Rolling, dice rolling, DICE ROLLING", []string{"Dice Rolling"}},
		{"empty_entries_dropped", "Dice Rolling,, ,Set Collection", []string{"Dice Rolling", "Set Collection"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

/*
TestParseDecimal checks the decimal comma handling.
*/
func TestParseDecimal(t *testing.T) {
	assert.InDelta(t, 8.79, parseDecimal("8,79"), 0.0001)
	assert.InDelta(t, 7.5, parseDecimal("7.5"), 0.0001)
	assert.Zero(t, parseDecimal(""))
	assert.Zero(t, parseDecimal("n/a"))
}
