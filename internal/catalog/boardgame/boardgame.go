package boardgame

import (
	"time"

	"github.com/tabletoplib/bglist/internal/platform/database/schema"
	"github.com/tabletoplib/bglist/pkg/listing"
)

// BoardGame represents a single catalog entry sourced from the BGG dataset.
type BoardGame struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Year              int       `json:"year"`
	MinPlayers        int       `json:"min_players"`
	MaxPlayers        int       `json:"max_players"`
	PlayTime          int       `json:"play_time"`
	MinAge            int       `json:"min_age"`
	UsersRated        int       `json:"users_rated"`
	RatingAverage     float64   `json:"rating_average"`
	BGGRank           int       `json:"bgg_rank"`
	ComplexityAverage float64   `json:"complexity_average"`
	OwnedUsers        int       `json:"owned_users"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultSortColumn is the ordering applied when a list request does not
// name one.
const DefaultSortColumn = "ID"

// SortColumns is the whitelist of field identifiers clients may sort board
// game listings by. Requests naming anything else are rejected before the
// query is built.
var SortColumns = listing.Columns{
	"ID":                schema.CatalogBoardGame.ID,
	"Name":              schema.CatalogBoardGame.Name,
	"Year":              schema.CatalogBoardGame.Year,
	"MinPlayers":        schema.CatalogBoardGame.MinPlayers,
	"MaxPlayers":        schema.CatalogBoardGame.MaxPlayers,
	"PlayTime":          schema.CatalogBoardGame.PlayTime,
	"MinAge":            schema.CatalogBoardGame.MinAge,
	"UsersRated":        schema.CatalogBoardGame.UsersRated,
	"RatingAverage":     schema.CatalogBoardGame.RatingAverage,
	"BGGRank":           schema.CatalogBoardGame.BGGRank,
	"ComplexityAverage": schema.CatalogBoardGame.ComplexityAverage,
	"OwnedUsers":        schema.CatalogBoardGame.OwnedUsers,
	"CreatedDate":       schema.CatalogBoardGame.CreatedAt,
	"LastModifiedDate":  schema.CatalogBoardGame.UpdatedAt,
}

// UpdateRequest is the payload for the update-by-id operation. Name and Year
// are optional; absent or zero-valued fields leave the stored value intact.
type UpdateRequest struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
	Year *int    `json:"year"`
}
