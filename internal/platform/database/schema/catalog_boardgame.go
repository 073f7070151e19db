package schema

// CatalogBoardGameTable represents the 'catalog.boardgame' table
type CatalogBoardGameTable struct {
	Table             string
	ID                string
	Name              string
	Year              string
	MinPlayers        string
	MaxPlayers        string
	PlayTime          string
	MinAge            string
	UsersRated        string
	RatingAverage     string
	BGGRank           string
	ComplexityAverage string
	OwnedUsers        string
	CreatedAt         string
	UpdatedAt         string
}

// CatalogBoardGame is the schema definition for catalog.boardgame
var CatalogBoardGame = CatalogBoardGameTable{
	Table:             "catalog.boardgame",
	ID:                "id",
	Name:              "name",
	Year:              "year",
	MinPlayers:        "minplayers",
	MaxPlayers:        "maxplayers",
	PlayTime:          "playtime",
	MinAge:            "minage",
	UsersRated:        "usersrated",
	RatingAverage:     "ratingaverage",
	BGGRank:           "bggrank",
	ComplexityAverage: "complexityaverage",
	OwnedUsers:        "ownedusers",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

func (t CatalogBoardGameTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Year, t.MinPlayers, t.MaxPlayers, t.PlayTime, t.MinAge,
		t.UsersRated, t.RatingAverage, t.BGGRank, t.ComplexityAverage, t.OwnedUsers,
		t.CreatedAt, t.UpdatedAt,
	}
}
