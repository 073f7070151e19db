package schema

// CatalogBoardGameMechanicTable represents the 'catalog.boardgamemechanic' join table
type CatalogBoardGameMechanicTable struct {
	Table       string
	BoardGameID string
	MechanicID  string
	CreatedAt   string
}

// CatalogBoardGameMechanic is the schema definition for catalog.boardgamemechanic
var CatalogBoardGameMechanic = CatalogBoardGameMechanicTable{
	Table:       "catalog.boardgamemechanic",
	BoardGameID: "boardgameid",
	MechanicID:  "mechanicid",
	CreatedAt:   "createdat",
}
