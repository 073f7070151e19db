package schema

// CatalogBoardGameDomainTable represents the 'catalog.boardgamedomain' join table
type CatalogBoardGameDomainTable struct {
	Table       string
	BoardGameID string
	DomainID    string
	CreatedAt   string
}

// CatalogBoardGameDomain is the schema definition for catalog.boardgamedomain
var CatalogBoardGameDomain = CatalogBoardGameDomainTable{
	Table:       "catalog.boardgamedomain",
	BoardGameID: "boardgameid",
	DomainID:    "domainid",
	CreatedAt:   "createdat",
}
