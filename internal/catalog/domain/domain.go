package domain

import (
	"time"

	"github.com/tabletoplib/bglist/internal/platform/database/schema"
	"github.com/tabletoplib/bglist/pkg/listing"
)

// Domain is a broad board game category (e.g. "Strategy Games").
// Names are unique within the catalog.
type Domain struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const DefaultSortColumn = "ID"

// SortColumns is the whitelist of sortable field identifiers for domain listings.
var SortColumns = listing.Columns{
	"ID":               schema.CatalogDomain.ID,
	"Name":             schema.CatalogDomain.Name,
	"CreatedDate":      schema.CatalogDomain.CreatedAt,
	"LastModifiedDate": schema.CatalogDomain.UpdatedAt,
}

// UpdateRequest is the payload for the update-by-id operation.
type UpdateRequest struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}
