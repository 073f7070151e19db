package mechanic

import (
	"time"

	"github.com/tabletoplib/bglist/internal/platform/database/schema"
	"github.com/tabletoplib/bglist/pkg/listing"
)

// Mechanic is a gameplay mechanic (e.g. "Worker Placement"). Names are
// unique within the catalog.
type Mechanic struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const DefaultSortColumn = "ID"

// SortColumns is the whitelist of sortable field identifiers for mechanic listings.
var SortColumns = listing.Columns{
	"ID":               schema.CatalogMechanic.ID,
	"Name":             schema.CatalogMechanic.Name,
	"CreatedDate":      schema.CatalogMechanic.CreatedAt,
	"LastModifiedDate": schema.CatalogMechanic.UpdatedAt,
}

// UpdateRequest is the payload for the update-by-id operation.
type UpdateRequest struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}
