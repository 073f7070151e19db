package schema

// CatalogDomainTable represents the 'catalog.domain' table
type CatalogDomainTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// CatalogDomain is the schema definition for catalog.domain
var CatalogDomain = CatalogDomainTable{
	Table:     "catalog.domain",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogDomainTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt, t.UpdatedAt}
}
