package schema

// CatalogMechanicTable represents the 'catalog.mechanic' table
type CatalogMechanicTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// CatalogMechanic is the schema definition for catalog.mechanic
var CatalogMechanic = CatalogMechanicTable{
	Table:     "catalog.mechanic",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogMechanicTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt, t.UpdatedAt}
}
