package mechanic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tabletoplib/bglist/internal/platform/database/schema"
	"github.com/tabletoplib/bglist/internal/platform/dberr"
	"github.com/tabletoplib/bglist/pkg/listing"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, params listing.Params) ([]*Mechanic, int, error) {
	table := schema.CatalogMechanic

	where := ""
	args := []any{}
	if params.FilterQuery != "" {
		where = fmt.Sprintf("WHERE %s ILIKE $1", table.Name)
		args = append(args, "%"+params.FilterQuery+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_mechanics")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s %s`,
		strings.Join(table.Columns(), ", "), table.Table, where, params.OrderClause(SortColumns))
	if limit := params.Limit(); limit > 0 {
		args = append(args, limit, params.Offset())
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_mechanics")
	}
	defer rows.Close()

	mechanics := make([]*Mechanic, 0)
	for rows.Next() {
		m := &Mechanic{}
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_mechanic")
		}
		mechanics = append(mechanics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_mechanics")
	}

	return mechanics, total, nil
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, name *string, now time.Time) (*Mechanic, error) {
	table := schema.CatalogMechanic

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = $3
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table,
		table.Name, table.Name,
		table.UpdatedAt,
		table.ID,
		strings.Join(table.Columns(), ", "),
	)

	m := &Mechanic{}
	err := repository.db.QueryRow(ctx, query, id, name, now).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "update_mechanic")
	}

	return m, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) (*Mechanic, error) {
	table := schema.CatalogMechanic

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		table.Table, table.ID, strings.Join(table.Columns(), ", "))

	m := &Mechanic{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_mechanic")
	}

	return m, nil
}
