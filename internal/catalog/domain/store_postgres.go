package domain

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

func (repository *PostgresRepository) List(ctx context.Context, params listing.Params) ([]*Domain, int, error) {
	table := schema.CatalogDomain

	where := ""
	args := []any{}
	if params.FilterQuery != "" {
		where = fmt.Sprintf("WHERE %s ILIKE $1", table.Name)
		args = append(args, "%"+params.FilterQuery+"%")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_domains")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s %s`,
		strings.Join(table.Columns(), ", "), table.Table, where, params.OrderClause(SortColumns))
	if limit := params.Limit(); limit > 0 {
		args = append(args, limit, params.Offset())
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_domains")
	}
	defer rows.Close()

	domains := make([]*Domain, 0)
	for rows.Next() {
		d := &Domain{}
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_domain")
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_domains")
	}

	return domains, total, nil
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, name *string, now time.Time) (*Domain, error) {
	table := schema.CatalogDomain

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

	d := &Domain{}
	err := repository.db.QueryRow(ctx, query, id, name, now).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "update_domain")
	}

	return d, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) (*Domain, error) {
	table := schema.CatalogDomain

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		table.Table, table.ID, strings.Join(table.Columns(), ", "))

	d := &Domain{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_domain")
	}

	return d, nil
}
