package boardgame

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

func (repository *PostgresRepository) List(ctx context.Context, params listing.Params) ([]*BoardGame, int, error) {
	table := schema.CatalogBoardGame

	where := ""
	args := []any{}
	if params.FilterQuery != "" {
		where = fmt.Sprintf("WHERE %s ILIKE $1", table.Name)
		args = append(args, "%"+params.FilterQuery+"%")
	}

	// Count runs over the filtered set only, so the total is stable across pages.
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, table.Table, where)
	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_boardgames")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s %s`,
		strings.Join(table.Columns(), ", "), table.Table, where, params.OrderClause(SortColumns))
	if limit := params.Limit(); limit > 0 {
		args = append(args, limit, params.Offset())
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_boardgames")
	}
	defer rows.Close()

	games := make([]*BoardGame, 0)
	for rows.Next() {
		game := &BoardGame{}
		if err := rows.Scan(
			&game.ID, &game.Name, &game.Year, &game.MinPlayers, &game.MaxPlayers,
			&game.PlayTime, &game.MinAge, &game.UsersRated, &game.RatingAverage,
			&game.BGGRank, &game.ComplexityAverage, &game.OwnedUsers,
			&game.CreatedAt, &game.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_boardgame")
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_boardgames")
	}

	return games, total, nil
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, name *string, year *int, now time.Time) (*BoardGame, error) {
	table := schema.CatalogBoardGame

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = $4
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table,
		table.Name, table.Name,
		table.Year, table.Year,
		table.UpdatedAt,
		table.ID,
		strings.Join(table.Columns(), ", "),
	)

	game := &BoardGame{}
	err := repository.db.QueryRow(ctx, query, id, name, year, now).Scan(
		&game.ID, &game.Name, &game.Year, &game.MinPlayers, &game.MaxPlayers,
		&game.PlayTime, &game.MinAge, &game.UsersRated, &game.RatingAverage,
		&game.BGGRank, &game.ComplexityAverage, &game.OwnedUsers,
		&game.CreatedAt, &game.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_boardgame")
	}

	return game, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) (*BoardGame, error) {
	table := schema.CatalogBoardGame

	// Join rows in boardgamedomain/boardgamemechanic cascade with the row.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		table.Table, table.ID, strings.Join(table.Columns(), ", "))

	game := &BoardGame{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&game.ID, &game.Name, &game.Year, &game.MinPlayers, &game.MaxPlayers,
		&game.PlayTime, &game.MinAge, &game.UsersRated, &game.RatingAverage,
		&game.BGGRank, &game.ComplexityAverage, &game.OwnedUsers,
		&game.CreatedAt, &game.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_boardgame")
	}

	return game, nil
}
