package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tabletoplib/bglist/internal/platform/database/schema"
	"github.com/tabletoplib/bglist/internal/platform/dberr"
	"github.com/tabletoplib/bglist/internal/platform/sec"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) Begin(ctx context.Context) (ImportTx, error) {
	tx, err := store.db.Begin(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_import")
	}
	return &postgresImportTx{tx: tx}, nil
}

func (store *PostgresStore) PromoteAccount(ctx context.Context, username string, role sec.UserRole) (bool, error) {
	table := schema.UsersAccount

	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1 AND %s <> $2`,
		table.Table, table.Role, table.UpdatedAt, table.Username, table.Role)

	tag, err := store.db.Exec(ctx, query, username, string(role), time.Now().UTC())
	if err != nil {
		return false, dberr.Wrap(err, "promote_account")
	}
	return tag.RowsAffected() > 0, nil
}

// postgresImportTx runs the whole import inside one pgx transaction.
type postgresImportTx struct {
	tx pgx.Tx
}

func (importTx *postgresImportTx) ExistingBoardGameIDs(ctx context.Context) (map[int]struct{}, error) {
	table := schema.CatalogBoardGame

	rows, err := importTx.tx.Query(ctx, fmt.Sprintf(`SELECT %s FROM %s`, table.ID, table.Table))
	if err != nil {
		return nil, dberr.Wrap(err, "load_boardgame_ids")
	}
	defer rows.Close()

	ids := make(map[int]struct{})
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_boardgame_id")
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (importTx *postgresImportTx) ExistingDomains(ctx context.Context) (map[string]int, error) {
	return importTx.nameIndex(ctx, schema.CatalogDomain.Table, schema.CatalogDomain.ID, schema.CatalogDomain.Name)
}

func (importTx *postgresImportTx) ExistingMechanics(ctx context.Context) (map[string]int, error) {
	return importTx.nameIndex(ctx, schema.CatalogMechanic.Table, schema.CatalogMechanic.ID, schema.CatalogMechanic.Name)
}

// nameIndex loads a category table into a case-folded name lookup.
func (importTx *postgresImportTx) nameIndex(ctx context.Context, tableName, idCol, nameCol string) (map[string]int, error) {
	rows, err := importTx.tx.Query(ctx, fmt.Sprintf(`SELECT %s, %s FROM %s`, idCol, nameCol, tableName))
	if err != nil {
		return nil, dberr.Wrap(err, "load_category_names")
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, dberr.Wrap(err, "scan_category_name")
		}
		index[foldKey(name)] = id
	}
	return index, rows.Err()
}

func (importTx *postgresImportTx) InsertBoardGame(ctx context.Context, rec *Record, now time.Time) error {
	table := schema.CatalogBoardGame

	// OVERRIDING SYSTEM VALUE keeps the dataset's ids instead of generating new ones.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		OVERRIDING SYSTEM VALUE
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		table.Table,
		table.ID, table.Name, table.Year, table.MinPlayers, table.MaxPlayers,
		table.PlayTime, table.MinAge, table.UsersRated, table.RatingAverage,
		table.BGGRank, table.ComplexityAverage, table.OwnedUsers,
		table.CreatedAt, table.UpdatedAt,
	)

	_, err := importTx.tx.Exec(ctx, query,
		rec.ID, rec.Name, rec.Year, rec.MinPlayers, rec.MaxPlayers,
		rec.PlayTime, rec.MinAge, rec.UsersRated, rec.RatingAverage,
		rec.BGGRank, rec.ComplexityAverage, rec.OwnedUsers,
		now, now,
	)
	return dberr.Wrap(err, "insert_boardgame")
}

func (importTx *postgresImportTx) InsertDomain(ctx context.Context, name string, now time.Time) (int, error) {
	table := schema.CatalogDomain

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		table.Table, table.Name, table.CreatedAt, table.UpdatedAt, table.ID)

	var id int
	if err := importTx.tx.QueryRow(ctx, query, name, now, now).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "insert_domain")
	}
	return id, nil
}

func (importTx *postgresImportTx) InsertMechanic(ctx context.Context, name string, now time.Time) (int, error) {
	table := schema.CatalogMechanic

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		table.Table, table.Name, table.CreatedAt, table.UpdatedAt, table.ID)

	var id int
	if err := importTx.tx.QueryRow(ctx, query, name, now, now).Scan(&id); err != nil {
		return 0, dberr.Wrap(err, "insert_mechanic")
	}
	return id, nil
}

func (importTx *postgresImportTx) LinkDomain(ctx context.Context, boardGameID, domainID int, now time.Time) error {
	table := schema.CatalogBoardGameDomain

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		table.Table, table.BoardGameID, table.DomainID, table.CreatedAt)

	_, err := importTx.tx.Exec(ctx, query, boardGameID, domainID, now)
	return dberr.Wrap(err, "link_domain")
}

func (importTx *postgresImportTx) LinkMechanic(ctx context.Context, boardGameID, mechanicID int, now time.Time) error {
	table := schema.CatalogBoardGameMechanic

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		table.Table, table.BoardGameID, table.MechanicID, table.CreatedAt)

	_, err := importTx.tx.Exec(ctx, query, boardGameID, mechanicID, now)
	return dberr.Wrap(err, "link_mechanic")
}

func (importTx *postgresImportTx) SyncBoardGameIdentity(ctx context.Context) error {
	table := schema.CatalogBoardGame

	// The explicit inserts bypass the identity sequence; realign it so the
	// next generated id lands above the imported range.
	query := fmt.Sprintf(`
		SELECT setval(
			pg_get_serial_sequence('%s', '%s'),
			GREATEST(COALESCE(MAX(%s), 0), 1),
			COALESCE(MAX(%s), 0) > 0
		) FROM %s
	`, table.Table, table.ID, table.ID, table.ID, table.Table)

	var unused int64
	if err := importTx.tx.QueryRow(ctx, query).Scan(&unused); err != nil {
		return dberr.Wrap(err, "sync_boardgame_identity")
	}
	return nil
}

func (importTx *postgresImportTx) Counts(ctx context.Context) (int, int, int, error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s),
			(SELECT COUNT(*) FROM %s)
	`, schema.CatalogBoardGame.Table, schema.CatalogDomain.Table, schema.CatalogMechanic.Table)

	var boardGames, domains, mechanics int
	if err := importTx.tx.QueryRow(ctx, query).Scan(&boardGames, &domains, &mechanics); err != nil {
		return 0, 0, 0, dberr.Wrap(err, "count_entities")
	}
	return boardGames, domains, mechanics, nil
}

func (importTx *postgresImportTx) Commit(ctx context.Context) error {
	return dberr.Wrap(importTx.tx.Commit(ctx), "commit_import")
}

func (importTx *postgresImportTx) Rollback(ctx context.Context) error {
	return importTx.tx.Rollback(ctx)
}
