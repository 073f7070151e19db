package seed

import (
	"context"
	"time"

	"github.com/tabletoplib/bglist/internal/platform/sec"
)

// Store opens import transactions and carries the auth-data helpers.
type Store interface {
	Begin(ctx context.Context) (ImportTx, error)

	// PromoteAccount raises the named account to the given role. It reports
	// whether a row actually changed.
	PromoteAccount(ctx context.Context, username string, role sec.UserRole) (bool, error)
}

// ImportTx is one atomic catalog import. Every method runs inside the same
// database transaction; nothing is visible to other sessions until Commit.
type ImportTx interface {
	// Preload snapshots for idempotency checks. Category maps are keyed by
	// case-folded name.
	ExistingBoardGameIDs(ctx context.Context) (map[int]struct{}, error)
	ExistingDomains(ctx context.Context) (map[string]int, error)
	ExistingMechanics(ctx context.Context) (map[string]int, error)

	// InsertBoardGame writes a row under its dataset-supplied id.
	InsertBoardGame(ctx context.Context, rec *Record, now time.Time) error
	InsertDomain(ctx context.Context, name string, now time.Time) (int, error)
	InsertMechanic(ctx context.Context, name string, now time.Time) (int, error)

	LinkDomain(ctx context.Context, boardGameID, domainID int, now time.Time) error
	LinkMechanic(ctx context.Context, boardGameID, mechanicID int, now time.Time) error

	// SyncBoardGameIdentity realigns the id sequence with the imported rows
	// so default generation resumes after the explicit inserts.
	SyncBoardGameIdentity(ctx context.Context) error

	// Counts reads the post-import entity totals through the transaction.
	Counts(ctx context.Context) (boardGames, domains, mechanics int, err error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
