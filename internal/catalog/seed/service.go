package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tabletoplib/bglist/internal/platform/apperr"
	"github.com/tabletoplib/bglist/internal/platform/sec"
)

// Summary reports what one import run changed. Entity counts are catalog
// totals after the run, not per-run deltas, matching how operators verify
// an import against the dataset size.
type Summary struct {
	BoardGames  int `json:"boardGames"`
	Domains     int `json:"domains"`
	Mechanics   int `json:"mechanics"`
	SkippedRows int `json:"skippedRows"`
}

// AuthDataSummary reports the accounts promoted by SeedAuthData.
type AuthDataSummary struct {
	Administrators int `json:"administrators"`
	Moderators     int `json:"moderators"`
}

// Well-known accounts promoted by the auth-data seeder for integration
// testing environments.
const (
	testAdministrator = "TestAdministrator"
	testModerator     = "TestModerator"
)

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ImportDataset loads the CSV dataset at path into the catalog.
//
// # Atomicity
//
// The whole run executes inside a single database transaction: either every
// surviving row is committed or none are. Rows that cannot identify a board
// game, or whose id already exists, are skipped and counted; they do not
// abort the run. Any database failure does.
func (service *Service) ImportDataset(ctx context.Context, path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'

	header, err := reader.Read()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	tx, err := service.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	existingIDs, err := tx.ExistingBoardGameIDs(ctx)
	if err != nil {
		return nil, err
	}
	domains, err := tx.ExistingDomains(ctx)
	if err != nil {
		return nil, err
	}
	mechanics, err := tx.ExistingMechanics(ctx)
	if err != nil {
		return nil, err
	}

	// One timestamp for the whole batch.
	now := time.Now().UTC()
	skipped := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		rec, err := parseRecord(index, row)
		if err != nil {
			skipped++
			continue
		}
		if _, exists := existingIDs[rec.ID]; exists {
			skipped++
			continue
		}
		existingIDs[rec.ID] = struct{}{}

		if err := tx.InsertBoardGame(ctx, rec, now); err != nil {
			return nil, err
		}

		for _, name := range rec.Domains {
			id, err := lookupOrCreate(ctx, domains, name, now, tx.InsertDomain)
			if err != nil {
				return nil, err
			}
			if err := tx.LinkDomain(ctx, rec.ID, id, now); err != nil {
				return nil, err
			}
		}
		for _, name := range rec.Mechanics {
			id, err := lookupOrCreate(ctx, mechanics, name, now, tx.InsertMechanic)
			if err != nil {
				return nil, err
			}
			if err := tx.LinkMechanic(ctx, rec.ID, id, now); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.SyncBoardGameIdentity(ctx); err != nil {
		return nil, err
	}

	boardGames, domainCount, mechanicCount, err := tx.Counts(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	summary := &Summary{
		BoardGames:  boardGames,
		Domains:     domainCount,
		Mechanics:   mechanicCount,
		SkippedRows: skipped,
	}
	service.logger.Info("dataset_imported",
		slog.Int("board_games", summary.BoardGames),
		slog.Int("domains", summary.Domains),
		slog.Int("mechanics", summary.Mechanics),
		slog.Int("skipped_rows", summary.SkippedRows),
	)
	return summary, nil
}

// lookupOrCreate resolves a category name to its id, inserting it when
// unseen. The index is updated in place so later rows reuse the new id.
func lookupOrCreate(
	ctx context.Context,
	index map[string]int,
	name string,
	now time.Time,
	insert func(context.Context, string, time.Time) (int, error),
) (int, error) {
	key := foldKey(name)
	if id, ok := index[key]; ok {
		return id, nil
	}

	id, err := insert(ctx, name, now)
	if err != nil {
		return 0, err
	}
	index[key] = id
	return id, nil
}

// SeedAuthData promotes the well-known test accounts to their roles. Missing
// accounts are not created; promotion applies only when the account exists.
func (service *Service) SeedAuthData(ctx context.Context) (*AuthDataSummary, error) {
	summary := &AuthDataSummary{}

	promoted, err := service.store.PromoteAccount(ctx, testAdministrator, sec.RoleAdministrator)
	if err != nil {
		return nil, err
	}
	if promoted {
		summary.Administrators++
	}

	promoted, err = service.store.PromoteAccount(ctx, testModerator, sec.RoleModerator)
	if err != nil {
		return nil, err
	}
	if promoted {
		summary.Moderators++
	}

	service.logger.Info("auth_data_seeded",
		slog.Int("administrators", summary.Administrators),
		slog.Int("moderators", summary.Moderators),
	)
	return summary, nil
}
