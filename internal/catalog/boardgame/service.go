package boardgame

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tabletoplib/bglist/internal/platform/dberr"
	"github.com/tabletoplib/bglist/pkg/listing"
	"github.com/tabletoplib/bglist/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns one page of board games plus the total record count of the
// filtered set.
func (service *Service) List(ctx context.Context, params listing.Params) ([]*BoardGame, int, error) {
	return service.repo.List(ctx, params)
}

// Update applies the non-empty fields of the request to the stored record.
//
// An empty name or a non-positive year is treated as "leave unchanged". A
// missing target is not an error: the operation reports success with a nil
// record, which the handler renders as a null payload.
func (service *Service) Update(ctx context.Context, req UpdateRequest) (*BoardGame, error) {
	var name *string
	if v := strings.TrimSpace(pointer.Val(req.Name)); v != "" {
		name = &v
	}
	var year *int
	if pointer.Val(req.Year) > 0 {
		year = req.Year
	}

	game, err := service.repo.Update(ctx, req.ID, name, year, time.Now().UTC())
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	service.logger.Info("boardgame_updated", slog.Int("id", game.ID))
	return game, nil
}

// Delete removes the record and its category associations. As with Update,
// a missing target yields a nil record rather than an error.
func (service *Service) Delete(ctx context.Context, id int) (*BoardGame, error) {
	game, err := service.repo.Delete(ctx, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	service.logger.Info("boardgame_deleted", slog.Int("id", game.ID))
	return game, nil
}
