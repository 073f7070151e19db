package mechanic

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

func (service *Service) List(ctx context.Context, params listing.Params) ([]*Mechanic, int, error) {
	return service.repo.List(ctx, params)
}

// Update renames the mechanic. An empty name leaves the record unchanged
// beyond its modification stamp; a missing target yields a nil record.
func (service *Service) Update(ctx context.Context, req UpdateRequest) (*Mechanic, error) {
	var name *string
	if v := strings.TrimSpace(pointer.Val(req.Name)); v != "" {
		name = &v
	}

	m, err := service.repo.Update(ctx, req.ID, name, time.Now().UTC())
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	service.logger.Info("mechanic_updated", slog.Int("id", m.ID))
	return m, nil
}

func (service *Service) Delete(ctx context.Context, id int) (*Mechanic, error) {
	m, err := service.repo.Delete(ctx, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	service.logger.Info("mechanic_deleted", slog.Int("id", m.ID))
	return m, nil
}
