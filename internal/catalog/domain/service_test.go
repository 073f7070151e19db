package domain_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabletoplib/bglist/internal/catalog/domain"
	"github.com/tabletoplib/bglist/internal/platform/dberr"
	"github.com/tabletoplib/bglist/pkg/listing"
	"github.com/tabletoplib/bglist/pkg/pointer"
)

type fakeRepository struct {
	result  *domain.Domain
	err     error
	gotName *string
}

func (f *fakeRepository) List(_ context.Context, _ listing.Params) ([]*domain.Domain, int, error) {
	if f.result == nil {
		return nil, 0, f.err
	}
	return []*domain.Domain{f.result}, 1, f.err
}

func (f *fakeRepository) Update(_ context.Context, _ int, name *string, _ time.Time) (*domain.Domain, error) {
	f.gotName = name
	return f.result, f.err
}

func (f *fakeRepository) Delete(_ context.Context, _ int) (*domain.Domain, error) {
	return f.result, f.err
}

/*
TestService_Update_NameFiltering checks that blank names never reach the store.
*/
func TestService_Update_NameFiltering(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		wantName *string
	}{
		{"set", pointer.To("Wargames"), pointer.To("Wargames")},
		{"blank_ignored", pointer.To("  "), nil},
		{"absent_ignored", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{result: &domain.Domain{ID: 7, Name: "Wargames"}}
			service := domain.NewService(repo, slog.New(slog.DiscardHandler))

			_, err := service.Update(context.Background(), domain.UpdateRequest{ID: 7, Name: tt.input})
			require.NoError(t, err)

			if tt.wantName == nil {
				assert.Nil(t, repo.gotName)
			} else {
				require.NotNil(t, repo.gotName)
				assert.Equal(t, *tt.wantName, *repo.gotName)
			}
		})
	}
}

/*
TestService_MissingTarget verifies the null-result contract for both
mutations.
*/
func TestService_MissingTarget(t *testing.T) {
	repo := &fakeRepository{err: dberr.ErrNotFound}
	service := domain.NewService(repo, slog.New(slog.DiscardHandler))

	updated, err := service.Update(context.Background(), domain.UpdateRequest{ID: 404})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := service.Delete(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, deleted)
}
