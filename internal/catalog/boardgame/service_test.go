package boardgame_test

import (
	"context"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabletoplib/bglist/internal/catalog/boardgame"
	"github.com/tabletoplib/bglist/internal/platform/dberr"
	"github.com/tabletoplib/bglist/pkg/listing"
	"github.com/tabletoplib/bglist/pkg/pointer"
)

// fakeRepository records the arguments the service passes down and plays
// back canned results.
type fakeRepository struct {
	games []*boardgame.BoardGame
	total int
	err   error

	gotID   int
	gotName *string
	gotYear *int
}

func (f *fakeRepository) List(_ context.Context, _ listing.Params) ([]*boardgame.BoardGame, int, error) {
	return f.games, f.total, f.err
}

func (f *fakeRepository) Update(_ context.Context, id int, name *string, year *int, _ time.Time) (*boardgame.BoardGame, error) {
	f.gotID, f.gotName, f.gotYear = id, name, year
	if f.err != nil {
		return nil, f.err
	}
	if len(f.games) == 0 {
		return nil, nil
	}
	return f.games[0], nil
}

func (f *fakeRepository) Delete(_ context.Context, id int) (*boardgame.BoardGame, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	if len(f.games) == 0 {
		return nil, nil
	}
	return f.games[0], nil
}

func newService(repo *fakeRepository) *boardgame.Service {
	return boardgame.NewService(repo, slog.New(slog.DiscardHandler))
}

/*
TestService_Update_FieldFiltering checks that empty names and non-positive
years are dropped before they reach the store.
*/
func TestService_Update_FieldFiltering(t *testing.T) {
	tests := []struct {
		name     string
		req      boardgame.UpdateRequest
		wantName *string
		wantYear *int
	}{
		{
			"both_set",
			boardgame.UpdateRequest{ID: 1, Name: pointer.To("Root"), Year: pointer.To(2018)},
			pointer.To("Root"), pointer.To(2018),
		},
		{
			"empty_name_ignored",
			boardgame.UpdateRequest{ID: 1, Name: pointer.To("   "), Year: pointer.To(2018)},
			nil, pointer.To(2018),
		},
		{
			"zero_year_ignored",
			boardgame.UpdateRequest{ID: 1, Name: pointer.To("Root"), Year: pointer.To(0)},
			pointer.To("Root"), nil,
		},
		{
			"negative_year_ignored",
			boardgame.UpdateRequest{ID: 1, Year: pointer.To(-10)},
			nil, nil,
		},
		{
			"nothing_set",
			boardgame.UpdateRequest{ID: 1},
			nil, nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{games: []*boardgame.BoardGame{{ID: 1, Name: "Root"}}}
			service := newService(repo)

			_, err := service.Update(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.req.ID, repo.gotID)
			if tt.wantName == nil {
				assert.Nil(t, repo.gotName)
			} else {
				require.NotNil(t, repo.gotName)
				assert.Equal(t, *tt.wantName, *repo.gotName)
			}
			if tt.wantYear == nil {
				assert.Nil(t, repo.gotYear)
			} else {
				require.NotNil(t, repo.gotYear)
				assert.Equal(t, *tt.wantYear, *repo.gotYear)
			}
		})
	}
}

/*
TestService_Update_MissingTarget verifies that an absent record is reported
as success with a nil result, not as an error.
*/
func TestService_Update_MissingTarget(t *testing.T) {
	repo := &fakeRepository{err: dberr.ErrNotFound}
	service := newService(repo)

	game, err := service.Update(context.Background(), boardgame.UpdateRequest{ID: 999})

	assert.NoError(t, err)
	assert.Nil(t, game)
}

/*
TestService_Delete_MissingTarget mirrors the update semantics for deletes.
*/
func TestService_Delete_MissingTarget(t *testing.T) {
	repo := &fakeRepository{err: dberr.ErrNotFound}
	service := newService(repo)

	game, err := service.Delete(context.Background(), 999)

	assert.NoError(t, err)
	assert.Nil(t, game)
	assert.Equal(t, 999, repo.gotID)
}

/*
TestService_List passes results and totals through untouched.
*/
func TestService_List(t *testing.T) {
	repo := &fakeRepository{
		games: []*boardgame.BoardGame{{ID: 1, Name: "Gloomhaven"}, {ID: 2, Name: "Pandemic"}},
		total: 42,
	}
	service := newService(repo)

	games, total, err := service.List(context.Background(), listing.Params{PageSize: 2})

	require.NoError(t, err)
	assert.Len(t, games, 2)
	assert.Equal(t, 42, total)
}
