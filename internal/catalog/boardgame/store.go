package boardgame

import (
	"context"
	"time"

	"github.com/tabletoplib/bglist/pkg/listing"
)

type Repository interface {
	List(ctx context.Context, params listing.Params) ([]*BoardGame, int, error)
	Update(ctx context.Context, id int, name *string, year *int, now time.Time) (*BoardGame, error)
	Delete(ctx context.Context, id int) (*BoardGame, error)
}
