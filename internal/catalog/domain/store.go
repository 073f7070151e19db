package domain

import (
	"context"
	"time"

	"github.com/tabletoplib/bglist/pkg/listing"
)

type Repository interface {
	List(ctx context.Context, params listing.Params) ([]*Domain, int, error)
	Update(ctx context.Context, id int, name *string, now time.Time) (*Domain, error)
	Delete(ctx context.Context, id int) (*Domain, error)
}
