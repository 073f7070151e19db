package mechanic

import (
	"context"
	"time"

	"github.com/tabletoplib/bglist/pkg/listing"
)

type Repository interface {
	List(ctx context.Context, params listing.Params) ([]*Mechanic, int, error)
	Update(ctx context.Context, id int, name *string, now time.Time) (*Mechanic, error)
	Delete(ctx context.Context, id int) (*Mechanic, error)
}
