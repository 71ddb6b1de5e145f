package artist

import (
	"context"
	"time"
)

type Repository interface {
	// List returns every artist ordered by name.
	List(ctx context.Context) ([]Summary, error)
	Search(ctx context.Context, term string, now time.Time) ([]Summary, error)
	Get(ctx context.Context, id int64) (*Artist, error)
	Shows(ctx context.Context, id int64) ([]ShowEntry, error)
	Recent(ctx context.Context, limit int) ([]Summary, error)
	Create(ctx context.Context, artist *Artist) error
	Update(ctx context.Context, artist *Artist) error
	Delete(ctx context.Context, id int64) error
}
