package venue

import (
	"context"
	"time"
)

// Repository is the persistence contract of the venue service.
//
// Methods taking now count a show as upcoming when start_time >= now.
type Repository interface {
	// ListAll returns every venue ordered by state, city and name.
	ListAll(ctx context.Context, now time.Time) ([]Listing, error)

	// Search returns venues whose name contains term, case-insensitively.
	Search(ctx context.Context, term string, now time.Time) ([]Summary, error)

	// Get returns the venue or apperr NotFound.
	Get(ctx context.Context, id int64) (*Venue, error)

	// Shows returns every show at the venue with its artist, ordered by start time.
	Shows(ctx context.Context, id int64) ([]ShowEntry, error)

	// Recent returns the most recently listed venues.
	Recent(ctx context.Context, limit int) ([]Summary, error)

	Create(ctx context.Context, venue *Venue) error
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id int64) error
}
