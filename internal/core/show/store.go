package show

import "context"

type Repository interface {
	// List returns every show ordered by start time.
	List(ctx context.Context) ([]Listing, error)
	Create(ctx context.Context, show *Show) error
}
