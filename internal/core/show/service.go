package show

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/internal/platform/metrics"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

type Service struct {
	repo     Repository
	metrics  *metrics.Metrics
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewService builds the show service. Submitted start times carry no zone
// and are read in location.
func NewService(repo Repository, metrics *metrics.Metrics, logger *slog.Logger, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		metrics:  metrics,
		logger:   logger,
		location: location,
		now:      time.Now,
	}
}

func (service *Service) List(context context.Context) ([]Listing, error) {
	shows, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	if shows == nil {
		shows = []Listing{}
	}
	return shows, nil
}

// BlankForm is the form shown on the create page.
func (service *Service) BlankForm() *Form {
	return NewForm(service.now().In(service.location))
}

// Create validates and stores a show. A reference to a missing venue or
// artist comes back as a validation error on that field.
func (service *Service) Create(context context.Context, form *Form) (*Show, error) {
	show, err := form.Parse(service.location)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, show); err != nil {
		if apperr.IsCode(err, apperr.CodeUnprocessable) {
			switch dberr.Constraint(err) {
			case schema.Show.VenueFK:
				return nil, validate.FieldError(FieldVenueID, "Venue does not exist.")
			case schema.Show.ArtistFK:
				return nil, validate.FieldError(FieldArtistID, "Artist does not exist.")
			}
		}
		return nil, err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionCreated)
	service.logger.InfoContext(context, "show_created",
		slog.Int64("show_id", show.ID),
		slog.Int64("venue_id", show.VenueID),
		slog.Int64("artist_id", show.ArtistID),
	)
	return show, nil
}
