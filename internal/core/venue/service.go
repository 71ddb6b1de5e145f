package venue

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/metrics"
	"github.com/taibuivan/fyyur/pkg/slice"
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo Repository, metrics *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// ListAreas groups every venue under its (city, state), keeping the
// repository's ordering: areas by state then city, venues by name.
func (service *Service) ListAreas(context context.Context) ([]Area, error) {
	listings, err := service.repo.ListAll(context, service.now())
	if err != nil {
		return nil, err
	}

	areas := []Area{}
	for _, listing := range listings {
		last := len(areas) - 1
		if last < 0 || areas[last].City != listing.City || areas[last].State != listing.State {
			areas = append(areas, Area{City: listing.City, State: listing.State})
			last++
		}
		areas[last].Venues = append(areas[last].Venues, listing.Summary)
	}

	return areas, nil
}

// Search matches term against venue names. A blank term is rejected; the
// handler redirects to the listing before calling this.
func (service *Service) Search(context context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.BadRequest("Search term is required")
	}

	matches, err := service.repo.Search(context, term, service.now())
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []Summary{}
	}

	return &SearchResult{Count: len(matches), Data: matches}, nil
}

// GetDetail loads a venue with its shows split into past and upcoming.
func (service *Service) GetDetail(context context.Context, id int64) (*Detail, error) {
	venue, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	shows, err := service.repo.Shows(context, id)
	if err != nil {
		return nil, err
	}

	currentTime := service.now()
	upcoming, past := slice.Partition(shows, func(show ShowEntry) bool {
		return !show.StartTime.Before(currentTime)
	})

	return &Detail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (service *Service) Get(context context.Context, id int64) (*Venue, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Recent(context context.Context, limit int) ([]Summary, error) {
	return service.repo.Recent(context, limit)
}

func (service *Service) Create(context context.Context, form *Form) (*Venue, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	venue := &Venue{}
	form.Apply(venue)

	if err := service.repo.Create(context, venue); err != nil {
		return nil, err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionCreated)
	service.logger.InfoContext(context, "venue_created", slog.Int64("venue_id", venue.ID), slog.String("name", venue.Name))
	return venue, nil
}

// Update replaces every mutable field of the venue, genres included.
func (service *Service) Update(context context.Context, id int64, form *Form) (*Venue, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	venue := &Venue{ID: id}
	form.Apply(venue)

	if err := service.repo.Update(context, venue); err != nil {
		return nil, err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionUpdated)
	service.logger.InfoContext(context, "venue_updated", slog.Int64("venue_id", id))
	return venue, nil
}

// Delete removes the venue; its shows go with it.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionDeleted)
	service.logger.WarnContext(context, "venue_deleted", slog.Int64("venue_id", id))
	return nil
}
