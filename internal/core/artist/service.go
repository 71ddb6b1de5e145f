package artist

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

func (service *Service) List(context context.Context) ([]Summary, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []Summary{}
	}
	return artists, nil
}

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

func (service *Service) GetDetail(context context.Context, id int64) (*Detail, error) {
	artist, err := service.repo.Get(context, id)
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
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (service *Service) Get(context context.Context, id int64) (*Artist, error) {
	return service.repo.Get(context, id)
}

func (service *Service) Recent(context context.Context, limit int) ([]Summary, error) {
	return service.repo.Recent(context, limit)
}

func (service *Service) Create(context context.Context, form *Form) (*Artist, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	artist := &Artist{}
	form.Apply(artist)

	if err := service.repo.Create(context, artist); err != nil {
		return nil, err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionCreated)
	service.logger.InfoContext(context, "artist_created", slog.Int64("artist_id", artist.ID), slog.String("name", artist.Name))
	return artist, nil
}

func (service *Service) Update(context context.Context, id int64, form *Form) (*Artist, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	artist := &Artist{ID: id}
	form.Apply(artist)

	if err := service.repo.Update(context, artist); err != nil {
		return nil, err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionUpdated)
	service.logger.InfoContext(context, "artist_updated", slog.Int64("artist_id", id))
	return artist, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.metrics.ListingChanged(Entity, metrics.ActionDeleted)
	service.logger.WarnContext(context, "artist_deleted", slog.Int64("artist_id", id))
	return nil
}
