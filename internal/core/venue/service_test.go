package venue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	service := NewService(repo, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	service.now = func() time.Time { return fixedNow }
	return service
}

/*
TestService_ListAreas verifies grouping by (city, state) in repository order.
*/
func TestService_ListAreas(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything, fixedNow).Return([]Listing{
		{City: "San Francisco", State: "CA", Summary: Summary{ID: 1, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1}},
		{City: "San Francisco", State: "CA", Summary: Summary{ID: 3, Name: "The Musical Hop", NumUpcomingShows: 0}},
		{City: "New York", State: "NY", Summary: Summary{ID: 2, Name: "The Dueling Pianos Bar"}},
	}, nil)

	areas, err := newTestService(repo).ListAreas(context.Background())

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, 1, areas[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, "NY", areas[1].State)
	repo.AssertExpectations(t)
}

/*
TestService_ListAreas_Empty verifies an empty, non-nil result.
*/
func TestService_ListAreas_Empty(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything, fixedNow).Return(nil, nil)

	areas, err := newTestService(repo).ListAreas(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

/*
TestService_Search covers result counting, trimming and the zero-result case.
*/
func TestService_Search(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Search", mock.Anything, "Hop", fixedNow).Return([]Summary{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 3, Name: "Park Square Hop"},
	}, nil)
	repo.On("Search", mock.Anything, "zzz", fixedNow).Return(nil, nil)

	service := newTestService(repo)

	result, err := service.Search(context.Background(), "  Hop ")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	result, err = service.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data)

	_, err = service.Search(context.Background(), "   ")
	assert.True(t, apperr.IsCode(err, apperr.CodeBadRequest))
}

/*
TestService_GetDetail verifies the split of shows around the current time.
*/
func TestService_GetDetail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, int64(1)).Return(&Venue{ID: 1, Name: "The Musical Hop"}, nil)
	repo.On("Shows", mock.Anything, int64(1)).Return([]ShowEntry{
		{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: fixedNow.AddDate(-1, 0, 0)},
		{ArtistID: 5, ArtistName: "Matt Quevedo", StartTime: fixedNow},
		{ArtistID: 6, ArtistName: "The Wild Sax Band", StartTime: fixedNow.AddDate(0, 0, 7)},
	}, nil)

	detail, err := newTestService(repo).GetDetail(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", detail.PastShows[0].ArtistName)
	assert.Equal(t, "Matt Quevedo", detail.UpcomingShows[0].ArtistName)
}

/*
TestService_GetDetail_NotFound verifies that shows are not queried for an unknown venue.
*/
func TestService_GetDetail_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, int64(99)).Return(nil, apperr.NotFound("Venue"))

	_, err := newTestService(repo).GetDetail(context.Background(), 99)

	assert.True(t, apperr.IsNotFound(err))
	repo.AssertNotCalled(t, "Shows", mock.Anything, mock.Anything)
}

/*
TestService_Create verifies that a valid form is persisted.
*/
func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(venue *Venue) bool {
		return venue.Name == "The Musical Hop" && venue.State == "CA" && len(venue.Genres) == 3
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Venue).ID = 7
	}).Return(nil)

	venue, err := newTestService(repo).Create(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, int64(7), venue.ID)
	repo.AssertExpectations(t)
}

/*
TestService_Create_Invalid verifies that nothing is persisted when validation fails.
*/
func TestService_Create_Invalid(t *testing.T) {
	repo := new(MockRepository)
	form := validForm()
	form.Name = ""

	_, err := newTestService(repo).Create(context.Background(), form)

	assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

/*
TestService_Update verifies the full replace of mutable fields.
*/
func TestService_Update(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(venue *Venue) bool {
		return venue.ID == 3 && venue.Website == nil && assert.ObjectsAreEqual([]string{"Rock n Roll"}, venue.Genres)
	})).Return(nil)

	form := validForm()
	form.WebsiteLink = ""
	form.Genres = []string{"Rock n Roll"}

	_, err := newTestService(repo).Update(context.Background(), 3, form)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

/*
TestService_Delete passes repository errors through.
*/
func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(apperr.Internal(errors.New("connection reset")))

	service := newTestService(repo)

	assert.NoError(t, service.Delete(context.Background(), 1))
	assert.True(t, apperr.IsCode(service.Delete(context.Background(), 2), apperr.CodeInternal))
}
