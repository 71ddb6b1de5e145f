package artist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/postgres/pgtest"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

/*
TestPostgresRepository runs the artist queries against a real PostgreSQL.
*/
func TestPostgresRepository(t *testing.T) {
	pool := pgtest.NewPool(t)
	pgtest.Truncate(t, pool)
	repository := NewPostgresRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	quevedo := &Artist{
		Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000",
		Genres: []string{"Jazz"},
	}
	petals := &Artist{
		Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000",
		SeekingVenue: true, SeekingDescription: pointer.To("Looking for shows in the Bay Area!"),
		Genres: []string{"Rock n Roll"},
	}
	for _, artist := range []*Artist{quevedo, petals} {
		require.NoError(t, repository.Create(ctx, artist))
		assert.NotZero(t, artist.ID)
	}

	var venueID int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO venues (name, city, state, address, phone, genres) VALUES ('Park Square Live Music & Coffee', 'San Francisco', 'CA', '34 Whiskey Moore Ave', '415-000-1234', '{"Folk"}') RETURNING id`,
	).Scan(&venueID))

	_, err := pool.Exec(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES ($1, $2, $3), ($1, $2, $4), ($1, $2, $5)`,
		venueID, petals.ID, now.Add(-48*time.Hour), now.Add(24*time.Hour), now.Add(72*time.Hour),
	)
	require.NoError(t, err)

	t.Run("list_orders_by_name", func(t *testing.T) {
		artists, err := repository.List(ctx)
		require.NoError(t, err)
		require.Len(t, artists, 2)
		assert.Equal(t, "Guns N Petals", artists[0].Name)
		assert.Equal(t, "Matt Quevedo", artists[1].Name)
	})

	t.Run("search_counts_upcoming", func(t *testing.T) {
		matches, err := repository.Search(ctx, "PETALS", now)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 2, matches[0].NumUpcomingShows)
	})

	t.Run("get_and_shows", func(t *testing.T) {
		stored, err := repository.Get(ctx, petals.ID)
		require.NoError(t, err)
		assert.True(t, stored.SeekingVenue)
		assert.Equal(t, "Looking for shows in the Bay Area!", pointer.Val(stored.SeekingDescription))

		shows, err := repository.Shows(ctx, petals.ID)
		require.NoError(t, err)
		require.Len(t, shows, 3)
		assert.Equal(t, venueID, shows[0].VenueID)
		assert.Equal(t, "Park Square Live Music & Coffee", shows[0].VenueName)

		_, err = repository.Get(ctx, 999999)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("update_clears_optional_fields", func(t *testing.T) {
		petals.SeekingVenue = false
		petals.SeekingDescription = nil
		require.NoError(t, repository.Update(ctx, petals))

		stored, err := repository.Get(ctx, petals.ID)
		require.NoError(t, err)
		assert.False(t, stored.SeekingVenue)
		assert.Nil(t, stored.SeekingDescription)
	})

	t.Run("delete_cascades_to_shows", func(t *testing.T) {
		require.NoError(t, repository.Delete(ctx, petals.ID))

		var remaining int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = $1`, petals.ID).Scan(&remaining))
		assert.Zero(t, remaining)

		recent, err := repository.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, quevedo.ID, recent[0].ID)
	})
}
