package artist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Summary, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s, %s`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.Table,
		schema.Artist.Name, schema.Artist.ID,
	)
	return repository.querySummaries(context, query, "list_artists")
}

func (repository *PostgresRepository) Search(context context.Context, term string, now time.Time) ([]Summary, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, COUNT(s.%s) FILTER (WHERE s.%s >= $1)
		FROM %s a
		LEFT JOIN %s s ON s.%s = a.%s
		WHERE a.%s ILIKE $2 ESCAPE '\'
		GROUP BY a.%s
		ORDER BY a.%s, a.%s
	`,
		schema.Artist.ID, schema.Artist.Name, schema.Show.ID, schema.Show.StartTime,
		schema.Artist.Table,
		schema.Show.Table, schema.Show.ArtistID, schema.Artist.ID,
		schema.Artist.Name,
		schema.Artist.ID,
		schema.Artist.Name, schema.Artist.ID,
	)

	rows, err := repository.db.Query(context, query, now, postgres.ContainsPattern(term))
	if err != nil {
		return nil, dberr.Wrap(err, "search_artists")
	}
	defer rows.Close()

	var matches []Summary
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_match")
		}
		matches = append(matches, summary)
	}

	return matches, dberr.Wrap(rows.Err(), "search_artists")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(schema.Artist.Columns()...), schema.Artist.Table, schema.Artist.ID,
	)

	artist := &Artist{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&artist.ID, &artist.Name, &artist.City, &artist.State, &artist.Phone,
		&artist.ImageLink, &artist.FacebookLink, &artist.Website, &artist.SeekingVenue,
		&artist.SeekingDescription, &artist.Genres, &artist.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Artist")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	return artist, nil
}

func (repository *PostgresRepository) Shows(context context.Context, id int64) ([]ShowEntry, error) {
	query := fmt.Sprintf(`
		SELECT v.%s, v.%s, v.%s, s.%s
		FROM %s s
		JOIN %s v ON v.%s = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s, s.%s
	`,
		schema.Venue.ID, schema.Venue.Name, schema.Venue.ImageLink, schema.Show.StartTime,
		schema.Show.Table,
		schema.Venue.Table, schema.Venue.ID, schema.Show.VenueID,
		schema.Show.ArtistID,
		schema.Show.StartTime, schema.Show.ID,
	)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artist_shows")
	}
	defer rows.Close()

	var shows []ShowEntry
	for rows.Next() {
		var show ShowEntry
		if err := rows.Scan(&show.VenueID, &show.VenueName, &show.VenueImageLink, &show.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_show")
		}
		shows = append(shows, show)
	}

	return shows, dberr.Wrap(rows.Err(), "list_artist_shows")
}

func (repository *PostgresRepository) Recent(context context.Context, limit int) ([]Summary, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s DESC, %s DESC LIMIT $1`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.Table,
		schema.Artist.CreatedAt, schema.Artist.ID,
	)
	return repository.querySummaries(context, query, "recent_artists", limit)
}

func (repository *PostgresRepository) Create(context context.Context, artist *Artist) error {
	columns := schema.Artist.Mutable()
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s, %s`,
		schema.Artist.Table, schema.List(columns...), schema.Placeholders(1, len(columns)),
		schema.Artist.ID, schema.Artist.CreatedAt,
	)

	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, mutableValues(artist)...).Scan(&artist.ID, &artist.CreatedAt)
	})
	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) Update(context context.Context, artist *Artist) error {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.Artist.Table, schema.Assignments(2, schema.Artist.Mutable()...),
		schema.Artist.ID, schema.Artist.CreatedAt,
	)

	args := append([]any{artist.ID}, mutableValues(artist)...)
	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, args...).Scan(&artist.CreatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Artist")
	}
	return dberr.Wrap(err, "update_artist")
}

// Delete removes the artist; the shows foreign key cascades.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Artist.Table, schema.Artist.ID)

	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(context, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("Artist")
		}
		return nil
	})
	return dberr.Wrap(err, "delete_artist")
}

func (repository *PostgresRepository) querySummaries(context context.Context, query, action string, args ...any) ([]Summary, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Name); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		summaries = append(summaries, summary)
	}

	return summaries, dberr.Wrap(rows.Err(), action)
}

// mutableValues returns the artist fields in [schema.ArtistTable.Mutable] order.
func mutableValues(artist *Artist) []any {
	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	return []any{
		artist.Name, artist.City, artist.State, artist.Phone,
		artist.ImageLink, artist.FacebookLink, artist.Website,
		artist.SeekingVenue, artist.SeekingDescription, genres,
	}
}
