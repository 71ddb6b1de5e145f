package venue

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

// summarySelect counts upcoming shows per venue; $1 is the reference time.
var summarySelect = fmt.Sprintf(`
	SELECT v.%s, v.%s, v.%s, v.%s, COUNT(s.%s) FILTER (WHERE s.%s >= $1)
	FROM %s v
	LEFT JOIN %s s ON s.%s = v.%s
`,
	schema.Venue.City, schema.Venue.State, schema.Venue.ID, schema.Venue.Name,
	schema.Show.ID, schema.Show.StartTime,
	schema.Venue.Table,
	schema.Show.Table, schema.Show.VenueID, schema.Venue.ID,
)

func (repository *PostgresRepository) ListAll(context context.Context, now time.Time) ([]Listing, error) {
	query := summarySelect + fmt.Sprintf(`
		GROUP BY v.%s
		ORDER BY v.%s, v.%s, v.%s, v.%s
	`,
		schema.Venue.ID,
		schema.Venue.State, schema.Venue.City, schema.Venue.Name, schema.Venue.ID,
	)

	rows, err := repository.db.Query(context, query, now)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venues")
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var listing Listing
		if err := rows.Scan(&listing.City, &listing.State, &listing.ID, &listing.Name, &listing.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_listing")
		}
		listings = append(listings, listing)
	}

	return listings, dberr.Wrap(rows.Err(), "list_venues")
}

func (repository *PostgresRepository) Search(context context.Context, term string, now time.Time) ([]Summary, error) {
	query := summarySelect + fmt.Sprintf(`
		WHERE v.%s ILIKE $2 ESCAPE '\'
		GROUP BY v.%s
		ORDER BY v.%s, v.%s
	`,
		schema.Venue.Name,
		schema.Venue.ID,
		schema.Venue.Name, schema.Venue.ID,
	)

	rows, err := repository.db.Query(context, query, now, postgres.ContainsPattern(term))
	if err != nil {
		return nil, dberr.Wrap(err, "search_venues")
	}
	defer rows.Close()

	var matches []Summary
	for rows.Next() {
		var city, state string
		var summary Summary
		if err := rows.Scan(&city, &state, &summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_match")
		}
		matches = append(matches, summary)
	}

	return matches, dberr.Wrap(rows.Err(), "search_venues")
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Venue, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List(schema.Venue.Columns()...), schema.Venue.Table, schema.Venue.ID,
	)

	venue := &Venue{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&venue.ID, &venue.Name, &venue.City, &venue.State, &venue.Address, &venue.Phone,
		&venue.ImageLink, &venue.FacebookLink, &venue.Website, &venue.SeekingTalent,
		&venue.SeekingDescription, &venue.Genres, &venue.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Venue")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_venue")
	}

	return venue, nil
}

func (repository *PostgresRepository) Shows(context context.Context, id int64) ([]ShowEntry, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, s.%s
		FROM %s s
		JOIN %s a ON a.%s = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s, s.%s
	`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.ImageLink, schema.Show.StartTime,
		schema.Show.Table,
		schema.Artist.Table, schema.Artist.ID, schema.Show.ArtistID,
		schema.Show.VenueID,
		schema.Show.StartTime, schema.Show.ID,
	)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venue_shows")
	}
	defer rows.Close()

	var shows []ShowEntry
	for rows.Next() {
		var show ShowEntry
		if err := rows.Scan(&show.ArtistID, &show.ArtistName, &show.ArtistImageLink, &show.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_show")
		}
		shows = append(shows, show)
	}

	return shows, dberr.Wrap(rows.Err(), "list_venue_shows")
}

func (repository *PostgresRepository) Recent(context context.Context, limit int) ([]Summary, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s DESC, %s DESC LIMIT $1`,
		schema.Venue.ID, schema.Venue.Name, schema.Venue.Table,
		schema.Venue.CreatedAt, schema.Venue.ID,
	)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "recent_venues")
	}
	defer rows.Close()

	var recent []Summary
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_recent_venue")
		}
		recent = append(recent, summary)
	}

	return recent, dberr.Wrap(rows.Err(), "recent_venues")
}

func (repository *PostgresRepository) Create(context context.Context, venue *Venue) error {
	columns := schema.Venue.Mutable()
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s, %s`,
		schema.Venue.Table, schema.List(columns...), schema.Placeholders(1, len(columns)),
		schema.Venue.ID, schema.Venue.CreatedAt,
	)

	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, mutableValues(venue)...).Scan(&venue.ID, &venue.CreatedAt)
	})
	return dberr.Wrap(err, "create_venue")
}

func (repository *PostgresRepository) Update(context context.Context, venue *Venue) error {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1 RETURNING %s`,
		schema.Venue.Table, schema.Assignments(2, schema.Venue.Mutable()...),
		schema.Venue.ID, schema.Venue.CreatedAt,
	)

	args := append([]any{venue.ID}, mutableValues(venue)...)
	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, args...).Scan(&venue.CreatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Venue")
	}
	return dberr.Wrap(err, "update_venue")
}

// Delete removes the venue; the shows foreign key cascades.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Venue.Table, schema.Venue.ID)

	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(context, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("Venue")
		}
		return nil
	})
	return dberr.Wrap(err, "delete_venue")
}

// mutableValues returns the venue fields in [schema.VenueTable.Mutable] order.
func mutableValues(venue *Venue) []any {
	genres := venue.Genres
	if genres == nil {
		genres = []string{}
	}

	return []any{
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, genres,
	}
}
