package show

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

func (repository *PostgresRepository) List(context context.Context) ([]Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s s
		JOIN %s v ON v.%s = s.%s
		JOIN %s a ON a.%s = s.%s
		ORDER BY s.%s, s.%s
	`,
		schema.Qualify("s", schema.Show.ID),
		schema.Qualify("v", schema.Venue.ID, schema.Venue.Name),
		schema.Qualify("a", schema.Artist.ID, schema.Artist.Name, schema.Artist.ImageLink),
		schema.Qualify("s", schema.Show.StartTime),
		schema.Show.Table,
		schema.Venue.Table, schema.Venue.ID, schema.Show.VenueID,
		schema.Artist.Table, schema.Artist.ID, schema.Show.ArtistID,
		schema.Show.StartTime, schema.Show.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	var shows []Listing
	for rows.Next() {
		var listing Listing
		if err := rows.Scan(
			&listing.ID, &listing.VenueID, &listing.VenueName,
			&listing.ArtistID, &listing.ArtistName, &listing.ArtistImageLink, &listing.StartTime,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_show")
		}
		shows = append(shows, listing)
	}

	return shows, dberr.Wrap(rows.Err(), "list_shows")
}

func (repository *PostgresRepository) Create(context context.Context, show *Show) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.Show.Table, schema.Show.VenueID, schema.Show.ArtistID, schema.Show.StartTime,
		schema.Show.ID,
	)

	err := postgres.InTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
	})
	return dberr.Wrap(err, "create_show")
}
