package schema

// ShowTable represents the 'shows' table
type ShowTable struct {
	Table     string
	ID        string
	VenueID   string
	ArtistID  string
	StartTime string

	// Foreign key constraint names, used to tell which reference was missing.
	VenueFK  string
	ArtistFK string
}

// Show is the schema definition for shows
var Show = ShowTable{
	Table:     "shows",
	ID:        "id",
	VenueID:   "venue_id",
	ArtistID:  "artist_id",
	StartTime: "start_time",
	VenueFK:   "shows_venue_id_fkey",
	ArtistFK:  "shows_artist_id_fkey",
}

func (t ShowTable) Columns() []string {
	return []string{t.ID, t.VenueID, t.ArtistID, t.StartTime}
}
