package show

import "time"

// Show pairs one venue and one artist at a given time.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// Listing is a show joined with its venue and artist for the shows page.
type Listing struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink *string   `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
)

const Entity = "show"
