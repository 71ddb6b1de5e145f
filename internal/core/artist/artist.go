package artist

import "time"

// Artist is a performer who plays shows.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	ImageLink          *string   `json:"image_link"`
	FacebookLink       *string   `json:"facebook_link"`
	Website            *string   `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description"`
	Genres             []string  `json:"genres"`
	CreatedAt          time.Time `json:"created_at"`
}

// Summary is an artist entry in listings and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the answer to a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ShowEntry is a show the artist plays, seen from the artist's side.
type ShowEntry struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink *string   `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// Detail is the artist page: the record and its shows split around now.
type Detail struct {
	Artist             *Artist     `json:"artist"`
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPhone              = "phone"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldWebsiteLink        = "website_link"
	FieldGenres             = "genres"
	FieldSeekingVenue       = "seeking_venue"
	FieldSeekingDescription = "seeking_description"
	FieldSearchTerm         = "search_term"
)

// Entity is the label used in metrics and log events.
const Entity = "artist"
