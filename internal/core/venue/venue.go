package venue

import "time"

// Venue is a location that hosts shows.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	ImageLink          *string   `json:"image_link"`
	FacebookLink       *string   `json:"facebook_link"`
	Website            *string   `json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description"`
	Genres             []string  `json:"genres"`
	CreatedAt          time.Time `json:"created_at"`
}

// Summary is a venue entry in listings and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Listing is one row of the full venue scan, before grouping.
type Listing struct {
	City  string
	State string
	Summary
}

// Area groups the venues of one (city, state) pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the answer to a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ShowEntry is a show played at the venue, seen from the venue's side.
type ShowEntry struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink *string   `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Detail is the venue page: the record and its shows split around now.
type Detail struct {
	Venue              *Venue      `json:"venue"`
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// Form field names, shared by validation messages and templates.
const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldWebsiteLink        = "website_link"
	FieldGenres             = "genres"
	FieldSeekingTalent      = "seeking_talent"
	FieldSeekingDescription = "seeking_description"
	FieldSearchTerm         = "search_term"
)

// Entity is the label used in metrics and log events.
const Entity = "venue"
