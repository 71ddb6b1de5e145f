package schema

// ArtistTable represents the 'artists' table
type ArtistTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       string
	SeekingDescription string
	Genres             string
	CreatedAt          string
}

// Artist is the schema definition for artists
var Artist = ArtistTable{
	Table:              "artists",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	Website:            "website",
	SeekingVenue:       "seeking_venue",
	SeekingDescription: "seeking_description",
	Genres:             "genres",
	CreatedAt:          "created_at",
}

// Columns lists every column in the order stores scan them.
func (t ArtistTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.City, t.State, t.Phone, t.ImageLink, t.FacebookLink,
		t.Website, t.SeekingVenue, t.SeekingDescription, t.Genres, t.CreatedAt,
	}
}

// Mutable lists the columns replaced by an edit, in insert/update order.
func (t ArtistTable) Mutable() []string {
	return []string{
		t.Name, t.City, t.State, t.Phone, t.ImageLink, t.FacebookLink,
		t.Website, t.SeekingVenue, t.SeekingDescription, t.Genres,
	}
}
