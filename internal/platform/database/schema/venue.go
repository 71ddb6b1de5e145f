package schema

// VenueTable represents the 'venues' table
type VenueTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      string
	SeekingDescription string
	Genres             string
	CreatedAt          string
}

// Venue is the schema definition for venues
var Venue = VenueTable{
	Table:              "venues",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Address:            "address",
	Phone:              "phone",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	Website:            "website",
	SeekingTalent:      "seeking_talent",
	SeekingDescription: "seeking_description",
	Genres:             "genres",
	CreatedAt:          "created_at",
}

// Columns lists every column in the order stores scan them.
func (t VenueTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.City, t.State, t.Address, t.Phone, t.ImageLink, t.FacebookLink,
		t.Website, t.SeekingTalent, t.SeekingDescription, t.Genres, t.CreatedAt,
	}
}

// Mutable lists the columns replaced by an edit, in insert/update order.
func (t VenueTable) Mutable() []string {
	return []string{
		t.Name, t.City, t.State, t.Address, t.Phone, t.ImageLink, t.FacebookLink,
		t.Website, t.SeekingTalent, t.SeekingDescription, t.Genres,
	}
}
