package artist

import (
	"github.com/taibuivan/fyyur/internal/core/choice"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

const (
	maxShortField = 120
	maxLinkField  = 500
)

// Form is the submitted artist form.
type Form struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string
}

func DecodeForm(form *requestutil.Form) *Form {
	return &Form{
		Name:               form.String(FieldName),
		City:               form.String(FieldCity),
		State:              form.String(FieldState),
		Phone:              form.String(FieldPhone),
		ImageLink:          form.String(FieldImageLink),
		FacebookLink:       form.String(FieldFacebookLink),
		WebsiteLink:        form.String(FieldWebsiteLink),
		Genres:             form.Strings(FieldGenres),
		SeekingVenue:       form.Bool(FieldSeekingVenue),
		SeekingDescription: form.String(FieldSeekingDescription),
	}
}

func FormFrom(artist *Artist) *Form {
	return &Form{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          pointer.Val(artist.ImageLink),
		FacebookLink:       pointer.Val(artist.FacebookLink),
		WebsiteLink:        pointer.Val(artist.Website),
		Genres:             artist.Genres,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: pointer.Val(artist.SeekingDescription),
	}
}

func (form *Form) Validate() error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, form.Name).MaxLen(FieldName, form.Name, maxShortField).
		Required(FieldCity, form.City).MaxLen(FieldCity, form.City, maxShortField).
		Required(FieldState, form.State).OneOf(FieldState, form.State, choice.States).
		Required(FieldPhone, form.Phone).MaxLen(FieldPhone, form.Phone, maxShortField).
		Matches(FieldPhone, form.Phone, choice.Phone, "Invalid phone number.").
		NotEmpty(FieldGenres, form.Genres).Subset(FieldGenres, form.Genres, choice.Genres).
		URL(FieldImageLink, form.ImageLink).MaxLen(FieldImageLink, form.ImageLink, maxLinkField).
		URL(FieldFacebookLink, form.FacebookLink).MaxLen(FieldFacebookLink, form.FacebookLink, maxLinkField).
		URL(FieldWebsiteLink, form.WebsiteLink)

	return validator.Err()
}

// Apply copies the form onto artist; blank optional fields become NULL.
func (form *Form) Apply(artist *Artist) {
	artist.Name = form.Name
	artist.City = form.City
	artist.State = form.State
	artist.Phone = form.Phone
	artist.ImageLink = pointer.NonEmpty(form.ImageLink)
	artist.FacebookLink = pointer.NonEmpty(form.FacebookLink)
	artist.Website = pointer.NonEmpty(form.WebsiteLink)
	artist.SeekingVenue = form.SeekingVenue
	artist.SeekingDescription = pointer.NonEmpty(form.SeekingDescription)
	artist.Genres = append([]string(nil), form.Genres...)
}
