package venue

import (
	"github.com/taibuivan/fyyur/internal/core/choice"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

// Column widths from the venues table.
const (
	maxShortField = 120
	maxLinkField  = 500
)

// Form is the submitted venue form. Every field is a plain value so a
// rejected submission can be shown back as typed.
type Form struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
}

// DecodeForm reads a venue form from a parsed request body.
func DecodeForm(form *requestutil.Form) *Form {
	return &Form{
		Name:               form.String(FieldName),
		City:               form.String(FieldCity),
		State:              form.String(FieldState),
		Address:            form.String(FieldAddress),
		Phone:              form.String(FieldPhone),
		ImageLink:          form.String(FieldImageLink),
		FacebookLink:       form.String(FieldFacebookLink),
		WebsiteLink:        form.String(FieldWebsiteLink),
		Genres:             form.Strings(FieldGenres),
		SeekingTalent:      form.Bool(FieldSeekingTalent),
		SeekingDescription: form.String(FieldSeekingDescription),
	}
}

// FormFrom pre-populates an edit form from a stored venue.
func FormFrom(venue *Venue) *Form {
	return &Form{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          pointer.Val(venue.ImageLink),
		FacebookLink:       pointer.Val(venue.FacebookLink),
		WebsiteLink:        pointer.Val(venue.Website),
		Genres:             venue.Genres,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: pointer.Val(venue.SeekingDescription),
	}
}

// Validate checks every field and reports all failures at once.
func (form *Form) Validate() error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, form.Name).MaxLen(FieldName, form.Name, maxShortField).
		Required(FieldCity, form.City).MaxLen(FieldCity, form.City, maxShortField).
		Required(FieldState, form.State).OneOf(FieldState, form.State, choice.States).
		Required(FieldAddress, form.Address).MaxLen(FieldAddress, form.Address, maxShortField).
		Required(FieldPhone, form.Phone).MaxLen(FieldPhone, form.Phone, maxShortField).
		Matches(FieldPhone, form.Phone, choice.Phone, "Invalid phone number.").
		NotEmpty(FieldGenres, form.Genres).Subset(FieldGenres, form.Genres, choice.Genres).
		URL(FieldImageLink, form.ImageLink).MaxLen(FieldImageLink, form.ImageLink, maxLinkField).
		URL(FieldFacebookLink, form.FacebookLink).MaxLen(FieldFacebookLink, form.FacebookLink, maxLinkField).
		URL(FieldWebsiteLink, form.WebsiteLink)

	return validator.Err()
}

// Apply copies the form onto venue, replacing every mutable field.
// Blank optional fields become NULL.
func (form *Form) Apply(venue *Venue) {
	venue.Name = form.Name
	venue.City = form.City
	venue.State = form.State
	venue.Address = form.Address
	venue.Phone = form.Phone
	venue.ImageLink = pointer.NonEmpty(form.ImageLink)
	venue.FacebookLink = pointer.NonEmpty(form.FacebookLink)
	venue.Website = pointer.NonEmpty(form.WebsiteLink)
	venue.SeekingTalent = form.SeekingTalent
	venue.SeekingDescription = pointer.NonEmpty(form.SeekingDescription)
	venue.Genres = append([]string(nil), form.Genres...)
}
