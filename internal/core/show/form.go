package show

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/constants"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// Form is the submitted show form. Values stay raw strings so a rejected
// submission can be echoed back as typed.
type Form struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

func DecodeForm(form *requestutil.Form) *Form {
	return &Form{
		ArtistID:  form.String(FieldArtistID),
		VenueID:   form.String(FieldVenueID),
		StartTime: form.String(FieldStartTime),
	}
}

// NewForm returns an empty form whose start time defaults to now.
func NewForm(now time.Time) *Form {
	return &Form{StartTime: now.Format(constants.DateTimeLayout)}
}

// Parse validates the form and converts it into a Show.
func (form *Form) Parse(location *time.Location) (*Show, error) {
	validator := &validate.Validator{}

	artistID, artistProblem := parseID(form.ArtistID, "Artist does not exist.")
	venueID, venueProblem := parseID(form.VenueID, "Venue does not exist.")
	startTime, timeOK := parseStartTime(form.StartTime, location)

	validator.
		Required(FieldArtistID, form.ArtistID).
		Custom(FieldArtistID, form.ArtistID != "" && artistProblem != "", artistProblem).
		Required(FieldVenueID, form.VenueID).
		Custom(FieldVenueID, form.VenueID != "" && venueProblem != "", venueProblem).
		Required(FieldStartTime, form.StartTime).
		Custom(FieldStartTime, form.StartTime != "" && !timeOK, "Not a valid datetime value.")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}

// parseID reads a SERIAL reference. It returns the failure message, or "" on
// success; a number past the int4 range cannot exist, so it gets missing.
func parseID(value, missing string) (int64, string) {
	id, err := strconv.ParseInt(value, 10, 32)
	switch {
	case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(value, "-"):
		return 0, missing
	case err != nil || id <= 0:
		return 0, "Must be a positive number."
	}
	return id, ""
}

func parseStartTime(value string, location *time.Location) (time.Time, bool) {
	for _, layout := range []string{constants.DateTimeLayout, constants.DateTimeLocalLayout} {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
