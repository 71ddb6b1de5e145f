// Package choice holds the enumerated values and formats accepted by listing forms.
package choice

import (
	"regexp"
	"slices"
)

// States are the US state codes a venue or artist may be located in, in form order.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres are the music genres a listing may declare.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
	"Jazz", "Musical Theatre", "Pop", "Punk", "R&B",
	"Reggae", "Rock n Roll", "Soul", "Other",
}

// StateList and GenreList return copies for template helpers.
func StateList() []string { return slices.Clone(States) }

func GenreList() []string { return slices.Clone(Genres) }

// Phone is the accepted phone number format: digits, dashes and plus signs.
var Phone = regexp.MustCompile(`^[0-9\-\+]+$`)
