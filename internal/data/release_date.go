package data

import (
	"fmt"
	"strconv"
	"time"
)

var ErrInvalidReleaseDateFormat = fmt.Errorf("%w: release_date is not a recognised date", ErrInvalidValue)

// layouts accepted for release_date, tried in order.
// RFC1123 covers the "Wed, 01 May 2024 10:00:00 GMT" form.
var releaseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC1123,
}

// ReleaseDate is the request-side form of a movie's release_date.
// Like Age, an unparseable value is kept as present and reported by Time.
type ReleaseDate struct {
	t   time.Time
	err error
}

func (d ReleaseDate) Time() (time.Time, error) {
	return d.t, d.err
}

func (d *ReleaseDate) UnmarshalJSON(jsonValue []byte) error {
	unquoted, err := strconv.Unquote(string(jsonValue))
	if err != nil {
		*d = ReleaseDate{err: ErrInvalidReleaseDateFormat}
		return nil
	}

	t, err := ParseReleaseDate(unquoted)
	*d = ReleaseDate{t: t, err: err}
	return nil
}

// ParseReleaseDate returns the instant in UTC. Values without a zone are read as UTC.
func ParseReleaseDate(value string) (time.Time, error) {
	for _, layout := range releaseDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidReleaseDateFormat
}

func formatReleaseDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
