package popularity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// ErrInvalidInput is returned for malformed hours or event references.
// Missing popularity data is not an error: it resolves to the documented
// zero fallback instead.
var ErrInvalidInput = errors.New("invalid input")

// Resolution is the effective busyness of a venue at a given moment.
// A closed venue reports value 0 but stays distinguishable from "open but
// quiet" through IsClosed. "Open with no data" also resolves to 0; the
// two zero cases differ only in the flag.
type Resolution struct {
	Value    int  `json:"value"`
	IsClosed bool `json:"isClosed"`
}

// Resolve returns the effective busyness value for a venue at the weekday
// of `at` and the given hour. The weekday is derived from `at` exactly as
// passed: callers are responsible for converting to the venue's local
// reference timezone first. A venue without opening-hours data is treated
// as always open with unknown popularity.
func Resolve(venue *models.Venue, at time.Time, hour int) (Resolution, error) {
	if hour < 0 || hour > 23 {
		return Resolution{}, fmt.Errorf("%w: hour %d outside [0,23]", ErrInvalidInput, hour)
	}

	day := at.Weekday()
	if venue.OpeningHours != nil && venue.OpeningHours.ForDay(day).Closed {
		return Resolution{Value: 0, IsClosed: true}, nil
	}

	if venue.PopularTimes == nil {
		return Resolution{}, nil
	}
	return Resolution{Value: venue.PopularTimes.Day(day)[hour]}, nil
}

// Opening describes the next time a closed venue opens
type Opening struct {
	Weekday time.Weekday `json:"weekday"`
	Time    string       `json:"time"` // "HH:MM"
	IsToday bool         `json:"isToday"`
}

// NextOpening scans for the next opening time after the given day and
// hour: first the rest of the current day, then up to 7 subsequent days
// in order, wrapping after Saturday. Returns nil for venues that never
// open within the week, or whose hours are unknown.
func NextOpening(venue *models.Venue, day time.Weekday, hour int) (*Opening, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("%w: hour %d outside [0,23]", ErrInvalidInput, hour)
	}
	if venue.OpeningHours == nil {
		return nil, nil
	}

	today := venue.OpeningHours.ForDay(day)
	if !today.Closed {
		if h := parseHour(today.Open); h > hour {
			return &Opening{Weekday: day, Time: today.Open, IsToday: true}, nil
		}
	}

	for offset := 1; offset <= 7; offset++ {
		next := time.Weekday((int(day) + offset) % 7)
		hours := venue.OpeningHours.ForDay(next)
		if hours.Closed || hours.Open == "" {
			continue
		}
		return &Opening{Weekday: next, Time: hours.Open}, nil
	}
	return nil, nil
}

// parseHour extracts the hour component from an "HH:MM" string,
// returning -1 when malformed or empty
func parseHour(hhmm string) int {
	idx := strings.IndexByte(hhmm, ':')
	if idx <= 0 {
		return -1
	}
	h, err := strconv.Atoi(hhmm[:idx])
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	return h
}
