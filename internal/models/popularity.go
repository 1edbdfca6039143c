package models

import (
	"fmt"
	"time"
)

// DataSource indicates where a venue's popularity table came from
type DataSource string

const (
	DataSourceManual       DataSource = "manual"        // entered by an admin, never auto-overwritten
	DataSourceSimulated    DataSource = "simulated"     // generated from the category default curves
	DataSourceUserCheckins DataSource = "user_checkins" // derived from aggregated check-in history
)

// PopularityTable holds hourly busyness values (0-100) for each weekday.
// One fixed-size field per day replaces the dynamic day-name keys used by
// map-based representations, so the 7x24 shape is checked at compile time.
// The JSON keys (monday..sunday) are the persisted wire contract.
type PopularityTable struct {
	Monday    [24]int `json:"monday"`
	Tuesday   [24]int `json:"tuesday"`
	Wednesday [24]int `json:"wednesday"`
	Thursday  [24]int `json:"thursday"`
	Friday    [24]int `json:"friday"`
	Saturday  [24]int `json:"saturday"`
	Sunday    [24]int `json:"sunday"`
}

// Day returns the hourly values for the given weekday
func (t *PopularityTable) Day(d time.Weekday) [24]int {
	switch d {
	case time.Monday:
		return t.Monday
	case time.Tuesday:
		return t.Tuesday
	case time.Wednesday:
		return t.Wednesday
	case time.Thursday:
		return t.Thursday
	case time.Friday:
		return t.Friday
	case time.Saturday:
		return t.Saturday
	default:
		return t.Sunday
	}
}

// SetDay replaces the hourly values for the given weekday
func (t *PopularityTable) SetDay(d time.Weekday, values [24]int) {
	switch d {
	case time.Monday:
		t.Monday = values
	case time.Tuesday:
		t.Tuesday = values
	case time.Wednesday:
		t.Wednesday = values
	case time.Thursday:
		t.Thursday = values
	case time.Friday:
		t.Friday = values
	case time.Saturday:
		t.Saturday = values
	default:
		t.Sunday = values
	}
}

// Clamp forces every value into [0,100] in place. Out-of-range values are
// clamped on write rather than rejected.
func (t *PopularityTable) Clamp() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		values := t.Day(d)
		for h := range values {
			if values[h] < 0 {
				values[h] = 0
			} else if values[h] > 100 {
				values[h] = 100
			}
		}
		t.SetDay(d, values)
	}
}

// Validate reports the first out-of-range value, if any
func (t *PopularityTable) Validate() error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		values := t.Day(d)
		for h, v := range values {
			if v < 0 || v > 100 {
				return fmt.Errorf("popularity value %d at %s hour %d outside [0,100]", v, d, h)
			}
		}
	}
	return nil
}
