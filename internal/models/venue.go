package models

import "time"

// CategoryTag classifies a venue for default popularity generation
type CategoryTag string

const (
	CategoryBar        CategoryTag = "bar"
	CategoryNightclub  CategoryTag = "nightclub"
	CategoryRestaurant CategoryTag = "restaurant"
	CategoryCafe       CategoryTag = "cafe"
	CategoryTheater    CategoryTag = "theater"
	CategoryOther      CategoryTag = "other"
)

// DayHours describes opening hours for a single weekday.
// Closed means closed the whole day regardless of Open/Close.
type DayHours struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open,omitempty"`  // "HH:MM" local time
	Close  string `json:"close,omitempty"` // "HH:MM" local time
}

// OpeningHours holds per-weekday opening hours for a venue
type OpeningHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// ForDay returns the hours for the given weekday
func (o *OpeningHours) ForDay(d time.Weekday) DayHours {
	switch d {
	case time.Monday:
		return o.Monday
	case time.Tuesday:
		return o.Tuesday
	case time.Wednesday:
		return o.Wednesday
	case time.Thursday:
		return o.Thursday
	case time.Friday:
		return o.Friday
	case time.Saturday:
		return o.Saturday
	default:
		return o.Sunday
	}
}

// Venue represents a place shown on the map with its busyness data.
// OpeningHours may be nil, meaning hours are unknown and the venue is
// treated as always open. PopularTimes may be nil until a table is first
// entered or generated.
type Venue struct {
	ID           string           `json:"id" db:"id"`
	PlaceID      string           `json:"placeId,omitempty" db:"place_id"`
	Name         string           `json:"name" db:"name"`
	Latitude     float64          `json:"latitude" db:"latitude"`
	Longitude    float64          `json:"longitude" db:"longitude"`
	Rating       float64          `json:"rating,omitempty" db:"rating"`
	Category     CategoryTag      `json:"category" db:"category"`
	OpeningHours *OpeningHours    `json:"openingHours,omitempty" db:"opening_hours"`
	PopularTimes *PopularityTable `json:"popularTimes,omitempty" db:"popular_times"`
	DataSource   DataSource       `json:"dataSource,omitempty" db:"data_source"`
	CreatedAt    int64            `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt    int64            `json:"updatedAt,omitempty" db:"updated_at"`
}
