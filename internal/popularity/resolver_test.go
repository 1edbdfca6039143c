package popularity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// 2025-03-03 is a Monday
var testMonday = time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)

func openAllWeek(open, close string) *models.OpeningHours {
	day := models.DayHours{Open: open, Close: close}
	return &models.OpeningHours{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func closedAllWeek() *models.OpeningHours {
	day := models.DayHours{Closed: true}
	return &models.OpeningHours{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func TestResolveClosedOverride(t *testing.T) {
	table := DefaultTable(models.CategoryBar)
	table.Monday[20] = 95

	venue := &models.Venue{
		ID:           "v1",
		Category:     models.CategoryBar,
		OpeningHours: closedAllWeek(),
		PopularTimes: &table,
	}

	res, err := Resolve(venue, testMonday, 20)
	require.NoError(t, err)
	assert.True(t, res.IsClosed)
	assert.Zero(t, res.Value, "closed venues contribute no heat regardless of table content")
}

func TestResolveMissingTableIsTranquilNotClosed(t *testing.T) {
	venue := &models.Venue{
		ID:           "v1",
		OpeningHours: openAllWeek("18:00", "23:00"),
	}

	res, err := Resolve(venue, testMonday, 20)
	require.NoError(t, err)
	assert.False(t, res.IsClosed)
	assert.Zero(t, res.Value)
}

func TestResolveNoOpeningHoursNeverClosed(t *testing.T) {
	venue := &models.Venue{ID: "v1"}

	for hour := 0; hour < 24; hour++ {
		res, err := Resolve(venue, testMonday, hour)
		require.NoError(t, err)
		assert.False(t, res.IsClosed, "hour %d", hour)
	}
}

func TestResolveReadsWeekdaySlot(t *testing.T) {
	var table models.PopularityTable
	table.Monday[8] = 42
	table.Sunday[8] = 77

	venue := &models.Venue{ID: "v1", PopularTimes: &table}

	res, err := Resolve(venue, testMonday, 8)
	require.NoError(t, err)
	assert.Equal(t, 42, res.Value)

	sunday := testMonday.AddDate(0, 0, -1)
	res, err = Resolve(venue, sunday, 8)
	require.NoError(t, err)
	assert.Equal(t, 77, res.Value)
}

func TestResolveInvalidHour(t *testing.T) {
	venue := &models.Venue{ID: "v1"}

	for _, hour := range []int{-1, 24, 100} {
		_, err := Resolve(venue, testMonday, hour)
		assert.ErrorIs(t, err, ErrInvalidInput, "hour %d", hour)
	}
}

func TestCafeMondayMorningScenario(t *testing.T) {
	table := DefaultTable(models.CategoryCafe)
	venue := &models.Venue{
		ID:           "cafe1",
		Category:     models.CategoryCafe,
		OpeningHours: openAllWeek("06:00", "22:00"),
		PopularTimes: &table,
	}

	res, err := Resolve(venue, testMonday, 8)
	require.NoError(t, err)
	assert.False(t, res.IsClosed)
	assert.Equal(t, 90, res.Value)
	assert.Equal(t, "Muito Cheio", Label(res.Value))
	assert.Equal(t, "red", Color(res.Value))
}

func TestLabelBands(t *testing.T) {
	tests := []struct {
		value int
		label string
		color string
	}{
		{0, "Tranquilo", "green"},
		{39, "Tranquilo", "green"},
		{40, "Moderado", "yellow"},
		{59, "Moderado", "yellow"},
		{60, "Movimentado", "orange"},
		{79, "Movimentado", "orange"},
		{80, "Muito Cheio", "red"},
		{100, "Muito Cheio", "red"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, Label(tt.value), "value %d", tt.value)
		assert.Equal(t, tt.color, Color(tt.value), "value %d", tt.value)
	}
}

func TestNextOpeningLaterToday(t *testing.T) {
	venue := &models.Venue{ID: "v1", OpeningHours: openAllWeek("18:00", "23:00")}

	opening, err := NextOpening(venue, time.Monday, 10)
	require.NoError(t, err)
	require.NotNil(t, opening)
	assert.True(t, opening.IsToday)
	assert.Equal(t, time.Monday, opening.Weekday)
	assert.Equal(t, "18:00", opening.Time)
}

func TestNextOpeningSkipsClosedDays(t *testing.T) {
	hours := closedAllWeek()
	hours.Friday = models.DayHours{Open: "20:00", Close: "23:00"}
	venue := &models.Venue{ID: "v1", OpeningHours: hours}

	opening, err := NextOpening(venue, time.Monday, 10)
	require.NoError(t, err)
	require.NotNil(t, opening)
	assert.False(t, opening.IsToday)
	assert.Equal(t, time.Friday, opening.Weekday)
	assert.Equal(t, "20:00", opening.Time)
}

func TestNextOpeningWrapsAfterSaturday(t *testing.T) {
	hours := closedAllWeek()
	hours.Sunday = models.DayHours{Open: "12:00", Close: "20:00"}
	venue := &models.Venue{ID: "v1", OpeningHours: hours}

	opening, err := NextOpening(venue, time.Friday, 22)
	require.NoError(t, err)
	require.NotNil(t, opening)
	assert.Equal(t, time.Sunday, opening.Weekday)
}

func TestNextOpeningClosedAllWeek(t *testing.T) {
	venue := &models.Venue{ID: "v1", OpeningHours: closedAllWeek()}

	opening, err := NextOpening(venue, time.Monday, 10)
	require.NoError(t, err)
	assert.Nil(t, opening)
}

func TestNextOpeningUnknownHours(t *testing.T) {
	venue := &models.Venue{ID: "v1"}

	opening, err := NextOpening(venue, time.Monday, 10)
	require.NoError(t, err)
	assert.Nil(t, opening)
}

func TestNextOpeningAlreadyOpenedTodayMovesOn(t *testing.T) {
	venue := &models.Venue{ID: "v1", OpeningHours: openAllWeek("08:00", "23:00")}

	opening, err := NextOpening(venue, time.Monday, 12)
	require.NoError(t, err)
	require.NotNil(t, opening)
	assert.Equal(t, time.Tuesday, opening.Weekday)
	assert.Equal(t, "08:00", opening.Time)
}

func TestNextOpeningInvalidHour(t *testing.T) {
	venue := &models.Venue{ID: "v1", OpeningHours: openAllWeek("08:00", "23:00")}

	_, err := NextOpening(venue, time.Monday, 24)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
