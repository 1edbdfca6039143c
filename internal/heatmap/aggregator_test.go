package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
)

// 2025-03-07 is a Friday
var testFriday = time.Date(2025, time.March, 7, 21, 0, 0, 0, time.UTC)

func venueAt(id string, lat, lng float64, fridayValues [24]int) models.Venue {
	var table models.PopularityTable
	table.Friday = fridayValues

	return models.Venue{
		ID:           id,
		Latitude:     lat,
		Longitude:    lng,
		Category:     models.CategoryBar,
		PopularTimes: &table,
	}
}

func TestAggregateEmpty(t *testing.T) {
	points, err := Aggregate(nil, testFriday, 21, nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestAggregateWeightsAreNormalized(t *testing.T) {
	var friday [24]int
	friday[21] = 80
	venues := []models.Venue{venueAt("v1", -23.55, -46.63, friday)}

	points, err := Aggregate(venues, testFriday, 21, nil)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, -23.55, points[0].Lat)
	assert.Equal(t, -46.63, points[0].Lng)
	assert.InDelta(t, 0.8, points[0].Weight, 1e-9)
}

func TestAggregateClosedVenueContributesNothing(t *testing.T) {
	var friday [24]int
	friday[21] = 100
	venue := venueAt("v1", -23.55, -46.63, friday)
	closed := models.DayHours{Closed: true}
	venue.OpeningHours = &models.OpeningHours{
		Monday: closed, Tuesday: closed, Wednesday: closed, Thursday: closed,
		Friday: closed, Saturday: closed, Sunday: closed,
	}

	points, err := Aggregate([]models.Venue{venue}, testFriday, 21, nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestAggregateSkipsQuietVenues(t *testing.T) {
	venues := []models.Venue{venueAt("v1", -23.55, -46.63, [24]int{})}

	points, err := Aggregate(venues, testFriday, 21, nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestAggregateCheckinOverlay(t *testing.T) {
	checkins := []models.Checkin{
		{ID: "c1", Latitude: -23.56, Longitude: -46.64, CreatedAt: testFriday.Unix()},
		{ID: "c2", Latitude: -23.57, Longitude: -46.65, CreatedAt: testFriday.Unix()},
	}

	points, err := Aggregate(nil, testFriday, 21, checkins)
	require.NoError(t, err)
	require.Len(t, points, 2)
	for _, p := range points {
		assert.InDelta(t, CheckinBaseWeight, p.Weight, 1e-9)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	var friday [24]int
	friday[21] = 65
	venues := []models.Venue{
		venueAt("v1", -23.55, -46.63, friday),
		venueAt("v2", -23.56, -46.64, friday),
	}
	checkins := []models.Checkin{
		{ID: "c1", Latitude: -23.57, Longitude: -46.65, CreatedAt: testFriday.Unix()},
	}

	first, err := Aggregate(venues, testFriday, 21, checkins)
	require.NoError(t, err)
	second, err := Aggregate(venues, testFriday, 21, checkins)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
}

func TestAggregateInvalidHour(t *testing.T) {
	_, err := Aggregate([]models.Venue{venueAt("v1", 0, 0, [24]int{})}, testFriday, 25, nil)
	assert.ErrorIs(t, err, popularity.ErrInvalidInput)
}

func TestReplicate(t *testing.T) {
	points := []models.HeatmapPoint{
		{Lat: 1, Lng: 1, Weight: 0.8},
		{Lat: 2, Lng: 2, Weight: 0.05},
		{Lat: 3, Lng: 3, Weight: 1},
	}

	replicated := Replicate(points, 10)
	assert.Len(t, replicated, 8+1+10)
	for _, p := range replicated {
		assert.Equal(t, 1.0, p.Weight)
	}
}

func TestReplicateDefaultsK(t *testing.T) {
	points := []models.HeatmapPoint{{Lat: 1, Lng: 1, Weight: 0.5}}

	replicated := Replicate(points, 0)
	assert.Len(t, replicated, 5)
}
