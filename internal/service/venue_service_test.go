package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
	"github.com/fervo-app/fervo-backend-go/internal/repository"
)

func newVenueService(repo *MockVenueRepository) *VenueService {
	return NewVenueService(repo, time.UTC, zap.NewNop())
}

func TestListNearFilter(t *testing.T) {
	repo := new(MockVenueRepository)
	repo.On("List", mock.Anything).Return([]models.Venue{
		{ID: "sp", Latitude: -23.5505, Longitude: -46.6333},
		{ID: "rio", Latitude: -22.9068, Longitude: -43.1729},
	}, nil)

	svc := newVenueService(repo)
	venues, err := svc.List(models.VenueFilter{
		Lat: -23.55, Lng: -46.63, RadiusKm: 50,
	})
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "sp", venues[0].ID)
}

func TestSavePopularTimesClampsOnWrite(t *testing.T) {
	repo := new(MockVenueRepository)
	repo.On("SavePopularTimes", "v1", mock.MatchedBy(func(table *models.PopularityTable) bool {
		return table.Monday[0] == 100 && table.Monday[1] == 0
	}), models.DataSourceManual).Return(nil)

	var table models.PopularityTable
	table.Monday[0] = 150
	table.Monday[1] = -10

	svc := newVenueService(repo)
	err := svc.SavePopularTimes("v1", &table, models.DataSourceManual)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSavePopularTimesRejectsUnknownSource(t *testing.T) {
	repo := new(MockVenueRepository)
	svc := newVenueService(repo)

	var table models.PopularityTable
	err := svc.SavePopularTimes("v1", &table, "scraper-v2")
	assert.ErrorIs(t, err, popularity.ErrInvalidInput)
	repo.AssertNotCalled(t, "SavePopularTimes", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateDefaultRefusesManualData(t *testing.T) {
	table := popularity.DefaultTable(models.CategoryBar)
	repo := new(MockVenueRepository)
	repo.On("GetByID", "v1").Return(&models.Venue{
		ID:           "v1",
		Category:     models.CategoryBar,
		DataSource:   models.DataSourceManual,
		PopularTimes: &table,
	}, nil)

	svc := newVenueService(repo)
	_, err := svc.GenerateDefault("v1")
	assert.ErrorIs(t, err, repository.ErrManualOverride)
	repo.AssertNotCalled(t, "SavePopularTimes", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateDefaultUsesCategoryCurves(t *testing.T) {
	repo := new(MockVenueRepository)
	repo.On("GetByID", "v1").Return(&models.Venue{
		ID:       "v1",
		Category: models.CategoryCafe,
	}, nil)
	repo.On("SavePopularTimes", "v1", mock.Anything, models.DataSourceSimulated).Return(nil)

	svc := newVenueService(repo)
	table, err := svc.GenerateDefault("v1")
	require.NoError(t, err)
	assert.Equal(t, 90, table.Monday[8])
	repo.AssertExpectations(t)
}

func TestStatusClosedIncludesNextOpening(t *testing.T) {
	closed := models.DayHours{Closed: true}
	hours := &models.OpeningHours{
		Monday: closed, Tuesday: closed, Wednesday: closed, Thursday: closed,
		Friday: models.DayHours{Open: "20:00", Close: "23:00"},
		Saturday: models.DayHours{Open: "20:00", Close: "23:00"},
		Sunday:   closed,
	}
	repo := new(MockVenueRepository)
	repo.On("GetByID", "v1").Return(&models.Venue{
		ID:           "v1",
		OpeningHours: hours,
	}, nil)

	svc := newVenueService(repo)
	// 2025-03-03 10:00 UTC is a Monday morning
	status, err := svc.Status("v1", time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, status.IsClosed)
	assert.Equal(t, "Tranquilo", status.Label)
	require.NotNil(t, status.NextOpening)
	assert.Equal(t, time.Friday, status.NextOpening.Weekday)
	assert.Equal(t, "20:00", status.NextOpening.Time)
}

func TestStatusOpenVenue(t *testing.T) {
	table := popularity.DefaultTable(models.CategoryCafe)
	repo := new(MockVenueRepository)
	repo.On("GetByID", "v1").Return(&models.Venue{
		ID:           "v1",
		Category:     models.CategoryCafe,
		PopularTimes: &table,
	}, nil)

	svc := newVenueService(repo)
	status, err := svc.Status("v1", time.Date(2025, time.March, 3, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, status.IsClosed)
	assert.Equal(t, 90, status.Value)
	assert.Equal(t, "Muito Cheio", status.Label)
	assert.Equal(t, "red", status.Color)
	assert.Nil(t, status.NextOpening)
}
