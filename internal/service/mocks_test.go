package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// MockVenueRepository is a mock implementation of VenueRepository
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) List(filter models.VenueFilter) ([]models.Venue, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetByID(id string) (*models.Venue, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Venue), args.Error(1)
}

func (m *MockVenueRepository) Create(v *models.Venue) error {
	args := m.Called(v)
	return args.Error(0)
}

func (m *MockVenueRepository) SavePopularTimes(id string, table *models.PopularityTable, source models.DataSource) error {
	args := m.Called(id, table, source)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(e *models.Event) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockEventRepository) List(filter models.EventFilter) ([]models.Event, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) UpcomingApproved(after int64) ([]models.Event, error) {
	args := m.Called(after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateStatus(id string, status models.EventStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockCheckinStore is a mock implementation of CheckinStore
type MockCheckinStore struct {
	mock.Mock
}

func (m *MockCheckinStore) Add(ctx context.Context, checkin *models.Checkin) error {
	args := m.Called(ctx, checkin)
	return args.Error(0)
}

func (m *MockCheckinStore) Live(ctx context.Context, now time.Time, window time.Duration) ([]models.Checkin, error) {
	args := m.Called(ctx, now, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkin), args.Error(1)
}
