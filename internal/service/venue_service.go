package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fervo-app/fervo-backend-go/internal/models"
	"github.com/fervo-app/fervo-backend-go/internal/popularity"
	"github.com/fervo-app/fervo-backend-go/internal/repository"
	"github.com/fervo-app/fervo-backend-go/internal/spatial"
)

// VenueService handles business logic for venues and their popularity data
type VenueService struct {
	repo     VenueRepository
	timezone *time.Location
	logger   *zap.Logger
}

// NewVenueService creates a new venue service
func NewVenueService(repo VenueRepository, timezone *time.Location, logger *zap.Logger) *VenueService {
	return &VenueService{repo: repo, timezone: timezone, logger: logger}
}

// List retrieves venues, applying the optional geographic near-filter
// over the decoded records
func (s *VenueService) List(filter models.VenueFilter) ([]models.Venue, error) {
	venues, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	if filter.RadiusKm <= 0 {
		return venues, nil
	}

	nearby := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if spatial.WithinRadius(filter.Lat, filter.Lng, v.Latitude, v.Longitude, filter.RadiusKm) {
			nearby = append(nearby, v)
		}
	}
	return nearby, nil
}

// Get retrieves a single venue
func (s *VenueService) Get(id string) (*models.Venue, error) {
	return s.repo.GetByID(id)
}

// Create registers a new venue
func (s *VenueService) Create(v *models.Venue) error {
	if v.Name == "" {
		return fmt.Errorf("%w: venue name is required", popularity.ErrInvalidInput)
	}
	return s.repo.Create(v)
}

// VenueStatus is the resolved busyness payload consumed by list views
// and map markers
type VenueStatus struct {
	VenueID     string              `json:"venueId"`
	Value       int                 `json:"value"`
	IsClosed    bool                `json:"isClosed"`
	Label       string              `json:"label"`
	Color       string              `json:"color"`
	NextOpening *popularity.Opening `json:"nextOpening,omitempty"`
}

// Status resolves a venue's busyness at the given moment. The weekday and
// hour are derived from `at` in the configured reference timezone; this
// is the single place "now" is interpreted.
func (s *VenueService) Status(id string, at time.Time) (*VenueStatus, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	local := at.In(s.timezone)
	res, err := popularity.Resolve(venue, local, local.Hour())
	if err != nil {
		return nil, err
	}

	status := &VenueStatus{
		VenueID:  venue.ID,
		Value:    res.Value,
		IsClosed: res.IsClosed,
		Label:    popularity.Label(res.Value),
		Color:    popularity.Color(res.Value),
	}

	if res.IsClosed {
		opening, err := popularity.NextOpening(venue, local.Weekday(), local.Hour())
		if err != nil {
			return nil, err
		}
		status.NextOpening = opening
	}

	return status, nil
}

// SavePopularTimes persists a popularity table for a venue. Values are
// clamped to [0,100] on write rather than rejected.
func (s *VenueService) SavePopularTimes(id string, table *models.PopularityTable, source models.DataSource) error {
	if table == nil {
		return fmt.Errorf("%w: popularity table is required", popularity.ErrInvalidInput)
	}
	switch source {
	case models.DataSourceManual, models.DataSourceSimulated, models.DataSourceUserCheckins:
	default:
		return fmt.Errorf("%w: unknown data source %q", popularity.ErrInvalidInput, source)
	}

	table.Clamp()
	if err := s.repo.SavePopularTimes(id, table, source); err != nil {
		return err
	}

	s.logger.Info("popular times saved",
		zap.String("venue", id),
		zap.String("source", string(source)),
	)
	return nil
}

// GenerateDefault fills a venue's popularity table from its category
// curves. Venues with manually entered data are never overwritten.
func (s *VenueService) GenerateDefault(id string) (*models.PopularityTable, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if venue.DataSource == models.DataSourceManual && venue.PopularTimes != nil {
		return nil, fmt.Errorf("venue %s: %w", id, repository.ErrManualOverride)
	}

	table := popularity.DefaultTable(venue.Category)
	if err := s.repo.SavePopularTimes(id, &table, models.DataSourceSimulated); err != nil {
		return nil, err
	}

	s.logger.Info("default popular times generated",
		zap.String("venue", id),
		zap.String("category", string(venue.Category)),
	)
	return &table, nil
}
