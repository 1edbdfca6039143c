package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

const venueColumns = `id, place_id, name, latitude, longitude, rating, category,
	opening_hours, popular_times, data_source, created_at, updated_at`

// List retrieves venues with optional category filtering. Geographic
// near-filtering happens in the service layer, over the decoded records.
func (r *VenueRepository) List(filter models.VenueFilter) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues`

	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY name ASC"

	limit := 1000
	if filter.Limit > 0 && filter.Limit <= 5000 {
		limit = filter.Limit
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query venues: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, *v)
	}

	return venues, rows.Err()
}

// GetByID retrieves a single venue
func (r *VenueRepository) GetByID(id string) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = ?`

	row := r.db.QueryRow(query, id)
	v, err := scanVenue(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("venue %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts a new venue
func (r *VenueRepository) Create(v *models.Venue) error {
	hoursJSON, err := marshalNullable(v.OpeningHours)
	if err != nil {
		return fmt.Errorf("failed to encode opening hours: %w", err)
	}
	timesJSON, err := marshalNullable(v.PopularTimes)
	if err != nil {
		return fmt.Errorf("failed to encode popular times: %w", err)
	}

	now := time.Now().Unix()
	if v.CreatedAt == 0 {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	if v.DataSource == "" {
		v.DataSource = models.DataSourceSimulated
	}

	query := `INSERT INTO venues (` + venueColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query,
		v.ID, v.PlaceID, v.Name, v.Latitude, v.Longitude, v.Rating, v.Category,
		hoursJSON, timesJSON, v.DataSource, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert venue: %v", ErrUpstream, err)
	}
	return nil
}

// SavePopularTimes persists a popularity table with its provenance.
// Manually entered tables are protected: they are only replaced by
// another manual write, never by generated or check-in derived data.
func (r *VenueRepository) SavePopularTimes(id string, table *models.PopularityTable, source models.DataSource) error {
	var current string
	err := r.db.QueryRow("SELECT data_source FROM venues WHERE id = ?", id).Scan(&current)
	if err == sql.ErrNoRows {
		return fmt.Errorf("venue %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read venue provenance: %v", ErrUpstream, err)
	}

	if models.DataSource(current) == models.DataSourceManual && source != models.DataSourceManual {
		return fmt.Errorf("venue %s: %w", id, ErrManualOverride)
	}

	timesJSON, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode popular times: %w", err)
	}

	_, err = r.db.Exec(
		"UPDATE venues SET popular_times = ?, data_source = ?, updated_at = ? WHERE id = ?",
		string(timesJSON), source, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update popular times: %v", ErrUpstream, err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row scanner) (*models.Venue, error) {
	var v models.Venue
	var placeID, hoursJSON, timesJSON, source sql.NullString

	err := row.Scan(
		&v.ID, &placeID, &v.Name, &v.Latitude, &v.Longitude, &v.Rating, &v.Category,
		&hoursJSON, &timesJSON, &source, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan venue: %w", err)
	}

	v.PlaceID = placeID.String
	v.DataSource = models.DataSource(source.String)

	if hoursJSON.Valid && hoursJSON.String != "" {
		var hours models.OpeningHours
		if err := json.Unmarshal([]byte(hoursJSON.String), &hours); err != nil {
			return nil, fmt.Errorf("failed to decode opening hours for venue %s: %w", v.ID, err)
		}
		v.OpeningHours = &hours
	}
	if timesJSON.Valid && timesJSON.String != "" {
		var table models.PopularityTable
		if err := json.Unmarshal([]byte(timesJSON.String), &table); err != nil {
			return nil, fmt.Errorf("failed to decode popular times for venue %s: %w", v.ID, err)
		}
		v.PopularTimes = &table
	}

	return &v, nil
}

func marshalNullable(v interface{}) (sql.NullString, error) {
	switch t := v.(type) {
	case *models.OpeningHours:
		if t == nil {
			return sql.NullString{}, nil
		}
	case *models.PopularityTable:
		if t == nil {
			return sql.NullString{}, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
