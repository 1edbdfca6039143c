package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// EventRepository handles database operations for user-created events
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, name, category, venue_id, start_time, end_time,
	status, confirmed_count, created_at`

// Create inserts a new event
func (r *EventRepository) Create(e *models.Event) error {
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	query := `INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		e.ID, e.Name, e.Category, e.VenueID, e.StartTime, e.EndTime,
		e.Status, e.ConfirmedCount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert event: %v", ErrUpstream, err)
	}
	return nil
}

// List retrieves events with filtering
func (r *EventRepository) List(filter models.EventFilter) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`

	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.VenueID != "" {
		conditions = append(conditions, "venue_id = ?")
		args = append(args, filter.VenueID)
	}
	if filter.After > 0 {
		conditions = append(conditions, "start_time > ?")
		args = append(args, filter.After)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY start_time ASC"

	limit := 500
	if filter.Limit > 0 && filter.Limit <= 2000 {
		limit = filter.Limit
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query events: %v", ErrUpstream, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.VenueID, &e.StartTime, &e.EndTime,
			&e.Status, &e.ConfirmedCount, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// UpcomingApproved retrieves approved events starting strictly after the
// given moment, the eligibility set for prediction scoring
func (r *EventRepository) UpcomingApproved(after int64) ([]models.Event, error) {
	return r.List(models.EventFilter{
		Status: string(models.EventApproved),
		After:  after,
	})
}

// UpdateStatus moves an event through the approval workflow
func (r *EventRepository) UpdateStatus(id string, status models.EventStatus) error {
	result, err := r.db.Exec("UPDATE events SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("%w: failed to update event status: %v", ErrUpstream, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %v", ErrUpstream, err)
	}
	if affected == 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return nil
}
