package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ridaofranco/eventdesk/internal/models"
)

const eventColumns = `id, name, venue, country, date, status, created_at, updated_at`

// CreateEvent inserts a new event. ID, timestamps and status are filled in
// when empty.
func (s *Store) CreateEvent(in models.Event) (*models.Event, error) {
	now := time.Now().UTC()
	e := in
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = models.EventStatusPlanning
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := s.db.Exec(
		`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Venue, e.Country, e.Date, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return &e, nil
}

// GetEvent retrieves an event by ID. It returns nil, nil when absent.
func (s *Store) GetEvent(id string) (*models.Event, error) {
	e, err := scanEvent(s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query event: %w", err)
	}
	return e, nil
}

// ListEvents returns all events ordered by date.
func (s *Store) ListEvents() ([]models.Event, error) {
	rows, err := s.db.Query(`SELECT ` + eventColumns + ` FROM events ORDER BY date ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// UpdateEventStatus updates the confirmation status of an event.
func (s *Store) UpdateEventStatus(id string, status models.EventStatus) error {
	res, err := s.db.Exec(
		`UPDATE events SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	return checkAffected(res)
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	if err := row.Scan(&e.ID, &e.Name, &e.Venue, &e.Country, &e.Date, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
