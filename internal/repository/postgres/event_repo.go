package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventhub/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository creates an EventRepository backed by PostgreSQL.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, name, description, venue, event_date, event_time, speakers, agenda, attendees, max_attendees, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	var maxAttendees sql.NullInt64
	if e.MaxAttendees != nil {
		maxAttendees = sql.NullInt64{Int64: int64(*e.MaxAttendees), Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.Venue, e.Date, e.Time,
		pq.Array(e.Speakers), pq.Array(e.Agenda), pq.Array(e.Attendees),
		maxAttendees, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

const eventColumns = `id, name, description, venue, event_date, event_time, speakers, agenda, attendees, max_attendees, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var speakers, agenda, attendees pq.StringArray
	var maxAttendees sql.NullInt64
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Venue, &e.Date, &e.Time,
		&speakers, &agenda, &attendees, &maxAttendees,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Speakers = []string(speakers)
	e.Agenda = []string(agenda)
	e.Attendees = []string(attendees)
	if e.Speakers == nil {
		e.Speakers = []string{}
	}
	if e.Agenda == nil {
		e.Agenda = []string{}
	}
	if e.Attendees == nil {
		e.Attendees = []string{}
	}
	if maxAttendees.Valid {
		v := int(maxAttendees.Int64)
		e.MaxAttendees = &v
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns the full collection in creation order, so "most recent" is
// always the last element.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $2, description = $3, venue = $4, event_date = $5, event_time = $6,
			speakers = $7, agenda = $8, attendees = $9, max_attendees = $10, updated_at = $11
		WHERE id = $1
	`
	var maxAttendees sql.NullInt64
	if e.MaxAttendees != nil {
		maxAttendees = sql.NullInt64{Int64: int64(*e.MaxAttendees), Valid: true}
	}
	res, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.Venue, e.Date, e.Time,
		pq.Array(e.Speakers), pq.Array(e.Agenda), pq.Array(e.Attendees),
		maxAttendees, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
