package domain

import (
	"context"
	"time"
)

// DateLayout and TimeLayout are the normalized wire formats for event
// scheduling fields. Date carries no time component; Time is wall-clock
// with minute resolution, 24-hour form.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event represents an organized happening with registered attendees.
// Speakers, Agenda, and Attendees are ordered; Attendees is append-only
// during normal operation. MaxAttendees nil means unlimited capacity.
// swagger:model Event
type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Venue        string    `json:"venue"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Speakers     []string  `json:"speakers"`
	Agenda       []string  `json:"agenda"`
	Attendees    []string  `json:"attendees"`
	MaxAttendees *int      `json:"max_attendees,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is assigned by the
// service on create and immutable thereafter.
func NewEvent(name, description, venue, date, tm string, speakers, agenda []string, maxAttendees *int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:         name,
		Description:  description,
		Venue:        venue,
		Date:         date,
		Time:         tm,
		Speakers:     speakers,
		Agenda:       agenda,
		Attendees:    []string{},
		MaxAttendees: maxAttendees,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// IsFull reports whether the event has reached its capacity. Events without
// MaxAttendees are never full.
func (e *Event) IsFull() bool {
	return e.MaxAttendees != nil && len(e.Attendees) >= *e.MaxAttendees
}

// EventFilter selects events by date relative to today in list queries.
type EventFilter string

const (
	FilterAll      EventFilter = "all"
	FilterUpcoming EventFilter = "upcoming"
	FilterPast     EventFilter = "past"
)

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventStats aggregates the collection for the admin dashboard.
type EventStats struct {
	TotalEvents    int               `json:"total_events"`
	UpcomingEvents int               `json:"upcoming_events"`
	TotalAttendees int               `json:"total_attendees"`
	Attendance     []AttendancePoint `json:"attendance"`
	Monthly        []MonthlyPoint    `json:"monthly"`
}

// AttendancePoint is one bar of the per-event attendance chart.
type AttendancePoint struct {
	Name      string `json:"name"`
	Attendees int    `json:"attendees"`
}

// MonthlyPoint is one point of the monthly overview chart.
type MonthlyPoint struct {
	Month     string `json:"month"`
	Events    int    `json:"events"`
	Attendees int    `json:"attendees"`
}

// EventService defines organizer-facing event operations. Create and Update
// return the advisory list of conflicting event names alongside the mutation;
// a detected conflict never blocks it.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) (conflicts []string, err error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, search string, filter EventFilter) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) (conflicts []string, err error)
	DeleteEvent(ctx context.Context, id string) error
	FindConflicts(ctx context.Context, date, tm, excludeID string) ([]*Event, error)
	SuggestSlots(ctx context.Context, date string, limit int) ([]string, error)
	GetStats(ctx context.Context) (*EventStats, error)
}

// RegistrationService registers attendees onto events, enforcing capacity.
type RegistrationService interface {
	// Register appends the composed "{name} ({email})" entry to the event's
	// attendee list and returns the updated event. Returns ErrEventFull with
	// no mutation when the event is at capacity.
	Register(ctx context.Context, eventID, name, email string) (*Event, error)
}
