package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventhub/internal/domain"
	"eventhub/internal/scheduler"
)

type eventService struct {
	eventRepo      domain.EventRepository
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	event.ID = uuid.NewString()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.Attendees == nil {
		event.Attendees = []string{}
	}

	conflicts, err := s.conflictNames(ctx, event.Date, event.Time, "")
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return conflicts, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, search string, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	now := s.now()
	filtered := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Name), term) &&
			!strings.Contains(strings.ToLower(e.Venue), term) {
			continue
		}
		switch filter {
		case domain.FilterUpcoming:
			if !eventIsUpcoming(e, now) {
				continue
			}
		case domain.FilterPast:
			if !eventIsPast(e, now) {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

// eventIsUpcoming and eventIsPast compare the event's calendar date against
// the current instant. An unparseable date matches neither bucket and only
// shows up under the "all" filter.
func eventIsUpcoming(e *domain.Event, now time.Time) bool {
	d, err := time.Parse(domain.DateLayout, e.Date)
	if err != nil {
		return false
	}
	return !d.Before(now)
}

func eventIsPast(e *domain.Event, now time.Time) bool {
	d, err := time.Parse(domain.DateLayout, e.Date)
	if err != nil {
		return false
	}
	return d.Before(now)
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// The attendee list survives edits untouched; capacity changes are not
	// applied retroactively.
	event.Attendees = existing.Attendees
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = s.now()

	conflicts, err := s.conflictNames(ctx, event.Date, event.Time, event.ID)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return conflicts, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) FindConflicts(ctx context.Context, date, tm, excludeID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return scheduler.FindConflicts(events, date, tm, excludeID), nil
}

func (s *eventService) SuggestSlots(ctx context.Context, date string, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return scheduler.SuggestSlots(events, date, limit), nil
}

func (s *eventService) conflictNames(ctx context.Context, date, tm, excludeID string) ([]string, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	names := make([]string, 0)
	for _, e := range scheduler.FindConflicts(events, date, tm, excludeID) {
		names = append(names, e.Name)
	}
	return names, nil
}

// chartNameLimit truncates event names on the attendance chart.
const chartNameLimit = 15

func (s *eventService) GetStats(ctx context.Context) (*domain.EventStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	now := s.now()
	stats := &domain.EventStats{
		TotalEvents: len(events),
		Attendance:  make([]domain.AttendancePoint, 0, len(events)),
		Monthly:     make([]domain.MonthlyPoint, 0),
	}
	monthIndex := make(map[string]int)

	for _, e := range events {
		stats.TotalAttendees += len(e.Attendees)
		if eventIsUpcoming(e, now) {
			stats.UpcomingEvents++
		}

		name := e.Name
		if len(name) > chartNameLimit {
			name = name[:chartNameLimit] + "..."
		}
		stats.Attendance = append(stats.Attendance, domain.AttendancePoint{
			Name:      name,
			Attendees: len(e.Attendees),
		})

		d, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			continue
		}
		month := d.Format("Jan 2006")
		if i, ok := monthIndex[month]; ok {
			stats.Monthly[i].Events++
			stats.Monthly[i].Attendees += len(e.Attendees)
		} else {
			monthIndex[month] = len(stats.Monthly)
			stats.Monthly = append(stats.Monthly, domain.MonthlyPoint{
				Month:     month,
				Events:    1,
				Attendees: len(e.Attendees),
			})
		}
	}
	return stats, nil
}
