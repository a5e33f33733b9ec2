package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

type registrationService struct {
	eventRepo      domain.EventRepository
	now            func() time.Time
	contextTimeout time.Duration
}

// NewRegistrationService creates a RegistrationService backed by the given
// event repository.
func NewRegistrationService(eventRepo domain.EventRepository, timeout time.Duration) domain.RegistrationService {
	return &registrationService{
		eventRepo:      eventRepo,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, name, email string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.IsFull() {
		return nil, domain.ErrEventFull
	}

	// Registrations are not deduplicated: the same email registering twice
	// yields two attendee entries.
	event.Attendees = append(event.Attendees, fmt.Sprintf("%s (%s)", name, email))
	event.UpdatedAt = s.now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}
