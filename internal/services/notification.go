package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

type notificationService struct {
	notificationRepo domain.NotificationRepository
	eventRepo        domain.EventRepository
	mailer           domain.Mailer
	renderer         domain.MessageTemplateRenderer
	logger           *slog.Logger
	now              func() time.Time
	contextTimeout   time.Duration
}

// NewNotificationService creates a NotificationService. The mailer is a
// best-effort delivery port for email notifications; the stored record stays
// authoritative regardless of delivery outcome.
func NewNotificationService(
	notificationRepo domain.NotificationRepository,
	eventRepo domain.EventRepository,
	mailer domain.Mailer,
	renderer domain.MessageTemplateRenderer,
	logger *slog.Logger,
	timeout time.Duration,
) domain.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		eventRepo:        eventRepo,
		mailer:           mailer,
		renderer:         renderer,
		logger:           logger,
		now:              time.Now,
		contextTimeout:   timeout,
	}
}

func (s *notificationService) Send(ctx context.Context, eventID string, typ domain.NotificationType, message string, scheduledFor *time.Time) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidNotificationType(typ) {
		return nil, domain.ErrInvalidInput
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	n := &domain.Notification{
		ID:         uuid.NewString(),
		EventID:    event.ID,
		EventName:  event.Name,
		Type:       typ,
		Recipients: len(event.Attendees),
		Message:    message,
		CreatedAt:  now,
	}
	if scheduledFor != nil {
		n.Status = domain.StatusScheduled
		n.ScheduledFor = scheduledFor
	} else {
		n.Status = domain.StatusSent
		n.SentAt = &now
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	if n.Type == domain.NotificationEmail && n.Status == domain.StatusSent {
		s.deliverEmails(event, n)
	}
	return n, nil
}

// deliverEmails hands a sent email notification to the mailer. Failures are
// logged and swallowed; the record of intent already exists.
func (s *notificationService) deliverEmails(event *domain.Event, n *domain.Notification) {
	subject := fmt.Sprintf("Event notification: %s", event.Name)
	for _, attendee := range event.Attendees {
		addr, ok := attendeeEmail(attendee)
		if !ok {
			continue
		}
		if err := s.mailer.Send(addr, subject, n.Message); err != nil {
			s.logger.Warn("notification email delivery failed", "notification_id", n.ID, "to", addr, "err", err)
		}
	}
}

// attendeeEmail extracts the email address from an attendee display string of
// the form "Name (email)".
func attendeeEmail(attendee string) (string, bool) {
	open := strings.LastIndex(attendee, "(")
	close := strings.LastIndex(attendee, ")")
	if open < 0 || close <= open+1 {
		return "", false
	}
	addr := strings.TrimSpace(attendee[open+1 : close])
	if !strings.Contains(addr, "@") {
		return "", false
	}
	return addr, true
}

func (s *notificationService) History(ctx context.Context, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	notifications, total, err := s.notificationRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return notifications, total, nil
}

func (s *notificationService) RenderTemplate(ctx context.Context, eventID, templateName string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get event: %w", err)
	}

	data := &domain.NotificationMessageData{
		EventName: event.Name,
		EventDate: formatEventDate(event.Date),
		EventTime: event.Time,
	}
	msg, err := s.renderer.Render(templateName, data)
	if err != nil {
		return "", fmt.Errorf("render template %s: %w", templateName, err)
	}
	return msg, nil
}

// formatEventDate renders a stored YYYY-MM-DD date as "January 02, 2006" for
// human-facing messages; an unparseable value passes through unchanged.
func formatEventDate(date string) string {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return d.Format("January 02, 2006")
}
