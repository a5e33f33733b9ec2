package domain

import (
	"context"
	"time"
)

// NotificationType is the delivery channel of a notification record.
type NotificationType string

const (
	NotificationEmail    NotificationType = "email"
	NotificationSMS      NotificationType = "sms"
	NotificationWhatsApp NotificationType = "whatsapp"
)

// ValidNotificationType reports whether t is one of the supported channels.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationEmail, NotificationSMS, NotificationWhatsApp:
		return true
	}
	return false
}

// NotificationStatus is the lifecycle state of a notification record.
type NotificationStatus string

const (
	StatusSent      NotificationStatus = "sent"
	StatusPending   NotificationStatus = "pending"
	StatusScheduled NotificationStatus = "scheduled"
)

// Notification is a logged intent to communicate with an event's attendees.
// It does not imply actual delivery. Records are created once and never
// mutated or deleted; exactly one of SentAt/ScheduledFor is populated
// depending on status. EventID is a weak reference: deleting the event does
// not cascade, and EventName/Recipients are snapshots taken at send time.
// swagger:model Notification
type Notification struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	EventName    string             `json:"event_name"`
	Type         NotificationType   `json:"type"`
	Status       NotificationStatus `json:"status"`
	Recipients   int                `json:"recipients"`
	Message      string             `json:"message"`
	SentAt       *time.Time         `json:"sent_at,omitempty"`
	ScheduledFor *time.Time         `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// NotificationRepository defines storage for the append-only notification log.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, params PaginationParams) ([]*Notification, int, error)
}

// NotificationService records notification intents and renders message
// templates. Send never delivers anything itself; delivery is an external
// collaborator behind the Mailer port.
type NotificationService interface {
	// Send creates an immutable notification record for the event. A non-nil
	// scheduledFor yields status "scheduled"; otherwise the record is "sent"
	// with SentAt set to now.
	Send(ctx context.Context, eventID string, typ NotificationType, message string, scheduledFor *time.Time) (*Notification, error)
	History(ctx context.Context, params PaginationParams) ([]*Notification, int, error)
	// RenderTemplate renders the named message template (reminder,
	// confirmation, update, followup) against the event.
	RenderTemplate(ctx context.Context, eventID, templateName string) (string, error)
}
