package postgres

import (
	"context"
	"database/sql"

	"eventhub/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

// NewNotificationRepository creates a NotificationRepository backed by
// PostgreSQL. The log is append-only: there are no update or delete paths.
func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, event_id, event_name, type, status, recipients, message, sent_at, scheduled_for, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	var sentAt, scheduledFor sql.NullTime
	if n.SentAt != nil {
		sentAt = sql.NullTime{Time: *n.SentAt, Valid: true}
	}
	if n.ScheduledFor != nil {
		scheduledFor = sql.NullTime{Time: *n.ScheduledFor, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		n.ID, n.EventID, n.EventName, string(n.Type), string(n.Status),
		n.Recipients, n.Message, sentAt, scheduledFor, n.CreatedAt,
	)
	return err
}

// List returns one page of the history, newest first, plus the total count.
func (r *notificationRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, event_id, event_name, type, status, recipients, message, sent_at, scheduled_for, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.Limit(total+1), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		var typ, status string
		var sentAt, scheduledFor sql.NullTime
		if err := rows.Scan(&n.ID, &n.EventID, &n.EventName, &typ, &status, &n.Recipients, &n.Message, &sentAt, &scheduledFor, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		n.Type = domain.NotificationType(typ)
		n.Status = domain.NotificationStatus(status)
		if sentAt.Valid {
			t := sentAt.Time
			n.SentAt = &t
		}
		if scheduledFor.Valid {
			t := scheduledFor.Time
			n.ScheduledFor = &t
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}
