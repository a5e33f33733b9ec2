package services

import (
	"context"
	"fmt"

	"eventhub/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests. List preserves
// insertion order, matching the repository's created_at ordering.
type fakeEventRepo struct {
	events []*domain.Event
	nextID int
	err    error // if set, every method returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if e.ID == "" {
		e.ID = fmt.Sprintf("ev-%d", f.nextID)
		f.nextID++
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.events {
		if existing.ID == e.ID {
			f.events[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeNotificationRepo is an in-memory NotificationRepository. List returns
// newest first, matching the repository ordering.
type fakeNotificationRepo struct {
	notifications []*domain.Notification
	err           error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.notifications = append([]*domain.Notification{n}, f.notifications...)
	return nil
}

func (f *fakeNotificationRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	total := len(f.notifications)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit(total)
	if end > total {
		end = total
	}
	out := make([]*domain.Notification, end-start)
	copy(out, f.notifications[start:end])
	return out, total, nil
}

// fakeMailer records outgoing messages.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	text    string
}

func (f *fakeMailer) Send(to, subject, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, text: text})
	return nil
}

// fakeRenderer echoes the template name and event name.
type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	d, ok := data.(*domain.NotificationMessageData)
	if !ok {
		return "", fmt.Errorf("unexpected data type %T", data)
	}
	return fmt.Sprintf("%s:%s", templateName, d.EventName), nil
}
