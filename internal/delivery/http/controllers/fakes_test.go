package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventhub/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createConflicts []string
	createErr       error
	lastCreateEvent *domain.Event

	eventByID  map[string]*domain.Event
	getByIDErr error
	lastGetID  string

	listResult []*domain.Event
	listErr    error
	lastSearch string
	lastFilter domain.EventFilter

	updateConflicts []string
	updateErr       error
	lastUpdateEvent *domain.Event

	deleteErr    error
	lastDeleteID string

	conflictsResult     []*domain.Event
	conflictsErr        error
	lastConflictDate    string
	lastConflictTime    string
	lastConflictExclude string

	slotsResult   []string
	slotsErr      error
	lastSlotsDate string
	lastSlotsLim  int

	statsResult *domain.EventStats
	statsErr    error
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) ([]string, error) {
	f.lastCreateEvent = event
	if f.createErr != nil {
		return nil, f.createErr
	}
	event.ID = "ev-created"
	return f.createConflicts, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	f.lastGetID = id
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	if e, ok := f.eventByID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) ListEvents(ctx context.Context, search string, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastSearch = search
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, event *domain.Event) ([]string, error) {
	f.lastUpdateEvent = event
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateConflicts, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeEventService) FindConflicts(ctx context.Context, date, tm, excludeID string) ([]*domain.Event, error) {
	f.lastConflictDate = date
	f.lastConflictTime = tm
	f.lastConflictExclude = excludeID
	if f.conflictsErr != nil {
		return nil, f.conflictsErr
	}
	if f.conflictsResult != nil {
		return f.conflictsResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) SuggestSlots(ctx context.Context, date string, limit int) ([]string, error) {
	f.lastSlotsDate = date
	f.lastSlotsLim = limit
	if f.slotsErr != nil {
		return nil, f.slotsErr
	}
	if f.slotsResult != nil {
		return f.slotsResult, nil
	}
	return []string{}, nil
}

func (f *fakeEventService) GetStats(ctx context.Context) (*domain.EventStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.statsResult, nil
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	result      *domain.Event
	err         error
	lastEventID string
	lastName    string
	lastEmail   string
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID, name, email string) (*domain.Event, error) {
	f.lastEventID = eventID
	f.lastName = name
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeNotificationService implements domain.NotificationService for handler tests.
type fakeNotificationService struct {
	sendResult        *domain.Notification
	sendErr           error
	lastSendEventID   string
	lastSendType      domain.NotificationType
	lastSendMessage   string
	lastSendScheduled *time.Time

	historyResult []*domain.Notification
	historyTotal  int
	historyErr    error
	lastParams    domain.PaginationParams

	renderResult      string
	renderErr         error
	lastRenderEventID string
	lastRenderName    string
}

func (f *fakeNotificationService) Send(ctx context.Context, eventID string, typ domain.NotificationType, message string, scheduledFor *time.Time) (*domain.Notification, error) {
	f.lastSendEventID = eventID
	f.lastSendType = typ
	f.lastSendMessage = message
	f.lastSendScheduled = scheduledFor
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return f.sendResult, nil
}

func (f *fakeNotificationService) History(ctx context.Context, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	f.lastParams = params
	if f.historyErr != nil {
		return nil, 0, f.historyErr
	}
	if f.historyResult != nil {
		return f.historyResult, f.historyTotal, nil
	}
	return []*domain.Notification{}, f.historyTotal, nil
}

func (f *fakeNotificationService) RenderTemplate(ctx context.Context, eventID, templateName string) (string, error) {
	f.lastRenderEventID = eventID
	f.lastRenderName = templateName
	if f.renderErr != nil {
		return "", f.renderErr
	}
	return f.renderResult, nil
}

// fakeAssistantService implements domain.AssistantService for handler tests.
type fakeAssistantService struct {
	reply         *domain.AssistantReply
	err           error
	lastUtterance string
}

func (f *fakeAssistantService) Respond(ctx context.Context, utterance string) (*domain.AssistantReply, error) {
	f.lastUtterance = utterance
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}
