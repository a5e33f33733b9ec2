package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// decodeData re-marshals the envelope's data field into dest.
func decodeData(t *testing.T, envelope helpers.APIResponse, dest any) {
	t.Helper()
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		conflicts      []string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
		checkData      func(t *testing.T, data EventWithConflicts)
	}{
		{
			name:       "success",
			body:       `{"name":"Tech Meetup","description":"monthly","venue":"Hall A","date":"2025-06-10","time":"14:00","speakers":["Ada"],"agenda":["Intro"],"max_attendees":50}`,
			wantStatus: http.StatusCreated,
			checkData: func(t *testing.T, data EventWithConflicts) {
				assert.Equal(t, "ev-created", data.Event.ID)
				assert.Equal(t, "Tech Meetup", data.Event.Name)
				assert.Equal(t, "Hall A", data.Event.Venue)
				require.NotNil(t, data.Event.MaxAttendees)
				assert.Equal(t, 50, *data.Event.MaxAttendees)
				assert.Empty(t, data.Conflicts)
			},
		},
		{
			name:       "conflicts surfaced but not blocking",
			body:       `{"name":"Tech Meetup","date":"2025-06-10","time":"14:00"}`,
			conflicts:  []string{"Design Review"},
			wantStatus: http.StatusCreated,
			checkData: func(t *testing.T, data EventWithConflicts) {
				assert.Equal(t, []string{"Design Review"}, data.Conflicts)
			},
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing name",
			body:           `{"date":"2025-06-10","time":"14:00"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "bad date format",
			body:           `{"name":"Meetup","date":"10/06/2025","time":"14:00"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "date must be in YYYY-MM-DD format",
		},
		{
			name:           "bad time format",
			body:           `{"name":"Meetup","date":"2025-06-10","time":"2pm"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "time must be in HH:MM format",
		},
		{
			name:           "zero max attendees",
			body:           `{"name":"Meetup","date":"2025-06-10","time":"14:00","max_attendees":0}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "max_attendees must be at least 1",
		},
		{
			name:           "unknown field rejected",
			body:           `{"name":"Meetup","date":"2025-06-10","time":"14:00","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "service error",
			body:           `{"name":"Meetup","date":"2025-06-10","time":"14:00"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{createConflicts: tt.conflicts, createErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error, "success response must have error nil")
				var data EventWithConflicts
				decodeData(t, envelope, &data)
				tt.checkData(t, data)
			} else {
				require.NotNil(t, envelope.Error, "error response must have error set")
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestEventController_GetEventByID(t *testing.T) {
	stored := &domain.Event{ID: "ev-1", Name: "Tech Meetup", Date: "2025-06-10", Time: "14:00"}
	tests := []struct {
		name       string
		eventID    string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"found", "ev-1", nil, http.StatusOK, ""},
		{"not found", "ev-missing", nil, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"service error", "ev-1", errors.New("db error"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{
				eventByID:  map[string]*domain.Event{"ev-1": stored},
				getByIDErr: tt.fakeErr,
			}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEventByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				var event domain.Event
				decodeData(t, envelope, &event)
				assert.Equal(t, "ev-1", event.ID)
				assert.Equal(t, "Tech Meetup", event.Name)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
			assert.Equal(t, tt.eventID, fake.lastGetID)
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	events := []*domain.Event{
		{ID: "ev-1", Name: "Tech Meetup"},
		{ID: "ev-2", Name: "Design Review"},
	}
	tests := []struct {
		name       string
		query      string
		fakeErr    error
		wantStatus int
		wantSearch string
		wantFilter domain.EventFilter
		wantLen    int
	}{
		{"no filters defaults to all", "", nil, http.StatusOK, "", domain.FilterAll, 2},
		{"search and filter forwarded", "?search=tech&filter=upcoming", nil, http.StatusOK, "tech", domain.FilterUpcoming, 2},
		{"past filter", "?filter=past", nil, http.StatusOK, "", domain.FilterPast, 2},
		{"unknown filter rejected", "?filter=tomorrow", nil, http.StatusBadRequest, "", "", 0},
		{"service error", "", errors.New("db error"), http.StatusInternalServerError, "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{listResult: events, listErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.ListEvents(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				var got []*domain.Event
				decodeData(t, envelope, &got)
				assert.Len(t, got, tt.wantLen)
				assert.Equal(t, tt.wantSearch, fake.lastSearch)
				assert.Equal(t, tt.wantFilter, fake.lastFilter)
			} else {
				require.NotNil(t, envelope.Error)
			}
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name           string
		eventID        string
		body           string
		conflicts      []string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			eventID:    "ev-1",
			body:       `{"name":"Tech Meetup v2","date":"2025-06-11","time":"15:00"}`,
			conflicts:  []string{"Standup"},
			wantStatus: http.StatusOK,
		},
		{
			name:           "not found",
			eventID:        "ev-missing",
			body:           `{"name":"Tech Meetup","date":"2025-06-11","time":"15:00"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "event not found",
		},
		{
			name:           "validation failure",
			eventID:        "ev-1",
			body:           `{"name":"","date":"2025-06-11","time":"15:00"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "name is required",
		},
		{
			name:           "service error",
			eventID:        "ev-1",
			body:           `{"name":"Tech Meetup","date":"2025-06-11","time":"15:00"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{updateConflicts: tt.conflicts, updateErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPut, "/events/"+tt.eventID, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				var data EventWithConflicts
				decodeData(t, envelope, &data)
				assert.Equal(t, tt.eventID, data.Event.ID)
				assert.Equal(t, tt.conflicts, data.Conflicts)
				require.NotNil(t, fake.lastUpdateEvent)
				assert.Equal(t, tt.eventID, fake.lastUpdateEvent.ID)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"not found", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"service error", errors.New("db error"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{deleteErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.DeleteEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				var data DeleteEventResponse
				decodeData(t, envelope, &data)
				assert.Equal(t, "deleted", data.Status)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
			assert.Equal(t, "ev-1", fake.lastDeleteID)
		})
	}
}

func TestEventController_GetStats(t *testing.T) {
	stats := &domain.EventStats{
		TotalEvents:    3,
		UpcomingEvents: 2,
		TotalAttendees: 7,
		Attendance:     []domain.AttendancePoint{{Name: "Tech Meetup", Attendees: 4}},
		Monthly:        []domain.MonthlyPoint{{Month: "Jun 2025", Events: 1, Attendees: 4}},
	}

	t.Run("success", func(t *testing.T) {
		fake := &fakeEventService{statsResult: stats}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/events/stats", nil)
		rr := httptest.NewRecorder()

		ctrl.GetStats(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		var got domain.EventStats
		decodeData(t, envelope, &got)
		assert.Equal(t, 3, got.TotalEvents)
		assert.Equal(t, 7, got.TotalAttendees)
		assert.Len(t, got.Attendance, 1)
		assert.Equal(t, "Jun 2025", got.Monthly[0].Month)
	})

	t.Run("service error", func(t *testing.T) {
		fake := &fakeEventService{statsErr: errors.New("db error")}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/events/stats", nil)
		rr := httptest.NewRecorder()

		ctrl.GetStats(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestEventController_FindConflicts(t *testing.T) {
	conflicting := []*domain.Event{{ID: "ev-2", Name: "Design Review", Date: "2025-06-10", Time: "14:00"}}
	tests := []struct {
		name        string
		query       string
		fakeErr     error
		wantStatus  int
		wantDate    string
		wantTime    string
		wantExclude string
		wantLen     int
	}{
		{"match", "?date=2025-06-10&time=14:00", nil, http.StatusOK, "2025-06-10", "14:00", "", 1},
		{"with exclusion", "?date=2025-06-10&time=14:00&exclude_id=ev-2", nil, http.StatusOK, "2025-06-10", "14:00", "ev-2", 1},
		{"missing date", "?time=14:00", nil, http.StatusBadRequest, "", "", "", 0},
		{"missing time", "?date=2025-06-10", nil, http.StatusBadRequest, "", "", "", 0},
		{"service error", "?date=2025-06-10&time=14:00", errors.New("db error"), http.StatusInternalServerError, "", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{conflictsResult: conflicting, conflictsErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/conflicts"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.FindConflicts(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
				var got []*domain.Event
				decodeData(t, envelope, &got)
				assert.Len(t, got, tt.wantLen)
				assert.Equal(t, tt.wantDate, fake.lastConflictDate)
				assert.Equal(t, tt.wantTime, fake.lastConflictTime)
				assert.Equal(t, tt.wantExclude, fake.lastConflictExclude)
			}
		})
	}
}

func TestEventController_SuggestSlots(t *testing.T) {
	slots := []string{"11:00", "12:00", "13:00", "14:00", "15:00"}
	tests := []struct {
		name       string
		query      string
		fakeErr    error
		wantStatus int
		wantDate   string
		wantLimit  int
	}{
		{"default limit", "?date=2025-06-10", nil, http.StatusOK, "2025-06-10", 0},
		{"explicit limit", "?date=2025-06-10&limit=3", nil, http.StatusOK, "2025-06-10", 3},
		{"missing date", "", nil, http.StatusBadRequest, "", 0},
		{"non-numeric limit", "?date=2025-06-10&limit=many", nil, http.StatusBadRequest, "", 0},
		{"zero limit", "?date=2025-06-10&limit=0", nil, http.StatusBadRequest, "", 0},
		{"service error", "?date=2025-06-10", errors.New("db error"), http.StatusInternalServerError, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{slotsResult: slots, slotsErr: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/slots"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.SuggestSlots(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
				var got []string
				decodeData(t, envelope, &got)
				assert.Equal(t, slots, got)
				assert.Equal(t, tt.wantDate, fake.lastSlotsDate)
				assert.Equal(t, tt.wantLimit, fake.lastSlotsLim)
			}
		})
	}
}
