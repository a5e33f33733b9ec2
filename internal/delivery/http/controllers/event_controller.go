package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// EventController serves the event CRUD surface plus the scheduling
// queries (stats, conflicts, slot suggestions).
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// Speakers and agenda are optional arrays; max_attendees nil means unlimited.
type EventRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Venue        string   `json:"venue"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Speakers     []string `json:"speakers"`
	Agenda       []string `json:"agenda"`
	MaxAttendees *int     `json:"max_attendees"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Name == "" {
		errs = append(errs, "name is required")
	}
	if e.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
		errs = append(errs, "date must be in YYYY-MM-DD format")
	}
	if e.Time == "" {
		errs = append(errs, "time is required")
	} else if _, err := time.Parse(domain.TimeLayout, e.Time); err != nil {
		errs = append(errs, "time must be in HH:MM format")
	}
	if e.MaxAttendees != nil && *e.MaxAttendees < 1 {
		errs = append(errs, "max_attendees must be at least 1")
	}
	return errs
}

// EventWithConflicts is the data payload for event create and update. Conflicts
// carries the names of other events at the same date and time; it is advisory
// and never blocks the mutation.
type EventWithConflicts struct {
	Event     *domain.Event `json:"event"`
	Conflicts []string      `json:"conflicts"`
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  EventWithConflicts `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create an event. id and timestamps are server-generated. The response includes an advisory conflicts list naming other events at the same date and time.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event and advisory conflicts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.Name, req.Description, req.Venue, req.Date, req.Time,
		req.Speakers, req.Agenda, req.MaxAttendees, time.Time{}, time.Time{})
	conflicts, err := c.Service.CreateEvent(r.Context(), event)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, EventWithConflicts{Event: event, Conflicts: conflicts})
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEvents godoc
// @Summary List events
// @Description Lists events in creation order. ?search= matches name or venue case-insensitively; ?filter= is one of all, upcoming, past (default all).
// @Tags events
// @Produce json
// @Param search query string false "Search term (name or venue)"
// @Param filter query string false "Date filter" Enums(all, upcoming, past)
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains the matching events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	filter := domain.EventFilter(r.URL.Query().Get("filter"))
	switch filter {
	case "":
		filter = domain.FilterAll
	case domain.FilterAll, domain.FilterUpcoming, domain.FilterPast:
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "filter must be one of all, upcoming, past")
		return
	}
	events, err := c.Service.ListEvents(r.Context(), search, filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// UpdateEventSuccessResponse is the success response envelope for PUT /events/{eventID} (200).
type UpdateEventSuccessResponse struct {
	Data  EventWithConflicts `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Full update of the editable fields. The stored attendee list and created_at are preserved. The response includes an advisory conflicts list that never counts the event against itself.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.UpdateEventSuccessResponse "data contains the updated event and advisory conflicts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.Name, req.Description, req.Venue, req.Date, req.Time,
		req.Speakers, req.Agenda, req.MaxAttendees, time.Time{}, time.Time{})
	event.ID = eventID
	conflicts, err := c.Service.UpdateEvent(r.Context(), event)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventWithConflicts{Event: event, Conflicts: conflicts})
}

// DeleteEventResponse is the data payload for DELETE /events/{eventID} (200).
type DeleteEventResponse struct {
	Status string `json:"status"`
}

// DeleteEventSuccessResponse is the success response envelope for DELETE /events/{eventID} (200).
type DeleteEventSuccessResponse struct {
	Data  DeleteEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event. Notification records referencing it are kept; they carry their own snapshots.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.DeleteEventSuccessResponse "data contains status message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Status: "deleted"})
}

// GetStatsSuccessResponse is the success response envelope for GET /events/stats (200).
type GetStatsSuccessResponse struct {
	Data  *domain.EventStats `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GetStats godoc
// @Summary Event statistics
// @Description Aggregates for the dashboard charts: totals, per-event attendance, and monthly buckets in first-seen order.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.GetStatsSuccessResponse "data contains the aggregated statistics"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/stats [get]
func (c *EventController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.GetStats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// FindConflictsSuccessResponse is the success response envelope for GET /events/conflicts (200).
type FindConflictsSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FindConflicts godoc
// @Summary Find scheduling conflicts
// @Description Returns events whose date and time exactly match the candidate pair. exclude_id skips the event being edited. Advisory only.
// @Tags events
// @Produce json
// @Param date query string true "Candidate date (YYYY-MM-DD)"
// @Param time query string true "Candidate time (HH:MM)"
// @Param exclude_id query string false "Event ID to exclude"
// @Success 200 {object} controllers.FindConflictsSuccessResponse "data contains the conflicting events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/conflicts [get]
func (c *EventController) FindConflicts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date, tm := q.Get("date"), q.Get("time")
	if date == "" || tm == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date and time are required")
		return
	}
	conflicts, err := c.Service.FindConflicts(r.Context(), date, tm, q.Get("exclude_id"))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conflicts)
}

// SuggestSlotsSuccessResponse is the success response envelope for GET /events/slots (200).
type SuggestSlotsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SuggestSlots godoc
// @Summary Suggest free time slots
// @Description Returns ascending HH:MM slots within the 09:00-17:00 working window that have no event on the given date, at most limit (default 5).
// @Tags events
// @Produce json
// @Param date query string true "Candidate date (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of slots (default 5)"
// @Success 200 {object} controllers.SuggestSlotsSuccessResponse "data contains the free slots"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/slots [get]
func (c *EventController) SuggestSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	if date == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date is required")
		return
	}
	limit := 0
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}
	slots, err := c.Service.SuggestSlots(r.Context(), date, limit)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, slots)
}
