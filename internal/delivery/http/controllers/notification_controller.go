package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// templateNames are the message templates the API serves.
var templateNames = map[string]bool{
	"reminder":     true,
	"confirmation": true,
	"update":       true,
	"followup":     true,
}

// NotificationController serves the append-only notification log and the
// message template renderer.
type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// SendNotificationRequest is the request body for POST /notifications.
// A non-nil scheduled_for yields a scheduled record instead of a sent one.
type SendNotificationRequest struct {
	EventID      string     `json:"event_id"`
	Type         string     `json:"type"`
	Message      string     `json:"message"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (s SendNotificationRequest) Validate() []string {
	var errs []string
	if s.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if s.Type == "" {
		errs = append(errs, "type is required")
	} else if !domain.ValidNotificationType(domain.NotificationType(s.Type)) {
		errs = append(errs, "type must be one of email, sms, whatsapp")
	}
	if s.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// SendNotificationSuccessResponse is the success response envelope for POST /notifications (201).
type SendNotificationSuccessResponse struct {
	Data  *domain.Notification `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// Send godoc
// @Summary Record a notification
// @Description Creates an immutable notification record for the event. With scheduled_for the record is scheduled; otherwise it is sent with sent_at set to now. Email delivery is best-effort and does not affect the record.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body SendNotificationRequest true "Notification data"
// @Success 201 {object} controllers.SendNotificationSuccessResponse "data contains the created record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications [post]
func (c *NotificationController) Send(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	n, err := c.Service.Send(r.Context(), req.EventID, domain.NotificationType(req.Type), req.Message, req.ScheduledFor)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid notification")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, n)
}

// HistoryResponse is the data payload for GET /notifications (200).
type HistoryResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
	Pagination    helpers.PaginationMeta `json:"pagination"`
}

// HistorySuccessResponse is the success response envelope for GET /notifications (200).
type HistorySuccessResponse struct {
	Data  HistoryResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// History godoc
// @Summary Notification history
// @Description Lists notification records newest first with offset pagination.
// @Tags notifications
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.HistorySuccessResponse "data contains the records and pagination meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications [get]
func (c *NotificationController) History(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	notifications, total, err := c.Service.History(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HistoryResponse{
		Notifications: notifications,
		Pagination:    helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// TemplateResponse is the data payload for GET /notifications/templates (200).
type TemplateResponse struct {
	Template string `json:"template"`
	Message  string `json:"message"`
}

// TemplateSuccessResponse is the success response envelope for GET /notifications/templates (200).
type TemplateSuccessResponse struct {
	Data  TemplateResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RenderTemplate godoc
// @Summary Render a message template
// @Description Renders one of the canned message templates (reminder, confirmation, update, followup) against the event's name, date, and time.
// @Tags notifications
// @Produce json
// @Param event_id query string true "Event ID (UUID)"
// @Param template query string true "Template name" Enums(reminder, confirmation, update, followup)
// @Success 200 {object} controllers.TemplateSuccessResponse "data contains the rendered message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications/templates [get]
func (c *NotificationController) RenderTemplate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	eventID, name := q.Get("event_id"), q.Get("template")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "event_id is required")
		return
	}
	if !templateNames[name] {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "template must be one of reminder, confirmation, update, followup")
		return
	}
	message, err := c.Service.RenderTemplate(r.Context(), eventID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TemplateResponse{Template: name, Message: message})
}
