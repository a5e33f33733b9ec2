package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// AssistantController serves the keyword assistant plus the stubbed chat
// completion boundary.
type AssistantController struct {
	Logger  *slog.Logger
	Service domain.AssistantService
}

func NewAssistantController(logger *slog.Logger, svc domain.AssistantService) *AssistantController {
	return &AssistantController{
		Logger:  logger,
		Service: svc,
	}
}

// AssistantMessageRequest is the request body for POST /assistant/messages and POST /ai-chat.
type AssistantMessageRequest struct {
	Message string `json:"message"`
}

// Validate implements Validator. Returns error messages for required rules.
func (a AssistantMessageRequest) Validate() []string {
	var errs []string
	if a.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}

// AssistantMessageSuccessResponse is the success response envelope for POST /assistant/messages (200).
type AssistantMessageSuccessResponse struct {
	Data  *domain.AssistantReply `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// Respond godoc
// @Summary Ask the assistant
// @Description Matches the message against a fixed priority-ordered keyword rule list and returns the canned response. An unmatched message gets the generic help reply.
// @Tags assistant
// @Accept json
// @Produce json
// @Param message body AssistantMessageRequest true "User message"
// @Success 200 {object} controllers.AssistantMessageSuccessResponse "data contains the reply and its timestamp"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /assistant/messages [post]
func (c *AssistantController) Respond(w http.ResponseWriter, r *http.Request) {
	var req AssistantMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reply, err := c.Service.Respond(r.Context(), req.Message)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reply)
}

// ChatSuccessResponse is the success response envelope for POST /ai-chat (200).
type ChatSuccessResponse struct {
	Data  domain.AssistantReply `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// Chat godoc
// @Summary Stubbed chat completion
// @Description Placeholder for a real model integration. Echoes the message back in a templated reply.
// @Tags assistant
// @Accept json
// @Produce json
// @Param message body AssistantMessageRequest true "User message"
// @Success 200 {object} controllers.ChatSuccessResponse "data contains the echoed reply"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ai-chat [post]
func (c *AssistantController) Chat(w http.ResponseWriter, r *http.Request) {
	var req AssistantMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reply := domain.AssistantReply{
		Content:   fmt.Sprintf("This is a simulated AI response to: %s", req.Message),
		Timestamp: time.Now(),
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reply)
}
