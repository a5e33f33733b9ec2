package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	notificationController *controllers.NotificationController,
	assistantController *controllers.AssistantController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/stats", eventController.GetStats)
	mux.HandleFunc("GET /events/conflicts", eventController.FindConflicts)
	mux.HandleFunc("GET /events/slots", eventController.SuggestSlots)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", registrationController.Register)

	// Notifications
	mux.HandleFunc("POST /notifications", notificationController.Send)
	mux.HandleFunc("GET /notifications", notificationController.History)
	mux.HandleFunc("GET /notifications/templates", notificationController.RenderTemplate)

	// Assistant
	mux.HandleFunc("POST /assistant/messages", assistantController.Respond)
	mux.HandleFunc("POST /ai-chat", assistantController.Chat)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
