package domain

// Mailer defines the contract for sending emails (infrastructure port).
// Implementations are best-effort: the notification record, not the delivery,
// is the authoritative artifact.
type Mailer interface {
	Send(to, subject, text string) error
}

// MessageTemplateRenderer renders a notification message from a named
// template with the given data.
type MessageTemplateRenderer interface {
	Render(templateName string, data any) (string, error)
}

// NotificationMessageData holds the fields available to message templates.
type NotificationMessageData struct {
	EventName string
	EventDate string
	EventTime string
}
