package email

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"eventhub/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer implements domain.MessageTemplateRenderer using embedded
// template files. Templates are plain text: the same message body serves
// every notification channel.
type templateRenderer struct{}

// NewTemplateRenderer returns a MessageTemplateRenderer that loads templates
// from the embedded templates folder.
func NewTemplateRenderer() domain.MessageTemplateRenderer {
	return &templateRenderer{}
}

// Render executes the named template (reminder, confirmation, update,
// followup) with data and returns the message body.
func (r *templateRenderer) Render(templateName string, data any) (string, error) {
	name := strings.TrimSpace(templateName)
	raw, err := templateFS.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("unknown template %q: %w", templateName, err)
	}
	t, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse template %q: %w", templateName, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %q: %w", templateName, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
