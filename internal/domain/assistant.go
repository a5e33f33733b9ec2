package domain

import (
	"context"
	"time"
)

// AssistantReply is the assistant's answer to a single utterance.
type AssistantReply struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// AssistantService maps free-text input to one of a fixed set of canned
// responses using substring matching against a priority-ordered rule list.
// Not a reasoning system; any real AI integration lives behind the stubbed
// chat completion boundary.
type AssistantService interface {
	Respond(ctx context.Context, utterance string) (*AssistantReply, error)
}
