package llmclient

import (
	"context"
	"errors"
)

// Message is one chat message sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LLMClient sends an ordered message sequence to a text-generation provider
// and returns the raw completion text. Implementations perform no retries;
// retry policy belongs to the caller.
type LLMClient interface {
	Name() string
	Complete(ctx context.Context, messages []Message) (string, error)
	Close() error
}

// ErrEmptyCompletion indicates the provider answered without any content.
var ErrEmptyCompletion = errors.New("empty completion from LLM")

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}
