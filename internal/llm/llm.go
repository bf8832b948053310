package llm

import (
	"context"
	"errors"
	"strings"
)

// Request carries one text-completion call. The core always asks for a low
// temperature so extraction stays deterministic-leaning.
type Request struct {
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// Client is the text-completion gateway. It only focuses on the API call
// itself. Cross-cutting concerns (rate limiting, retries, logging) are
// applied via Middleware.
type Client interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
	Close() error
}

var ErrEmptyResponse = errors.New("llm: empty response from model")

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// IsTransient reports whether err looks like a rate-limit or overload
// condition worth retrying. Anything wrapped in PermanentError is not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var pErr *PermanentError
	if errors.As(err, &pErr) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range []string{"overloaded", "rate", "quota", "429", "503", "529"} {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}
