package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponse means the request went out but no response came back
	// (connection refused after dialing, reset, or timeout).
	ErrNoResponse = errors.New("server did not respond")
	// ErrNotSent means the request could not be built or sent at all.
	ErrNotSent = errors.New("request was not sent")
)

// MsgNoResponse is shown whenever a call ends in ErrNoResponse.
const MsgNoResponse = "Servidor não respondeu. O back-end está rodando?"

// ServerError is a non-2xx response. Message holds the body's "error"
// field, else its "message" field, else is empty.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
}

// Describe turns a client error into the message shown to the user.
// Server-supplied detail wins, a missing response has its own message,
// everything else falls back to generic.
func Describe(err error, generic string) string {
	var serverErr *ServerError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &serverErr):
		if serverErr.Message != "" {
			return serverErr.Message
		}
		return generic
	case errors.Is(err, ErrNoResponse):
		return MsgNoResponse
	default:
		return generic
	}
}
