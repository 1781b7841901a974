package core

import (
	"errors"
	"fmt"
)

// Error codes for domain errors.
const (
	ErrCodeRoomFull   = "room_full"
	ErrCodeBadRequest = "bad_request"
)

var (
	// ErrRoomFull is returned when a new player registers into a room at capacity.
	ErrRoomFull = errors.New("room full")
	// ErrHubStopped is returned by hub queries after Run has returned.
	ErrHubStopped = errors.New("hub stopped")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
	err     error
}

func (e *CoreError) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel error, so errors.Is works on CoreError values.
func (e *CoreError) Unwrap() error {
	return e.err
}

func coreError(code, msg string, err error) *CoreError {
	return &CoreError{Code: code, Message: msg, err: err}
}

func roomFullError(roomID string, limit int) *CoreError {
	return coreError(
		ErrCodeRoomFull,
		fmt.Sprintf("La sala %s está llena (máximo %d jugadores)", roomID, limit),
		ErrRoomFull,
	)
}
