package platform

import (
	"errors"
	"fmt"
)

// Sentinel errors for platform operations.
var (
	// ErrPlatformUnavailable is returned when no native bridge is connected.
	ErrPlatformUnavailable = errors.New("platform: native bridge unavailable")

	// ErrMethodNotFound is returned when a channel has no handler for a method.
	ErrMethodNotFound = errors.New("platform: method not found")

	// ErrChannelNotFound is returned for calls on an unregistered channel.
	ErrChannelNotFound = errors.New("platform: channel not found")

	// ErrClosed is returned when operating on a closed channel or stream.
	ErrClosed = errors.New("platform: channel closed")
)

// ChannelError is an error reported by native code over a channel.
type ChannelError struct {
	Code    string
	Message string
}

// NewChannelError creates a ChannelError with the given code and message.
func NewChannelError(code, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}

func (e *ChannelError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform: channel error %s", e.Code)
	}
	return fmt.Sprintf("platform: %s (%s)", e.Message, e.Code)
}
