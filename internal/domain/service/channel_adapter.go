package service

import (
	"context"
	"fmt"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/errors"
)

// SendErrorCode classifies a failed send.
type SendErrorCode string

const (
	SendErrorInvalidRegistration SendErrorCode = "INVALID_REGISTRATION"
	SendErrorTransient           SendErrorCode = "TRANSIENT"
	SendErrorPermissionRevoked   SendErrorCode = "PERMISSION_REVOKED"
	SendErrorChannelUnavailable  SendErrorCode = "CHANNEL_UNAVAILABLE"
	// SendErrorInvalidPayload means the provider refused the message, not the registration.
	SendErrorInvalidPayload SendErrorCode = "INVALID_PAYLOAD"
)

// Deactivates reports whether the registration should be marked inactive.
func (c SendErrorCode) Deactivates() bool {
	return c == SendErrorInvalidRegistration || c == SendErrorPermissionRevoked
}

// SendError is the typed failure returned by a ChannelAdapter.
type SendError struct {
	Code SendErrorCode
	Err  error
}

// NewSendError creates a SendError.
func NewSendError(code SendErrorCode, err error) *SendError {
	return &SendError{Code: code, Err: err}
}

func (e *SendError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// Is lets callers match the push taxonomy with errors.Is.
func (e *SendError) Is(target error) bool {
	switch e.Code {
	case SendErrorInvalidRegistration:
		return target == domainerrors.ErrInvalidRegistration
	case SendErrorTransient:
		return target == domainerrors.ErrTransientSendFailure
	case SendErrorPermissionRevoked:
		return target == domainerrors.ErrPermissionDenied
	case SendErrorChannelUnavailable:
		return target == domainerrors.ErrRegistrationUnavailable
	}
	return false
}

// ClassifySendError extracts the SendErrorCode from err. Unrecognized errors are transient.
func ClassifySendError(err error) SendErrorCode {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Code
	}
	return SendErrorTransient
}

// PushMessage is the channel-neutral payload handed to adapters.
// Data values are strings because both channels carry string maps on the wire.
type PushMessage struct {
	Title string
	Body  string
	Type  string
	Data  map[string]string
}

// ChannelAdapter sends to one registration over one channel.
type ChannelAdapter interface {
	// Channel returns the channel this adapter serves.
	Channel() entity.Channel

	// Send delivers msg to reg and returns the provider message ID.
	// Failures are returned as *SendError.
	Send(ctx context.Context, reg *entity.DeviceRegistration, msg *PushMessage) (string, error)
}
