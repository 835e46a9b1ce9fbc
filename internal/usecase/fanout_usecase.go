package usecase

import (
	"context"

	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
)

// ErrInvalidFanoutEvent marks an event that can never be processed; transports must not redeliver it.
var ErrInvalidFanoutEvent = errors.New("invalid fan-out event")

// FanoutUsecase turns stored feed rows into push deliveries.
type FanoutUsecase interface {
	// HandleFanoutEvent dispatches the event to its user's devices. The returned error
	// is retryable unless it wraps ErrInvalidFanoutEvent.
	HandleFanoutEvent(ctx context.Context, event *service.FanoutEvent) (*DispatchSummary, error)
}
