package errors

import "upkeep/internal/errors"

// Push delivery taxonomy. None of these cross the dispatch boundary as a
// returned error; they are recorded per registration.
var (
	// ErrPermissionDenied means the user declined notifications. Not retried, not a failure.
	ErrPermissionDenied = errors.New("notification permission denied")

	// ErrRegistrationUnavailable means the platform lacks the channel capability; treated as no devices.
	ErrRegistrationUnavailable = errors.New("push registration unavailable on this platform")

	// ErrInvalidRegistration means the identifier is stale; the registration is deactivated.
	ErrInvalidRegistration = errors.New("push registration is invalid or expired")

	// ErrTransientSendFailure is a network or provider hiccup left for the next cycle.
	ErrTransientSendFailure = errors.New("transient push send failure")

	// ErrTimezoneResolution means a stored timezone failed to load; the scheduler fails open.
	ErrTimezoneResolution = errors.New("timezone could not be resolved")

	// ErrQueueReplay means a queued offline request failed again and stays queued.
	ErrQueueReplay = errors.New("offline request replay failed")
)
