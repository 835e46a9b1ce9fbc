package pushclient

import (
	"context"
	"log/slog"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/errors"
	"upkeep/pkg/offlinequeue"
)

// RegistrationAPI is the server side of the registration flow; *Client implements it.
type RegistrationAPI interface {
	Register(ctx context.Context, reg *Registration) (*entity.DeviceRegistration, error)
	Revoke(ctx context.Context, channel entity.Channel, externalID string) error
}

// Registrar drives permission, identifier and server upsert for one channel.
type Registrar struct {
	channel Channel
	api     RegistrationAPI
	logger  *slog.Logger
}

// NewRegistrar creates a Registrar. A nil logger uses slog.Default.
func NewRegistrar(channel Channel, api RegistrationAPI, logger *slog.Logger) *Registrar {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registrar{channel: channel, api: api, logger: logger}
}

// Register asks for permission, obtains the channel identifier and upserts it.
// It returns ErrPermissionDenied when the user declines and
// ErrRegistrationUnavailable when the platform cannot produce an identifier.
// An error matching offlinequeue.ErrQueued means the upsert will be replayed.
func (r *Registrar) Register(ctx context.Context) (*entity.DeviceRegistration, error) {
	logger := r.logger.With(slog.String("channel", string(r.channel.Name())))

	if !r.channel.RequestPermission(ctx) {
		logger.InfoContext(ctx, "[PushClient] Notification permission not granted")

		return nil, domainerrors.ErrPermissionDenied
	}

	reg, err := r.channel.ObtainRegistration(ctx)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		logger.InfoContext(ctx, "[PushClient] Push capability unavailable on this platform")

		return nil, domainerrors.ErrRegistrationUnavailable
	}

	registration, err := r.api.Register(ctx, reg)
	if errors.Is(err, offlinequeue.ErrQueued) {
		logger.InfoContext(ctx, "[PushClient] Offline, registration queued for replay")

		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	logger.InfoContext(ctx, "[PushClient] Device registered", slog.String("registration_id", registration.ID.String()))

	return registration, nil
}

// Unregister revokes the current identifier of the channel. A platform that
// cannot produce one has nothing registered and returns nil.
func (r *Registrar) Unregister(ctx context.Context) error {
	reg, err := r.channel.ObtainRegistration(ctx)
	if err != nil {
		return err
	}
	if reg == nil {
		return nil
	}

	if err := r.api.Revoke(ctx, reg.Channel, reg.ExternalID); err != nil {
		if errors.Is(err, offlinequeue.ErrQueued) {
			return err
		}

		return errors.Wrap(err, "failed to revoke device registration")
	}

	return nil
}
