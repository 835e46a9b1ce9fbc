package usecase

import (
	"context"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput describes a device registration reported by a client.
type RegisterInput struct {
	Channel    entity.Channel
	ExternalID string
	Platform   string
	DeviceInfo map[string]any
}

// RegistrationUsecase manages the device registration store.
type RegistrationUsecase interface {
	// Register upserts a registration; re-registering an external ID reactivates it.
	Register(ctx context.Context, userID uuid.UUID, input *RegisterInput) (*entity.DeviceRegistration, error)

	// ListActive returns the user's active registrations.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error)

	// Revoke deactivates one of the user's registrations by ID.
	Revoke(ctx context.Context, userID, registrationID uuid.UUID) error

	// RevokeByExternalID deactivates the user's registration for a channel identifier,
	// used when the user withdraws notification permission.
	RevokeByExternalID(ctx context.Context, userID uuid.UUID, channel entity.Channel, externalID string) error
}
