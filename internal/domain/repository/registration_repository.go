// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
)

// RegistrationRepository defines the interface for device registration storage.
// The pair (channel, external_id) is unique across all users.
type RegistrationRepository interface {
	// Upsert inserts the registration, or when (channel, external_id) already exists,
	// rebinds it to the given user, marks it active and refreshes device_info and last_used_at.
	// The stored row is written back into reg.
	Upsert(ctx context.Context, reg *entity.DeviceRegistration) error

	// FindByID retrieves a registration by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DeviceRegistration, error)

	// FindByUser retrieves all registrations for a user, including inactive ones.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error)

	// FindActiveByUsers retrieves active registrations for the given users.
	FindActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceRegistration, error)

	// FindActiveByFilter retrieves active registrations matching a broadcast filter.
	FindActiveByFilter(ctx context.Context, filter entity.RegistrationFilter) ([]*entity.DeviceRegistration, error)

	// Deactivate marks a registration inactive. Deactivating an inactive or missing row is not an error.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByExternalID marks the registration for (channel, external_id) inactive,
	// scoped to userID when it is not uuid.Nil. Returns the number of rows changed.
	DeactivateByExternalID(ctx context.Context, userID uuid.UUID, channel entity.Channel, externalID string) (int64, error)

	// TouchLastUsed sets last_used_at on a registration after a successful send.
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}
