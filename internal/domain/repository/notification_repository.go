package repository

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for in-app notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateNotification is returned when (user_id, dedup_key) already exists.
	ErrDuplicateNotification = errors.New("notification with dedup key already exists")
)

// InAppNotificationRepository stores the in-app feed.
type InAppNotificationRepository interface {
	// Create inserts a notification. Returns ErrDuplicateNotification when the
	// notification carries a dedup key already used for that user.
	Create(ctx context.Context, n *entity.InAppNotification) error

	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InAppNotification, error)

	// FindByDedupKey retrieves the user's notification carrying dedupKey.
	// Returns ErrNotificationNotFound when there is none.
	FindByDedupKey(ctx context.Context, userID uuid.UUID, dedupKey string) (*entity.InAppNotification, error)

	// FindByUser lists a user's feed newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.InAppNotification, error)

	// MarkRead marks a notification read for its owner.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}
