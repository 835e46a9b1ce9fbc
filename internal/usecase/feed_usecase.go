package usecase

import (
	"context"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedUsecase manages the in-app notification feed.
type FeedUsecase interface {
	// Create stores a feed row and, for pushable types, emits one fan-out event.
	// A failed emit is logged and never fails the insert.
	Create(ctx context.Context, notification *entity.InAppNotification) error

	// Publish emits the fan-out event for a row that was stored elsewhere, e.g. inside a transaction.
	// A failed emit is recorded in the delivery ledger.
	Publish(ctx context.Context, notification *entity.InAppNotification)

	// Republish emits the fan-out event again for the user's existing row with dedupKey.
	// It reports false when the row is read or not pushable.
	Republish(ctx context.Context, userID uuid.UUID, dedupKey string) (bool, error)

	// List returns the user's feed newest first.
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.InAppNotification, error)

	// MarkRead acknowledges a notification. Already read rows stay read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
