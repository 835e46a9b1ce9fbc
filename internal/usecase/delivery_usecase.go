package usecase

import (
	"context"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryUsecase exposes the delivery ledger for diagnostics.
type DeliveryUsecase interface {
	// ListDeliveries returns the user's most recent send attempts.
	ListDeliveries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryLedgerEntry, error)
}
