package impl

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/repository"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deliveryService struct {
	ledgerRepo repository.LedgerRepository
}

// NewDeliveryService creates a new ledger diagnostics service instance
func NewDeliveryService(ledgerRepo repository.LedgerRepository) usecase.DeliveryUsecase {
	return &deliveryService{ledgerRepo: ledgerRepo}
}

// ListDeliveries returns a page of the user's ledger, newest first.
func (s *deliveryService) ListDeliveries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryLedgerEntry, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.ledgerRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return entries, nil
}
