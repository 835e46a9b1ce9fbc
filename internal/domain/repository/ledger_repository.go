package repository

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerRepository is the append-only delivery ledger.
type LedgerRepository interface {
	// Append records one send attempt.
	Append(ctx context.Context, entry *entity.DeliveryLedgerEntry) error

	// FindSentRegistrations returns the subset of registrationIDs with a sent entry
	// for dedupKey created at or after since.
	FindSentRegistrations(ctx context.Context, dedupKey string, registrationIDs []uuid.UUID, since time.Time) ([]uuid.UUID, error)

	// FindByUser lists the most recent ledger entries for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryLedgerEntry, error)
}
