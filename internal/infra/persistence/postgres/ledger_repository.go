package postgres

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/errors"
	"upkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ledgerRepository implements the repository.LedgerRepository interface.
// It only ever inserts and reads.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Append records one send attempt.
func (repo *ledgerRepository) Append(ctx context.Context, entry *entity.DeliveryLedgerEntry) error {
	entryM := fromLedgerDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append delivery ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindSentRegistrations returns which of the registrations already received dedupKey since the given time.
func (repo *ledgerRepository) FindSentRegistrations(ctx context.Context, dedupKey string, registrationIDs []uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	if len(registrationIDs) == 0 {
		return nil, nil
	}

	var sent []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryLedgerModel{}).
		Distinct("registration_id").
		Where("registration_id IN ? AND dedup_key = ? AND status = ? AND created_at >= ?",
			registrationIDs, dedupKey, string(entity.DeliveryStatusSent), since).
		Pluck("registration_id", &sent).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check delivery ledger dedup")
	}

	return sent, nil
}

// FindByUser lists a user's most recent ledger entries.
func (repo *ledgerRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryLedgerEntry, error) {
	var entryModels []*model.DeliveryLedgerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery ledger entries by user")
	}

	entries := make([]*entity.DeliveryLedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLedgerDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toLedgerDomain(data *model.DeliveryLedgerModel) *entity.DeliveryLedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLedgerEntry{
		ID:                data.ID,
		UserID:            data.UserID,
		RegistrationID:    data.RegistrationID,
		NotificationType:  data.NotificationType,
		Channel:           entity.Channel(data.Channel),
		ExternalMessageID: data.ExternalMessageID,
		Status:            entity.DeliveryStatus(data.Status),
		ErrorCode:         data.ErrorCode,
		ErrorMessage:      data.ErrorMessage,
		DedupKey:          data.DedupKey,
		Metadata:          map[string]any(data.Metadata),
		CreatedAt:         data.CreatedAt,
	}
}

func fromLedgerDomain(data *entity.DeliveryLedgerEntry) *model.DeliveryLedgerModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLedgerModel{
		ID:                data.ID,
		UserID:            data.UserID,
		RegistrationID:    data.RegistrationID,
		NotificationType:  data.NotificationType,
		Channel:           string(data.Channel),
		ExternalMessageID: data.ExternalMessageID,
		Status:            string(data.Status),
		ErrorCode:         data.ErrorCode,
		ErrorMessage:      data.ErrorMessage,
		DedupKey:          data.DedupKey,
		Metadata:          datatypes.JSONMap(data.Metadata),
		CreatedAt:         data.CreatedAt,
	}
}
