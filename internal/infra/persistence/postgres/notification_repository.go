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

// inAppNotificationRepository implements the repository.InAppNotificationRepository interface.
type inAppNotificationRepository struct {
	db *gorm.DB
}

// NewInAppNotificationRepository is the constructor for inAppNotificationRepository.
func NewInAppNotificationRepository(db *gorm.DB) repository.InAppNotificationRepository {
	return &inAppNotificationRepository{
		db: db,
	}
}

// Create inserts a feed row.
func (repo *inAppNotificationRepository) Create(ctx context.Context, n *entity.InAppNotification) error {
	notificationM := fromInAppDomain(n)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotification
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create in-app notification")
	}

	n.ID = notificationM.ID
	n.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its ID.
func (repo *inAppNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InAppNotification, error) {
	var notificationM model.InAppNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find in-app notification by ID")
	}

	return toInAppDomain(&notificationM), nil
}

// FindByDedupKey retrieves the row the (user_id, dedup_key) unique index points at.
func (repo *inAppNotificationRepository) FindByDedupKey(ctx context.Context, userID uuid.UUID, dedupKey string) (*entity.InAppNotification, error) {
	if dedupKey == "" {
		return nil, repository.ErrNotificationNotFound
	}

	var notificationM model.InAppNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND dedup_key = ?", userID, dedupKey).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find in-app notification by dedup key")
	}

	return toInAppDomain(&notificationM), nil
}

// FindByUser lists a user's feed newest first.
func (repo *inAppNotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.InAppNotification, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notificationModels []*model.InAppNotificationModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find in-app notifications by user")
	}

	notifications := make([]*entity.InAppNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toInAppDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flips read to true. The update never touches read rows, so it cannot
// move a row back to unread.
func (repo *inAppNotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InAppNotificationModel{}).
		Where("id = ? AND user_id = ? AND read = ?", id, userID, false).
		Updates(map[string]any{
			"read":    true,
			"read_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark in-app notification read")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Zero rows either means already read (fine) or not the caller's row.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.InAppNotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check in-app notification ownership")
	}
	if count == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInAppDomain(data *model.InAppNotificationModel) *entity.InAppNotification {
	if data == nil {
		return nil
	}

	var dedupKey string
	if data.DedupKey != nil {
		dedupKey = *data.DedupKey
	}

	return &entity.InAppNotification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Message:   data.Message,
		Data:      map[string]any(data.Data),
		DedupKey:  dedupKey,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromInAppDomain(data *entity.InAppNotification) *model.InAppNotificationModel {
	if data == nil {
		return nil
	}

	var dedupKey *string
	if data.DedupKey != "" {
		key := data.DedupKey
		dedupKey = &key
	}

	return &model.InAppNotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Title:     data.Title,
		Message:   data.Message,
		Data:      datatypes.JSONMap(data.Data),
		DedupKey:  dedupKey,
		Read:      data.Read,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}
