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
	"gorm.io/gorm/clause"
)

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// Upsert inserts a registration or reactivates the existing (channel, external_id) row.
func (repo *registrationRepository) Upsert(ctx context.Context, reg *entity.DeviceRegistration) error {
	regM := fromRegistrationDomain(reg)
	now := time.Now().UTC()
	regM.IsActive = true
	regM.LastUsedAt = &now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "channel"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"user_id", "platform", "device_info", "is_active", "updated_at", "last_used_at",
				}),
			},
			clause.Returning{},
		).
		Create(regM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRegistrationInvalid.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationInvalid.WrapMessage("missing required registration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert registration")
	}

	*reg = *toRegistrationDomain(regM)

	return nil
}

// FindByID retrieves a registration by its unique ID.
func (repo *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeviceRegistration, error) {
	var regM model.DeviceRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&regM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by ID")
	}

	return toRegistrationDomain(&regM), nil
}

// FindByUser retrieves all registrations for a user, including inactive ones.
func (repo *registrationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error) {
	var regModels []*model.DeviceRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations by user")
	}

	return toRegistrationDomains(regModels), nil
}

// FindActiveByUsers retrieves active registrations for the given users.
func (repo *registrationRepository) FindActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.DeviceRegistration, error) {
	if len(userIDs) == 0 {
		return []*entity.DeviceRegistration{}, nil
	}

	var regModels []*model.DeviceRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Order("created_at ASC").
		Find(&regModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active registrations by users")
	}

	return toRegistrationDomains(regModels), nil
}

// FindActiveByFilter retrieves active registrations matching the filter.
// Tags are matched against top-level string values of device_info.
func (repo *registrationRepository) FindActiveByFilter(ctx context.Context, filter entity.RegistrationFilter) ([]*entity.DeviceRegistration, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.Channel != "" {
		query = query.Where("channel = ?", string(filter.Channel))
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	for key, value := range filter.Tags {
		query = query.Where(datatypes.JSONQuery("device_info").Equals(value, key))
	}

	var regModels []*model.DeviceRegistrationModel
	if err := query.Order("created_at ASC").Find(&regModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active registrations by filter")
	}

	return toRegistrationDomains(regModels), nil
}

// Deactivate marks a registration inactive. Already inactive or missing rows are a no-op.
func (repo *registrationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceRegistrationModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate registration")
	}

	return nil
}

// DeactivateByExternalID marks the (channel, external_id) registration inactive.
func (repo *registrationRepository) DeactivateByExternalID(ctx context.Context, userID uuid.UUID, channel entity.Channel, externalID string) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DeviceRegistrationModel{}).
		Where("channel = ? AND external_id = ? AND is_active = ?", string(channel), externalID, true)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Updates(map[string]any{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate registration by external ID")
	}

	return result.RowsAffected, nil
}

// TouchLastUsed records a successful send on the registration.
func (repo *registrationRepository) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceRegistrationModel{}).
		Where("id = ?", id).
		UpdateColumn("last_used_at", time.Now().UTC()).Error; err != nil {
		return errors.Wrap(err, "failed to update registration last_used_at")
	}

	return nil
}

// --- Mapper Functions ---

// toRegistrationDomain converts a GORM DeviceRegistrationModel to a domain DeviceRegistration entity.
func toRegistrationDomain(data *model.DeviceRegistrationModel) *entity.DeviceRegistration {
	if data == nil {
		return nil
	}

	return &entity.DeviceRegistration{
		ID:         data.ID,
		UserID:     data.UserID,
		Channel:    entity.Channel(data.Channel),
		ExternalID: data.ExternalID,
		Platform:   data.Platform,
		DeviceInfo: map[string]any(data.DeviceInfo),
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		LastUsedAt: data.LastUsedAt,
	}
}

func toRegistrationDomains(models []*model.DeviceRegistrationModel) []*entity.DeviceRegistration {
	regs := make([]*entity.DeviceRegistration, 0, len(models))
	for _, regM := range models {
		regs = append(regs, toRegistrationDomain(regM))
	}

	return regs
}

// fromRegistrationDomain converts a domain DeviceRegistration entity to a GORM DeviceRegistrationModel.
func fromRegistrationDomain(data *entity.DeviceRegistration) *model.DeviceRegistrationModel {
	if data == nil {
		return nil
	}

	info := datatypes.JSONMap(data.DeviceInfo)
	if info == nil {
		info = datatypes.JSONMap{}
	}

	return &model.DeviceRegistrationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Channel:    string(data.Channel),
		ExternalID: data.ExternalID,
		Platform:   data.Platform,
		DeviceInfo: info,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		LastUsedAt: data.LastUsedAt,
	}
}
