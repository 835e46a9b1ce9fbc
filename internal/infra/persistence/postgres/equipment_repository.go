package postgres

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/repository"
	"upkeep/internal/errors"
	"upkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository is the constructor for equipmentRepository.
func NewEquipmentRepository(db *gorm.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

// FindReminderCandidates returns enabled equipment that has a due date.
func (repo *equipmentRepository) FindReminderCandidates(ctx context.Context) ([]*entity.Equipment, error) {
	var equipmentModels []*model.EquipmentModel

	if err := repo.db.WithContext(ctx).
		Where("notifications_enabled = ? AND cleaning_frequency_days > 0 AND last_cleaned_at IS NOT NULL", true).
		Find(&equipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find equipment reminder candidates")
	}

	equipment := make([]*entity.Equipment, 0, len(equipmentModels))
	for _, m := range equipmentModels {
		equipment = append(equipment, &entity.Equipment{
			ID:                    m.ID,
			OwnerID:               m.OwnerID,
			Name:                  m.Name,
			CleaningFrequencyDays: m.CleaningFrequencyDays,
			LastCleanedAt:         m.LastCleanedAt,
			NotificationsEnabled:  m.NotificationsEnabled,
		})
	}

	return equipment, nil
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindStartingBetween returns unsent events with from <= start_date < to, attendees preloaded.
func (repo *eventRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Preload("Attendees").
		Where("start_date >= ? AND start_date < ? AND reminder_sent = ?", from, to, false).
		Order("start_date ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events in lookahead window")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, m := range eventModels {
		attendees := make([]uuid.UUID, 0, len(m.Attendees))
		for _, a := range m.Attendees {
			attendees = append(attendees, a.UserID)
		}
		events = append(events, &entity.Event{
			ID:           m.ID,
			OwnerID:      m.OwnerID,
			Title:        m.Title,
			StartDate:    m.StartDate,
			ReminderSent: m.ReminderSent,
			AttendeeIDs:  attendees,
		})
	}

	return events, nil
}

// MarkReminderSent sets reminder_sent, reporting false if another run already did.
func (repo *eventRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Update("reminder_sent", true)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark event reminder sent")
	}

	return result.RowsAffected == 1, nil
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindTimezones returns stored timezones keyed by user ID.
func (repo *userRepository) FindTimezones(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	timezones := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) == 0 {
		return timezones, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Select("id", "timezone").
		Where("id IN ?", userIDs).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user timezones")
	}

	for _, m := range userModels {
		if m.Timezone != nil && *m.Timezone != "" {
			timezones[m.ID] = *m.Timezone
		}
	}

	return timezones, nil
}
