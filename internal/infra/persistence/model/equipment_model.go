package model

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentModel is the GORM-specific read model of the 'equipment' table.
type EquipmentModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID               uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                  string    `gorm:"type:text;not null"`
	CleaningFrequencyDays int       `gorm:"not null;default:0"`
	LastCleanedAt         *time.Time
	NotificationsEnabled  bool `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (EquipmentModel) TableName() string {
	return "equipment"
}

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key"`
	OwnerID      uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title        string               `gorm:"type:text;not null"`
	StartDate    time.Time            `gorm:"not null;index"`
	ReminderSent bool                 `gorm:"not null;default:false"`
	Attendees    []EventAttendeeModel `gorm:"foreignKey:EventID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// EventAttendeeModel is the GORM-specific struct for the 'event_attendees' table.
type EventAttendeeModel struct {
	EventID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (EventAttendeeModel) TableName() string {
	return "event_attendees"
}
