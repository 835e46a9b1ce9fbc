package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeviceRegistrationModel is the GORM-specific struct for the 'device_registrations' table.
// (channel, external_id) carries a unique index; rows are deactivated, never deleted.
type DeviceRegistrationModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Channel    string            `gorm:"type:varchar(32);not null;uniqueIndex:idx_registration_channel_external"`
	ExternalID string            `gorm:"type:text;not null;uniqueIndex:idx_registration_channel_external"`
	Platform   string            `gorm:"type:varchar(50);not null;default:''"`
	DeviceInfo datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive   bool              `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastUsedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceRegistrationModel) TableName() string {
	return "device_registrations"
}
