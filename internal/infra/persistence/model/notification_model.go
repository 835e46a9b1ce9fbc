package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InAppNotificationModel is the GORM-specific struct for the 'in_app_notifications' table.
// DedupKey is NULL for ad-hoc rows; (user_id, dedup_key) is unique where it is set.
type InAppNotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_in_app_user_dedup,where:dedup_key IS NOT NULL"`
	Type      string            `gorm:"type:varchar(64);not null"`
	Title     string            `gorm:"type:text;not null"`
	Message   string            `gorm:"type:text;not null"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	DedupKey  *string           `gorm:"type:text;uniqueIndex:idx_in_app_user_dedup,where:dedup_key IS NOT NULL"`
	Read      bool              `gorm:"not null;default:false"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InAppNotificationModel) TableName() string {
	return "in_app_notifications"
}
