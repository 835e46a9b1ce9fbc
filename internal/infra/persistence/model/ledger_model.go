package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryLedgerModel is the GORM-specific struct for the append-only 'delivery_ledger' table.
type DeliveryLedgerModel struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID         `gorm:"type:uuid;not null;index"`
	RegistrationID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_ledger_dedup,priority:1"`
	NotificationType  string            `gorm:"type:varchar(64);not null"`
	Channel           string            `gorm:"type:varchar(32);not null"`
	ExternalMessageID string            `gorm:"type:text"`
	Status            string            `gorm:"type:varchar(16);not null"`
	ErrorCode         string            `gorm:"type:varchar(64)"`
	ErrorMessage      string            `gorm:"type:text"`
	DedupKey          string            `gorm:"type:text;index:idx_ledger_dedup,priority:2"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt         time.Time         `gorm:"index:idx_ledger_dedup,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLedgerModel) TableName() string {
	return "delivery_ledger"
}
