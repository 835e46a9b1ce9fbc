// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the outcome of one send attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// DeliveryLedgerEntry records one send attempt to one registration. Entries are append-only.
type DeliveryLedgerEntry struct {
	ID                uuid.UUID      `json:"id"`
	UserID            uuid.UUID      `json:"user_id"`
	RegistrationID    uuid.UUID      `json:"registration_id"`
	NotificationType  string         `json:"notification_type"`
	Channel           Channel        `json:"channel"`
	ExternalMessageID string         `json:"external_message_id,omitempty"`
	Status            DeliveryStatus `json:"status"`
	ErrorCode         string         `json:"error_code,omitempty"`
	ErrorMessage      string         `json:"error_message,omitempty"`
	DedupKey          string         `json:"dedup_key,omitempty"` // Entity/day key used to suppress repeats.
	Metadata          map[string]any `json:"metadata,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
