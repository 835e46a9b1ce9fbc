// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types produced by the application.
const (
	NotificationTypeLike             = "like"
	NotificationTypeComment          = "comment"
	NotificationTypeFollow           = "follow"
	NotificationTypeCleaningReminder = "cleaning_reminder"
	NotificationTypeEventReminder    = "event_reminder"
	NotificationTypeTest             = "test"
)

// IsPushableType reports whether an in-app notification of this type fans out to push channels.
func IsPushableType(notificationType string) bool {
	switch notificationType {
	case NotificationTypeLike,
		NotificationTypeComment,
		NotificationTypeFollow,
		NotificationTypeCleaningReminder,
		NotificationTypeEventReminder:
		return true
	default:
		return false
	}
}

// InAppNotification is a feed row shown inside the application.
// Read only ever transitions from false to true.
type InAppNotification struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`      // Structured payload, e.g. equipment_id or event_id.
	DedupKey  string         `json:"dedup_key,omitempty"` // Optional; unique per user when set.
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
