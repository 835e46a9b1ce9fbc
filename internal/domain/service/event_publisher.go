package service

import (
	"context"
)

// FanoutEvent is emitted after an in-app notification is stored so the
// fan-out worker can push it to the user's devices.
type FanoutEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id"`
	UserID         string            `json:"user_id"`
	Type           string            `json:"type"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	DedupKey       string            `json:"dedup_key,omitempty"`
	Data           map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFanoutEvent publishes a fan-out event for async processing
	PublishFanoutEvent(ctx context.Context, event *FanoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
