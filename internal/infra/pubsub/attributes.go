package pubsub

import "upkeep/internal/domain/service"

// eventAttributes are the message attributes shared by every transport, used for
// subscription filters and tracing.
func eventAttributes(event *service.FanoutEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
		"type":            event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
