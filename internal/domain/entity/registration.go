// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies a push-delivery mechanism.
type Channel string

const (
	// ChannelWebPush is browser push through a VAPID-authenticated push service.
	ChannelWebPush Channel = "web_push"
	// ChannelNativePush is mobile push through Firebase Cloud Messaging.
	ChannelNativePush Channel = "native_push"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c == ChannelWebPush || c == ChannelNativePush
}

// Keys inside DeviceRegistration.DeviceInfo understood by the web push channel.
const (
	DeviceInfoKeyP256dh = "p256dh"
	DeviceInfoKeyAuth   = "auth"
)

// DeviceRegistration maps a user to one device identifier within one channel.
// (Channel, ExternalID) is unique; re-registering reactivates the row for the caller.
type DeviceRegistration struct {
	ID         uuid.UUID      `json:"id"`           // The Global Unique Identifier (GUID) for the registration.
	UserID     uuid.UUID      `json:"user_id"`      // The ID of the user who owns this registration.
	Channel    Channel        `json:"channel"`      // Delivery channel of this registration.
	ExternalID string         `json:"external_id"`  // FCM token or web push endpoint URL.
	Platform   string         `json:"platform"`     // OS or browser tag (ios, android, chrome, ...).
	DeviceInfo map[string]any `json:"device_info"`  // Opaque client metadata; web push keys live here.
	IsActive   bool           `json:"is_active"`    // Inactive registrations are never sent to.
	CreatedAt  time.Time      `json:"created_at"`   // Timestamp of the first registration.
	UpdatedAt  time.Time      `json:"updated_at"`   // Timestamp of the last modification.
	LastUsedAt *time.Time     `json:"last_used_at"` // Timestamp of the last successful send.
}

// InfoString returns a string value from DeviceInfo, or "" when absent.
func (r *DeviceRegistration) InfoString(key string) string {
	if r == nil || r.DeviceInfo == nil {
		return ""
	}
	s, _ := r.DeviceInfo[key].(string)

	return s
}

// RegistrationFilter selects active registrations for broadcast targets.
// Zero-valued fields do not constrain the selection.
type RegistrationFilter struct {
	Channel  Channel           `json:"channel,omitempty"`
	Platform string            `json:"platform,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"` // Matched against string values in DeviceInfo.
}

// IsEmpty reports whether the filter would match every registration.
func (f *RegistrationFilter) IsEmpty() bool {
	return f == nil || (f.Channel == "" && f.Platform == "" && len(f.Tags) == 0)
}
