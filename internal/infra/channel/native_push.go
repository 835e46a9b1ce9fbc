// Package channel implements the push channel adapters used by the dispatcher.
package channel

import (
	"context"
	"log/slog"

	"upkeep/config"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the slice of *messaging.Client the adapter uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type nativePushAdapter struct {
	client messagingClient
}

// NewNativePushAdapter creates the FCM-backed native channel. Without firebase
// credentials the channel reports CHANNEL_UNAVAILABLE on every send.
func NewNativePushAdapter(cfg *config.Config, logger *slog.Logger) (service.ChannelAdapter, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("[Channel] Firebase not configured, native push disabled")

		return NewUnavailableAdapter(entity.ChannelNativePush), nil
	}

	ctx := context.Background()
	var fbConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newNativePushAdapter(client), nil
}

func newNativePushAdapter(client messagingClient) *nativePushAdapter {
	return &nativePushAdapter{client: client}
}

func (a *nativePushAdapter) Channel() entity.Channel {
	return entity.ChannelNativePush
}

// Send delivers one message to one FCM token. Batching is the dispatcher's job.
func (a *nativePushAdapter) Send(ctx context.Context, reg *entity.DeviceRegistration, msg *service.PushMessage) (string, error) {
	if reg.ExternalID == "" {
		return "", service.NewSendError(service.SendErrorInvalidRegistration, errors.New("empty FCM token"))
	}

	messageID, err := a.client.Send(ctx, buildFCMMessage(reg.ExternalID, msg))
	if err != nil {
		return "", service.NewSendError(classifyFCMError(err), errors.Wrap(err, "fcm send"))
	}

	return messageID, nil
}

func buildFCMMessage(token string, msg *service.PushMessage) *messaging.Message {
	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	if msg.Type != "" {
		data["type"] = msg.Type
	}

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}
}

// classifyFCMError deactivates only on errors about the token itself.
// INVALID_ARGUMENT also covers reserved data keys and oversized payloads.
func classifyFCMError(err error) service.SendErrorCode {
	switch {
	case messaging.IsUnregistered(err),
		messaging.IsSenderIDMismatch(err):
		return service.SendErrorInvalidRegistration
	case messaging.IsInvalidArgument(err):
		return service.SendErrorInvalidPayload
	default:
		return service.SendErrorTransient
	}
}
