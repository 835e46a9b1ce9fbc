package channel

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"upkeep/config"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

type webPushAdapter struct {
	cfg        config.WebPushConfig
	httpClient webpush.HTTPClient
}

// webPushPayload is what the service worker receives in its push event.
type webPushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Type  string            `json:"type,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// NewWebPushAdapter creates the VAPID web push channel. Without keys the
// channel reports CHANNEL_UNAVAILABLE on every send.
func NewWebPushAdapter(cfg *config.Config, logger *slog.Logger) service.ChannelAdapter {
	if cfg.WebPush == nil || cfg.WebPush.VAPIDPrivateKey == "" || cfg.WebPush.VAPIDPublicKey == "" {
		logger.Warn("[Channel] VAPID keys not configured, web push disabled")

		return NewUnavailableAdapter(entity.ChannelWebPush)
	}

	return newWebPushAdapter(*cfg.WebPush, &http.Client{})
}

func newWebPushAdapter(cfg config.WebPushConfig, httpClient webpush.HTTPClient) *webPushAdapter {
	return &webPushAdapter{cfg: cfg, httpClient: httpClient}
}

func (a *webPushAdapter) Channel() entity.Channel {
	return entity.ChannelWebPush
}

// Send encrypts and posts one message to the subscription endpoint.
func (a *webPushAdapter) Send(ctx context.Context, reg *entity.DeviceRegistration, msg *service.PushMessage) (string, error) {
	subscription := &webpush.Subscription{
		Endpoint: reg.ExternalID,
		Keys: webpush.Keys{
			P256dh: reg.InfoString(entity.DeviceInfoKeyP256dh),
			Auth:   reg.InfoString(entity.DeviceInfoKeyAuth),
		},
	}
	if subscription.Endpoint == "" || subscription.Keys.P256dh == "" || subscription.Keys.Auth == "" {
		return "", service.NewSendError(service.SendErrorInvalidRegistration, errors.New("web push subscription is missing endpoint or keys"))
	}

	payload, err := json.Marshal(webPushPayload{
		Title: msg.Title,
		Body:  msg.Body,
		Type:  msg.Type,
		Data:  msg.Data,
	})
	if err != nil {
		return "", service.NewSendError(service.SendErrorTransient, errors.Wrap(err, "marshal web push payload"))
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, subscription, &webpush.Options{
		HTTPClient:      a.httpClient,
		Subscriber:      a.cfg.Subscriber,
		VAPIDPublicKey:  a.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: a.cfg.VAPIDPrivateKey,
		TTL:             a.cfg.TTL,
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return "", service.NewSendError(service.SendErrorTransient, errors.Wrap(err, "web push send"))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return resp.Header.Get("Location"), nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return "", service.NewSendError(service.SendErrorInvalidRegistration,
			errors.Errorf("push service rejected subscription: %d", resp.StatusCode))
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		// The subscription is bound to another application server key or was withdrawn.
		return "", service.NewSendError(service.SendErrorPermissionRevoked,
			errors.Errorf("push service refused authorization: %d", resp.StatusCode))
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusRequestEntityTooLarge:
		return "", service.NewSendError(service.SendErrorInvalidPayload,
			errors.Errorf("push service rejected payload: %d", resp.StatusCode))
	default:
		return "", service.NewSendError(service.SendErrorTransient,
			errors.Errorf("push service returned %d", resp.StatusCode))
	}
}
