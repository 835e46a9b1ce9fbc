// Package pushclient is the device side of push registration: it picks the one
// channel a platform supports, asks for permission, obtains the channel
// identifier and upserts it with the upkeep API.
package pushclient

import (
	"context"
	"log/slog"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/errors"
)

// Channel names accepted by the registration API.
const (
	ChannelWebPush    = entity.ChannelWebPush
	ChannelNativePush = entity.ChannelNativePush
)

// ErrUnsupported is returned by platform bridges when the capability is missing
// in the current environment (no service worker, simulator without APNs, ...).
var ErrUnsupported = errors.New("push capability unsupported in this environment")

// Registration is the channel identifier a device hands to the server.
type Registration struct {
	Channel    entity.Channel `json:"channel"`
	ExternalID string         `json:"external_id"`
	Platform   string         `json:"platform,omitempty"`
	DeviceInfo map[string]any `json:"device_info,omitempty"`
}

// Channel is implemented only by WebPushChannel and NativePushChannel.
type Channel interface {
	Name() entity.Channel
	// RequestPermission reports false when the user declines; it never fails.
	RequestPermission(ctx context.Context) bool
	// ObtainRegistration returns nil when the platform capability is unavailable.
	ObtainRegistration(ctx context.Context) (*Registration, error)

	isChannel()
}

// WebSubscription is the PushSubscription a browser returns on subscribe.
type WebSubscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// WebPushManager bridges the browser Notification and PushManager APIs.
type WebPushManager interface {
	RequestPermission(ctx context.Context) (bool, error)
	Subscribe(ctx context.Context, applicationServerKey string) (*WebSubscription, error)
}

// NativeMessaging bridges the mobile messaging SDK.
type NativeMessaging interface {
	RequestPermission(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
}

// VAPIDKeySource supplies the server's application server key.
type VAPIDKeySource interface {
	VAPIDKey(ctx context.Context) (string, error)
}

// WebPushChannel registers a browser push subscription.
type WebPushChannel struct {
	manager  WebPushManager
	keys     VAPIDKeySource
	platform string
	logger   *slog.Logger
}

func (*WebPushChannel) isChannel() {}

// Name implements Channel.
func (*WebPushChannel) Name() entity.Channel { return ChannelWebPush }

// RequestPermission implements Channel.
func (w *WebPushChannel) RequestPermission(ctx context.Context) bool {
	return requestPermission(ctx, w.logger, ChannelWebPush, w.manager.RequestPermission)
}

// ObtainRegistration subscribes with the server's VAPID key.
func (w *WebPushChannel) ObtainRegistration(ctx context.Context) (*Registration, error) {
	key, err := w.keys.VAPIDKey(ctx)
	if errors.Is(err, ErrUnsupported) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch VAPID public key")
	}

	sub, err := w.manager.Subscribe(ctx, key)
	if errors.Is(err, ErrUnsupported) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to push service")
	}
	if sub == nil || sub.Endpoint == "" {
		return nil, nil
	}

	return &Registration{
		Channel:    ChannelWebPush,
		ExternalID: sub.Endpoint,
		Platform:   w.platform,
		DeviceInfo: map[string]any{
			entity.DeviceInfoKeyP256dh: sub.P256dh,
			entity.DeviceInfoKeyAuth:   sub.Auth,
		},
	}, nil
}

// NativePushChannel registers a mobile messaging token.
type NativePushChannel struct {
	messaging NativeMessaging
	platform  string
	logger    *slog.Logger
}

func (*NativePushChannel) isChannel() {}

// Name implements Channel.
func (*NativePushChannel) Name() entity.Channel { return ChannelNativePush }

// RequestPermission implements Channel.
func (n *NativePushChannel) RequestPermission(ctx context.Context) bool {
	return requestPermission(ctx, n.logger, ChannelNativePush, n.messaging.RequestPermission)
}

// ObtainRegistration implements Channel.
func (n *NativePushChannel) ObtainRegistration(ctx context.Context) (*Registration, error) {
	token, err := n.messaging.Token(ctx)
	if errors.Is(err, ErrUnsupported) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain messaging token")
	}
	if token == "" {
		return nil, nil
	}

	return &Registration{
		Channel:    ChannelNativePush,
		ExternalID: token,
		Platform:   n.platform,
	}, nil
}

func requestPermission(ctx context.Context, logger *slog.Logger, channel entity.Channel, ask func(context.Context) (bool, error)) bool {
	granted, err := ask(ctx)
	if err != nil {
		logger.DebugContext(ctx, "[PushClient] Permission prompt failed, treating as denied",
			slog.String("channel", string(channel)),
			slog.Any("error", err),
		)

		return false
	}

	return granted
}

// Capabilities describes what the current platform offers. Leave a bridge nil
// when the platform lacks it.
type Capabilities struct {
	Native    NativeMessaging
	Web       WebPushManager
	VAPIDKeys VAPIDKeySource
	Platform  string
	Logger    *slog.Logger
}

// Select picks the single channel for this platform, preferring native
// messaging when both bridges are present.
func Select(caps Capabilities) (Channel, error) {
	logger := caps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case caps.Native != nil:
		return &NativePushChannel{messaging: caps.Native, platform: caps.Platform, logger: logger}, nil
	case caps.Web != nil && caps.VAPIDKeys != nil:
		return &WebPushChannel{manager: caps.Web, keys: caps.VAPIDKeys, platform: caps.Platform, logger: logger}, nil
	default:
		return nil, domainerrors.ErrRegistrationUnavailable
	}
}
