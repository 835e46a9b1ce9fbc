package channel

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
)

type unavailableAdapter struct {
	channel entity.Channel
}

// NewUnavailableAdapter returns an adapter for a channel the server cannot reach.
func NewUnavailableAdapter(channel entity.Channel) service.ChannelAdapter {
	return &unavailableAdapter{channel: channel}
}

func (a *unavailableAdapter) Channel() entity.Channel {
	return a.channel
}

func (a *unavailableAdapter) Send(_ context.Context, _ *entity.DeviceRegistration, _ *service.PushMessage) (string, error) {
	return "", service.NewSendError(service.SendErrorChannelUnavailable,
		errors.Errorf("channel %s is not configured", a.channel))
}
