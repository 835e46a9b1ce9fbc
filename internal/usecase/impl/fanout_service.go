package impl

import (
	"context"
	"log/slog"

	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fanoutDedupPrefix keys ad-hoc rows so a redelivered event does not push twice.
const fanoutDedupPrefix = "in_app:"

type fanoutService struct {
	dispatcher usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewFanoutService creates a new fan-out service instance
func NewFanoutService(dispatcher usecase.DispatchUsecase, logger *slog.Logger) usecase.FanoutUsecase {
	return &fanoutService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleFanoutEvent builds a dispatch intent from a feed row and sends it to the row's user.
func (s *fanoutService) HandleFanoutEvent(ctx context.Context, event *service.FanoutEvent) (*usecase.DispatchSummary, error) {
	if event == nil {
		return nil, errors.Wrap(usecase.ErrInvalidFanoutEvent, "empty event")
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrInvalidFanoutEvent, "user_id %q", event.UserID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("notification_id", event.NotificationID),
		slog.String("type", event.Type),
	)

	if !entity.IsPushableType(event.Type) {
		logger.Info("[Fanout] Type is not pushable, skipping")

		return &usecase.DispatchSummary{Results: []usecase.DeliveryResult{}}, nil
	}

	dedupKey := event.DedupKey
	if dedupKey == "" && event.NotificationID != "" {
		dedupKey = fanoutDedupPrefix + event.NotificationID
	}

	summary, err := s.dispatcher.Dispatch(ctx, &usecase.DispatchIntent{
		Target:           usecase.TargetUsers(userID),
		Title:            event.Title,
		Body:             event.Message,
		Data:             event.Data,
		NotificationType: event.Type,
		DedupKey:         dedupKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "fan-out dispatch failed")
	}

	logger.Info("[Fanout] Event dispatched",
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
	)

	return summary, nil
}
