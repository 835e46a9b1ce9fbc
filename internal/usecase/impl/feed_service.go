package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// publishFailedCode marks ledger entries for fan-out events that never reached the broker.
const publishFailedCode = "FANOUT_PUBLISH_FAILED"

type feedService struct {
	notificationRepo repository.InAppNotificationRepository
	ledgerRepo       repository.LedgerRepository
	publisher        service.EventPublisher
	now              func() time.Time
	logger           *slog.Logger
}

// NewFeedService creates a new in-app feed service instance
func NewFeedService(
	notificationRepo repository.InAppNotificationRepository,
	ledgerRepo repository.LedgerRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return &feedService{
		notificationRepo: notificationRepo,
		ledgerRepo:       ledgerRepo,
		publisher:        publisher,
		now:              time.Now,
		logger:           logger,
	}
}

// Create stores the row, then emits the fan-out event outside the insert's failure path.
func (s *feedService) Create(ctx context.Context, notification *entity.InAppNotification) error {
	if notification == nil || notification.UserID == uuid.Nil || strings.TrimSpace(notification.Type) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("user_id and type are required")
	}
	notification.Read = false
	notification.ReadAt = nil

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrDuplicateNotification) {
			return err
		}

		return errors.Wrap(err, "failed to create in-app notification")
	}

	s.Publish(ctx, notification)

	return nil
}

// Publish emits exactly one fan-out event for a pushable row. A failure is logged
// and leaves a failed ledger entry so the lost push is visible per user.
func (s *feedService) Publish(ctx context.Context, notification *entity.InAppNotification) {
	if !entity.IsPushableType(notification.Type) {
		return
	}

	ctx = context.WithoutCancel(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	event := toFanoutEvent(ctx, notification)

	if err := s.publisher.PublishFanoutEvent(ctx, event); err != nil {
		logger.Error("[Fanout] Failed to publish fan-out event",
			slog.String("notification_id", event.NotificationID),
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
		s.recordPublishFailure(ctx, logger, notification, err)

		return
	}

	logger.Debug("[Fanout] Fan-out event published",
		slog.String("notification_id", event.NotificationID),
	)
}

// Republish hands an already stored row to the fan-out again. The dispatcher's
// ledger dedup keeps registrations that already got it from receiving it twice.
func (s *feedService) Republish(ctx context.Context, userID uuid.UUID, dedupKey string) (bool, error) {
	notification, err := s.notificationRepo.FindByDedupKey(ctx, userID, dedupKey)
	if err != nil {
		return false, errors.Wrap(err, "failed to load notification for redelivery")
	}
	if notification.Read || !entity.IsPushableType(notification.Type) {
		return false, nil
	}

	s.Publish(ctx, notification)

	return true, nil
}

func (s *feedService) recordPublishFailure(ctx context.Context, logger *slog.Logger, n *entity.InAppNotification, publishErr error) {
	entry := &entity.DeliveryLedgerEntry{
		UserID:           n.UserID,
		RegistrationID:   uuid.Nil,
		NotificationType: n.Type,
		Status:           entity.DeliveryStatusFailed,
		ErrorCode:        publishFailedCode,
		ErrorMessage:     publishErr.Error(),
		DedupKey:         n.DedupKey,
		Metadata: map[string]any{
			"notification_id": n.ID.String(),
			"title":           n.Title,
		},
		CreatedAt: s.now().UTC(),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		entry.Metadata["request_id"] = requestID
	}

	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		logger.Error("[Fanout] Failed to record publish failure",
			slog.String("notification_id", n.ID.String()),
			slog.Any("error", err),
		)
	}
}

// List returns a page of the user's feed.
func (s *feedService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.InAppNotification, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list in-app notifications")
	}

	return notifications, nil
}

// MarkRead acknowledges a notification owned by the user.
func (s *feedService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

func toFanoutEvent(ctx context.Context, n *entity.InAppNotification) *service.FanoutEvent {
	data := make(map[string]string, len(n.Data)+1)
	for k, v := range n.Data {
		switch value := v.(type) {
		case string:
			data[k] = value
		case nil:
		default:
			data[k] = fmt.Sprint(value)
		}
	}
	data["notification_id"] = n.ID.String()

	return &service.FanoutEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: n.ID.String(),
		UserID:         n.UserID.String(),
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		DedupKey:       n.DedupKey,
		Data:           data,
	}
}
