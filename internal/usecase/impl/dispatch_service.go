// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	registrationRepo repository.RegistrationRepository
	ledgerRepo       repository.LedgerRepository
	adapters         map[entity.Channel]service.ChannelAdapter
	maxConcurrency   int
	sendTimeout      time.Duration
	dedupWindow      time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	RegistrationRepo repository.RegistrationRepository
	LedgerRepo       repository.LedgerRepository
	Adapters         []service.ChannelAdapter `group:"channels"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	adapters := make(map[entity.Channel]service.ChannelAdapter, len(params.Adapters))
	for _, adapter := range params.Adapters {
		adapters[adapter.Channel()] = adapter
	}

	cfg := params.Config.Dispatch
	if cfg == nil {
		params.Config.ApplyDefaults()
		cfg = params.Config.Dispatch
	}

	return &dispatchService{
		registrationRepo: params.RegistrationRepo,
		ledgerRepo:       params.LedgerRepo,
		adapters:         adapters,
		maxConcurrency:   cfg.MaxConcurrency,
		sendTimeout:      cfg.SendTimeout,
		dedupWindow:      cfg.DedupWindow,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// Dispatch resolves the target, sends to every registration concurrently and records each outcome.
func (s *dispatchService) Dispatch(ctx context.Context, intent *usecase.DispatchIntent) (*usecase.DispatchSummary, error) {
	if intent == nil {
		return nil, usecase.ErrInvalidDispatchTarget
	}
	if err := intent.Target.Validate(); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("notification_type", intent.NotificationType),
	)

	registrations, err := s.resolve(ctx, intent.Target)
	if err != nil {
		return nil, err
	}

	summary := &usecase.DispatchSummary{Results: []usecase.DeliveryResult{}}
	if len(registrations) == 0 {
		logger.Info("[Dispatcher] No active registrations for target")

		return summary, nil
	}

	registrations, skipped := s.dropDeduplicated(ctx, logger, intent, registrations)
	summary.Skipped = skipped

	results := make([]usecase.DeliveryResult, len(registrations))
	msg := &service.PushMessage{
		Title: intent.Title,
		Body:  intent.Body,
		Type:  intent.NotificationType,
		Data:  intent.Data,
	}

	// Goroutines never return an error so one failed send cannot cancel its siblings.
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.maxConcurrency)
	for i, reg := range registrations {
		group.Go(func() error {
			results[i] = s.deliver(groupCtx, logger, intent, msg, reg)

			return nil
		})
	}
	_ = group.Wait()

	for _, result := range results {
		if result.Status == entity.DeliveryStatusSent {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}
	summary.Results = results

	logger.Info("[Dispatcher] Dispatch completed",
		slog.Int("registrations", len(registrations)),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
	)

	return summary, nil
}

func (s *dispatchService) resolve(ctx context.Context, target usecase.DispatchTarget) ([]*entity.DeviceRegistration, error) {
	if target.Filter != nil {
		registrations, err := s.registrationRepo.FindActiveByFilter(ctx, *target.Filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve registrations by filter")
		}

		return registrations, nil
	}

	registrations, err := s.registrationRepo.FindActiveByUsers(ctx, uniqueUserIDs(target.UserIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve registrations by users")
	}

	return registrations, nil
}

// dropDeduplicated removes registrations that already got intent.DedupKey inside the window.
// A user's other registrations that failed earlier stay in. A failed ledger lookup lets the send through.
func (s *dispatchService) dropDeduplicated(
	ctx context.Context,
	logger *slog.Logger,
	intent *usecase.DispatchIntent,
	registrations []*entity.DeviceRegistration,
) ([]*entity.DeviceRegistration, int) {
	if intent.DedupKey == "" {
		return registrations, 0
	}

	ids := make([]uuid.UUID, 0, len(registrations))
	for _, reg := range registrations {
		ids = append(ids, reg.ID)
	}

	since := s.now().Add(-s.dedupWindow)
	sentIDs, err := s.ledgerRepo.FindSentRegistrations(ctx, intent.DedupKey, ids, since)
	if err != nil {
		logger.Warn("[Dispatcher] Ledger dedup check failed, sending anyway",
			slog.String("dedup_key", intent.DedupKey),
			slog.Any("error", err),
		)

		return registrations, 0
	}
	if len(sentIDs) == 0 {
		return registrations, 0
	}

	alreadySent := make(map[uuid.UUID]struct{}, len(sentIDs))
	for _, id := range sentIDs {
		alreadySent[id] = struct{}{}
	}

	kept := make([]*entity.DeviceRegistration, 0, len(registrations))
	for _, reg := range registrations {
		if _, sent := alreadySent[reg.ID]; !sent {
			kept = append(kept, reg)
		}
	}
	skipped := len(registrations) - len(kept)

	if skipped > 0 {
		logger.Info("[Dispatcher] Skipped registrations inside dedup window",
			slog.String("dedup_key", intent.DedupKey),
			slog.Int("skipped", skipped),
		)
	}

	return kept, skipped
}

// deliver sends to one registration, appends its ledger entry and deactivates stale registrations.
func (s *dispatchService) deliver(
	ctx context.Context,
	logger *slog.Logger,
	intent *usecase.DispatchIntent,
	msg *service.PushMessage,
	reg *entity.DeviceRegistration,
) usecase.DeliveryResult {
	result := usecase.DeliveryResult{
		RegistrationID: reg.ID,
		UserID:         reg.UserID,
		Channel:        reg.Channel,
	}

	messageID, sendErr := s.send(ctx, reg, msg)
	if sendErr == nil {
		result.Status = entity.DeliveryStatusSent
		result.ExternalMessageID = messageID
	} else {
		result.Status = entity.DeliveryStatusFailed
		result.ErrorCode = string(service.ClassifySendError(sendErr))
		result.ErrorMessage = sendErr.Error()
	}

	// Bookkeeping must outlive a caller that gave up after the send returned.
	bookkeepingCtx := context.WithoutCancel(ctx)

	s.appendLedger(bookkeepingCtx, logger, intent, result)

	regLogger := logger.With(
		slog.String("registration_id", reg.ID.String()),
		slog.String("channel", string(reg.Channel)),
	)

	if sendErr == nil {
		if err := s.registrationRepo.TouchLastUsed(bookkeepingCtx, reg.ID); err != nil {
			regLogger.Debug("[Dispatcher] Failed to update last_used_at", slog.Any("error", err))
		}

		return result
	}

	code := service.SendErrorCode(result.ErrorCode)
	regLogger.Warn("[Dispatcher] Send failed",
		slog.String("error_code", result.ErrorCode),
		slog.Any("error", sendErr),
	)

	if code.Deactivates() {
		if err := s.registrationRepo.Deactivate(bookkeepingCtx, reg.ID); err != nil {
			regLogger.Error("[Dispatcher] Failed to deactivate registration", slog.Any("error", err))
		} else {
			regLogger.Info("[Dispatcher] Registration deactivated")
		}
	}

	return result
}

// send calls the channel adapter under the per-send timeout. An adapter that ignores
// its context is abandoned at the deadline. Panics are converted to transient failures.
func (s *dispatchService) send(ctx context.Context, reg *entity.DeviceRegistration, msg *service.PushMessage) (string, error) {
	adapter, ok := s.adapters[reg.Channel]
	if !ok {
		return "", service.NewSendError(service.SendErrorChannelUnavailable,
			errors.Errorf("no adapter for channel %q", reg.Channel))
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	type outcome struct {
		messageID string
		err       error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: service.NewSendError(service.SendErrorTransient, errors.Errorf("channel adapter panicked: %v", r))}
			}
		}()

		messageID, err := adapter.Send(sendCtx, reg, msg)
		done <- outcome{messageID: messageID, err: err}
	}()

	select {
	case out := <-done:
		return out.messageID, out.err
	case <-sendCtx.Done():
		return "", service.NewSendError(service.SendErrorTransient,
			errors.Wrapf(sendCtx.Err(), "channel %s did not answer within %s", reg.Channel, s.sendTimeout))
	}
}

func (s *dispatchService) appendLedger(ctx context.Context, logger *slog.Logger, intent *usecase.DispatchIntent, result usecase.DeliveryResult) {
	entry := &entity.DeliveryLedgerEntry{
		UserID:            result.UserID,
		RegistrationID:    result.RegistrationID,
		NotificationType:  intent.NotificationType,
		Channel:           result.Channel,
		ExternalMessageID: result.ExternalMessageID,
		Status:            result.Status,
		ErrorCode:         result.ErrorCode,
		ErrorMessage:      result.ErrorMessage,
		DedupKey:          intent.DedupKey,
		Metadata:          ledgerMetadata(ctx, intent),
		CreatedAt:         s.now().UTC(),
	}

	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		logger.Error("[Dispatcher] Failed to append delivery ledger entry",
			slog.String("registration_id", result.RegistrationID.String()),
			slog.Any("error", err),
		)
	}
}

func ledgerMetadata(ctx context.Context, intent *usecase.DispatchIntent) map[string]any {
	metadata := map[string]any{"title": intent.Title}
	if len(intent.Data) > 0 {
		data := make(map[string]any, len(intent.Data))
		for k, v := range intent.Data {
			data[k] = v
		}
		metadata["data"] = data
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		metadata["request_id"] = requestID
	}

	return metadata
}

func uniqueUserIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
