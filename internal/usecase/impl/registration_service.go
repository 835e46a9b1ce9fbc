package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type registrationService struct {
	registrationRepo repository.RegistrationRepository
	logger           *slog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(registrationRepo repository.RegistrationRepository, logger *slog.Logger) usecase.RegistrationUsecase {
	return &registrationService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// Register validates the channel-specific identifier and upserts the registration.
func (s *registrationService) Register(ctx context.Context, userID uuid.UUID, input *usecase.RegisterInput) (*entity.DeviceRegistration, error) {
	if input == nil {
		return nil, domainerrors.ErrRegistrationInvalid
	}
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	reg := &entity.DeviceRegistration{
		UserID:     userID,
		Channel:    input.Channel,
		ExternalID: strings.TrimSpace(input.ExternalID),
		Platform:   strings.ToLower(strings.TrimSpace(input.Platform)),
		DeviceInfo: input.DeviceInfo,
		IsActive:   true,
	}

	if err := s.registrationRepo.Upsert(ctx, reg); err != nil {
		return nil, errors.Wrap(err, "failed to upsert registration")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[Registration] Device registered",
		slog.String("registration_id", reg.ID.String()),
		slog.String("channel", string(reg.Channel)),
		slog.String("platform", reg.Platform),
	)

	return reg, nil
}

// ListActive returns the user's active registrations.
func (s *registrationService) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceRegistration, error) {
	registrations, err := s.registrationRepo.FindActiveByUsers(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registrations")
	}

	return registrations, nil
}

// Revoke deactivates a registration after checking ownership.
func (s *registrationService) Revoke(ctx context.Context, userID, registrationID uuid.UUID) error {
	reg, err := s.registrationRepo.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domainerrors.ErrRegistrationNotFound
		}

		return errors.Wrap(err, "failed to find registration")
	}
	if reg.UserID != userID {
		return domainerrors.ErrRegistrationForbidden
	}

	if err := s.registrationRepo.Deactivate(ctx, registrationID); err != nil {
		return errors.Wrap(err, "failed to deactivate registration")
	}

	return nil
}

// RevokeByExternalID deactivates the user's registration for a channel identifier.
// Revoking an unknown or already inactive identifier succeeds.
func (s *registrationService) RevokeByExternalID(ctx context.Context, userID uuid.UUID, channel entity.Channel, externalID string) error {
	if !channel.Valid() || strings.TrimSpace(externalID) == "" {
		return domainerrors.ErrRegistrationInvalid
	}

	changed, err := s.registrationRepo.DeactivateByExternalID(ctx, userID, channel, strings.TrimSpace(externalID))
	if err != nil {
		return errors.Wrap(err, "failed to deactivate registration")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[Registration] Permission revoked",
		slog.String("channel", string(channel)),
		slog.Int64("deactivated", changed),
	)

	return nil
}

// validateRegistration checks the identifier shape each channel needs to send.
func validateRegistration(input *usecase.RegisterInput) error {
	externalID := strings.TrimSpace(input.ExternalID)
	if externalID == "" {
		return domainerrors.ErrRegistrationInvalid.WithDetails("external_id is required")
	}

	switch input.Channel {
	case entity.ChannelNativePush:
		return nil
	case entity.ChannelWebPush:
		endpoint, err := url.Parse(externalID)
		if err != nil || endpoint.Scheme != "https" || endpoint.Host == "" {
			return domainerrors.ErrRegistrationInvalid.WithDetails("web push external_id must be an https endpoint")
		}

		for _, key := range []string{entity.DeviceInfoKeyP256dh, entity.DeviceInfoKeyAuth} {
			if v, _ := input.DeviceInfo[key].(string); v == "" {
				return domainerrors.ErrRegistrationInvalid.WithDetails("web push device_info." + key + " is required")
			}
		}

		return nil
	default:
		return domainerrors.ErrRegistrationInvalid.WithDetails("unknown channel")
	}
}
