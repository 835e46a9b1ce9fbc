package impl

import (
	"context"
	"testing"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegistrationService(t *testing.T) (usecase.RegistrationUsecase, *mockRepo.MockRegistrationRepository) {
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)

	return NewRegistrationService(registrationRepo, newDiscardLogger()), registrationRepo
}

func TestRegistrationService_Register_NativeSuccess(t *testing.T) {
	svc, registrationRepo := createTestRegistrationService(t)
	ctx := context.Background()
	userID := uuid.New()

	registrationRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(reg *entity.DeviceRegistration) bool {
		return reg.UserID == userID &&
			reg.Channel == entity.ChannelNativePush &&
			reg.ExternalID == "fcm-token" &&
			reg.Platform == "ios" &&
			reg.IsActive
	})).RunAndReturn(func(_ context.Context, reg *entity.DeviceRegistration) error {
		reg.ID = uuid.New()

		return nil
	})

	reg, err := svc.Register(ctx, userID, &usecase.RegisterInput{
		Channel:    entity.ChannelNativePush,
		ExternalID: "  fcm-token ",
		Platform:   "iOS",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, reg.ID)
}

func TestRegistrationService_Register_WebPushValidation(t *testing.T) {
	tests := []struct {
		name       string
		externalID string
		deviceInfo map[string]any
		wantErr    bool
	}{
		{
			name:       "complete subscription",
			externalID: "https://fcm.googleapis.com/fcm/send/abc",
			deviceInfo: map[string]any{"p256dh": "key", "auth": "secret"},
		},
		{
			name:       "plain http endpoint",
			externalID: "http://push.example.com/abc",
			deviceInfo: map[string]any{"p256dh": "key", "auth": "secret"},
			wantErr:    true,
		},
		{
			name:       "missing auth secret",
			externalID: "https://push.example.com/abc",
			deviceInfo: map[string]any{"p256dh": "key"},
			wantErr:    true,
		},
		{
			name:       "empty endpoint",
			externalID: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, registrationRepo := createTestRegistrationService(t)
			ctx := context.Background()
			if !tt.wantErr {
				registrationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
			}

			_, err := svc.Register(ctx, uuid.New(), &usecase.RegisterInput{
				Channel:    entity.ChannelWebPush,
				ExternalID: tt.externalID,
				DeviceInfo: tt.deviceInfo,
			})

			if tt.wantErr {
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "REGISTRATION_INVALID", appErr.ErrorCode())

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegistrationService_Register_UnknownChannel(t *testing.T) {
	svc, _ := createTestRegistrationService(t)

	_, err := svc.Register(context.Background(), uuid.New(), &usecase.RegisterInput{
		Channel:    entity.Channel("sms"),
		ExternalID: "+15550100",
	})

	assert.Error(t, err)
}

func TestRegistrationService_Revoke(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	regID := uuid.New()

	t.Run("owner deactivates", func(t *testing.T) {
		svc, registrationRepo := createTestRegistrationService(t)
		registrationRepo.EXPECT().FindByID(ctx, regID).Return(&entity.DeviceRegistration{ID: regID, UserID: ownerID}, nil)
		registrationRepo.EXPECT().Deactivate(ctx, regID).Return(nil)

		assert.NoError(t, svc.Revoke(ctx, ownerID, regID))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, registrationRepo := createTestRegistrationService(t)
		registrationRepo.EXPECT().FindByID(ctx, regID).Return(&entity.DeviceRegistration{ID: regID, UserID: ownerID}, nil)

		assert.ErrorIs(t, svc.Revoke(ctx, uuid.New(), regID), domainerrors.ErrRegistrationForbidden)
	})

	t.Run("missing registration", func(t *testing.T) {
		svc, registrationRepo := createTestRegistrationService(t)
		registrationRepo.EXPECT().FindByID(ctx, regID).Return(nil, repository.ErrRegistrationNotFound)

		assert.ErrorIs(t, svc.Revoke(ctx, ownerID, regID), domainerrors.ErrRegistrationNotFound)
	})
}

func TestRegistrationService_RevokeByExternalID_IsIdempotent(t *testing.T) {
	svc, registrationRepo := createTestRegistrationService(t)
	ctx := context.Background()
	userID := uuid.New()

	registrationRepo.EXPECT().DeactivateByExternalID(ctx, userID, entity.ChannelNativePush, "token").Return(int64(1), nil).Once()
	registrationRepo.EXPECT().DeactivateByExternalID(ctx, userID, entity.ChannelNativePush, "token").Return(int64(0), nil).Once()

	require.NoError(t, svc.RevokeByExternalID(ctx, userID, entity.ChannelNativePush, "token"))
	require.NoError(t, svc.RevokeByExternalID(ctx, userID, entity.ChannelNativePush, "token"))
}

func TestRegistrationService_RevokeByExternalID_RepositoryError(t *testing.T) {
	svc, registrationRepo := createTestRegistrationService(t)
	ctx := context.Background()
	userID := uuid.New()

	registrationRepo.EXPECT().DeactivateByExternalID(ctx, userID, entity.ChannelWebPush, "https://push.example.com/x").
		Return(int64(0), errors.New("db down"))

	err := svc.RevokeByExternalID(ctx, userID, entity.ChannelWebPush, "https://push.example.com/x")
	assert.Error(t, err)
}

func TestRegistrationService_ListActive(t *testing.T) {
	svc, registrationRepo := createTestRegistrationService(t)
	ctx := context.Background()
	userID := uuid.New()
	regs := []*entity.DeviceRegistration{{ID: uuid.New(), UserID: userID, IsActive: true}}

	registrationRepo.EXPECT().FindActiveByUsers(ctx, []uuid.UUID{userID}).Return(regs, nil)

	got, err := svc.ListActive(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, regs, got)
}
