package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"upkeep/config"
	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/router"
	"upkeep/internal/delivery/api/router/handler"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	mockSvc "upkeep/internal/mocks/service"
	mockUsecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken    = "user-token"
	adminToken   = "admin-token"
	triggerToken = "cron-secret"
)

var (
	testUserID  = uuid.MustParse("5f1b5c3a-2b7c-4c59-8e0e-4f7c2d1e9a01")
	testAdminID = uuid.MustParse("9a2e0c1d-7f3b-4e8a-b1c6-2d5f8e0a3b47")
	otherUserID = uuid.MustParse("c3d4e5f6-0718-4293-a4b5-c6d7e8f90a1b")
)

type apiFixture struct {
	e            *echo.Echo
	registration *mockUsecase.MockRegistrationUsecase
	dispatch     *mockUsecase.MockDispatchUsecase
	feed         *mockUsecase.MockFeedUsecase
	deliveries   *mockUsecase.MockDeliveryUsecase
	scheduler    *mockUsecase.MockSchedulerUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		WebPush:    &config.WebPushConfig{VAPIDPublicKey: "BPublicKey"},
		Scheduler:  &config.SchedulerConfig{TriggerToken: triggerToken},
		TestRoutes: &config.TestRoutesConfig{Enabled: true},
	}
	cfg.ApplyDefaults()

	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().ValidateAccessToken(userToken).
		Return(&service.AccessClaims{UserID: testUserID, Roles: entity.Roles{entity.RoleUser}}, nil).Maybe()
	verifier.EXPECT().ValidateAccessToken(adminToken).
		Return(&service.AccessClaims{UserID: testAdminID, Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}, nil).Maybe()
	verifier.EXPECT().ValidateAccessToken(mock.Anything).
		Return(nil, errors.New("token is expired")).Maybe()

	f := &apiFixture{
		registration: mockUsecase.NewMockRegistrationUsecase(t),
		dispatch:     mockUsecase.NewMockDispatchUsecase(t),
		feed:         mockUsecase.NewMockFeedUsecase(t),
		deliveries:   mockUsecase.NewMockDeliveryUsecase(t),
		scheduler:    mockUsecase.NewMockSchedulerUsecase(t),
	}

	f.e = NewEcho(cfg, logger, router.RouterParams{
		RegistrationHandler: handler.NewRegistrationHandler(handler.RegistrationHandlerParams{
			RegistrationUC: f.registration, Config: cfg, Logger: logger,
		}),
		DispatchHandler: handler.NewDispatchHandler(handler.DispatchHandlerParams{DispatchUC: f.dispatch, Logger: logger}),
		FeedHandler:     handler.NewFeedHandler(handler.FeedHandlerParams{FeedUC: f.feed, Logger: logger}),
		DeliveryHandler: handler.NewDeliveryHandler(f.deliveries),
		SchedulerHandler: handler.NewSchedulerHandler(handler.SchedulerHandlerParams{
			SchedulerUC: f.scheduler, Config: cfg, Logger: logger,
		}),
		TestHandler:    handler.NewTestHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(verifier),
		Config:         cfg,
	})

	return f
}

func (f *apiFixture) do(method, path, token, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.NotEmpty(t, decode(t, rec).Meta.RequestID)
}

func TestAuthentication(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("missing token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/registrations", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/api/v1/registrations", "stale", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("admin-only test route", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/test/admin", userToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = f.do(http.MethodGet, "/test/admin", adminToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegistrationRoutes(t *testing.T) {
	t.Run("register upserts for the caller", func(t *testing.T) {
		f := newAPIFixture(t)
		regID := uuid.New()
		f.registration.EXPECT().Register(mock.Anything, testUserID, &usecase.RegisterInput{
			Channel:    entity.ChannelNativePush,
			ExternalID: "fcm-token",
			Platform:   "android",
		}).Return(&entity.DeviceRegistration{ID: regID, UserID: testUserID, Channel: entity.ChannelNativePush, IsActive: true}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/registrations", userToken,
			`{"channel":"native_push","external_id":"fcm-token","platform":"android"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var got entity.DeviceRegistration
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, regID, got.ID)
		assert.True(t, got.IsActive)
	})

	t.Run("unknown channel fails validation", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/registrations", userToken, `{"channel":"sms","external_id":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
	})

	t.Run("usecase validation details reach the client", func(t *testing.T) {
		f := newAPIFixture(t)
		f.registration.EXPECT().Register(mock.Anything, testUserID, mock.Anything).
			Return(nil, domainerrors.ErrRegistrationInvalid.WithDetails("web push device_info.p256dh is required")).Once()

		rec := f.do(http.MethodPost, "/api/v1/registrations", userToken,
			`{"channel":"web_push","external_id":"https://push.example/abc"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "REGISTRATION_INVALID", env.Error.Code)
		assert.Equal(t, "web push device_info.p256dh is required", env.Error.Details)
	})

	t.Run("delete someone else's registration", func(t *testing.T) {
		f := newAPIFixture(t)
		regID := uuid.New()
		f.registration.EXPECT().Revoke(mock.Anything, testUserID, regID).Return(domainerrors.ErrRegistrationForbidden).Once()

		rec := f.do(http.MethodDelete, "/api/v1/registrations/"+regID.String(), userToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "REGISTRATION_FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("delete with a malformed id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodDelete, "/api/v1/registrations/not-a-uuid", userToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("revoke by external id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.registration.EXPECT().RevokeByExternalID(mock.Anything, testUserID, entity.ChannelWebPush, "https://push.example/abc").
			Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/registrations/revoke", userToken,
			`{"channel":"web_push","external_id":"https://push.example/abc"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("vapid key", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/push/web/vapid-key", userToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"public_key":"BPublicKey"}`, string(decode(t, rec).Data))
	})
}

func TestDispatchRoutes(t *testing.T) {
	summary := &usecase.DispatchSummary{Sent: 1, Results: []usecase.DeliveryResult{{UserID: otherUserID, Status: entity.DeliveryStatusSent}}}

	t.Run("plain user may not target others", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", userToken,
			`{"user_id":"`+otherUserID.String()+`","title":"hi"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "DISPATCH_FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("plain user may not broadcast by filter", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", userToken,
			`{"filter":{"channel":"web_push"},"title":"hi"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin dispatches to a user", func(t *testing.T) {
		f := newAPIFixture(t)
		f.dispatch.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(intent *usecase.DispatchIntent) bool {
			return len(intent.Target.UserIDs) == 1 && intent.Target.UserIDs[0] == otherUserID &&
				intent.Title == "hi" && intent.NotificationType == entity.NotificationTypeTest &&
				intent.Data["k"] == "v"
		})).Return(summary, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", adminToken,
			`{"user_id":"`+otherUserID.String()+`","title":"hi","data":{"k":"v"}}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got usecase.DispatchSummary
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, 1, got.Sent)
		assert.Len(t, got.Results, 1)
	})

	t.Run("reserved data keys never reach the channels", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", adminToken,
			`{"filter":{"channel":"native_push"},"title":"hi","data":{"from":"ops"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "PUSH_DATA_INVALID", env.Error.Code)
		assert.Contains(t, env.Error.Details, "reserved")
	})

	t.Run("oversized data is rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", adminToken,
			`{"user_id":"`+otherUserID.String()+`","title":"hi","data":{"blob":"`+strings.Repeat("a", service.MaxPushDataBytes)+`"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PUSH_DATA_INVALID", decode(t, rec).Error.Code)
	})

	t.Run("two target forms are rejected", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", adminToken,
			`{"user_id":"`+otherUserID.String()+`","filter":{},"title":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DISPATCH_TARGET_INVALID", decode(t, rec).Error.Code)
	})

	t.Run("unexpected failure is masked", func(t *testing.T) {
		f := newAPIFixture(t)
		f.dispatch.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection reset")).Once()

		rec := f.do(http.MethodPost, "/api/v1/notifications/dispatch", userToken,
			`{"user_id":"`+testUserID.String()+`","title":"hi"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "pq:")
	})

	t.Run("test notification targets the caller", func(t *testing.T) {
		f := newAPIFixture(t)
		f.dispatch.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(intent *usecase.DispatchIntent) bool {
			return len(intent.Target.UserIDs) == 1 && intent.Target.UserIDs[0] == testUserID &&
				intent.Title == "Test notification"
		})).Return(&usecase.DispatchSummary{}, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/notifications/test", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestFeedRoutes(t *testing.T) {
	t.Run("list passes pagination and unread filter", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feed.EXPECT().List(mock.Anything, testUserID, true, 10, 20).
			Return([]*entity.InAppNotification{{ID: uuid.New(), UserID: testUserID, Type: "like"}}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/feed?unread=true&limit=10&offset=20", userToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mark read of a missing row", func(t *testing.T) {
		f := newAPIFixture(t)
		id := uuid.New()
		f.feed.EXPECT().MarkRead(mock.Anything, testUserID, id).Return(domainerrors.ErrNotificationNotFound).Once()

		rec := f.do(http.MethodPost, "/api/v1/feed/"+id.String()+"/read", userToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("producer endpoint requires admin", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/feed", userToken,
			`{"user_id":"`+otherUserID.String()+`","type":"like","title":"New like"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("producer data is checked against push limits", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/feed", adminToken,
			`{"user_id":"`+otherUserID.String()+`","type":"like","title":"New like","data":{"google.sent_time":1}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PUSH_DATA_INVALID", decode(t, rec).Error.Code)
	})

	t.Run("producer duplicate maps to conflict", func(t *testing.T) {
		f := newAPIFixture(t)
		f.feed.EXPECT().Create(mock.Anything, mock.MatchedBy(func(n *entity.InAppNotification) bool {
			return n.UserID == otherUserID && n.Type == "follow" && n.DedupKey == "follow:1"
		})).Return(repository.ErrDuplicateNotification).Once()

		rec := f.do(http.MethodPost, "/api/v1/feed", adminToken,
			`{"user_id":"`+otherUserID.String()+`","type":"follow","title":"New follower","dedup_key":"follow:1"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "NOTIFICATION_DUPLICATE", decode(t, rec).Error.Code)
	})
}

func TestDeliveriesRoute(t *testing.T) {
	f := newAPIFixture(t)
	f.deliveries.EXPECT().ListDeliveries(mock.Anything, testUserID, 0, 0).
		Return([]*entity.DeliveryLedgerEntry{{ID: uuid.New(), Status: entity.DeliveryStatusFailed, ErrorCode: "TRANSIENT"}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/deliveries", userToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error_code":"TRANSIENT"`)
}

func TestSchedulerTrigger(t *testing.T) {
	t.Run("wrong token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/internal/scheduler/run", "", "", handler.HeaderSchedulerToken, "guess")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user tokens are not trigger tokens", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/internal/scheduler/run", userToken, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("runs the requested kind", func(t *testing.T) {
		f := newAPIFixture(t)
		ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		f.scheduler.EXPECT().Run(mock.Anything, entity.ReminderKindEvent).
			Return(&usecase.SchedulerReport{RemindersScheduled: 2, Errors: []string{}, Timestamp: ts}, nil).Once()

		rec := f.do(http.MethodPost, "/internal/scheduler/run", triggerToken, `{"reminder_kind":"event"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"reminders_scheduled":2,"errors":[],"timestamp":"2026-03-01T12:00:00Z"}`, string(decode(t, rec).Data))
	})

	t.Run("empty body runs every job", func(t *testing.T) {
		f := newAPIFixture(t)
		f.scheduler.EXPECT().Run(mock.Anything, entity.ReminderKindAll).
			Return(&usecase.SchedulerReport{Errors: []string{}}, nil).Once()

		rec := f.do(http.MethodPost, "/internal/scheduler/run", "", "", handler.HeaderSchedulerToken, triggerToken)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/internal/scheduler/run", triggerToken, `{"reminder_kind":"weekly"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "REMINDER_KIND_INVALID", decode(t, rec).Error.Code)
	})
}
