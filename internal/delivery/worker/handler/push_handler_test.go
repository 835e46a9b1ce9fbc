package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"upkeep/config"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	mockUsecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event *service.FanoutEvent, attributes map[string]string) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/test/subscriptions/fanout"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.FanoutEvent{
		NotificationID: "0d8c5f0e-6a43-4a3f-9a39-1a0c0f3b2a11",
		UserID:         "5f1b5c3a-2b7c-4c59-8e0e-4f7c2d1e9a01",
		Type:           "like",
		Title:          "New like",
	}

	tests := []struct {
		name       string
		setup      func(uc *mockUsecase.MockFanoutUsecase)
		body       func(t *testing.T) string
		wantStatus int
	}{
		{
			name: "success acks",
			setup: func(uc *mockUsecase.MockFanoutUsecase) {
				uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.MatchedBy(func(e *service.FanoutEvent) bool {
					return e.NotificationID == event.NotificationID && e.Title == "New like"
				})).Return(&usecase.DispatchSummary{Sent: 1}, nil).Once()
			},
			body:       func(t *testing.T) string { return pushBody(t, event, nil) },
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable failure asks for redelivery",
			setup: func(uc *mockUsecase.MockFanoutUsecase) {
				uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			body:       func(t *testing.T) string { return pushBody(t, event, nil) },
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "invalid event is acked",
			setup: func(uc *mockUsecase.MockFanoutUsecase) {
				uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(usecase.ErrInvalidFanoutEvent, "user_id")).Once()
			},
			body:       func(t *testing.T) string { return pushBody(t, event, nil) },
			wantStatus: http.StatusOK,
		},
		{
			name:  "bad base64 is acked without processing",
			setup: func(uc *mockUsecase.MockFanoutUsecase) {},
			body: func(t *testing.T) string {
				return `{"message":{"data":"%%%not-base64","messageId":"m"}}`
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "bad event json is acked without processing",
			setup: func(uc *mockUsecase.MockFanoutUsecase) {},
			body: func(t *testing.T) string {
				data := base64.StdEncoding.EncodeToString([]byte("{not json"))

				return `{"message":{"data":"` + data + `","messageId":"m"}}`
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockFanoutUsecase(t)
			tt.setup(uc)

			h := &PushHandler{fanoutUC: uc, logger: newDiscardLogger()}
			rec := doPush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_PropagatesRequestIDFromAttributes(t *testing.T) {
	uc := mockUsecase.NewMockFanoutUsecase(t)
	uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *service.FanoutEvent) {
			assert.Equal(t, "req-from-attr", extractRequestID(ctx, nil, &service.FanoutEvent{}))
		}).
		Return(&usecase.DispatchSummary{}, nil).Once()

	h := &PushHandler{fanoutUC: uc, logger: newDiscardLogger()}
	body := pushBody(t, &service.FanoutEvent{UserID: "u", RequestID: "req-from-event"}, map[string]string{"request_id": "req-from-attr"})

	rec := doPush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	event := &service.FanoutEvent{UserID: "5f1b5c3a-2b7c-4c59-8e0e-4f7c2d1e9a01", Type: "like"}

	t.Run("missing header is rejected", func(t *testing.T) {
		uc := mockUsecase.NewMockFanoutUsecase(t)
		h := &PushHandler{verifyPushAuth: true, fanoutUC: uc, logger: newDiscardLogger(),
			validateToken: func(context.Context, string, string) (*idtoken.Payload, error) {
				t.Fatal("validator must not be called without a token")

				return nil, nil
			},
		}

		rec := doPush(h, pushBody(t, event, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer is rejected", func(t *testing.T) {
		uc := mockUsecase.NewMockFanoutUsecase(t)
		h := &PushHandler{verifyPushAuth: true, fanoutUC: uc, logger: newDiscardLogger(),
			validateToken: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "https://evil.example"}, nil
			},
		}

		rec := doPush(h, pushBody(t, event, nil), map[string]string{echo.HeaderAuthorization: "Bearer tok"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google token is accepted for the endpoint audience", func(t *testing.T) {
		uc := mockUsecase.NewMockFanoutUsecase(t)
		uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).Return(&usecase.DispatchSummary{}, nil).Once()

		var gotAudience string
		h := &PushHandler{verifyPushAuth: true, fanoutUC: uc, logger: newDiscardLogger(),
			validateToken: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				assert.Equal(t, "tok", token)

				return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
			},
		}

		rec := doPush(h, pushBody(t, event, nil), map[string]string{echo.HeaderAuthorization: "Bearer tok"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}

func TestShouldVerifyPushAuth(t *testing.T) {
	newCfg := func(env, provider string, force bool) *config.Config {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider, VerifyPushAuth: force}}
		cfg.Env.Env = env

		return cfg
	}

	assert.False(t, shouldVerifyPushAuth(&config.Config{}))
	assert.False(t, shouldVerifyPushAuth(newCfg(constants.EnvDevelop, constants.PubSubProviderGoogle, false)))
	assert.True(t, shouldVerifyPushAuth(newCfg("production", constants.PubSubProviderGoogle, false)))
	assert.False(t, shouldVerifyPushAuth(newCfg("production", constants.PubSubProviderLocal, false)))
	assert.True(t, shouldVerifyPushAuth(newCfg(constants.EnvDevelop, constants.PubSubProviderLocal, true)))
}
