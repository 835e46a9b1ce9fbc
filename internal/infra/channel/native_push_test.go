package channel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"upkeep/config"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeMessagingClient struct {
	sent      []*messaging.Message
	messageID string
	err       error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return f.messageID, f.err
}

func TestNativePushAdapter_SendBuildsSingleMessage(t *testing.T) {
	client := &fakeMessagingClient{messageID: "projects/upkeep/messages/1"}
	adapter := newNativePushAdapter(client)

	messageID, err := adapter.Send(context.Background(), &entity.DeviceRegistration{
		Channel:    entity.ChannelNativePush,
		ExternalID: "fcm-token",
	}, &service.PushMessage{
		Title: "Event soon",
		Body:  "Starts in 30 minutes",
		Type:  entity.NotificationTypeEventReminder,
		Data:  map[string]string{"event_id": "e1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "projects/upkeep/messages/1", messageID)
	require.Len(t, client.sent, 1)

	sent := client.sent[0]
	assert.Equal(t, "fcm-token", sent.Token)
	assert.Equal(t, "Event soon", sent.Notification.Title)
	assert.Equal(t, map[string]string{"event_id": "e1", "type": entity.NotificationTypeEventReminder}, sent.Data)
	assert.Equal(t, "high", sent.Android.Priority)
	assert.Equal(t, "default", sent.APNS.Payload.Aps.Sound)
}

func TestNativePushAdapter_UnknownErrorIsTransient(t *testing.T) {
	adapter := newNativePushAdapter(&fakeMessagingClient{err: errors.New("connection reset")})

	_, err := adapter.Send(context.Background(), &entity.DeviceRegistration{ExternalID: "fcm-token"}, &service.PushMessage{})

	assert.Equal(t, service.SendErrorTransient, service.ClassifySendError(err))
}

func TestNativePushAdapter_EmptyTokenIsInvalid(t *testing.T) {
	client := &fakeMessagingClient{}
	adapter := newNativePushAdapter(client)

	_, err := adapter.Send(context.Background(), &entity.DeviceRegistration{}, &service.PushMessage{})

	assert.Equal(t, service.SendErrorInvalidRegistration, service.ClassifySendError(err))
	assert.Empty(t, client.sent)
}

func TestNewNativePushAdapter_WithoutCredentialsIsUnavailable(t *testing.T) {
	adapter, err := NewNativePushAdapter(&config.Config{}, discardLogger())
	require.NoError(t, err)

	_, err = adapter.Send(context.Background(), &entity.DeviceRegistration{ExternalID: "x"}, &service.PushMessage{})
	assert.Equal(t, service.SendErrorChannelUnavailable, service.ClassifySendError(err))
}

func fcmErrorBody(httpCode int, status, message, fcmCode string) string {
	return fmt.Sprintf(`{"error":{"code":%d,"message":%q,"status":%q,"details":[`+
		`{"@type":"type.googleapis.com/google.firebase.fcm.v1.FcmError","errorCode":%q}]}}`,
		httpCode, message, status, fcmCode)
}

// newFCMServerClient returns a real messaging client whose FCM endpoint answers with status and body.
func newFCMServerClient(t *testing.T, status int, body string) *messaging.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/upkeep-test/messages:send", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: "upkeep-test"},
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	client, err := app.Messaging(ctx)
	require.NoError(t, err)

	return client
}

func TestNativePushAdapter_ClassifiesFCMErrors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		wantCode       service.SendErrorCode
		wantDeactivate bool
	}{
		{
			name:           "unregistered token",
			status:         http.StatusNotFound,
			body:           fcmErrorBody(404, "NOT_FOUND", "Requested entity was not found.", "UNREGISTERED"),
			wantCode:       service.SendErrorInvalidRegistration,
			wantDeactivate: true,
		},
		{
			name:           "sender id mismatch",
			status:         http.StatusForbidden,
			body:           fcmErrorBody(403, "PERMISSION_DENIED", "SenderId mismatch", "SENDER_ID_MISMATCH"),
			wantCode:       service.SendErrorInvalidRegistration,
			wantDeactivate: true,
		},
		{
			name:     "reserved data key",
			status:   http.StatusBadRequest,
			body:     fcmErrorBody(400, "INVALID_ARGUMENT", "Invalid data payload key: from", "INVALID_ARGUMENT"),
			wantCode: service.SendErrorInvalidPayload,
		},
		{
			name:     "quota exceeded",
			status:   http.StatusTooManyRequests,
			body:     fcmErrorBody(429, "RESOURCE_EXHAUSTED", "Quota exceeded.", "QUOTA_EXCEEDED"),
			wantCode: service.SendErrorTransient,
		},
		{
			name:     "internal error",
			status:   http.StatusInternalServerError,
			body:     fcmErrorBody(500, "INTERNAL", "Internal error encountered.", "INTERNAL"),
			wantCode: service.SendErrorTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newNativePushAdapter(newFCMServerClient(t, tt.status, tt.body))

			_, err := adapter.Send(context.Background(), &entity.DeviceRegistration{ExternalID: "fcm-token"}, &service.PushMessage{
				Title: "Hello",
				Data:  map[string]string{"from": "x"},
			})

			require.Error(t, err)
			code := service.ClassifySendError(err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantDeactivate, code.Deactivates())
		})
	}
}
