package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"upkeep/config"
	"upkeep/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEventPublisher_NoProviderIsNoop(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishFanoutEvent(context.Background(), &service.FanoutEvent{NotificationID: "n1"}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_RejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}},
		{name: "rabbitmq without broker", cfg: &config.PubSubConfig{Provider: "rabbitmq"}},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.FanoutEvent{
		RequestID:      "req-1",
		NotificationID: "n1",
		UserID:         "u1",
		Type:           "like",
		Title:          "New like",
	}

	require.NoError(t, publisher.PublishFanoutEvent(context.Background(), event))

	assert.Equal(t, "n1", received.Message.MessageID)
	assert.Equal(t, "u1", received.Message.Attributes["user_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.FanoutEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	assert.Error(t, publisher.PublishFanoutEvent(context.Background(), &service.FanoutEvent{NotificationID: "n1"}))
}
