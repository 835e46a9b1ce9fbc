package consumer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	mockUsecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ackRecord struct {
	tag     uint64
	acked   bool
	requeue bool
}

// fakeAcknowledger records acks and nacks by delivery tag.
type fakeAcknowledger struct {
	mu      sync.Mutex
	records []ackRecord
}

func (a *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, ackRecord{tag: tag, acked: true})

	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, ackRecord{tag: tag, requeue: requeue})

	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *fakeAcknowledger) snapshot() []ackRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]ackRecord(nil), a.records...)
}

type fakeChannel struct {
	deliveries chan amqp.Delivery
	prefetch   int
	closed     bool
}

func (c *fakeChannel) Qos(prefetchCount, _ int, _ bool) error {
	c.prefetch = prefetchCount

	return nil
}

func (c *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return c.deliveries, nil
}

func (c *fakeChannel) Close() error {
	c.closed = true

	return nil
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDelivery(t *testing.T, ack amqp.Acknowledger, tag uint64, event *service.FanoutEvent) amqp.Delivery {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)

	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, Body: body, CorrelationId: "corr-1", MessageId: event.NotificationID}
}

func TestRabbitConsumer_Handle(t *testing.T) {
	event := &service.FanoutEvent{NotificationID: "n-1", UserID: "5f1b5c3a-2b7c-4c59-8e0e-4f7c2d1e9a01", Type: "like"}

	tests := []struct {
		name        string
		err         error
		wantAck     bool
		wantRequeue bool
	}{
		{name: "success acks", wantAck: true},
		{name: "invalid event acks", err: errors.Wrap(usecase.ErrInvalidFanoutEvent, "bad user"), wantAck: true},
		{name: "retryable failure requeues", err: errors.New("db down"), wantRequeue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockFanoutUsecase(t)
			uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.MatchedBy(func(e *service.FanoutEvent) bool {
				return e.NotificationID == "n-1" && e.RequestID == "corr-1"
			})).Return(&usecase.DispatchSummary{}, tt.err).Once()

			ack := &fakeAcknowledger{}
			c := newRabbitConsumer(nil, "q", 1, uc, newDiscardLogger())
			c.handle(context.Background(), newDelivery(t, ack, 7, event))

			records := ack.snapshot()
			require.Len(t, records, 1)
			assert.Equal(t, uint64(7), records[0].tag)
			assert.Equal(t, tt.wantAck, records[0].acked)
			assert.Equal(t, tt.wantRequeue, records[0].requeue)
		})
	}
}

func TestRabbitConsumer_HandleDropsUndecodableBody(t *testing.T) {
	uc := mockUsecase.NewMockFanoutUsecase(t)
	ack := &fakeAcknowledger{}
	c := newRabbitConsumer(nil, "q", 1, uc, newDiscardLogger())

	c.handle(context.Background(), amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("{oops")})

	records := ack.snapshot()
	require.Len(t, records, 1)
	assert.True(t, records[0].acked)
}

func TestRabbitConsumer_ServeUntilStopped(t *testing.T) {
	uc := mockUsecase.NewMockFanoutUsecase(t)
	uc.EXPECT().HandleFanoutEvent(mock.Anything, mock.Anything).Return(&usecase.DispatchSummary{}, nil).Twice()

	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 2)}
	ack := &fakeAcknowledger{}
	c := newRabbitConsumer(func() (amqpChannel, error) { return ch, nil }, "q", 4, uc, newDiscardLogger())

	ch.deliveries <- newDelivery(t, ack, 1, &service.FanoutEvent{NotificationID: "a", UserID: "u"})
	ch.deliveries <- newDelivery(t, ack, 2, &service.FanoutEvent{NotificationID: "b", UserID: "u"})

	errCh := make(chan error, 1)
	go func() { errCh <- c.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return len(ack.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, c.stop(context.Background()))
	require.NoError(t, <-errCh)

	assert.Equal(t, 4, ch.prefetch)
	assert.True(t, ch.closed)
}

func TestRabbitConsumer_ServeFailsWhenBrokerClosesDeliveries(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery)}
	close(ch.deliveries)
	c := newRabbitConsumer(func() (amqpChannel, error) { return ch, nil }, "q", 1, mockUsecase.NewMockFanoutUsecase(t), newDiscardLogger())

	assert.Error(t, c.Serve(context.Background()))
}

func TestRabbitConsumer_StopWithoutServe(t *testing.T) {
	c := newRabbitConsumer(nil, "q", 1, mockUsecase.NewMockFanoutUsecase(t), newDiscardLogger())

	assert.NoError(t, c.stop(context.Background()))
}
