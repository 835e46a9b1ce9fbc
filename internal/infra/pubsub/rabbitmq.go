package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"upkeep/config"
	"upkeep/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const rabbitPublishTimeout = 5 * time.Second

// RabbitMQ owns one AMQP connection and declares the fan-out topology:
// a durable direct exchange bound to a durable queue.
type RabbitMQ struct {
	conn   *amqp.Connection
	cfg    config.RabbitMQConfig
	logger *slog.Logger
}

// DialRabbitMQ connects and declares the exchange, queue and binding.
func DialRabbitMQ(cfg config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQ, error) {
	if cfg.URL == "" || cfg.Exchange == "" || cfg.Queue == "" {
		return nil, errors.New("rabbitmq url, exchange and queue are required")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rabbitmq")
	}

	r := &RabbitMQ{conn: conn, cfg: cfg, logger: logger}
	if err := r.declare(); err != nil {
		conn.Close()

		return nil, err
	}

	return r, nil
}

func (r *RabbitMQ) declare() error {
	ch, err := r.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open rabbitmq channel")
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(r.cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare exchange %s", r.cfg.Exchange)
	}
	if _, err := ch.QueueDeclare(r.cfg.Queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", r.cfg.Queue)
	}
	if err := ch.QueueBind(r.cfg.Queue, r.cfg.RoutingKey, r.cfg.Exchange, false, nil); err != nil {
		return errors.Wrapf(err, "failed to bind queue %s", r.cfg.Queue)
	}

	return nil
}

// Channel opens a new AMQP channel on the shared connection.
func (r *RabbitMQ) Channel() (*amqp.Channel, error) {
	ch, err := r.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	return ch, nil
}

// Config returns the broker settings the topology was declared with.
func (r *RabbitMQ) Config() config.RabbitMQConfig {
	return r.cfg
}

// Close closes the connection and every channel on it.
func (r *RabbitMQ) Close() error {
	if r.conn == nil || r.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(r.conn.Close())
}

// rabbitPublisher implements EventPublisher on a single confirm-mode channel.
type rabbitPublisher struct {
	broker *RabbitMQ
	logger *slog.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

// NewRabbitMQPublisher creates a publisher with publisher confirms enabled.
func NewRabbitMQPublisher(broker *RabbitMQ, logger *slog.Logger) (service.EventPublisher, error) {
	ch, err := broker.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		ch.Close()

		return nil, errors.Wrap(err, "failed to enable publisher confirms")
	}

	return &rabbitPublisher{broker: broker, logger: logger, ch: ch}, nil
}

// PublishFanoutEvent publishes a persistent message and waits for the broker confirm.
func (p *rabbitPublisher) PublishFanoutEvent(ctx context.Context, event *service.FanoutEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	ctx, cancel := context.WithTimeout(ctx, rabbitPublishTimeout)
	defer cancel()

	cfg := p.broker.Config()

	// amqp channels are not safe for concurrent publishes
	p.mu.Lock()
	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, cfg.Exchange, cfg.RoutingKey, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     event.NotificationID,
		CorrelationId: event.RequestID,
		Timestamp:     time.Now().UTC(),
		Headers:       headers,
		Body:          body,
	})
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return errors.Wrap(err, "failed waiting for rabbitmq confirm")
	}
	if !acked {
		return errors.Errorf("rabbitmq nacked notification %s", event.NotificationID)
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("notification_id", event.NotificationID),
		slog.String("exchange", cfg.Exchange),
	)

	return nil
}

// Close closes the publishing channel. The connection is closed by its owner.
func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}

	return errors.WithStack(p.ch.Close())
}
