// Package consumer drains fan-out events from RabbitMQ.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"upkeep/config"
	"upkeep/internal/delivery"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/lifecycle"
	"upkeep/internal/domain/service"
	"upkeep/internal/errors"
	"upkeep/internal/infra/pubsub"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerTag     = "upkeep-fanout"
	defaultPrefetch = 16
)

// amqpChannel is the subset of *amqp.Channel the consumer uses.
type amqpChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type rabbitConsumer struct {
	openChannel func() (amqpChannel, error)
	queue       string
	prefetch    int
	fanoutUC    usecase.FanoutUsecase
	logger      *slog.Logger

	stopped context.Context
	stopFn  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
	once    sync.Once
}

// Params holds dependencies for the RabbitMQ consumer, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
	Broker   *pubsub.RabbitMQ `optional:"true"`
}

// NewRabbitMQConsumer returns a Delivery consuming the fan-out queue. Without a broker
// the delivery is inert so the worker can run on Pub/Sub push alone.
func NewRabbitMQConsumer(params Params) delivery.Delivery {
	if params.Broker == nil {
		params.Logger.Info("RabbitMQ not configured, fan-out consumer disabled")

		return disabledConsumer{}
	}

	prefetch := params.Broker.Config().Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	c := newRabbitConsumer(func() (amqpChannel, error) {
		ch, err := params.Broker.Channel()
		if err != nil {
			return nil, err
		}

		return ch, nil
	}, params.Broker.Config().Queue, prefetch, params.FanoutUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

func newRabbitConsumer(open func() (amqpChannel, error), queue string, prefetch int, fanoutUC usecase.FanoutUsecase, logger *slog.Logger) *rabbitConsumer {
	stopped, stopFn := context.WithCancel(context.Background())

	return &rabbitConsumer{
		openChannel: open,
		queue:       queue,
		prefetch:    prefetch,
		fanoutUC:    fanoutUC,
		logger:      logger,
		stopped:     stopped,
		stopFn:      stopFn,
		done:        make(chan struct{}),
	}
}

// Serve consumes until the delivery channel closes or the consumer is stopped.
func (c *rabbitConsumer) Serve(ctx context.Context) error {
	c.started.Store(true)
	defer c.once.Do(func() { close(c.done) })

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(c.stopped, cancel)()

	ch, err := c.openChannel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "failed to set rabbitmq prefetch")
	}

	deliveries, err := ch.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", c.queue)
	}

	c.logger.Info("[RabbitMQ] Consuming fan-out queue",
		slog.String("queue", c.queue),
		slog.Int("prefetch", c.prefetch),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				return errors.New("rabbitmq delivery channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

// handle acks on success and on events that can never succeed, and requeues the rest.
func (c *rabbitConsumer) handle(ctx context.Context, d amqp.Delivery) {
	requestID := d.CorrelationId
	if requestID == "" {
		requestID = uuid.New().String()
	}
	logger := c.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", d.MessageId),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	var event service.FanoutEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		logger.Error("[RabbitMQ] Dropping undecodable message", slog.Any("error", err))
		c.ack(logger, d)

		return
	}
	if event.RequestID == "" {
		event.RequestID = requestID
	}

	_, err := c.fanoutUC.HandleFanoutEvent(ctx, &event)
	switch {
	case err == nil:
		c.ack(logger, d)
	case errors.Is(err, usecase.ErrInvalidFanoutEvent):
		logger.Error("[RabbitMQ] Dropping invalid fan-out event", slog.Any("error", err))
		c.ack(logger, d)
	default:
		logger.Warn("[RabbitMQ] Fan-out failed, requeueing", slog.Any("error", err))
		if nackErr := d.Nack(false, true); nackErr != nil {
			logger.Error("[RabbitMQ] Failed to nack message", slog.Any("error", nackErr))
		}
	}
}

func (c *rabbitConsumer) ack(logger *slog.Logger, d amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		logger.Error("[RabbitMQ] Failed to ack message", slog.Any("error", err))
	}
}

func (c *rabbitConsumer) stop(ctx context.Context) error {
	c.stopFn()
	if !c.started.Load() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	c.logger.Info("Stopping RabbitMQ consumer")

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "rabbitmq consumer did not stop in time")
	}
}

type disabledConsumer struct{}

func (disabledConsumer) Serve(context.Context) error { return nil }
