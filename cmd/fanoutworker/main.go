// Command fanoutworker pushes stored in-app notifications to user devices. It accepts
// Pub/Sub push requests on /push and, with the rabbitmq provider, consumes the fan-out queue.
package main

import (
	"context"
	"log/slog"
	"os"

	"upkeep/config"
	"upkeep/internal/delivery"
	"upkeep/internal/delivery/consumer"
	"upkeep/internal/delivery/worker"
	"upkeep/internal/delivery/worker/handler"
	"upkeep/internal/infra/channel"
	logs "upkeep/internal/infra/log"
	"upkeep/internal/infra/persistence/postgres"
	"upkeep/internal/infra/pubsub"
	"upkeep/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		// The worker only consumes; it shares the broker connection but never publishes
		pubsub.NewRabbitMQ,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRegistrationRepository,
			postgres.NewLedgerRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				channel.NewWebPushAdapter,
				fx.ResultTags(`group:"channels"`),
			),
			fx.Annotate(
				channel.NewNativePushAdapter,
				fx.ResultTags(`group:"channels"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewFanoutService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				consumer.NewRabbitMQConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
