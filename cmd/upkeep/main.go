// Command upkeep runs the API process: registrations, ad-hoc dispatch, the in-app
// feed and the scheduler trigger endpoint.
package main

import (
	"context"
	"log/slog"
	"os"

	"upkeep/config"
	"upkeep/internal/delivery"
	"upkeep/internal/delivery/api"
	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/router/handler"
	"upkeep/internal/infra/auth"
	"upkeep/internal/infra/cache"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewDedupGuard,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRegistrationRepository,
			postgres.NewLedgerRepository,
			postgres.NewInAppNotificationRepository,
			postgres.NewEquipmentRepository,
			postgres.NewEventRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
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
			impl.NewRegistrationService,
			impl.NewDispatchService,
			impl.NewFeedService,
			impl.NewDeliveryService,
			impl.NewSchedulerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewDispatchHandler,
			handler.NewFeedHandler,
			handler.NewDeliveryHandler,
			handler.NewSchedulerHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
