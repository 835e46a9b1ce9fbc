// Command scheduler runs one reminder tick and exits. It is meant to be invoked by cron
// every half hour; rerunning inside the same window is harmless.
package main

import (
	"context"
	"flag"
	"log/slog"
	"strings"

	"upkeep/config"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/lifecycle"
	"upkeep/internal/infra/cache"
	logs "upkeep/internal/infra/log"
	"upkeep/internal/infra/persistence/postgres"
	"upkeep/internal/infra/pubsub"
	"upkeep/internal/usecase"
	"upkeep/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	exitCodeRunFailed   = 1
	exitCodeItemsFailed = 2
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Scheduler usecase.SchedulerUsecase
	Kind      entity.ReminderKind
	Logger    *slog.Logger
}

func main() {
	kind := flag.String("kind", "", "Reminder kind to run: cleaning, event, or empty for all")
	flag.Parse()

	fx.New(
		fx.Supply(entity.ReminderKind(strings.TrimSpace(*kind))),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewDedupGuard,
			postgres.NewInAppNotificationRepository,
			postgres.NewLedgerRepository,
			postgres.NewEquipmentRepository,
			postgres.NewEventRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			impl.NewFeedService,
			impl.NewSchedulerService,
		),
		pubsub.Module,
		fx.Invoke(runOnce),
	).Run()
}

// runOnce starts the tick after every OnStart hook ran and shuts the app down with
// a non-zero exit code when the run or any item failed.
func runOnce(params runParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*lifecycle.DefaultTimeout)
				defer cancel()

				exitCode := 0
				report, err := params.Scheduler.Run(ctx, params.Kind)
				switch {
				case err != nil:
					params.Logger.Error("[Scheduler] Run failed", slog.Any("error", err))
					exitCode = exitCodeRunFailed
				default:
					params.Logger.Info("[Scheduler] Run finished",
						slog.String("kind", string(params.Kind)),
						slog.Int("reminders_scheduled", report.RemindersScheduled),
						slog.Any("errors", report.Errors),
						slog.Time("timestamp", report.Timestamp),
					)
					if len(report.Errors) > 0 {
						exitCode = exitCodeItemsFailed
					}
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
