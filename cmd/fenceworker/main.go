package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"perimeter/config"
	"perimeter/internal/delivery"
	"perimeter/internal/delivery/worker"
	"perimeter/internal/delivery/worker/handler"
	"perimeter/internal/domain/service"
	logs "perimeter/internal/infra/log"
	"perimeter/internal/infra/notification"
	"perimeter/internal/infra/persistence/postgres"
	"perimeter/internal/infra/pubsub"
	"perimeter/internal/infra/regionmonitor"
	"perimeter/internal/usecase"
	"perimeter/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// startEngineParams holds everything the decision engine needs at startup
type startEngineParams struct {
	fx.In
	fx.Lifecycle

	Logger       *slog.Logger
	Config       *config.Config
	Monitor      *regionmonitor.GeodeticMonitor
	Pipeline     usecase.EventPipelineUsecase
	LifecycleUC  usecase.LifecycleUsecase
	DNDUC        usecase.DNDUsecase
	EscalationUC usecase.EscalationUsecase
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
			startEngine,
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
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewGeofenceRepository,
			postgres.NewThrottleRepository,
			postgres.NewSettingsRepository,
			postgres.NewDeliveryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			regionmonitor.New,
			regionmonitor.AsRegionMonitor,
			notification.NewFCMSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLifecycleService,
			impl.NewThrottleService,
			impl.NewDNDService,
			impl.NewEscalationService,
			impl.NewEventPipeline,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
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
		),
	)
}

// startEngine wires the region monitor into the event pipeline and runs the
// periodic maintenance loops: Do Not Disturb expiry, deferred notification
// flushing, and monitored-set reconciliation.
func startEngine(params startEngineParams) {
	quit := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Monitor.Bind(params.Pipeline.Enqueue)
			params.Pipeline.Start(ctx)

			// Register regions for the current store contents before the
			// first push message arrives.
			if _, err := params.LifecycleUC.Reconcile(ctx); err != nil {
				params.Logger.Error("Initial reconcile failed",
					slog.Any("error", err))
			}

			engine := params.Config.Engine
			go runTicker(quit, engine.DNDTickInterval, func() {
				if err := params.DNDUC.NormalizeExpired(context.Background()); err != nil {
					params.Logger.Error("Do Not Disturb expiry pass failed",
						slog.Any("error", err))
				}
			})
			go runTicker(quit, engine.DeferredFlushInterval, func() {
				flushed, err := params.EscalationUC.FlushDueDeferred(context.Background())
				if err != nil {
					params.Logger.Error("Deferred flush pass failed",
						slog.Any("error", err))
				}
				if flushed > 0 {
					params.Logger.Info("Flushed deferred notifications",
						slog.Int("count", flushed))
				}
			})
			go runTicker(quit, engine.ReconcileInterval, func() {
				if _, err := params.LifecycleUC.Reconcile(context.Background()); err != nil {
					params.Logger.Error("Periodic reconcile failed",
						slog.Any("error", err))
				}
			})

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(quit)

			return params.Pipeline.Stop(ctx)
		},
	})
}

// runTicker invokes fn every interval until quit is closed
func runTicker(quit <-chan struct{}, interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			fn()
		}
	}
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
