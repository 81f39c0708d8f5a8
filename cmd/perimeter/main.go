package main

import (
	"context"
	"log/slog"
	"os"

	"perimeter/config"
	"perimeter/internal/delivery"
	"perimeter/internal/delivery/http"
	"perimeter/internal/delivery/http/middleware"
	"perimeter/internal/delivery/http/router/handler"
	"perimeter/internal/domain/service"
	logs "perimeter/internal/infra/log"
	"perimeter/internal/infra/notification"
	"perimeter/internal/infra/persistence/postgres"
	"perimeter/internal/infra/pubsub"
	"perimeter/internal/infra/regionmonitor"
	"perimeter/internal/usecase/impl"

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
			impl.NewGeofenceService,
			impl.NewLifecycleService,
			impl.NewThrottleService,
			impl.NewDNDService,
			impl.NewEscalationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGeofenceHandler,
			handler.NewSettingsHandler,
			handler.NewLocationHandler,
			handler.NewDiagnosticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
