package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"voltfeed/config"
	"voltfeed/internal/delivery"
	"voltfeed/internal/delivery/http"
	"voltfeed/internal/delivery/http/middleware"
	"voltfeed/internal/delivery/http/router/handler"
	"voltfeed/internal/delivery/worker"
	workerhandler "voltfeed/internal/delivery/worker/handler"
	"voltfeed/internal/domain/service"
	"voltfeed/internal/infra/auth"
	logs "voltfeed/internal/infra/log"
	"voltfeed/internal/infra/notification"
	"voltfeed/internal/infra/notify"
	"voltfeed/internal/infra/push"
	"voltfeed/internal/infra/rest"
	"voltfeed/internal/usecase"
	"voltfeed/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			startSyncEngine,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		push.NewPushProvider,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTIdentityProvider,
			notify.NewSlogDisplayer,
			newFirebaseService,
		),
	)
}

// newFirebaseService creates a Firebase sender with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFeedStore,
			impl.NewSyncCoordinator,
			impl.NewFeedService,
			impl.NewDisplayRouter,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFeedHandler,
			handler.NewStatusHandler,
			handler.NewTestHandler,
			workerhandler.NewPushHandler,
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
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSyncEngine binds the sync engine to the application lifecycle.
func startSyncEngine(lc fx.Lifecycle, sync usecase.SyncUsecase) {
	lc.Append(fx.Hook{
		OnStart: sync.Start,
		OnStop:  sync.Stop,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
