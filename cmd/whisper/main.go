package main

import (
	"context"
	"log/slog"
	"os"

	"whisper/config"
	"whisper/internal/delivery"
	"whisper/internal/delivery/http"
	"whisper/internal/delivery/http/middleware"
	"whisper/internal/delivery/http/router/handler"
	"whisper/internal/domain/service"
	"whisper/internal/infra/auth"
	logs "whisper/internal/infra/log"
	"whisper/internal/infra/media"
	"whisper/internal/infra/persistence/postgres"
	"whisper/internal/realtime"
	"whisper/internal/usecase/impl"

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
		injectRealtime(),
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMessageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			media.New,
		),
	)
}

func injectRealtime() fx.Option {
	return fx.Options(
		fx.Provide(
			realtime.NewBroadcaster,
			newRegistry,
			func(r *realtime.Registry) service.LiveGateway { return r },
		),
	)
}

// newRegistry binds the broadcaster in as the registry's announcer.
func newRegistry(logger *slog.Logger, broadcaster *realtime.Broadcaster) *realtime.Registry {
	return realtime.NewRegistry(logger, broadcaster)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMessageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMessageHandler,
			handler.NewWSHandler,
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
				os.Exit(1)
			}
		}()
	}
}
