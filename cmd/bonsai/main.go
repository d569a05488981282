package main

import (
	"context"
	"log/slog"
	"os"

	"bonsai/config"
	"bonsai/internal/delivery"
	"bonsai/internal/delivery/http"
	"bonsai/internal/delivery/http/cookie"
	"bonsai/internal/delivery/http/middleware"
	"bonsai/internal/delivery/http/router/handler"
	"bonsai/internal/domain/lifecycle"
	"bonsai/internal/domain/service"
	"bonsai/internal/infra/auth"
	logs "bonsai/internal/infra/log"
	"bonsai/internal/infra/mail"
	"bonsai/internal/infra/persistence/migrations"
	"bonsai/internal/infra/persistence/postgres"
	"bonsai/internal/usecase"
	"bonsai/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type migrateOnStartParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Migration usecase.MigrationUsecase
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
			migrateOnStart,
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
			postgres.NewSessionRepository,
			postgres.NewActivationTokenRepository,
			postgres.NewStatusRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			mail.NewMailer,
			migrations.NewMigrator,
			func() service.Clock { return service.SystemClock },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthenticationService,
			impl.NewActivationService,
			impl.NewSessionService,
			impl.NewUserService,
			impl.NewStatusService,
			impl.NewMigrationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewSessionCookie,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewMigrationHandler,
			handler.NewUserHandler,
			handler.NewSessionHandler,
			handler.NewActivationHandler,
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

// migrateOnStart applies pending migrations once the pool is reachable.
func migrateOnStart(params migrateOnStartParams) {
	if !params.Config.Migration.RunOnStart {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			applied, err := params.Migration.RunPending(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to migrate on start")
			}
			params.Logger.Info("Startup migrations finished", slog.Int("applied", len(applied)))

			return nil
		},
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
