package main

import (
	"context"
	"log/slog"
	"os"

	"schoolhub/config"
	"schoolhub/internal/delivery"
	"schoolhub/internal/delivery/api"
	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/router/handler"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/infra/auth"
	logs "schoolhub/internal/infra/log"
	"schoolhub/internal/infra/metrics"
	"schoolhub/internal/infra/notification"
	"schoolhub/internal/infra/persistence/postgres"
	"schoolhub/internal/infra/pubsub"
	"schoolhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
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
		metrics.Module,
		pubsub.Module,
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPrincipalRepository,
			postgres.NewTeacherRepository,
			postgres.NewStudentRepository,
			postgres.NewClassRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialHasher,
			auth.NewJWTService,
			auth.NewPasswordGenerator,
		),
	)
}

// newCredentialHasher bounds concurrent bcrypt work so hashing cannot starve request handling.
func newCredentialHasher(cfg *config.Config) service.CredentialHasher {
	return auth.NewBoundedHasher(cfg, auth.NewBcryptHasher(cfg))
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProvisioningService,
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
			handler.NewAuthHandler,
			handler.NewProvisioningHandler,
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
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
