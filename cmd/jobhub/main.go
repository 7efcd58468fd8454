package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kimkuhyun/JH0103/config"
	"github.com/kimkuhyun/JH0103/internal/delivery"
	"github.com/kimkuhyun/JH0103/internal/delivery/http"
	"github.com/kimkuhyun/JH0103/internal/delivery/http/middleware"
	"github.com/kimkuhyun/JH0103/internal/delivery/http/router/handler"
	"github.com/kimkuhyun/JH0103/internal/infra/auth"
	logs "github.com/kimkuhyun/JH0103/internal/infra/log"
	"github.com/kimkuhyun/JH0103/internal/infra/oauth"
	"github.com/kimkuhyun/JH0103/internal/infra/persistence/postgres"
	"github.com/kimkuhyun/JH0103/internal/infra/research"
	"github.com/kimkuhyun/JH0103/internal/usecase/impl"

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
			postgres.NewJobRepository,
			postgres.NewCompanyResearchRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			oauth.NewProviderService,
			research.NewHTTPResearcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewJobService,
			impl.NewCompanyService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewJobHandler,
			handler.NewCompanyHandler,
			handler.NewAuthHandler,
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
