package main

import (
	"context"
	"flag"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/okravchuk/matoblik/internal/config"
	"github.com/okravchuk/matoblik/internal/infra/database"
	"github.com/okravchuk/matoblik/internal/infra/repository"
	"github.com/okravchuk/matoblik/internal/infra/session"
	"github.com/okravchuk/matoblik/internal/infra/trace"
	"github.com/okravchuk/matoblik/internal/present/rest"
	restmiddleware "github.com/okravchuk/matoblik/internal/present/rest/middleware"
	"github.com/okravchuk/matoblik/internal/service"
	"github.com/okravchuk/matoblik/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := trace.Setup(ctx, "matoblik", conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer shutdown(ctx)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	var sessions service.SessionStore
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		sessions = session.NewRedisStore(rdb)
	} else {
		sessions = session.NewMemoryStore()
	}

	identityRepo := repository.NewIdentityRepository(db)
	operationRepo := repository.NewOperationRepository(db)

	identityUC := usecase.NewIdentityUsecase(identityRepo)
	ledgerUC := usecase.NewLedgerUsecase(operationRepo)
	auth := service.NewAuthService(identityUC, sessions, conf.Server.SessionTTL())

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("matoblik"))
	}

	handler := rest.NewHandler(identityUC, ledgerUC, auth)
	handler.RegisterRoutes(e, restmiddleware.NewAuthMiddleware(auth))

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}
