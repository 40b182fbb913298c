package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/usersvc/internal/auth"
	"github.com/dmitrymomot/usersvc/internal/handler"
	"github.com/dmitrymomot/usersvc/internal/user"
	"github.com/dmitrymomot/usersvc/pkg/config"
	"github.com/dmitrymomot/usersvc/pkg/httpserver"
	"github.com/dmitrymomot/usersvc/pkg/logger"
	"github.com/dmitrymomot/usersvc/pkg/pg"
	"github.com/dmitrymomot/usersvc/pkg/requestid"
	"github.com/dmitrymomot/usersvc/pkg/token"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Missing required configuration (JWT_SECRET, DATABASE_URL) must stop
	// the process here, before anything is wired.
	var (
		logCfg   logger.Config
		tokenCfg token.Config
		dbCfg    pg.Config
		httpCfg  httpserver.Config
	)
	config.MustLoad(&logCfg)
	config.MustLoad(&tokenCfg)
	config.MustLoad(&dbCfg)
	config.MustLoad(&httpCfg)

	log := logger.NewFromConfig(logCfg,
		logger.WithAttr(slog.String("service", "usersvc")),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	tokenSvc, err := token.NewFromConfig(tokenCfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to initialize token service", logger.Error(err))
		os.Exit(1)
	}

	pool, err := pg.Connect(ctx, dbCfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, dbCfg, log); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", logger.Error(err))
		os.Exit(1)
	}

	repo := user.NewRepository(pool)
	authSvc := auth.NewService(repo, tokenSvc, auth.WithLogger(log))
	router := handler.Router(authSvc, repo, tokenSvc, log)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "http server failed", logger.Error(err))
		os.Exit(1)
	}
}
