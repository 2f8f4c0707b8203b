// Command catalog serves the pet shop product catalog over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/deppfellow/catalog/internal/config"
	"github.com/deppfellow/catalog/internal/handler"
	"github.com/deppfellow/catalog/internal/logger"
	"github.com/deppfellow/catalog/internal/repository"
	"github.com/deppfellow/catalog/internal/router"
	"github.com/deppfellow/catalog/internal/server"
	"github.com/deppfellow/catalog/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize new relic")
	}
	defer loggerService.Shutdown()

	appLogger := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, &appLogger, loggerService); err != nil {
		appLogger.Error().Err(err).Msg("server stopped with error")
		loggerService.Shutdown()
		os.Exit(1)
	}
}

// run serves until ctx is done, then shuts the server down within
// cfg.Server.ShutdownTimeout.
func run(ctx context.Context, cfg *config.Config, appLogger *zerolog.Logger, loggerService *logger.LoggerService) error {
	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	appLogger.Info().Msg("server stopped")
	return nil
}
