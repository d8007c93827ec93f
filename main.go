package main

import (
	"context"
	"errors"
	"os"

	"catalog/internal/config"
	"catalog/internal/logger"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New(cfg.Log)

	ctx := context.Background()

	repo, closeRepo, err := repositories.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open product repository")
	}

	// Without a broker the index hook stays a no-op.
	var indexer services.ProductIndexer = services.NoopIndexer{}
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQ.URL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
		}
		indexer = mqClient
	}

	app := newApp(cfg, log, repo, indexer)

	go func() {
		if err := app.Listen(cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()
	log.Info().
		Str("port", cfg.App.Port).
		Str("repository", cfg.Database.Driver).
		Bool("index_events", mqClient != nil).
		Msg("Server is up")

	wait := gfshutdown.GracefulShutdown(ctx, cfg.App.ShutdownTimeout, map[string]gfshutdown.Operation{
		// Stop accepting requests before releasing what they depend on.
		"catalog": func(ctx context.Context) error {
			log.Info().Msg("Shutting down server...")
			var errs []error
			if err := app.ShutdownWithContext(ctx); err != nil {
				errs = append(errs, err)
			}
			if mqClient != nil {
				if err := mqClient.Close(); err != nil {
					errs = append(errs, err)
				}
			}
			if err := closeRepo(); err != nil {
				errs = append(errs, err)
			}
			return errors.Join(errs...)
		},
	})

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("Server gracefully stopped")
	os.Exit(exitCode)
}
