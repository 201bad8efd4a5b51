package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/pizzeria/internal/database"
	"github.com/deppfellow/pizzeria/internal/handler"
	"github.com/deppfellow/pizzeria/internal/repository"
	"github.com/deppfellow/pizzeria/internal/router"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/deppfellow/pizzeria/internal/service"
	"github.com/spf13/cobra"
)

const DefaultContextTimeout = 30 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var migrate, seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root, migrate, seed)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	cmd.Flags().BoolVar(&seed, "seed", false, "load sample data into an empty database before serving")

	return cmd
}

func runServe(ctx context.Context, root *rootOptions, migrate, seed bool) error {
	cfg, loggerService, log, err := bootstrap(root)
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	// Outside local development the schema is always brought up to date.
	if migrate || cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	if seed {
		if _, err := srv.DB.Seed(ctx); err != nil {
			log.Error().Err(err).Msg("failed to seed database")
			return err
		}
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	if srv.Job != nil {
		srv.Job.InitHandlers(services.Restaurant)
		if err := srv.Job.Start(); err != nil {
			log.Error().Err(err).Msg("failed to start background jobs")
			return err
		}
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			_ = srv.Shutdown(context.Background())
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
