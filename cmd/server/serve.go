package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vedran77/foo/internal/database"
	"github.com/vedran77/foo/internal/media"
	postgresrepo "github.com/vedran77/foo/internal/repository/postgres"
	"github.com/vedran77/foo/internal/serializer"
	"github.com/vedran77/foo/internal/service"
	"github.com/vedran77/foo/internal/transport/http/handlers"
	"github.com/vedran77/foo/internal/transport/http/middleware"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if migrate {
				if err := database.Migrate(ctx, a.cfg.PG); err != nil {
					return err
				}
			}
			return a.serve(ctx)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before serving")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg, log := a.cfg, a.logger

	// Database
	pool, err := database.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("connected to database")

	// Repositories
	accountRepo := postgresrepo.NewAccountRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)
	storyRepo := postgresrepo.NewStoryRepo(pool)
	relationshipRepo := postgresrepo.NewRelationshipRepo(pool)

	// Services
	shaper := serializer.New(media.NewBaseURLResolver(cfg.Media.BaseURL))
	accountService := service.NewAccountService(accountRepo, shaper, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	postService := service.NewPostService(postRepo, accountRepo, shaper)
	profileService := service.NewProfileService(accountRepo, postRepo, relationshipRepo, shaper)
	storyService := service.NewStoryService(storyRepo, accountRepo, shaper)

	// Handlers
	mux := handlers.Routes(
		handlers.NewAccountHandler(accountService, log),
		handlers.NewContentHandler(postService, profileService, storyService, log),
		middleware.Auth(cfg.Auth.JWTSecret),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      middleware.CORS(mux),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
