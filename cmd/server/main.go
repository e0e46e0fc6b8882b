package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/actuallystonmai/movie-details/internal/config"
	"github.com/actuallystonmai/movie-details/internal/details"
	"github.com/actuallystonmai/movie-details/internal/handler"
	"github.com/actuallystonmai/movie-details/internal/metrics"
	"github.com/actuallystonmai/movie-details/internal/router"
	"github.com/actuallystonmai/movie-details/internal/tmdb"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		port       int
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:          "movie-details",
		Short:        "Serve movie detail pages backed by the TMDB API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().IntVar(&port, "port", 8080, "listen port (overrides PORT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (overrides LOG_LEVEL)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := config.NewLogger(cfg.Log.Level, cfg.Log.Format)

	client := tmdb.NewClient(tmdb.Options{
		BaseURL:  cfg.TMDB.BaseURL,
		APIKey:   cfg.TMDB.APIKey,
		Language: cfg.TMDB.Language,
	}, nil)
	rec := metrics.NewRecorder()
	h := handler.NewHandler(client, details.Images{BaseURL: cfg.TMDB.ImageBaseURL}, rec)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(h, log, rec, cfg.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		return shutdown(srv, cfg.ShutdownTimeout, log)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

func shutdown(srv *http.Server, timeout time.Duration, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown failed")
		return srv.Close()
	}
	return nil
}
