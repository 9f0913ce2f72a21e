package main

import (
	"context"
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/build"
	"github.com/joestump/cryptolab/internal/catalog"
	"github.com/joestump/cryptolab/internal/cipher"
	"github.com/joestump/cryptolab/internal/config"
	"github.com/joestump/cryptolab/internal/db"
	"github.com/joestump/cryptolab/internal/handler"
	"github.com/joestump/cryptolab/internal/history"
	"github.com/joestump/cryptolab/internal/logging"
	"github.com/joestump/cryptolab/internal/session"
	"github.com/joestump/cryptolab/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			templates, err := handler.TemplatesFS(cfg.TemplatesDir)
			if err != nil {
				return err
			}
			renderer, err := handler.NewRenderer(templates)
			if err != nil {
				return err
			}
			rng, err := newRand()
			if err != nil {
				return err
			}

			operations := store.NewOperationStore(database)

			// The writer outlives the HTTP server so requests still in flight
			// during shutdown are recorded before the drain.
			recorderCtx, stopRecorder := context.WithCancel(context.Background())
			defer stopRecorder()
			recorder := history.NewAsyncRecorder(operations, cfg.HistoryBuffer, log.Named("history"))
			recorderDone := make(chan struct{})
			go func() {
				recorder.Run(recorderCtx)
				close(recorderDone)
			}()

			router, err := handler.NewRouter(handler.Deps{
				Log:        log,
				DB:         database,
				Catalog:    cat,
				Renderer:   renderer,
				StaticDir:  cfg.StaticDir,
				Sessions:   session.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies),
				Operations: operations,
				Recorder:   recorder,
				Rand:       rng,
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() { serveErr <- srv.ListenAndServe() }()
			log.Info("listening",
				zap.String("addr", cfg.HTTP.Addr),
				zap.String("version", build.Version),
				zap.String("db_driver", cfg.DB.Driver),
				zap.String("static_dir", cfg.StaticDir))

			select {
			case err := <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
			case <-ctx.Done():
				log.Info("shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown", zap.Error(err))
			}

			stopRecorder()
			<-recorderDone
			return nil
		},
	}
}

// newRand returns a goroutine-safe generator seeded from the OS.
func newRand() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seed rng: %w", err)
	}
	return cipher.NewRand(rand.NewChaCha8(seed)), nil
}
