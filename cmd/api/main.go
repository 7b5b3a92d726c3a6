//	@title			Image Store API
//	@version		1.0
//	@description	Path-addressed image storage: upload, list, fetch and delete files by hierarchical key.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/imagestore/service/internal/config"
	"github.com/imagestore/service/internal/image"
	"github.com/imagestore/service/internal/logger"
	"github.com/imagestore/service/internal/router"
	"github.com/imagestore/service/internal/storage"

	_ "github.com/imagestore/service/docs/swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	store, err := storage.NewFileStore(cfg.StorageRoot)
	if err != nil {
		zlog.Fatal("storage init failed", zap.Error(err))
	}

	// Wire dependencies: store → service → handler
	imageSvc := image.NewService(store, zlog, image.WithStrictContentCheck(cfg.RejectContentMismatch))
	imageHandler := image.NewHandler(imageSvc, zlog, cfg.MaxUploadBytes, cfg.MultipartMemoryBytes)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(zlog, cfg.CORSAllowedOrigins, imageHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("storage_root", store.Root()),
		)
		zlog.Info("swagger UI available", zap.String("url", "http://localhost:"+cfg.Port+"/swagger/"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		zlog.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
