package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KodyMike/DropZone/internal/config"
	"github.com/KodyMike/DropZone/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := server.NewLogger(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	srv := server.New(server.Config{
		Addr:           cfg.Addr(),
		BaseDir:        cfg.TargetBaseDir,
		UploadSubdir:   cfg.UploadSubdir,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Log:            logger,
	})

	// Start the HTTP server in a background goroutine so we can listen
	// for OS signals while it runs.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", map[string]any{
			"addr":       cfg.Addr(),
			"base_dir":   cfg.TargetBaseDir,
			"routed_dir": cfg.DataDir(),
		})
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Block until either a shutdown signal arrives or the server fails.
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", map[string]any{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", nil, err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", nil, err)
			os.Exit(1)
		}
	}

	snap := srv.Metrics()
	logger.Info("final metrics", map[string]any{
		"requests_total":     snap.RequestsTotal,
		"uploads_total":      snap.UploadsTotal,
		"upload_bytes_total": snap.UploadBytesTotal,
		"upload_errors":      snap.UploadErrorsTotal,
	})
}
