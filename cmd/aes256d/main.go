// Command aes256d serves AES-256-ECB encryption and decryption over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	aes256 "github.com/hiae-aead/go-aes256"
	"github.com/hiae-aead/go-aes256/internal/config"
	"github.com/hiae-aead/go-aes256/internal/server"
)

func main() {
	envFile := flag.String("env", ".env", "the .env file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var defaultKey string
	if cfg.KeyFile != "" {
		defaultKey, err = config.ReadKey(cfg.KeyFile)
		if err != nil {
			log.Error("failed to read default key", "err", err)
			os.Exit(1)
		}
		if len(defaultKey) != aes256.KeyLen {
			log.Error("invalid default key", "path", cfg.KeyFile, "err", aes256.ErrInvalidKeyLength)
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr: cfg.Listen,
		Handler: server.New(server.Options{
			Logger:     log,
			MaxBody:    cfg.MaxBody,
			DefaultKey: defaultKey,
		}).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down", "err", err)
		}
	}()

	log.Info("listening", "addr", cfg.Listen, "hardware_aes", aes256.SupportsHardwareAES())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
