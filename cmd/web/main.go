package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"highpro/web/internal/backend"
	"highpro/web/internal/config"
	"highpro/web/internal/handlers"
	"highpro/web/internal/log"
	"highpro/web/internal/server"
	"highpro/web/internal/telegram"
)

func main() {
	// .env is a development convenience; absence is normal in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	backendClient := backend.NewClient(cfg.Backend)
	telegramClient := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if !telegramClient.Configured() {
		logger.Warn().Msg("telegram credentials not set, contact form disabled")
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, backendClient, telegramClient)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server exited cleanly")
}
