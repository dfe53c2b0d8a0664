package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/25x8/checkdigit/internal/checkdigit/config"
	"github.com/25x8/checkdigit/internal/checkdigit/logger"
	"github.com/25x8/checkdigit/internal/checkdigit/server"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Pretty:      cfg.LogPretty,
		ServiceName: "checkdigit",
	})
	logger.BridgeStdlib(log)

	// Create and run server
	srv := server.NewServer(cfg, log)
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
