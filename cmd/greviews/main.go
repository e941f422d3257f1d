package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dudaka/GReviewSignals/internal/cli"
)

func main() {
	log.Logger = newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Run(ctx))
}

// newLogger returns a console logger on stderr. GREVIEWS_LOG_LEVEL
// overrides the default info level.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if v := os.Getenv("GREVIEWS_LOG_LEVEL"); v != "" {
		if l, err := zerolog.ParseLevel(v); err == nil {
			level = l
		}
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}
