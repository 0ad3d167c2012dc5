package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"fixturecal/internal/config"
	"fixturecal/internal/logging"
	"fixturecal/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	once := flag.Bool("once", false, "run a single reconciliation pass and exit")
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "fixturecal",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}

	if *once {
		if err := srv.RunOnce(ctx); err != nil {
			logger.Error("reconciliation run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	srv.Run(ctx, stop)
}
