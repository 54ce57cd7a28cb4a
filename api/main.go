// @title BBBAB Forums
// @version 0.1
// @description In-memory forums: users, forums and messages.

// @host localhost:4000
// @BasePath /api
// @schemes http

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"tush00nka/bbbab_forums/internal/app"
	"tush00nka/bbbab_forums/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("Server error: %v", err)
	}
}
