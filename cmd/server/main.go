// Command server runs the work-order classification backend: the
// classification poller plus the HTTP read API.
//
// Usage:
//
//	server
//
// Requires DATABASE_DSN environment variable (or a config file via
// CONFIG_PATH) to be set.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/fieldops/workboard-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
