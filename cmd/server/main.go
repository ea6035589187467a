// Command server runs the LegoLocker sync backend: the document store API,
// auth endpoints and health probes.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/legolocker/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
