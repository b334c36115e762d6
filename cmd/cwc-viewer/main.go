package main

import (
	"context"
	"log"

	"cwc-viewer/internal/app"
	"cwc-viewer/internal/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.FromEnv()

	application, err := app.NewApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
