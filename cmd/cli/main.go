package main

import (
	"context"
	"log"

	"github.com/hecreatescode/versekeeper/internal/cli"
	"github.com/hecreatescode/versekeeper/internal/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	app.Run(ctx)
}
