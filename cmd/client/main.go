package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/apetrenko/eventhub/internal/client/cli"
	"github.com/apetrenko/eventhub/internal/client/config"
	"github.com/apetrenko/eventhub/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
