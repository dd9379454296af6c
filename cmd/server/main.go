package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server"
	"github.com/dmitrijs2005/lockerrelay/internal/server/config"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err.Error())
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}

}
