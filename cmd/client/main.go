package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lockerrelay/internal/client/cli"
	"github.com/dmitrijs2005/lockerrelay/internal/client/config"
	"github.com/dmitrijs2005/lockerrelay/internal/flagx"
)

func main() {

	args := os.Args[1:]
	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg)
	commands := flagx.Positional(args, []string{"-c", "-config", "-s", "-t"})

	if err := app.Run(ctx, commands); err != nil {
		stop()
		log.Fatalf("%v", err)
	}

}
