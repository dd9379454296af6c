// Package server wires the relay together: credentials, the notification
// store, the user directory, services and the HTTP transport. NewApp does all
// resource acquisition and reports failures as errors; Run serves until a
// stop signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/config"
	"github.com/dmitrijs2005/lockerrelay/internal/server/credentials"
	"github.com/dmitrijs2005/lockerrelay/internal/server/httpserver"
	"github.com/dmitrijs2005/lockerrelay/internal/server/services"
	"github.com/dmitrijs2005/lockerrelay/internal/server/store"
	"github.com/dmitrijs2005/lockerrelay/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	credentials *credentials.Credentials
	httpServer  *httpserver.HTTPServer
}

// newStore is a test seam for the Firebase-backed store.
var newStore = func(ctx context.Context, creds *credentials.Credentials, databaseURL string) (store.Store, error) {
	return store.NewFirebaseStore(ctx, creds, databaseURL)
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	creds, err := credentials.Load(ctx, c, logger.With("module", "credentials"))
	if err != nil {
		return nil, fmt.Errorf("credentials init error: %w", err)
	}

	st, err := newStore(ctx, creds, c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	dir, err := users.NewStaticDirectory(users.DefaultAccounts)
	if err != nil {
		return nil, fmt.Errorf("user directory init error: %w", err)
	}

	as := services.NewAuthService(dir, logger)
	ns := services.NewNotificationService(st, logger)
	hs := httpserver.NewHTTPServer(c.Addr(), logger, as, ns, c.ShutdownTimeout)

	return &App{config: c, logger: logger, credentials: creds, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a stop signal is received.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "Starting app...",
		"port", app.config.Port,
		"project_id", app.credentials.ProjectID,
	)

	if err := app.httpServer.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
