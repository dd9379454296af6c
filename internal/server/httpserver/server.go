// Package httpserver exposes the relay over HTTP/JSON using gin.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/lockerrelay/internal/common"
	"github.com/dmitrijs2005/lockerrelay/internal/logging"
	"github.com/dmitrijs2005/lockerrelay/internal/server/services"
)

// Authenticator is the login capability the server needs.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

// NotificationClearer is the clear-notifications capability the server needs.
type NotificationClearer interface {
	Clear(ctx context.Context, lockerID string) error
}

type HTTPServer struct {
	address         string
	auth            Authenticator
	notifications   NotificationClearer
	logger          logging.Logger
	shutdownTimeout time.Duration
	engine          *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, as Authenticator, ns NotificationClearer, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		auth:            as,
		notifications:   ns,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}
	s.engine = s.newEngine()
	return s
}

func (s *HTTPServer) newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(s.logger))
	// all origins allowed; fine for testing, restrict before production use
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", common.RequestIDHeaderName},
		ExposeHeaders:   []string{common.RequestIDHeaderName},
		MaxAge:          12 * time.Hour,
	}))

	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes binds the relay endpoints to r.
func (s *HTTPServer) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", s.health)
	r.POST("/api/login", s.login)
	r.POST("/clear-notifications", s.clearNotifications)
}

// Handler returns the underlying http.Handler.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to the shutdown timeout.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-done
}
