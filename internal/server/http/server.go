// Package http exposes the credential service over HTTP. Every route sits
// behind the API key gate; the gate runs before any handler is invoked.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkrasnov/authapi/internal/logging"
	"github.com/dkrasnov/authapi/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	apiKey  string
}

func NewServer(address string, l logging.Logger, us *services.UserService, apiKey string) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		apiKey:  apiKey,
	}
}

// Handler builds the routing tree. Exposed separately from Run so tests can
// drive it with httptest.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(APIKeyGate(s.apiKey))

	api := r.Group("/api")
	api.GET("/ping", s.ping)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.registerUser)
	authGroup.POST("/login", s.login)

	return r
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "error shutting down server", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
