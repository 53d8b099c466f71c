// Package httpapi exposes the authentication and image-generation services
// over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/badriyvp/musegen/internal/logging"
	"github.com/badriyvp/musegen/internal/server/services"
)

type Server struct {
	address   string
	users     *services.UserService
	images    *services.ImageService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *services.UserService, is *services.ImageService, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		images:    is,
		jwtSecret: []byte(secretKey),
	}, nil
}

// newEcho builds the router with middleware and all routes registered.
// Split out from Run so tests can drive it through httptest.
func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/api/health", s.Health)

	e.POST("/api/auth/register", s.Register)
	e.POST("/api/auth/login", s.Login)
	e.GET("/api/auth/user", s.CurrentUser, s.requireAuth)

	e.POST("/api/ai", s.GenerateImage, s.requireAuth)
	e.GET("/api/ai/history", s.GenerationHistory, s.requireAuth)

	return e
}

func (s *Server) Run(ctx context.Context) error {

	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := e.Shutdown(context.Background()); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
