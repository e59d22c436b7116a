// Package server exposes the sizing calculators over HTTP. Each client
// session owns an isolated load collection; calculators themselves are
// stateless.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/luminghao/godcps/internal/logger"
)

// Server wraps the echo instance and the session manager.
type Server struct {
	echo     *echo.Echo
	sessions *SessionManager
	log      logger.Logger
}

// New builds the HTTP server with all routes registered.
func New(log logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	sessions := NewSessionManager()
	h := NewHandler(sessions, log)

	api := e.Group("/api")
	api.GET("/health", h.HandleHealth)
	api.POST("/sessions", h.HandleCreateSession)
	api.POST("/sessions/:id/loads", h.HandleAddLoad)
	api.DELETE("/sessions/:id/loads", h.HandleClearLoads)
	api.GET("/sessions/:id/report", h.HandleReport)
	api.POST("/battery/count", h.HandleBatteryCount)
	api.POST("/rectifier/modules", h.HandleModuleCount)

	return &Server{echo: e, sessions: sessions, log: log}
}

// Echo exposes the underlying echo instance, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Run serves on addr until ctx is cancelled, garbage-collecting idle
// sessions in the background.
func (s *Server) Run(ctx context.Context, addr string) error {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.sessions.CleanupOldSessions(SessionMaxAge); n > 0 {
					s.log.Infof("cleaned up %d idle sessions", n)
				}
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()
	s.log.Infof("listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
