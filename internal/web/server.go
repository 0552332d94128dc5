// Package web serves the health dashboard over HTTP. Each request runs
// a fresh check; nothing is cached between requests.
package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/rembot/clawhealth/internal/health"
	"github.com/rembot/clawhealth/internal/report"
)

// Server wraps an echo instance around a health checker.
type Server struct {
	echo    *echo.Echo
	checker *health.Checker
}

// New builds the server and its routes.
func New(checker *health.Checker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	s := &Server{echo: e, checker: checker}
	e.GET("/", s.dashboardHandler)
	e.GET("/api/health", s.apiHealthHandler)
	return s
}

// Start blocks serving on addr until the listener fails.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// ServeHTTP exposes the underlying handler, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) dashboardHandler(c echo.Context) error {
	snap, err := s.checker.Run(c.Request().Context())
	if err != nil {
		c.Logger().Error("health check failed: ", err)
		return c.String(http.StatusInternalServerError, fmt.Sprintf("health check failed: %v", err))
	}
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	resp.WriteHeader(http.StatusOK)
	return report.Page(snap).Render(c.Request().Context(), resp.Writer)
}

func (s *Server) apiHealthHandler(c echo.Context) error {
	snap, err := s.checker.Run(c.Request().Context())
	if err != nil {
		c.Logger().Error("health check failed: ", err)
		return c.String(http.StatusInternalServerError, fmt.Sprintf("health check failed: %v", err))
	}
	return c.JSONPretty(http.StatusOK, snap, "  ")
}
