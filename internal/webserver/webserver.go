// Package webserver hosts the REST API stub over echo. Handlers are
// registered through the package-level route registry and attached
// under /api when the server starts.
package webserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	"github.com/talkincode/foodking/config"
)

type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

var apiRoutes []route

// ApiGET registers a GET handler under /api.
func ApiGET(path string, h echo.HandlerFunc) {
	apiRoutes = append(apiRoutes, route{http.MethodGet, path, h})
}

// ApiPOST registers a POST handler under /api.
func ApiPOST(path string, h echo.HandlerFunc) {
	apiRoutes = append(apiRoutes, route{http.MethodPost, path, h})
}

// ApiPUT registers a PUT handler under /api.
func ApiPUT(path string, h echo.HandlerFunc) {
	apiRoutes = append(apiRoutes, route{http.MethodPut, path, h})
}

// ApiDELETE registers a DELETE handler under /api.
func ApiDELETE(path string, h echo.HandlerFunc) {
	apiRoutes = append(apiRoutes, route{http.MethodDelete, path, h})
}

// WebServer wraps the echo instance.
type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
}

// New builds the server and attaches all registered routes.
func New(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &WebServer{cfg: cfg, root: e}
	g := e.Group("/api")
	for _, r := range apiRoutes {
		g.Add(r.method, r.path, r.handler)
	}
	return s
}

// Echo exposes the underlying instance, mainly for tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// Start blocks serving HTTP until Shutdown.
func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("starting web server", zap.String("addr", addr))
	return s.root.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}

// OK writes the success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

// Fail writes the error envelope with the given HTTP status.
func Fail(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, map[string]interface{}{
		"code":    1,
		"error":   code,
		"message": msg,
	})
}

// Paged writes a paginated list envelope.
func Paged(c echo.Context, rows interface{}, total int, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":     0,
		"data":     rows,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}
