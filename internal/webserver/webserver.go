// Package webserver hosts the echo instance serving both the public content
// API and the JWT-protected back-office API.
package webserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tripveda/tripveda/internal/app"
	"github.com/tripveda/tripveda/internal/settings"
)

const (
	// ContextKeyDB is where the request middleware stashes the gorm handle.
	ContextKeyDB = "tripveda_db"
	// ContextKeyOperator carries the authenticated operator username.
	ContextKeyOperator = "tripveda_operator"
	// ContextKeyLevel carries the authenticated operator level.
	ContextKeyLevel = "tripveda_level"
)

var server *WebServer

// WebServer wraps echo with the admin and public route groups.
type WebServer struct {
	root     *echo.Echo
	api      *echo.Group
	pub      *echo.Group
	appctx   app.AppContext
	settings *settings.Manager
	log      *zap.Logger
}

type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsoniter.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := jsoniter.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// Init builds the server and registers middleware. Route registration happens
// afterwards through ApiGET/PubGET and friends.
func Init(appctx app.AppContext, manager *settings.Manager, log *zap.Logger) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	server = &WebServer{
		root:     e,
		appctx:   appctx,
		settings: manager,
		log:      log,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(server.requestLogger)
	e.Use(server.injectDB)

	server.pub = e.Group("/public", server.maintenanceGate)

	server.api = e.Group("/api")
	server.api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(appctx.Config().Web.Secret),
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/api/login"
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				c.Set(ContextKeyOperator, fmt.Sprintf("%v", claims["usr"]))
				c.Set(ContextKeyLevel, fmt.Sprintf("%v", claims["lvl"]))
			}
		},
	}))

	return server
}

func (s *WebServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.log.Info("http request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote", c.RealIP()),
		)
		return err
	}
}

func (s *WebServer) injectDB(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(ContextKeyDB, s.appctx.DB())
		return next(c)
	}
}

// maintenanceGate turns the public API away while the site is in maintenance
// mode. The back-office API stays reachable so the mode can be switched off.
func (s *WebServer) maintenanceGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.settings.GetBool(settings.KeyMaintenanceMode) {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"code":    "MAINTENANCE",
				"message": "The site is under maintenance, please check back soon",
			})
		}
		return next(c)
	}
}

// GenerateToken issues a back-office JWT valid for 24 hours.
func GenerateToken(secret, username, level string) (string, error) {
	claims := jwt.MapClaims{
		"usr": username,
		"lvl": level,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, errors.Wrap(err, "sign token")
}

// Listen blocks serving HTTP until the listener fails or is shut down.
func (s *WebServer) Listen() error {
	cfg := s.appctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.log.Info("web server starting", zap.String("listen", addr))
	err := s.root.Start(addr)
	if err != nil && !strings.Contains(err.Error(), "Server closed") {
		return errors.Wrap(err, "web server")
	}
	return nil
}

// Echo exposes the underlying instance for tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// ApiGET registers a JWT-protected back-office route.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// PubGET registers an unauthenticated public content route.
func PubGET(path string, h echo.HandlerFunc) {
	server.pub.GET(path, h)
}

func PubPOST(path string, h echo.HandlerFunc) {
	server.pub.POST(path, h)
}
