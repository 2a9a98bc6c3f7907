package webserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/config"
	"github.com/tripveda/tripveda/internal/app"
	"github.com/tripveda/tripveda/internal/settings"
)

type stubAppContext struct {
	cfg  *config.AppConfig
	sets *settings.Manager
}

func (s *stubAppContext) DB() *gorm.DB                { return nil }
func (s *stubAppContext) Config() *config.AppConfig   { return s.cfg }
func (s *stubAppContext) Settings() *settings.Manager { return s.sets }
func (s *stubAppContext) Scheduler() *cron.Cron       { return nil }
func (s *stubAppContext) Bus() EventBus.Bus           { return nil }
func (s *stubAppContext) MigrateDB(track bool) error  { return nil }
func (s *stubAppContext) InitDb()                     {}
func (s *stubAppContext) DropAll()                    {}

var _ app.AppContext = (*stubAppContext)(nil)

type memRepo struct {
	values map[string]string
}

func (r *memRepo) LoadAll() (map[string]string, error) { return r.values, nil }
func (r *memRepo) Save(name, value string) error {
	r.values[name] = value
	return nil
}

const testSecret = "webserver-test-secret"

func newTestServer(t *testing.T, stored map[string]string) *WebServer {
	t.Helper()
	if stored == nil {
		stored = map[string]string{}
	}
	manager := settings.NewManager(&memRepo{values: stored}, nil)
	manager.Init()

	ctx := &stubAppContext{
		cfg:  &config.AppConfig{Web: config.WebConfig{Secret: testSecret}},
		sets: manager,
	}
	s := Init(ctx, manager, zap.NewNop())
	PubGET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	ApiGET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	return s
}

func doRequest(s *WebServer, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutesServeWhenNotInMaintenance(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(s, "/public/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMaintenanceModeGatesPublicOnly(t *testing.T) {
	s := newTestServer(t, map[string]string{
		settings.KeyMaintenanceMode: "enabled",
	})

	// public routes are turned away
	rec := doRequest(s, "/public/ping", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "MAINTENANCE")

	// the back office stays reachable so the mode can be switched off
	token, err := GenerateToken(testSecret, "admin", "super")
	require.NoError(t, err)
	rec = doRequest(s, "/api/ping", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApiRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(s, "/api/ping", "")
	assert.NotEqual(t, http.StatusOK, rec.Code)

	rec = doRequest(s, "/api/ping", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
