// Package publicapi serves the unauthenticated content endpoints consumed by
// the marketing site.
package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/internal/app"
	"github.com/tripveda/tripveda/internal/leads"
	"github.com/tripveda/tripveda/internal/webserver"
)

var (
	appctx      app.AppContext
	leadService *leads.Service
)

// Init wires the public route groups. The web server must be initialized
// first.
func Init(ctx app.AppContext, svc *leads.Service) {
	appctx = ctx
	leadService = svc

	registerPackageRoutes()
	registerContentRoutes()
	registerReviewRoutes()
	registerTaxiRoutes()
	registerEnquiryRoutes()
	registerSettingsRoutes()
}

func GetDB(c echo.Context) *gorm.DB {
	if db, ok := c.Get(webserver.ContextKeyDB).(*gorm.DB); ok {
		return db
	}
	return appctx.DB()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": "OK",
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
	})
}
