package publicapi

import (
	"github.com/labstack/echo/v4"

	"github.com/tripveda/tripveda/internal/webserver"
)

func registerSettingsRoutes() {
	webserver.PubGET("/settings", getPublicSettings)
}

// getPublicSettings serves the contact and branding keys the site renders.
// Back-office keys such as maintenance_mode are never exposed here.
func getPublicSettings(c echo.Context) error {
	return ok(c, appctx.Settings().Site())
}
